//go:build !windows

package process

import (
	"context"
	"os/exec"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestConfigure - Process group setup and cancellation
// ---------------------------------------------------------------------------

func TestConfigure_SetsProcessGroup(t *testing.T) {
	t.Parallel()

	cmd := exec.CommandContext(context.Background(), "true")
	Configure(cmd)

	if cmd.SysProcAttr == nil || !cmd.SysProcAttr.Setpgid {
		t.Error("Setpgid should be set")
	}
	if cmd.Cancel == nil {
		t.Error("Cancel should be set")
	}
	if cmd.WaitDelay != waitDelay {
		t.Errorf("WaitDelay = %v, want %v", cmd.WaitDelay, waitDelay)
	}
}

func TestConfigure_KillsOnCancel(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	// The child sleep shares the group and must die with its parent.
	cmd := exec.CommandContext(ctx, "sh", "-c", "sleep 30 & wait")
	Configure(cmd)

	start := time.Now()
	if err := cmd.Run(); err == nil {
		t.Fatal("expected error from killed command")
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("command took %v, group was not killed", elapsed)
	}
}

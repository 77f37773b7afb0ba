package process

import (
	"os/exec"
	"time"
)

// waitDelay bounds how long Wait waits for output pipes after a kill.
const waitDelay = 2 * time.Second

// Configure arranges for cmd to run in its own process group and for
// context cancellation to kill the whole group rather than only the direct
// child. cmd must come from exec.CommandContext and not be started yet.
func Configure(cmd *exec.Cmd) {
	setGroup(cmd)
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		KillProcessGroup(cmd.Process.Pid)
		return cmd.Process.Kill()
	}
	cmd.WaitDelay = waitDelay
}

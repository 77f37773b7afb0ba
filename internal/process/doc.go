// Package process runs example programs in their own process group so a
// timeout or interrupt terminates everything they started.
package process

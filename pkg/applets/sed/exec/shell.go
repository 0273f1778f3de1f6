package exec

import (
	"bytes"
	"os/exec"

	"github.com/rcarmo/go-busybox/pkg/applets/sed/sederr"
)

// runShell executes cmdText via /bin/sh -c, following the same
// exec.Command shape pkg/applets/ash uses to launch child processes. A
// nonzero exit from the child is tolerated (its stdout is still used),
// matching classic sed's tolerance of failing `e` commands; only a
// failure to launch the shell itself is reported.
func runShell(cmdText string) ([]byte, error) {
	cmd := exec.Command("/bin/sh", "-c", cmdText)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return stdout.Bytes(), nil
		}
		return nil, &sederr.ShellExecError{Cmd: cmdText, Err: err}
	}
	return stdout.Bytes(), nil
}

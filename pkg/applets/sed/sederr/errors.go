// Package sederr defines the error kinds shared across the sed applet's
// parser, engine, and I/O collaborators.
package sederr

import "fmt"

// ScriptParseError reports a failure to tokenize or build the Program,
// carrying the byte offset into the assembled script where parsing failed.
type ScriptParseError struct {
	Offset  int
	Message string
}

func (e *ScriptParseError) Error() string {
	return fmt.Sprintf("-e expression #1, char %d: %s", e.Offset, e.Message)
}

// UndefinedLabel is returned when b/t/T references a label with no
// matching `:label` in the script.
type UndefinedLabel struct {
	Name string
}

func (e *UndefinedLabel) Error() string {
	return fmt.Sprintf("can't find label for jump to `%s'", e.Name)
}

// UnknownCommand is returned when the parser encounters a command byte
// it does not recognize.
type UnknownCommand struct {
	Command byte
	Offset  int
}

func (e *UnknownCommand) Error() string {
	return fmt.Sprintf("unknown command: `%c'", e.Command)
}

// RegexCompileError wraps a failure from the regex adapter, either during
// BRE->ERE translation or the underlying host engine's Compile.
type RegexCompileError struct {
	Source string
	Err    error
}

func (e *RegexCompileError) Error() string {
	return fmt.Sprintf("regex compile error for %q: %v", e.Source, e.Err)
}

func (e *RegexCompileError) Unwrap() error { return e.Err }

// InputOpenError reports a failure to open one of the run's input files.
type InputOpenError struct {
	Path string
	Err  error
}

func (e *InputOpenError) Error() string {
	return fmt.Sprintf("can't read %s: %v", e.Path, e.Err)
}

func (e *InputOpenError) Unwrap() error { return e.Err }

// InputReadError reports a failure while reading records from an already
// opened input file.
type InputReadError struct {
	Path string
	Err  error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("read error on %s: %v", e.Path, e.Err)
}

func (e *InputReadError) Unwrap() error { return e.Err }

// OutputWriteError reports a failure writing to the Sink or to a
// w/W/in-place collaborator file.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("write error: %v", e.Err)
	}
	return fmt.Sprintf("couldn't write %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }

// SandboxViolation is returned when a command forbidden in --sandbox mode
// (e, r, R, w, W, or in-place editing) is executed.
type SandboxViolation struct {
	Command byte
}

func (e *SandboxViolation) Error() string {
	return fmt.Sprintf("e/r/w commands disabled in sandbox mode: `%c'", e.Command)
}

// ShellExecError wraps a failure launching or reading from the child
// shell spawned by the `e` command or the `s///e` flag.
type ShellExecError struct {
	Cmd string
	Err error
}

func (e *ShellExecError) Error() string {
	return fmt.Sprintf("couldn't exec %q: %v", e.Cmd, e.Err)
}

func (e *ShellExecError) Unwrap() error { return e.Err }

// InPlaceError reports a failure during in-place rewrite (temp file
// creation, rename, or symlink resolution).
type InPlaceError struct {
	Path string
	Err  error
}

func (e *InPlaceError) Error() string {
	return fmt.Sprintf("couldn't edit %s in place: %v", e.Path, e.Err)
}

func (e *InPlaceError) Unwrap() error { return e.Err }

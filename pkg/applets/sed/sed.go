// Package sed implements the sed applet: a script-driven stream editor
// built from a Record Reader, a BRE/ERE Regex Adapter, a Script Parser,
// and an Execution Engine that drives the pattern/hold-space state
// machine described by the command language.
package sed

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/rcarmo/go-busybox/pkg/applets/sed/exec"
	"github.com/rcarmo/go-busybox/pkg/applets/sed/inplace"
	"github.com/rcarmo/go-busybox/pkg/applets/sed/parse"
	"github.com/rcarmo/go-busybox/pkg/applets/sed/reader"
	"github.com/rcarmo/go-busybox/pkg/applets/sed/sederr"
	"github.com/rcarmo/go-busybox/pkg/core"
	"github.com/rcarmo/go-busybox/pkg/core/fs"
	"github.com/rcarmo/go-busybox/pkg/sandbox"
	"golang.org/x/term"
)

// Run is the applet entry point registered in cmd/busybox and used
// directly by cmd/sed.
func Run(stdio *core.Stdio, args []string) int {
	opts, code := parseArgs(stdio, args)
	if code != core.ExitSuccess {
		return code
	}
	resolveWidth(stdio, opts)

	script, err := assembleScript(opts)
	if err != nil {
		return core.FileError(stdio, "sed", "script", err)
	}

	prog, err := parse.Parse(script, opts.dialect, opts.term)
	if err != nil {
		return reportError(stdio, opts, err)
	}
	if prog.SuppressDefault {
		opts.suppressDefault = true
	}

	if opts.inPlace {
		return runInPlace(stdio, opts, prog)
	}
	return runStream(stdio, opts, prog, opts.files)
}

// resolveWidth fills in opts.width when -l wasn't given: the `l`
// command wraps at the terminal width when stdout is a tty, falling
// back to the classic 70-column default otherwise.
func resolveWidth(stdio *core.Stdio, opts *options) {
	if opts.widthSet {
		return
	}
	opts.width = defaultWidth
	if f, ok := stdio.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			opts.width = cols
		}
	}
}

// assembleScript concatenates every -e expression and -f file's
// contents, in argument order, joined by the record terminator.
func assembleScript(opts *options) ([]byte, error) {
	var parts [][]byte
	for _, src := range opts.scripts {
		if !src.isFile {
			parts = append(parts, []byte(src.text))
			continue
		}
		data, err := fs.ReadFile(src.text)
		if err != nil {
			return nil, &sederr.InputOpenError{Path: src.text, Err: err}
		}
		parts = append(parts, []byte(strings.TrimSuffix(string(data), "\n")))
	}
	return joinTerm(parts, opts.term), nil
}

func joinTerm(parts [][]byte, term byte) []byte {
	var out []byte
	for i, p := range parts {
		if i > 0 {
			out = append(out, term)
		}
		out = append(out, p...)
	}
	return out
}

func runStream(stdio *core.Stdio, opts *options, prog *parse.Program, files []string) int {
	rd := reader.New(opts.term, files, opts.separate, stdio.In)
	defer rd.Close()

	var out io.Writer = stdio.Out
	var bw *bufio.Writer
	if !opts.unbuffered {
		bw = bufio.NewWriter(stdio.Out)
		out = bw
	}

	engine := exec.NewEngine(prog, rd, out, engineOptions(stdio, opts, rd))
	defer engine.Close()

	runErr := engine.Run()
	if bw != nil {
		bw.Flush()
	}
	if runErr != nil {
		return reportError(stdio, opts, runErr)
	}
	if code := engine.ExitCode(); code >= 0 {
		return code
	}
	return core.ExitSuccess
}

func runInPlace(stdio *core.Stdio, opts *options, prog *parse.Program) int {
	if len(opts.files) == 0 {
		return core.UsageError(stdio, "sed", "-i requires at least one file")
	}
	if opts.sandbox || sandbox.IsEnabled() {
		return reportError(stdio, opts, &sederr.SandboxViolation{Command: 'i'})
	}

	finalExit := core.ExitSuccess
	for _, path := range opts.files {
		rd := reader.New(opts.term, []string{path}, true, stdio.In)
		var engine *exec.Engine
		err := inplace.Rewrite(path, opts.backupSuffix, opts.followSymlinks, func(w *os.File) error {
			engine = exec.NewEngine(prog, rd, w, engineOptions(stdio, opts, rd))
			return engine.Run()
		})
		rd.Close()
		if engine != nil {
			engine.Close()
		}
		if err != nil {
			finalExit = reportError(stdio, opts, err)
			continue
		}
		if engine != nil {
			if code := engine.ExitCode(); code > 0 {
				finalExit = code
			}
		}
	}
	return finalExit
}

func engineOptions(stdio *core.Stdio, opts *options, rd *reader.Reader) exec.Options {
	eo := exec.Options{
		SuppressDefault: opts.suppressDefault,
		Separate:        opts.separate,
		Posix:           opts.posix,
		Sandbox:         opts.sandbox,
		Unbuffered:      opts.unbuffered,
		Term:            opts.term,
		Width:           opts.width,
		Debug:           opts.debug,
		Verbose:         opts.verbose,
		CurrentFile:     rd.CurrentFileName,
	}
	if opts.debug {
		eo.Trace = stdio.Errorf
	}
	return eo
}

func reportError(stdio *core.Stdio, opts *options, err error) int {
	if opts.verbose {
		stdio.Errorf("sed: %+v\n", err)
	} else {
		stdio.Errorf("sed: %v\n", err)
	}
	return core.ExitFailure
}

package exec

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/rcarmo/go-busybox/pkg/applets/sed/parse"
	"github.com/rcarmo/go-busybox/pkg/applets/sed/regexadapter"
	"github.com/rcarmo/go-busybox/pkg/applets/sed/sederr"
	"github.com/rcarmo/go-busybox/pkg/core/fs"
	"github.com/rcarmo/go-busybox/pkg/sandbox"
)

// sandboxed reports whether commands that touch the filesystem or spawn
// a shell should be refused: either sed's own --sandbox flag was given,
// or the embedding host has enabled the ambient sandbox (as
// pkg/applets/awk does for its own file/exec capabilities).
func (e *Engine) sandboxed() bool {
	return e.opts.Sandbox || sandbox.IsEnabled()
}

const (
	kNormal = iota
	kDelete
	kDeleteRestart
	kQuit
)

// outcome reports how a fired command wants the interpreter loop and
// the end-of-cycle housekeeping (print/drain) to proceed.
type outcome struct {
	kind      int
	quitPrint bool // for kQuit: whether to emit pattern space before stopping
	printedN  bool // set by n/N when they already performed their own print
	noDrain   bool // Q: stop without flushing the pending a/r append queue
}

// execAt executes the command at ip, which has already been determined
// to fire for the current record. It returns the next instruction
// pointer (branch target, BlockEnd+1, or ip+1) and an outcome describing
// any cycle-ending effect.
func (e *Engine) execAt(ip int) (int, outcome, error) {
	cmd := &e.prog.Commands[ip]
	switch cmd.Code {
	case '{', '}', ':':
		return ip + 1, outcome{}, nil

	case 'p':
		e.writeRecord(e.pattern)
		return ip + 1, outcome{}, nil

	case 'P':
		line := e.pattern
		if idx := bytes.IndexByte(line, e.opts.Term); idx >= 0 {
			line = line[:idx]
		}
		e.writeRecord(line)
		return ip + 1, outcome{}, nil

	case 'n':
		if !e.opts.SuppressDefault {
			e.writeRecord(e.pattern)
		}
		rec, ok, err := e.rd.NextRecord()
		if err != nil {
			return ip, outcome{}, err
		}
		if !ok {
			return ip, outcome{kind: kQuit, quitPrint: false, printedN: true}, nil
		}
		e.pattern = rec
		e.lineNum++
		return ip + 1, outcome{}, nil

	case 'N':
		rec, ok, err := e.rd.NextRecord()
		if err != nil {
			return ip, outcome{}, err
		}
		if !ok {
			if e.opts.Posix {
				return ip, outcome{kind: kQuit, quitPrint: false, printedN: true}, nil
			}
			return ip, outcome{kind: kQuit, quitPrint: true, printedN: false}, nil
		}
		e.pattern = append(e.pattern, e.opts.Term)
		e.pattern = append(e.pattern, rec...)
		e.lineNum++
		return ip + 1, outcome{}, nil

	case 'd':
		e.pattern = nil
		return ip, outcome{kind: kDelete}, nil

	case 'D':
		if idx := bytes.IndexByte(e.pattern, e.opts.Term); idx >= 0 {
			e.pattern = e.pattern[idx+1:]
			return 0, outcome{kind: kDeleteRestart}, nil
		}
		e.pattern = nil
		return ip, outcome{kind: kDelete}, nil

	case 'g':
		e.pattern = append([]byte(nil), e.hold...)
		return ip + 1, outcome{}, nil
	case 'G':
		e.pattern = append(e.pattern, e.opts.Term)
		e.pattern = append(e.pattern, e.hold...)
		return ip + 1, outcome{}, nil
	case 'h':
		e.hold = append([]byte(nil), e.pattern...)
		return ip + 1, outcome{}, nil
	case 'H':
		e.hold = append(e.hold, e.opts.Term)
		e.hold = append(e.hold, e.pattern...)
		return ip + 1, outcome{}, nil
	case 'x':
		e.pattern, e.hold = e.hold, e.pattern
		return ip + 1, outcome{}, nil

	case 's':
		if err := e.execSubstitute(cmd); err != nil {
			return ip, outcome{}, err
		}
		return ip + 1, outcome{}, nil

	case 'y':
		e.execTransliterate(cmd)
		return ip + 1, outcome{}, nil

	case 'a':
		e.appendQ = append(e.appendQ, []byte(cmd.Text))
		return ip + 1, outcome{}, nil

	case 'i':
		e.writeRaw([]byte(cmd.Text))
		e.writeRaw([]byte{e.opts.Term})
		return ip + 1, outcome{}, nil

	case 'c':
		active := true
		if cmd.Addr2 != nil {
			active = !e.ranges[ip].active // range just deactivated (or never activated) means this is the closing/last record
		}
		e.pattern = nil
		if active {
			e.writeRaw([]byte(cmd.Text))
			e.writeRaw([]byte{e.opts.Term})
		}
		return ip, outcome{kind: kDelete}, nil

	case 'r':
		if e.sandboxed() {
			return ip, outcome{}, &sederr.SandboxViolation{Command: 'r'}
		}
		data, err := fs.ReadFile(cmd.FileArg)
		if err == nil {
			e.appendQ = append(e.appendQ, data)
		}
		return ip + 1, outcome{}, nil

	case 'R':
		if e.sandboxed() {
			return ip, outcome{}, &sederr.SandboxViolation{Command: 'R'}
		}
		line, ok := e.readRLine(cmd.FileArg)
		if ok {
			e.appendQ = append(e.appendQ, line)
		}
		return ip + 1, outcome{}, nil

	case 'w':
		if e.sandboxed() {
			return ip, outcome{}, &sederr.SandboxViolation{Command: 'w'}
		}
		if err := e.writeToFile(cmd.FileArg, e.pattern); err != nil {
			return ip, outcome{}, err
		}
		return ip + 1, outcome{}, nil

	case 'W':
		if e.sandboxed() {
			return ip, outcome{}, &sederr.SandboxViolation{Command: 'W'}
		}
		line := e.pattern
		if idx := bytes.IndexByte(line, e.opts.Term); idx >= 0 {
			line = line[:idx]
		}
		if err := e.writeToFile(cmd.FileArg, line); err != nil {
			return ip, outcome{}, err
		}
		return ip + 1, outcome{}, nil

	case 'l':
		width := e.opts.Width
		if cmd.HasWidth {
			width = cmd.Width
		}
		e.writeRaw(renderL(e.pattern, width))
		e.writeRaw([]byte{e.opts.Term})
		return ip + 1, outcome{}, nil

	case '=':
		e.writeRaw([]byte(fmt.Sprintf("%d", e.lineNum)))
		e.writeRaw([]byte{e.opts.Term})
		return ip + 1, outcome{}, nil

	case 'F':
		name := "-"
		if e.opts.CurrentFile != nil {
			name = e.opts.CurrentFile()
		}
		e.writeRaw([]byte(name))
		e.writeRaw([]byte{e.opts.Term})
		return ip + 1, outcome{}, nil

	case 'q':
		if cmd.HasExitCode {
			e.exitCode = cmd.ExitCode
		}
		return ip, outcome{kind: kQuit, quitPrint: true}, nil

	case 'Q':
		if cmd.HasExitCode {
			e.exitCode = cmd.ExitCode
		}
		return ip, outcome{kind: kQuit, quitPrint: false, noDrain: true}, nil

	case 'b':
		if cmd.JumpTarget < 0 {
			return len(e.prog.Commands), outcome{}, nil
		}
		return cmd.JumpTarget, outcome{}, nil

	case 't':
		if e.subOK {
			e.subOK = false
			if cmd.JumpTarget < 0 {
				return len(e.prog.Commands), outcome{}, nil
			}
			return cmd.JumpTarget, outcome{}, nil
		}
		return ip + 1, outcome{}, nil

	case 'T':
		if !e.subOK {
			if cmd.JumpTarget < 0 {
				return len(e.prog.Commands), outcome{}, nil
			}
			return cmd.JumpTarget, outcome{}, nil
		}
		e.subOK = false
		return ip + 1, outcome{}, nil

	case 'e':
		if e.sandboxed() {
			return ip, outcome{}, &sederr.SandboxViolation{Command: 'e'}
		}
		cmdText := cmd.Text
		if cmdText == "" {
			cmdText = string(e.pattern)
		}
		out, err := runShell(cmdText)
		if err != nil {
			return ip, outcome{}, err
		}
		e.pattern = trimOneTrailing(out, e.opts.Term)
		return ip + 1, outcome{}, nil

	case 'z':
		e.pattern = nil
		return ip + 1, outcome{}, nil

	default:
		return ip, outcome{}, &sederr.UnknownCommand{Command: cmd.Code}
	}
}

func trimOneTrailing(data []byte, term byte) []byte {
	if len(data) > 0 && data[len(data)-1] == term {
		return data[:len(data)-1]
	}
	return data
}

func (e *Engine) writeRecord(p []byte) {
	e.writeRaw(p)
	e.writeRaw([]byte{e.opts.Term})
}

func (e *Engine) writeRaw(p []byte) {
	e.out.Write(p)
}

func (e *Engine) readRLine(path string) ([]byte, bool) {
	br, ok := e.rCursors[path]
	if !ok {
		f, err := fs.Open(path)
		if err != nil {
			e.rCursors[path] = nil
			return nil, false
		}
		br = bufio.NewReader(f)
		e.rCursors[path] = br
		e.rClosers[path] = f
	}
	if br == nil {
		return nil, false
	}
	line, err := br.ReadBytes(e.opts.Term)
	if len(line) == 0 && err != nil {
		return nil, false
	}
	if err == nil {
		line = line[:len(line)-1]
	}
	return line, true
}

func (e *Engine) writeToFile(path string, data []byte) error {
	f, ok := e.wFiles[path]
	if !ok {
		var err error
		f, err = fs.Create(path)
		if err != nil {
			return &sederr.OutputWriteError{Path: path, Err: err}
		}
		e.wFiles[path] = f
	}
	if _, err := f.Write(data); err != nil {
		return &sederr.OutputWriteError{Path: path, Err: err}
	}
	if _, err := f.Write([]byte{e.opts.Term}); err != nil {
		return &sederr.OutputWriteError{Path: path, Err: err}
	}
	return nil
}

func (e *Engine) execSubstitute(cmd *parse.Command) error {
	re, err := e.resolveRegex(cmd.SubFind, cmd.SubFindEmpty, cmd.SubDialect, cmd.SubCaseInsens, cmd.SubMultiline)
	if err != nil {
		return err
	}
	out, count := regexadapter.Substitute(re, e.pattern, []byte(cmd.SubReplacement), cmd.SubGlobal, cmd.SubNth)
	if count == 0 {
		return nil
	}
	e.pattern = out
	e.subOK = true

	if cmd.SubExec {
		if e.sandboxed() {
			return &sederr.SandboxViolation{Command: 's'}
		}
		shellOut, err := runShell(string(e.pattern))
		if err != nil {
			return err
		}
		e.pattern = trimOneTrailing(shellOut, e.opts.Term)
	}
	if cmd.SubPrint {
		e.writeRecord(e.pattern)
	}
	if cmd.SubWriteFile != "" {
		if e.sandboxed() {
			return &sederr.SandboxViolation{Command: 'w'}
		}
		if err := e.writeToFile(cmd.SubWriteFile, e.pattern); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) execTransliterate(cmd *parse.Command) {
	table := [256]byte{}
	for i := 0; i < 256; i++ {
		table[i] = byte(i)
	}
	for i, from := range cmd.YFrom {
		table[from] = cmd.YTo[i]
	}
	for i, b := range e.pattern {
		e.pattern[i] = table[b]
	}
}

// Package exec drives the pattern-space/hold-space state machine:
// it walks the parsed Program once per record, evaluating addresses,
// dispatching commands, and managing the hold space, append queue, and
// branch state.
package exec

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/rcarmo/go-busybox/pkg/applets/sed/parse"
	"github.com/rcarmo/go-busybox/pkg/applets/sed/reader"
	"github.com/rcarmo/go-busybox/pkg/applets/sed/regexadapter"
	"github.com/rcarmo/go-busybox/pkg/applets/sed/sederr"
)

// Options carries the run-wide switches that affect the execution
// engine's behavior, apart from what belongs to the reader or the
// in-place rewrite path.
type Options struct {
	SuppressDefault bool // -n
	Separate        bool // -s
	Posix           bool // --posix
	Sandbox         bool // --sandbox
	Unbuffered      bool // -u
	Term            byte
	Width           int // -l N, default wrap width for `l`
	Debug           bool
	Verbose         bool
	CurrentFile     func() string // reports the active input file name, for F

	// Trace, set when --debug is requested, receives one line per fired
	// command plus one per cycle boundary. sed.go wires this straight to
	// Stdio.Errorf.
	Trace func(format string, args ...any)
}

// Engine executes a Program against a stream of records pulled from a
// Reader, writing output to Out.
type Engine struct {
	prog *parse.Program
	rd   *reader.Reader
	out  io.Writer
	opts Options

	pattern []byte
	hold    []byte
	appendQ [][]byte
	subOK   bool
	lineNum int

	lastSet     bool
	lastSource  string
	lastDialect regexadapter.Dialect
	lastCI      bool
	lastML      bool

	ranges []rangeState

	rCursors map[string]*bufio.Reader
	rClosers map[string]io.Closer
	wFiles   map[string]*os.File

	quit      bool
	exitCode  int
	skipDrain bool
}

type rangeState struct {
	active         bool
	activationLine int
	targetLine     int
	haveTarget     bool
}

// NewEngine builds an Engine ready to run prog against rd, writing to out.
func NewEngine(prog *parse.Program, rd *reader.Reader, out io.Writer, opts Options) *Engine {
	e := &Engine{
		prog:     prog,
		rd:       rd,
		out:      out,
		opts:     opts,
		ranges:   make([]rangeState, len(prog.Commands)),
		rCursors: map[string]*bufio.Reader{},
		rClosers: map[string]io.Closer{},
		wFiles:   map[string]*os.File{},
		exitCode: -1,
	}
	for i, c := range prog.Commands {
		if c.Addr1 != nil && c.Addr2 != nil && c.Addr1.Kind == parse.AddrLine && c.Addr1.Line == 0 {
			e.ranges[i].active = true
		}
	}
	return e
}

// ExitCode reports the exit code requested by q/Q, or -1 if the run
// ended normally.
func (e *Engine) ExitCode() int { return e.exitCode }

// LineNumber returns the 1-based count of records consumed so far.
func (e *Engine) LineNumber() int { return e.lineNum }

// Close releases any open w/W and R file handles.
func (e *Engine) Close() {
	for _, f := range e.wFiles {
		f.Close()
	}
	for _, c := range e.rClosers {
		c.Close()
	}
}

// resolveRegex compiles source (unless empty, in which case it reuses
// the last-used regex, GNU sed's "//" reuse convention), and records it
// as the new last-used regex on success.
func (e *Engine) resolveRegex(source string, empty bool, dialect regexadapter.Dialect, ci, ml bool) (*regexp.Regexp, error) {
	if empty {
		if !e.lastSet {
			return nil, &sederr.RegexCompileError{Source: "", Err: fmt.Errorf("no previous regular expression")}
		}
		source, dialect, ci, ml = e.lastSource, e.lastDialect, e.lastCI, e.lastML
	}
	re, err := regexadapter.Compile(source, dialect, regexadapter.Flags{CaseInsensitive: ci, Multiline: ml})
	if err != nil {
		return nil, err
	}
	e.lastSet = true
	e.lastSource, e.lastDialect, e.lastCI, e.lastML = source, dialect, ci, ml
	return re, nil
}

// addressMatches evaluates a single address term (not a range) against
// the current record.
func (e *Engine) addressMatches(a *parse.Address) (bool, error) {
	switch a.Kind {
	case parse.AddrLine:
		return e.lineNum == a.Line, nil
	case parse.AddrLast:
		more, err := e.rd.HasMore()
		if err != nil {
			return false, err
		}
		return !more, nil
	case parse.AddrRegex:
		re, err := e.resolveRegex(a.RegexSource, a.RegexEmpty, a.Dialect, a.CaseInsensitive, a.Multiline)
		if err != nil {
			return false, err
		}
		return re.Match(e.pattern), nil
	case parse.AddrStep:
		if a.Step <= 0 {
			return e.lineNum == a.Line, nil
		}
		return e.lineNum >= a.Line && (e.lineNum-a.Line)%a.Step == 0, nil
	default:
		return false, nil
	}
}

// computeRelativeTarget resolves a +N/~M address2 to an absolute line
// number relative to the line that activated the range, not whatever
// record first happens to evaluate address2 (activation and the first
// addr2 test are never the same record).
func computeRelativeTarget(a *parse.Address, activationLine int) int {
	switch a.Kind {
	case parse.AddrRelPlus:
		return activationLine + a.Line
	case parse.AddrRelTilde:
		m := a.Line
		if m <= 0 {
			return activationLine
		}
		rem := activationLine % m
		if rem == 0 {
			return activationLine + m
		}
		return activationLine + (m - rem)
	default:
		return 0
	}
}

// addr2Matches evaluates an address2 term used in a two-address range,
// including the relative +N/~M forms which compare against a
// precomputed absolute target line.
func (e *Engine) addr2Matches(a *parse.Address, st *rangeState) (bool, error) {
	switch a.Kind {
	case parse.AddrRelPlus, parse.AddrRelTilde:
		if !st.haveTarget {
			st.targetLine = computeRelativeTarget(a, st.activationLine)
			st.haveTarget = true
		}
		return e.lineNum >= st.targetLine, nil
	case parse.AddrLine:
		return e.lineNum >= a.Line, nil
	default:
		return e.addressMatches(a)
	}
}

// commandFires evaluates a command's address/range/negation for the
// current record, driving the per-command range state machine.
func (e *Engine) commandFires(idx int) (bool, error) {
	cmd := &e.prog.Commands[idx]
	var fires bool
	switch {
	case cmd.Addr1 == nil:
		fires = true
	case cmd.Addr2 == nil:
		m, err := e.addressMatches(cmd.Addr1)
		if err != nil {
			return false, err
		}
		fires = m
	default:
		st := &e.ranges[idx]
		if !st.active {
			m, err := e.addressMatches(cmd.Addr1)
			if err != nil {
				return false, err
			}
			if m {
				st.active = true
				st.activationLine = e.lineNum
				st.haveTarget = false
				fires = true
				// A numeric addr2 that is already <= the activating
				// line (2,2 ; 4,2) closes the range on this same
				// record instead of leaking into the next one: addr2
				// is otherwise never tested against the activation
				// record at all.
				if cmd.Addr2.Kind == parse.AddrLine && cmd.Addr2.Line <= e.lineNum {
					st.active = false
				}
			}
		} else {
			fires = true
			end, err := e.addr2Matches(cmd.Addr2, st)
			if err != nil {
				return false, err
			}
			if end {
				st.active = false
			}
		}
	}
	if cmd.Negate {
		fires = !fires
	}
	return fires, nil
}

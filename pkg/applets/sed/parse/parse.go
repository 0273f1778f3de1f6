package parse

import (
	"fmt"
	"strconv"

	"github.com/rcarmo/go-busybox/pkg/applets/sed/regexadapter"
	"github.com/rcarmo/go-busybox/pkg/applets/sed/sederr"
)

type parser struct {
	src     []byte
	pos     int
	term    byte
	dialect regexadapter.Dialect

	labels      map[string]int
	pendingJump []pendingJump
	blockStack  []int

	prog Program
}

type pendingJump struct {
	cmdIndex int
	label    string
}

// Parse tokenizes script into a Program. dialect selects the default
// regex dialect (Basic unless -E/-r was given); term is the configured
// record terminator, needed to recognize the
// backslash-immediately-before-terminator continuation rule.
func Parse(script []byte, dialect regexadapter.Dialect, term byte) (*Program, error) {
	p := &parser{src: script, term: term, dialect: dialect, labels: map[string]int{}}

	if len(script) >= 2 && script[0] == '#' && script[1] == 'n' &&
		(len(script) == 2 || script[2] == term) {
		p.prog.SuppressDefault = true
		p.pos = 2
	}

	for {
		p.skipSeparators()
		if p.eof() {
			break
		}
		if err := p.parseStatement(); err != nil {
			return nil, err
		}
	}

	if len(p.blockStack) != 0 {
		return nil, p.errorf(len(p.src), "unmatched `{'")
	}
	for _, pj := range p.pendingJump {
		idx, ok := p.labels[pj.label]
		if !ok {
			return nil, &sederr.UndefinedLabel{Name: pj.label}
		}
		p.prog.Commands[pj.cmdIndex].JumpTarget = idx
	}
	return &p.prog, nil
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) peekAt(off int) byte {
	if p.pos+off >= len(p.src) {
		return 0
	}
	return p.src[p.pos+off]
}

func (p *parser) errorf(offset int, format string, args ...any) error {
	return &sederr.ScriptParseError{Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// skipSeparators skips whitespace, terminators, and semicolons between
// statements.
func (p *parser) skipSeparators() {
	for !p.eof() {
		c := p.src[p.pos]
		if c == ' ' || c == '\t' || c == p.term || c == ';' || c == '\r' {
			p.pos++
			continue
		}
		break
	}
}

func (p *parser) skipBlank() {
	for !p.eof() && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (p *parser) readDigits() int {
	start := p.pos
	for !p.eof() && isDigit(p.src[p.pos]) {
		p.pos++
	}
	n, _ := strconv.Atoi(string(p.src[start:p.pos]))
	return n
}

// parseStatement parses one address-qualified command, including block
// open/close and comments.
func (p *parser) parseStatement() error {
	p.skipBlank()
	if p.peek() == '#' {
		p.readLine()
		return nil
	}
	if p.peek() == '}' {
		p.pos++
		if len(p.blockStack) == 0 {
			return p.errorf(p.pos, "unexpected `}'")
		}
		open := p.blockStack[len(p.blockStack)-1]
		p.blockStack = p.blockStack[:len(p.blockStack)-1]
		closeIdx := len(p.prog.Commands)
		p.prog.Commands = append(p.prog.Commands, Command{Code: '}', BlockEnd: open})
		p.prog.Commands[open].BlockEnd = closeIdx
		return nil
	}

	addr1, addr2, negate, err := p.parseAddresses()
	if err != nil {
		return err
	}
	p.skipBlank()
	if p.eof() {
		return p.errorf(p.pos, "missing command")
	}
	code := p.src[p.pos]
	p.pos++

	cmd := Command{Addr1: addr1, Addr2: addr2, Negate: negate, Code: code, JumpTarget: -1, ExitCode: -1}

	switch code {
	case '{':
		p.blockStack = append(p.blockStack, len(p.prog.Commands))
		p.prog.Commands = append(p.prog.Commands, cmd)
		return nil
	case ':':
		name := p.readLabelName()
		if name == "" {
			return p.errorf(p.pos, "\":\" lacks a label")
		}
		if _, dup := p.labels[name]; dup {
			return p.errorf(p.pos, "duplicate label `%s'", name)
		}
		cmd.Label = name
		p.labels[name] = len(p.prog.Commands)
		p.prog.Commands = append(p.prog.Commands, cmd)
		return nil
	case 'b', 't', 'T':
		name := p.readLabelName()
		cmd.Label = name
		idx := len(p.prog.Commands)
		p.prog.Commands = append(p.prog.Commands, cmd)
		if name != "" {
			p.pendingJump = append(p.pendingJump, pendingJump{cmdIndex: idx, label: name})
		}
		p.consumeStatementEnd()
		return nil
	case 'a', 'i', 'c':
		text, err := p.readTextArgument()
		if err != nil {
			return err
		}
		cmd.Text = text
		p.prog.Commands = append(p.prog.Commands, cmd)
		return nil
	case 'r', 'R', 'w', 'W':
		text, err := p.readFileArgument()
		if err != nil {
			return err
		}
		cmd.FileArg = text
		p.prog.Commands = append(p.prog.Commands, cmd)
		return nil
	case 'e':
		text, err := p.readTextArgument()
		if err != nil {
			return err
		}
		cmd.Text = text
		p.prog.Commands = append(p.prog.Commands, cmd)
		return nil
	case 's':
		if err := p.parseSubstitute(&cmd); err != nil {
			return err
		}
		p.prog.Commands = append(p.prog.Commands, cmd)
		p.consumeStatementEnd()
		return nil
	case 'y':
		if err := p.parseTransliterate(&cmd); err != nil {
			return err
		}
		p.prog.Commands = append(p.prog.Commands, cmd)
		p.consumeStatementEnd()
		return nil
	case 'l':
		p.skipBlank()
		if isDigit(p.peek()) {
			cmd.Width = p.readDigits()
			cmd.HasWidth = true
		}
		p.prog.Commands = append(p.prog.Commands, cmd)
		p.consumeStatementEnd()
		return nil
	case 'q', 'Q':
		p.skipBlank()
		if isDigit(p.peek()) {
			cmd.ExitCode = p.readDigits()
			cmd.HasExitCode = true
		}
		p.prog.Commands = append(p.prog.Commands, cmd)
		p.consumeStatementEnd()
		return nil
	case 'p', 'P', 'd', 'D', 'g', 'G', 'h', 'H', 'x', 'n', 'N', '=', 'F', 'z':
		p.prog.Commands = append(p.prog.Commands, cmd)
		p.consumeStatementEnd()
		return nil
	default:
		return p.errorf(p.pos-1, "unknown command: `%c'", code)
	}
}

func (p *parser) consumeStatementEnd() {
	p.skipBlank()
	if p.peek() == ';' {
		p.pos++
	}
}

// readLine consumes bytes up to (and including) the next unescaped
// terminator, without interpreting escapes -- used for full-line
// comments.
func (p *parser) readLine() {
	for !p.eof() && p.src[p.pos] != p.term {
		p.pos++
	}
	if !p.eof() {
		p.pos++
	}
}

func (p *parser) readLabelName() string {
	p.skipBlank()
	start := p.pos
	for !p.eof() {
		c := p.src[p.pos]
		if c == ' ' || c == '\t' || c == ';' || c == p.term || c == '}' {
			break
		}
		p.pos++
	}
	return string(p.src[start:p.pos])
}

// readTextArgument reads the remainder of the logical line for a, i, c,
// e: an optional classic "\" + terminator introducer, then leading
// blanks are skipped, then bytes are copied until an unescaped
// terminator. "\" + terminator embeds a literal terminator and continues
// onto the next physical line; any other "\" + X collapses to a literal
// X (GNU-style de-escaping of appended text).
func (p *parser) readTextArgument() (string, error) {
	if p.peek() == '\\' && p.peekAt(1) == p.term {
		p.pos += 2
	}
	p.skipBlank()
	var out []byte
	for !p.eof() {
		c := p.src[p.pos]
		if c == '\\' && p.pos+1 < len(p.src) {
			next := p.src[p.pos+1]
			out = append(out, next)
			p.pos += 2
			continue
		}
		if c == p.term {
			p.pos++
			break
		}
		out = append(out, c)
		p.pos++
	}
	return string(out), nil
}

// readFileArgument reads the remainder of the logical line for r, R, w,
// W, and the s///w flag's target: leading blanks are skipped, then bytes
// are copied verbatim up to an unescaped terminator. Unlike
// readTextArgument, backslashes are not de-escaped here -- a file name
// is a path, not text, so "\" + X stays "\" + X. Only "\" immediately
// before the terminator keeps its classic meaning of embedding a literal
// terminator and continuing the name onto the next physical line.
func (p *parser) readFileArgument() (string, error) {
	p.skipBlank()
	var out []byte
	for !p.eof() {
		c := p.src[p.pos]
		if c == '\\' && p.pos+1 < len(p.src) && p.src[p.pos+1] == p.term {
			out = append(out, p.term)
			p.pos += 2
			continue
		}
		if c == p.term {
			p.pos++
			break
		}
		out = append(out, c)
		p.pos++
	}
	return string(out), nil
}

// readDelimited reads bytes up to an unescaped delim byte, per the s///
// and y/// tokenization rules: "\" + delim yields a literal delim, "\" +
// terminator embeds a literal terminator (allowing multi-line regex or
// replacement text), and any other "\" + X passes through unchanged so
// the regex/replacement engines can interpret it later.
func (p *parser) readDelimited(delim byte) (string, error) {
	start := p.pos
	var out []byte
	for {
		if p.eof() {
			return "", p.errorf(start, "unterminated expression")
		}
		c := p.src[p.pos]
		if c == '\\' && p.pos+1 < len(p.src) {
			next := p.src[p.pos+1]
			if next == delim {
				out = append(out, delim)
				p.pos += 2
				continue
			}
			if next == p.term {
				out = append(out, p.term)
				p.pos += 2
				continue
			}
			out = append(out, c, next)
			p.pos += 2
			continue
		}
		if c == delim {
			p.pos++
			return string(out), nil
		}
		if c == p.term {
			return "", p.errorf(start, "unterminated expression")
		}
		out = append(out, c)
		p.pos++
	}
}

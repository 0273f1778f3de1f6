package parse

// parseSubstitute parses the operands of an `s` command: s<d>find<d>repl<d>flags.
func (p *parser) parseSubstitute(cmd *Command) error {
	start := p.pos
	if p.eof() {
		return p.errorf(start, "unterminated `s' command")
	}
	delim := p.src[p.pos]
	if delim == '\\' || delim == p.term {
		return p.errorf(start, "invalid `s' delimiter")
	}
	p.pos++

	find, err := p.readDelimited(delim)
	if err != nil {
		return err
	}
	repl, err := p.readDelimited(delim)
	if err != nil {
		return err
	}

	cmd.SubFind = find
	cmd.SubFindEmpty = find == ""
	cmd.SubReplacement = repl
	cmd.SubDialect = p.dialect

	for {
		c := p.peek()
		switch {
		case c == 'g':
			cmd.SubGlobal = true
			p.pos++
		case c == 'p':
			cmd.SubPrint = true
			p.pos++
		case c == 'i' || c == 'I':
			cmd.SubCaseInsens = true
			p.pos++
		case c == 'm' || c == 'M':
			cmd.SubMultiline = true
			p.pos++
		case c == 'e':
			cmd.SubExec = true
			p.pos++
		case isDigit(c):
			cmd.SubNth = p.readDigits()
		case c == 'w':
			p.pos++
			file, err := p.readFileArgument()
			if err != nil {
				return err
			}
			cmd.SubWriteFile = file
			return nil
		default:
			return nil
		}
	}
}

// parseTransliterate parses the operands of a `y` command:
// y<d>from<d>to<d>, unescaping delimiter/terminator/standard escapes and
// requiring equal byte lengths.
func (p *parser) parseTransliterate(cmd *Command) error {
	start := p.pos
	if p.eof() {
		return p.errorf(start, "unterminated `y' command")
	}
	delim := p.src[p.pos]
	if delim == '\\' || delim == p.term {
		return p.errorf(start, "invalid `y' delimiter")
	}
	p.pos++

	fromRaw, err := p.readDelimited(delim)
	if err != nil {
		return err
	}
	toRaw, err := p.readDelimited(delim)
	if err != nil {
		return err
	}
	from := unescapeSet([]byte(fromRaw), delim)
	to := unescapeSet([]byte(toRaw), delim)
	if len(from) != len(to) {
		return p.errorf(start, "strings for `y' command are different lengths")
	}
	cmd.YFrom, cmd.YTo = from, to
	return nil
}

// unescapeSet resolves \n \t \r \\ and \<delim> escapes left intact by
// readDelimited (which only unescapes the delimiter and terminator
// bytes), for use by the y command's single-byte translation tables.
func unescapeSet(raw []byte, delim byte) []byte {
	out := make([]byte, 0, len(raw))
	i := 0
	for i < len(raw) {
		if raw[i] == '\\' && i+1 < len(raw) {
			switch raw[i+1] {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			case '\\':
				out = append(out, '\\')
			case delim:
				out = append(out, delim)
			default:
				out = append(out, raw[i+1])
			}
			i += 2
			continue
		}
		out = append(out, raw[i])
		i++
	}
	return out
}

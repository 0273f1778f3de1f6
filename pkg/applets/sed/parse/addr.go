package parse

// parseAddresses parses the optional address list (0, 1, or 2 addresses
// separated by a comma) and any trailing "!" negation markers.
func (p *parser) parseAddresses() (addr1, addr2 *Address, negate bool, err error) {
	addr1, err = p.parseOneAddress(false)
	if err != nil {
		return nil, nil, false, err
	}
	if addr1 != nil {
		p.skipBlank()
		if p.peek() == ',' {
			p.pos++
			p.skipBlank()
			addr2, err = p.parseOneAddress(true)
			if err != nil {
				return nil, nil, false, err
			}
			if addr2 == nil {
				return nil, nil, false, p.errorf(p.pos, "expected address after `,'")
			}
		}
	}
	p.skipBlank()
	for p.peek() == '!' {
		negate = !negate
		p.pos++
		p.skipBlank()
	}
	return addr1, addr2, negate, nil
}

// parseOneAddress parses a single address term. It returns (nil, nil)
// when no address is present at the current position.
func (p *parser) parseOneAddress(isAddr2 bool) (*Address, error) {
	p.skipBlank()
	c := p.peek()
	switch {
	case c == '$':
		p.pos++
		return &Address{Kind: AddrLast}, nil
	case c == '/' || c == '\\':
		return p.parseRegexAddress()
	case isAddr2 && c == '+':
		p.pos++
		n := p.readDigits()
		return &Address{Kind: AddrRelPlus, Line: n}, nil
	case isAddr2 && c == '~':
		p.pos++
		n := p.readDigits()
		return &Address{Kind: AddrRelTilde, Line: n}, nil
	case isDigit(c):
		n := p.readDigits()
		if !isAddr2 && p.peek() == '~' {
			p.pos++
			step := p.readDigits()
			return &Address{Kind: AddrStep, Line: n, Step: step}, nil
		}
		return &Address{Kind: AddrLine, Line: n}, nil
	default:
		return nil, nil
	}
}

// parseRegexAddress parses /re/ or \cREc address forms, plus trailing
// I/M modifiers.
func (p *parser) parseRegexAddress() (*Address, error) {
	start := p.pos
	var delim byte
	if p.peek() == '/' {
		delim = '/'
		p.pos++
	} else {
		p.pos++ // consume '\\'
		if p.eof() {
			return nil, p.errorf(start, "unterminated address regex")
		}
		delim = p.src[p.pos]
		p.pos++
	}
	text, err := p.readDelimited(delim)
	if err != nil {
		return nil, err
	}
	addr := &Address{Kind: AddrRegex, RegexSource: text, RegexEmpty: text == "", Dialect: p.dialect}
	for {
		switch p.peek() {
		case 'I':
			addr.CaseInsensitive = true
			p.pos++
		case 'M':
			addr.Multiline = true
			p.pos++
		default:
			return addr, nil
		}
	}
}

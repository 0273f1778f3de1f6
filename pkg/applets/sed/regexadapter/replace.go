package regexadapter

import "regexp"

type caseMode int

const (
	caseNone caseMode = iota
	caseLower
	caseUpper
)

// expandReplacement renders one match's replacement text, applying
// back-references (\1-\9, &), the literal escapes (\&, \\), and the
// case-folding escapes \l \u \L \U \E. An unterminated \L/\U runs to the
// end of the replacement, per spec.
func expandReplacement(groups [][]byte, replacement []byte) []byte {
	out := make([]byte, 0, len(replacement)+8)
	mode := caseNone
	var oneShot byte

	emit := func(b byte) {
		switch {
		case oneShot == 'l':
			b = lowerByte(b)
			oneShot = 0
		case oneShot == 'u':
			b = upperByte(b)
			oneShot = 0
		case mode == caseLower:
			b = lowerByte(b)
		case mode == caseUpper:
			b = upperByte(b)
		}
		out = append(out, b)
	}
	emitBytes := func(bs []byte) {
		for _, b := range bs {
			emit(b)
		}
	}

	i, n := 0, len(replacement)
	for i < n {
		c := replacement[i]
		if c == '\\' && i+1 < n {
			esc := replacement[i+1]
			switch {
			case esc >= '0' && esc <= '9':
				idx := int(esc - '0')
				if idx < len(groups) {
					emitBytes(groups[idx])
				}
			case esc == '&':
				emit('&')
			case esc == '\\':
				emit('\\')
			case esc == 'l':
				oneShot = 'l'
			case esc == 'u':
				oneShot = 'u'
			case esc == 'L':
				mode, oneShot = caseLower, 0
			case esc == 'U':
				mode, oneShot = caseUpper, 0
			case esc == 'E':
				mode, oneShot = caseNone, 0
			case esc == 'n':
				emit('\n')
			case esc == 't':
				emit('\t')
			case esc == 'r':
				emit('\r')
			default:
				emit(esc)
			}
			i += 2
			continue
		}
		if c == '&' {
			emitBytes(groups[0])
			i++
			continue
		}
		emit(c)
		i++
	}
	return out
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func extractGroups(input []byte, loc []int) [][]byte {
	groups := make([][]byte, len(loc)/2)
	for i := range groups {
		s, e := loc[2*i], loc[2*i+1]
		if s < 0 || e < 0 {
			groups[i] = nil
			continue
		}
		groups[i] = input[s:e]
	}
	return groups
}

// Substitute applies re against input, replacing matches per nth/global:
// with neither set, only the first match is replaced; with nth set,
// replacement starts at the nth match; combined with global, the nth
// match and every one after it are replaced. count reports how many
// replacements were actually performed.
func Substitute(re *regexp.Regexp, input []byte, replacement []byte, global bool, nth int) (output []byte, count int) {
	if nth <= 0 {
		nth = 1
	}
	var out []byte
	last := 0
	seen := 0

	for last <= len(input) {
		loc := re.FindSubmatchIndex(input[last:])
		if loc == nil {
			break
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += last
			}
		}
		start, end := loc[0], loc[1]
		seen++

		if seen < nth {
			out = append(out, input[last:end]...)
			last = end
			if start == end {
				if last < len(input) {
					out = append(out, input[last])
					last++
				} else {
					break
				}
			}
			continue
		}

		out = append(out, input[last:start]...)
		groups := extractGroups(input, loc)
		out = append(out, expandReplacement(groups, replacement)...)
		count++
		last = end
		if start == end {
			if last < len(input) {
				out = append(out, input[last])
				last++
			} else {
				break
			}
		}
		if !global {
			break
		}
	}
	out = append(out, input[last:]...)
	return out, count
}

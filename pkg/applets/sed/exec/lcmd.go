package exec

import "fmt"

// renderL builds the "unambiguous" rendering the `l` command emits:
// non-printable bytes as \xHH or the standard single-letter escapes,
// wrapped at width columns with a trailing backslash, closed with a
// final "$". Width 0 disables wrapping.
func renderL(data []byte, width int) []byte {
	var esc []byte
	for _, b := range data {
		switch b {
		case '\\':
			esc = append(esc, '\\', '\\')
		case '\a':
			esc = append(esc, '\\', 'a')
		case '\b':
			esc = append(esc, '\\', 'b')
		case '\t':
			esc = append(esc, '\\', 't')
		case '\n':
			esc = append(esc, '\\', 'n')
		case '\v':
			esc = append(esc, '\\', 'v')
		case '\f':
			esc = append(esc, '\\', 'f')
		case '\r':
			esc = append(esc, '\\', 'r')
		default:
			if b < 0x20 || b >= 0x7f {
				esc = append(esc, []byte(fmt.Sprintf("\\x%02X", b))...)
			} else {
				esc = append(esc, b)
			}
		}
	}

	if width <= 1 {
		return append(esc, '$')
	}

	chunk := width - 1
	var out []byte
	for len(esc) > chunk {
		out = append(out, esc[:chunk]...)
		out = append(out, '\\', '\n')
		esc = esc[chunk:]
	}
	out = append(out, esc...)
	out = append(out, '$')
	return out
}

// Package regexadapter compiles sed's two regex dialects (BRE-like and
// ERE-like) into Go's regexp engine and applies substitute-style
// replacements, including the back-reference and case-folding escapes
// sed scripts rely on.
//
// Go's regexp package (RE2) is the only regex engine anywhere in this
// module's dependency tree (pkg/applets/grep and pkg/applets/awk both
// fall back to it); no third-party regex library is introduced here, see
// DESIGN.md for the reasoning.
package regexadapter

import (
	"regexp"
	"sync"

	"github.com/rcarmo/go-busybox/pkg/applets/sed/sederr"
)

// Dialect selects which metacharacter convention a pattern source uses.
type Dialect int

const (
	// Basic is the BRE-like dialect: ( ) { } | ? + are literal unless
	// backslash-escaped.
	Basic Dialect = iota
	// Extended is the ERE-like dialect: those characters are
	// metacharacters unless escaped.
	Extended
)

// Flags holds the per-compilation regex flags sed supports.
type Flags struct {
	CaseInsensitive bool
	Multiline       bool
}

// metaChars is the set of characters whose meta/literal convention
// differs between BRE and ERE.
const metaChars = "(){}|?+"

// TranslateBRE rewrites a BRE-style pattern into ERE-style syntax by
// swapping the escaped/unescaped status of each byte in metaChars,
// leaving bracket expressions ([...]) untouched and handling escaped
// backslashes so a literal "\\" is never mistaken for an escape
// introducer.
func TranslateBRE(pattern string) string {
	out := make([]byte, 0, len(pattern)+8)
	n := len(pattern)
	i := 0
	for i < n {
		c := pattern[i]
		if c == '[' {
			end := scanBracket(pattern, i)
			out = append(out, pattern[i:end]...)
			i = end
			continue
		}
		if c == '\\' && i+1 < n {
			next := pattern[i+1]
			if next == '\\' {
				out = append(out, '\\', '\\')
				i += 2
				continue
			}
			if indexByte(metaChars, next) {
				// Escaped metachar in BRE means "this is a metachar":
				// unescape it so the ERE engine treats it as one too.
				out = append(out, next)
				i += 2
				continue
			}
			out = append(out, c, next)
			i += 2
			continue
		}
		if indexByte(metaChars, c) {
			// Bare metachar-set byte in BRE is literal: escape it so
			// the ERE engine treats it as literal too.
			out = append(out, '\\', c)
			i++
			continue
		}
		out = append(out, c)
		i++
	}
	return string(out)
}

// scanBracket returns the index just past a bracket expression starting
// at start (pattern[start] == '['), honoring the POSIX rule that a
// leading '^' and/or an immediately following ']' are literal members
// of the class rather than terminators.
func scanBracket(pattern string, start int) int {
	i := start + 1
	n := len(pattern)
	if i < n && pattern[i] == '^' {
		i++
	}
	if i < n && pattern[i] == ']' {
		i++
	}
	for i < n {
		if pattern[i] == ']' {
			return i + 1
		}
		if pattern[i] == '[' && i+1 < n && (pattern[i+1] == ':' || pattern[i+1] == '.' || pattern[i+1] == '=') {
			// [:class:], [.collating.], [=equiv=]
			closer := string(pattern[i+1]) + "]"
			if j := indexString(pattern[i+2:], closer); j >= 0 {
				i = i + 2 + j + len(closer)
				continue
			}
		}
		i++
	}
	return i
}

func indexByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}

func indexString(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

type cacheKey struct {
	source  string
	dialect Dialect
	flags   Flags
}

var (
	cacheMu sync.RWMutex
	cache   = map[cacheKey]*regexp.Regexp{}
)

// Compile turns a regex source plus dialect/flags into a compiled
// matcher, translating BRE to ERE first when needed and applying
// case-insensitive/multiline flags as Go regexp inline group flags.
// Results are cached so repeated addresses/substitutions in a script (or
// across concurrent runs sharing the cache) compile the underlying
// pattern once.
func Compile(source string, dialect Dialect, flags Flags) (*regexp.Regexp, error) {
	key := cacheKey{source: source, dialect: dialect, flags: flags}
	cacheMu.RLock()
	if re, ok := cache[key]; ok {
		cacheMu.RUnlock()
		return re, nil
	}
	cacheMu.RUnlock()

	pattern := source
	if dialect == Basic {
		pattern = TranslateBRE(pattern)
	}
	var prefix string
	if flags.CaseInsensitive {
		prefix += "i"
	}
	if flags.Multiline {
		prefix += "m"
	}
	if prefix != "" {
		pattern = "(?" + prefix + ")" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &sederr.RegexCompileError{Source: source, Err: err}
	}

	cacheMu.Lock()
	cache[key] = re
	cacheMu.Unlock()
	return re, nil
}

// Package parse tokenizes a sed script (the concatenation of all -e/-f
// sources, joined by the record terminator) into a Program: an ordered
// list of Commands plus resolved label/block metadata.
package parse

import "github.com/rcarmo/go-busybox/pkg/applets/sed/regexadapter"

// AddrKind identifies which address form an Address represents.
type AddrKind int

const (
	AddrNone AddrKind = iota
	AddrLine
	AddrLast
	AddrRegex
	AddrStep
	AddrRelPlus  // addr1,+N
	AddrRelTilde // addr1,~M
)

// Address is one predicate in a command's address list.
type Address struct {
	Kind    AddrKind
	Line    int // AddrLine value, AddrStep "first", AddrRelPlus/Tilde N/M
	Step    int // AddrStep "step"
	Dialect regexadapter.Dialect

	RegexSource     string
	RegexEmpty      bool // "//": reuse last-used regex
	CaseInsensitive bool
	Multiline       bool
}

// Command is one parsed script statement: an optional address pair, an
// optional negation, a command code, and command-specific operands.
type Command struct {
	Addr1, Addr2 *Address
	Negate       bool
	Code         byte

	// a / i / c / e (no-arg form uses Text == "")
	Text string

	// b / t / T / :
	Label      string
	JumpTarget int // resolved instruction index, -1 = end of program

	// r / R / w / W
	FileArg string

	// s
	SubFind        string
	SubFindEmpty   bool
	SubDialect     regexadapter.Dialect
	SubCaseInsens  bool
	SubMultiline   bool
	SubReplacement string
	SubGlobal      bool
	SubNth         int
	SubPrint       bool
	SubExec        bool
	SubWriteFile   string

	// y
	YFrom, YTo []byte

	// l
	Width    int
	HasWidth bool

	// q / Q
	ExitCode    int
	HasExitCode bool

	// { / }
	BlockEnd int // for '{': index of matching '}'; for '}': index of matching '{'
}

// Program is the fully parsed, immutable script: an ordered command list
// plus whether a leading "#n" requested default-print suppression.
type Program struct {
	Commands        []Command
	SuppressDefault bool
}

package sed

import (
	"strconv"
	"strings"

	"github.com/rcarmo/go-busybox/pkg/applets/sed/regexadapter"
	"github.com/rcarmo/go-busybox/pkg/core"
)

// options holds the parsed CLI surface, following the
// flat-struct-plus-hand-rolled-loop shape core.ParseHeadTailArgs and
// core.ParseBoolFlags use for the other applets.
type options struct {
	suppressDefault bool // -n
	scripts         []scriptSource
	inPlace         bool   // -i
	backupSuffix    string // -i SUFFIX
	followSymlinks  bool
	width           int // -l N (0 means "never wrap" once widthSet)
	widthSet        bool
	posix           bool
	dialect         regexadapter.Dialect
	separate        bool
	sandbox         bool
	unbuffered      bool
	term            byte
	debug           bool
	verbose         bool
	files           []string
}

type scriptSource struct {
	text   string
	isFile bool
}

// defaultWidth is the classic `l` command wrap column used when stdout
// isn't a terminal and no -l was given.
const defaultWidth = 70

func defaultOptions() *options {
	return &options{
		// width is left at 0 (unset) here; Run resolves it against the
		// terminal size once it knows whether -l was passed explicitly.
		term: '\n',
	}
}

// parseArgs walks args in the shape core.ParseBoolFlags uses for
// clustered short flags, but sed's richer surface (value-taking flags,
// long options, an optional-value -i) needs its own loop.
func parseArgs(stdio *core.Stdio, args []string) (*options, int) {
	opts := defaultOptions()
	i := 0
	for ; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			i++
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}

		switch {
		case arg == "-n" || arg == "--quiet" || arg == "--silent":
			opts.suppressDefault = true
		case arg == "-e" || arg == "--expression":
			val, next, code := takeValue(stdio, args, i, arg)
			if code != core.ExitSuccess {
				return nil, code
			}
			i = next
			opts.scripts = append(opts.scripts, scriptSource{text: val})
		case strings.HasPrefix(arg, "-e"):
			opts.scripts = append(opts.scripts, scriptSource{text: arg[2:]})
		case strings.HasPrefix(arg, "--expression="):
			opts.scripts = append(opts.scripts, scriptSource{text: arg[len("--expression="):]})
		case arg == "-f" || arg == "--file":
			val, next, code := takeValue(stdio, args, i, arg)
			if code != core.ExitSuccess {
				return nil, code
			}
			i = next
			opts.scripts = append(opts.scripts, scriptSource{text: val, isFile: true})
		case strings.HasPrefix(arg, "-f"):
			opts.scripts = append(opts.scripts, scriptSource{text: arg[2:], isFile: true})
		case strings.HasPrefix(arg, "--file="):
			opts.scripts = append(opts.scripts, scriptSource{text: arg[len("--file="):], isFile: true})
		case arg == "-i" || arg == "--in-place":
			opts.inPlace = true
		case strings.HasPrefix(arg, "-i"):
			opts.inPlace = true
			opts.backupSuffix = arg[2:]
		case strings.HasPrefix(arg, "--in-place="):
			opts.inPlace = true
			opts.backupSuffix = arg[len("--in-place="):]
		case arg == "--follow-symlinks":
			opts.followSymlinks = true
		case arg == "-l" || arg == "--line-length":
			val, next, code := takeValue(stdio, args, i, arg)
			if code != core.ExitSuccess {
				return nil, code
			}
			i = next
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, core.UsageError(stdio, "sed", "invalid width: "+val)
			}
			opts.width = n
			opts.widthSet = true
		case strings.HasPrefix(arg, "-l"):
			n, err := strconv.Atoi(arg[2:])
			if err != nil {
				return nil, core.UsageError(stdio, "sed", "invalid width: "+arg[2:])
			}
			opts.width = n
			opts.widthSet = true
		case arg == "--posix":
			opts.posix = true
		case arg == "-E" || arg == "-r" || arg == "--regexp-extended":
			opts.dialect = regexadapter.Extended
		case arg == "-s" || arg == "--separate":
			opts.separate = true
		case arg == "--sandbox":
			opts.sandbox = true
		case arg == "-u" || arg == "--unbuffered":
			opts.unbuffered = true
		case arg == "--end":
			val, next, code := takeValue(stdio, args, i, arg)
			if code != core.ExitSuccess {
				return nil, code
			}
			i = next
			term, ok := parseTermByte(val)
			if !ok {
				return nil, core.UsageError(stdio, "sed", "invalid --end value: "+val)
			}
			opts.term = term
		case strings.HasPrefix(arg, "--end="):
			term, ok := parseTermByte(arg[len("--end="):])
			if !ok {
				return nil, core.UsageError(stdio, "sed", "invalid --end value")
			}
			opts.term = term
		case arg == "-z" || arg == "--null-data":
			opts.term = 0
		case arg == "--debug":
			opts.debug = true
		case arg == "--verbose":
			opts.verbose = true
		default:
			return nil, core.UsageError(stdio, "sed", "invalid option -- '"+arg+"'")
		}
	}

	if len(opts.scripts) == 0 {
		if i >= len(args) {
			return nil, core.UsageError(stdio, "sed", "no script specified")
		}
		opts.scripts = append(opts.scripts, scriptSource{text: args[i]})
		i++
	}

	opts.files = args[i:]
	return opts, core.ExitSuccess
}

func takeValue(stdio *core.Stdio, args []string, i int, flag string) (string, int, int) {
	if i+1 >= len(args) {
		return "", i, core.UsageError(stdio, "sed", "option '"+flag+"' requires an argument")
	}
	return args[i+1], i + 1, core.ExitSuccess
}

func parseTermByte(s string) (byte, bool) {
	switch s {
	case `\0`, `\x00`:
		return 0, true
	case `\n`:
		return '\n', true
	case `\t`:
		return '\t', true
	}
	if len(s) == 1 {
		return s[0], true
	}
	return 0, false
}

package sed_test

import (
	"path/filepath"
	"testing"

	"github.com/rcarmo/go-busybox/pkg/applets/sed"
	"github.com/rcarmo/go-busybox/pkg/core"
	"github.com/rcarmo/go-busybox/pkg/testutil"
)

func TestSed(t *testing.T) {
	tests := []testutil.AppletTestCase{
		{
			Name:     "substitute",
			Args:     []string{"s/foo/bar/", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "bar\nbar\n",
			Files:    map[string]string{"input.txt": "foo\nfoo\n"},
		},
		{
			Name:     "substitute_global",
			Args:     []string{"s/o/0/g", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "hell0\nw0rld\n",
			Files:    map[string]string{"input.txt": "hello\nworld\n"},
		},
		{
			Name:     "substitute_nth",
			Args:     []string{"s/o/0/2", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "fo0o oo\n",
			Files:    map[string]string{"input.txt": "foo oo\n"},
		},
		{
			Name:     "substitute_case_insensitive",
			Args:     []string{"-e", "s/FOO/bar/i", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "bar\n",
			Files:    map[string]string{"input.txt": "foo\n"},
		},
		{
			Name:     "substitute_backreference",
			Args:     []string{`s/\(foo\)\(bar\)/\2\1/`, "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "barfoo\n",
			Files:    map[string]string{"input.txt": "foobar\n"},
		},
		{
			Name:     "extended_regex",
			Args:     []string{"-E", "s/(foo)+/X/", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "X bar\n",
			Files:    map[string]string{"input.txt": "foofoofoo bar\n"},
		},
		{
			Name:     "print_only",
			Args:     []string{"-n", "p", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "foo\n",
			Files:    map[string]string{"input.txt": "foo\n"},
		},
		{
			Name:     "delete",
			Args:     []string{"d", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "",
			Files:    map[string]string{"input.txt": "foo\n"},
		},
		{
			Name:     "delete_by_line_number",
			Args:     []string{"2d", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "a\nc\n",
			Files:    map[string]string{"input.txt": "a\nb\nc\n"},
		},
		{
			Name:     "line_range",
			Args:     []string{"-n", "2,3p", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "b\nc\n",
			Files:    map[string]string{"input.txt": "a\nb\nc\nd\n"},
		},
		{
			Name:     "regex_range",
			Args:     []string{"-n", "/start/,/end/p", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "start\nmid\nend\n",
			Files:    map[string]string{"input.txt": "before\nstart\nmid\nend\nafter\n"},
		},
		{
			Name:     "last_line_address",
			Args:     []string{"-n", "$p", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "c\n",
			Files:    map[string]string{"input.txt": "a\nb\nc\n"},
		},
		{
			Name:     "negated_address",
			Args:     []string{"-n", "2!p", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "a\nc\n",
			Files:    map[string]string{"input.txt": "a\nb\nc\n"},
		},
		{
			Name:     "step_address",
			Args:     []string{"-n", "1~2p", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "a\nc\ne\n",
			Files:    map[string]string{"input.txt": "a\nb\nc\nd\ne\n"},
		},
		{
			Name:     "append",
			Args:     []string{"a bar", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "foo\nbar\n",
			Files:    map[string]string{"input.txt": "foo\n"},
		},
		{
			Name:     "insert",
			Args:     []string{"i bar", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "bar\nfoo\n",
			Files:    map[string]string{"input.txt": "foo\n"},
		},
		{
			Name:     "change",
			Args:     []string{"c bar", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "bar\n",
			Files:    map[string]string{"input.txt": "foo\n"},
		},
		{
			Name:     "change_range_prints_once",
			Args:     []string{"2,3c bar", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "a\nbar\nd\n",
			Files:    map[string]string{"input.txt": "a\nb\nc\nd\n"},
		},
		{
			Name:     "hold_space_swap",
			Args:     []string{"-n", "1h;2x;2p", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "a\n",
			Files:    map[string]string{"input.txt": "a\nb\n"},
		},
		{
			Name:     "hold_space_append_at_end",
			Args:     []string{"-n", "1!H;1h;${g;p}", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "a\nb\nc\n",
			Files:    map[string]string{"input.txt": "a\nb\nc\n"},
		},
		{
			Name:     "branch_loop",
			Args:     []string{":a;s/o/0/;ta", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "f000\n",
			Files:    map[string]string{"input.txt": "fooo\n"},
		},
		{
			Name:     "next_line",
			Args:     []string{`N;s/\n/ /`, "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "a b\nc\n",
			Files:    map[string]string{"input.txt": "a\nb\nc\n"},
		},
		{
			Name:     "transliterate",
			Args:     []string{"y/abc/xyz/", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "xyz\n",
			Files:    map[string]string{"input.txt": "abc\n"},
		},
		{
			Name:     "quit_with_code",
			Args:     []string{"2q5", "input.txt"},
			WantCode: 5,
			WantOut:  "a\nb\n",
			Files:    map[string]string{"input.txt": "a\nb\nc\n"},
		},
		{
			Name:     "quit_no_print",
			Args:     []string{"2Q", "input.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "a\n",
			Files:    map[string]string{"input.txt": "a\nb\nc\n"},
		},
		{
			Name:     "separate_mode_resets_last_line",
			Args:     []string{"-s", "-n", "$p", "one.txt", "two.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "a\nb\n",
			Files: map[string]string{
				"one.txt": "a\n",
				"two.txt": "b\n",
			},
		},
		{
			Name:     "null_data_terminator",
			Args:     []string{"-z", "s/a/b/"},
			Input:    "a\x00c\x00",
			WantCode: core.ExitSuccess,
			WantOut:  "b\x00c\x00",
		},
		{
			Name:     "sandbox_blocks_write",
			Args:     []string{"--sandbox", "w out.txt", "input.txt"},
			WantCode: core.ExitFailure,
			WantErr:  "sandbox",
			Files:    map[string]string{"input.txt": "foo\n"},
		},
		{
			Name:     "stdin_default",
			Args:     []string{"s/x/y/"},
			Input:    "x\n",
			WantCode: core.ExitSuccess,
			WantOut:  "y\n",
		},
	}

	testutil.RunAppletTests(t, sed.Run, tests)
}

func TestSedInPlace(t *testing.T) {
	tests := []testutil.AppletTestCase{
		{
			Name:     "in_place_rewrite",
			Args:     []string{"-i", "s/foo/bar/", "input.txt"},
			WantCode: core.ExitSuccess,
			Files:    map[string]string{"input.txt": "foo\n"},
			Check: func(t *testing.T, dir string) {
				testutil.AssertFileContent(t, filepath.Join(dir, "input.txt"), "bar\n")
			},
		},
		{
			Name:     "in_place_backup_suffix",
			Args:     []string{"-i.bak", "s/foo/bar/", "input.txt"},
			WantCode: core.ExitSuccess,
			Files:    map[string]string{"input.txt": "foo\n"},
			Check: func(t *testing.T, dir string) {
				testutil.AssertFileContent(t, filepath.Join(dir, "input.txt"), "bar\n")
				testutil.AssertFileContent(t, filepath.Join(dir, "input.txt.bak"), "foo\n")
			},
		},
	}

	testutil.RunAppletTests(t, sed.Run, tests)
}

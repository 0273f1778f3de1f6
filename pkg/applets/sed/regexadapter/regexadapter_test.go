package regexadapter

import "testing"

func TestTranslateBRE(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"literal_parens", "a(b)c", `a\(b\)c`},
		{"escaped_parens_become_groups", `a\(b\)c`, "a(b)c"},
		{"literal_plus", "a+b", `a\+b`},
		{"escaped_plus_becomes_quantifier", `a\+b`, "a+b"},
		{"bracket_expression_untouched", "a[(+)]b", "a[(+)]b"},
		{"bracket_with_leading_caret_and_bracket", "[^]a]+", `[^]a]\+`},
		{"posix_class_untouched", "[[:digit:]]+", `[[:digit:]]\+`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := TranslateBRE(c.in)
			if got != c.want {
				t.Errorf("TranslateBRE(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestCompileCachesByKey(t *testing.T) {
	re1, err := Compile("a+b", Extended, Flags{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	re2, err := Compile("a+b", Extended, Flags{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if re1 != re2 {
		t.Errorf("expected identical cached *regexp.Regexp, got distinct instances")
	}
	re3, err := Compile("a+b", Extended, Flags{CaseInsensitive: true})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if re3 == re1 {
		t.Errorf("expected a distinct entry for a different flag set")
	}
}

func TestSubstituteNthAndGlobal(t *testing.T) {
	re, err := Compile("o", Extended, Flags{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	out, count := Substitute(re, []byte("foo boo"), []byte("0"), false, 0)
	if string(out) != "f0o boo" || count != 1 {
		t.Errorf("got %q/%d, want %q/1", out, count, "f0o boo")
	}
	out, count = Substitute(re, []byte("foo boo"), []byte("0"), true, 0)
	if string(out) != "f00 b00" || count != 4 {
		t.Errorf("got %q/%d, want %q/4", out, count, "f00 b00")
	}
	out, count = Substitute(re, []byte("foo boo"), []byte("0"), true, 3)
	if string(out) != "foo b0o" || count != 1 {
		t.Errorf("got %q/%d, want %q/1", out, count, "foo b0o")
	}
}

func TestExpandReplacementCaseFolding(t *testing.T) {
	re, err := Compile("(a)(b)", Extended, Flags{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	out, count := Substitute(re, []byte("ab"), []byte(`\U\1\E\2`), false, 0)
	if count != 1 || string(out) != "Ab" {
		t.Errorf("got %q/%d, want Ab/1", out, count)
	}
}

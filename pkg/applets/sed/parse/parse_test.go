package parse

import (
	"testing"

	"github.com/rcarmo/go-busybox/pkg/applets/sed/regexadapter"
)

func TestParseSuppressDefaultMarker(t *testing.T) {
	prog, err := Parse([]byte("#n\np"), regexadapter.Basic, '\n')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !prog.SuppressDefault {
		t.Errorf("expected #n to set SuppressDefault")
	}
	if len(prog.Commands) != 1 || prog.Commands[0].Code != 'p' {
		t.Fatalf("unexpected commands: %+v", prog.Commands)
	}
}

func TestParseFileArgumentKeepsBackslashesLiteral(t *testing.T) {
	prog, err := Parse([]byte(`w te\st.txt`), regexadapter.Basic, '\n')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(prog.Commands) != 1 || prog.Commands[0].Code != 'w' {
		t.Fatalf("unexpected commands: %+v", prog.Commands)
	}
	if got, want := prog.Commands[0].FileArg, `te\st.txt`; got != want {
		t.Errorf("FileArg = %q, want %q", got, want)
	}
}

func TestParseSubstituteWriteFileKeepsBackslashesLiteral(t *testing.T) {
	prog, err := Parse([]byte(`s/a/b/w te\st.txt`), regexadapter.Basic, '\n')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(prog.Commands) != 1 || prog.Commands[0].Code != 's' {
		t.Fatalf("unexpected commands: %+v", prog.Commands)
	}
	if got, want := prog.Commands[0].SubWriteFile, `te\st.txt`; got != want {
		t.Errorf("SubWriteFile = %q, want %q", got, want)
	}
}

func TestParseTextArgumentDeescapesBackslashes(t *testing.T) {
	prog, err := Parse([]byte(`a te\st`), regexadapter.Basic, '\n')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(prog.Commands) != 1 || prog.Commands[0].Code != 'a' {
		t.Fatalf("unexpected commands: %+v", prog.Commands)
	}
	if got, want := prog.Commands[0].Text, "test"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestParseBlockMatching(t *testing.T) {
	prog, err := Parse([]byte("/x/{p;d}"), regexadapter.Basic, '\n')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(prog.Commands) != 4 {
		t.Fatalf("expected 4 commands ({ p d }), got %d: %+v", len(prog.Commands), prog.Commands)
	}
	open, closeCmd := prog.Commands[0], prog.Commands[3]
	if open.Code != '{' || closeCmd.Code != '}' {
		t.Fatalf("expected first/last commands to be block markers, got %c/%c", open.Code, closeCmd.Code)
	}
	if open.BlockEnd != 3 || closeCmd.BlockEnd != 0 {
		t.Errorf("expected bidirectional BlockEnd, got open=%d close=%d", open.BlockEnd, closeCmd.BlockEnd)
	}
}

func TestParseUnmatchedBlockErrors(t *testing.T) {
	if _, err := Parse([]byte("/x/{p"), regexadapter.Basic, '\n'); err == nil {
		t.Errorf("expected error for unmatched `{'")
	}
}

func TestParseUndefinedLabelErrors(t *testing.T) {
	if _, err := Parse([]byte("bmissing"), regexadapter.Basic, '\n'); err == nil {
		t.Fatalf("expected an error for a branch to an undefined label")
	}
}

func TestParseLabelResolution(t *testing.T) {
	prog, err := Parse([]byte(":top\ns/a/b/\ntbottom\nbtop\n:bottom"), regexadapter.Basic, '\n')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var tIdx, bIdx, bottomIdx int
	for i, c := range prog.Commands {
		switch c.Code {
		case 't':
			tIdx = i
		case 'b':
			bIdx = i
		}
		if c.Label == "bottom" && c.Code == ':' {
			bottomIdx = i
		}
	}
	if prog.Commands[tIdx].JumpTarget != bottomIdx {
		t.Errorf("t jump target = %d, want %d", prog.Commands[tIdx].JumpTarget, bottomIdx)
	}
	if prog.Commands[bIdx].JumpTarget != 0 {
		t.Errorf("b jump target = %d, want 0 (:top)", prog.Commands[bIdx].JumpTarget)
	}
}

func TestParseAddressForms(t *testing.T) {
	prog, err := Parse([]byte("1,+2p"), regexadapter.Basic, '\n')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cmd := prog.Commands[0]
	if cmd.Addr1.Kind != AddrLine || cmd.Addr1.Line != 1 {
		t.Errorf("unexpected addr1: %+v", cmd.Addr1)
	}
	if cmd.Addr2.Kind != AddrRelPlus || cmd.Addr2.Line != 2 {
		t.Errorf("unexpected addr2: %+v", cmd.Addr2)
	}
}

func TestParseSubstituteFlags(t *testing.T) {
	prog, err := Parse([]byte("s/a/b/3g"), regexadapter.Basic, '\n')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cmd := prog.Commands[0]
	if !cmd.SubGlobal || cmd.SubNth != 3 {
		t.Errorf("expected nth=3 and global=true, got nth=%d global=%v", cmd.SubNth, cmd.SubGlobal)
	}
}

func TestParseTransliterateLengthMismatch(t *testing.T) {
	if _, err := Parse([]byte("y/ab/x/"), regexadapter.Basic, '\n'); err == nil {
		t.Errorf("expected error for mismatched y/// operand lengths")
	}
}

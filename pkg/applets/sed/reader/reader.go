// Package reader implements the sed applet's Record Reader: it segments
// a sequence of named byte streams into records on a configurable
// terminator, and answers "is there a next record" without consuming one
// so that EOF-sensitive commands ($, N, n) can behave correctly.
package reader

import (
	"bufio"
	"io"

	"github.com/rcarmo/go-busybox/pkg/applets/sed/sederr"
	"github.com/rcarmo/go-busybox/pkg/core/fs"
)

// Reader pulls records from a sequence of input files (or stdin when no
// files are given), splitting on Term. When Separate is set, HasMore
// treats the end of the current file as end-of-stream (so $ fires per
// file); otherwise files are logically concatenated.
//
// A single trailing terminator at true end-of-file does not manufacture
// a phantom empty final record (matching how line-counting tools treat
// a well-formed final line); two consecutive terminators do yield an
// empty record between them, per spec.
type Reader struct {
	Term     byte
	Separate bool
	Stdin    io.Reader

	names   []string
	nextIdx int

	cur      *bufio.Reader
	curClose io.Closer
	curName  string

	havePeek     bool
	peekOK       bool
	peekRec      []byte
	peekName     string
	peekFileEnds bool

	lastName     string
	changed      bool
	curFileEnded bool
}

// New builds a Reader over the given file names. An empty slice means
// read a single implicit "-" (standard input) source.
func New(term byte, names []string, separate bool, stdin io.Reader) *Reader {
	if len(names) == 0 {
		names = []string{"-"}
	}
	return &Reader{Term: term, Separate: separate, Stdin: stdin, names: names}
}

func (r *Reader) openNext() (bool, error) {
	if r.curClose != nil {
		r.curClose.Close()
		r.curClose = nil
	}
	if r.nextIdx >= len(r.names) {
		r.cur = nil
		return false, nil
	}
	name := r.names[r.nextIdx]
	r.nextIdx++
	if name == "-" || name == "" {
		r.cur = bufio.NewReader(r.Stdin)
		r.curName = "-"
		r.curClose = nil
	} else {
		f, err := fs.Open(name)
		if err != nil {
			return false, &sederr.InputOpenError{Path: name, Err: err}
		}
		r.cur = bufio.NewReader(f)
		r.curName = name
		r.curClose = f
	}
	return true, nil
}

// readOne reads a single raw record from the current file. ok is false
// once that file has no more bytes at all.
func (r *Reader) readOne() (rec []byte, ok bool, fileEnds bool, err error) {
	data, rerr := r.cur.ReadBytes(r.Term)
	if rerr == io.EOF {
		if len(data) == 0 {
			return nil, false, true, nil
		}
		return data, true, true, nil
	}
	if rerr != nil {
		return nil, false, false, &sederr.InputReadError{Path: r.curName, Err: rerr}
	}
	return data[:len(data)-1], true, false, nil
}

// fill ensures peekRec/peekOK reflect the next record in the stream,
// opening subsequent files as needed. It does not consult Separate: that
// gate is applied by HasMore.
func (r *Reader) fill() error {
	if r.havePeek {
		return nil
	}
	for {
		if r.cur == nil {
			opened, err := r.openNext()
			if err != nil {
				return err
			}
			if !opened {
				r.havePeek, r.peekOK = true, false
				return nil
			}
		}
		rec, ok, fileEnds, err := r.readOne()
		if err != nil {
			return err
		}
		if !ok {
			r.cur = nil
			continue
		}
		if fileEnds {
			r.cur = nil
		}
		r.havePeek, r.peekOK = true, true
		r.peekRec, r.peekName, r.peekFileEnds = rec, r.curName, fileEnds
		return nil
	}
}

// HasMore reports whether a next record is available in the current
// logical universe, without consuming it. In Separate mode, once the
// most recently returned record ended its file, HasMore reports false
// even though further files remain queued.
func (r *Reader) HasMore() (bool, error) {
	if r.Separate && r.curFileEnded {
		return false, nil
	}
	if err := r.fill(); err != nil {
		return false, err
	}
	return r.peekOK, nil
}

// NextRecord pulls and returns the next record. ok is false once all
// inputs are exhausted.
func (r *Reader) NextRecord() (rec []byte, ok bool, err error) {
	if err := r.fill(); err != nil {
		return nil, false, err
	}
	if !r.peekOK {
		return nil, false, nil
	}
	rec = r.peekRec
	r.changed = r.peekName != r.lastName
	r.lastName = r.peekName
	r.curFileEnded = r.peekFileEnds
	r.peekRec, r.peekName, r.havePeek, r.peekOK = nil, "", false, false
	return rec, true, nil
}

// CurrentFileChanged reports whether the most recent NextRecord() call
// crossed into a newly opened file.
func (r *Reader) CurrentFileChanged() bool {
	return r.changed
}

// CurrentFileName returns the name of the file the current record came
// from ("-" for standard input).
func (r *Reader) CurrentFileName() string {
	return r.lastName
}

// Close releases the currently open source, if any.
func (r *Reader) Close() error {
	if r.curClose != nil {
		return r.curClose.Close()
	}
	return nil
}

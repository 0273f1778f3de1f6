package exec

import "github.com/rcarmo/go-busybox/pkg/applets/sed/sederr"

// Run drives the record loop: pull a record, walk the program once,
// apply the default-print and append-queue rules, and repeat until the
// reader is exhausted or a q/Q command stops the run.
func (e *Engine) Run() error {
	for {
		rec, ok, err := e.rd.NextRecord()
		if err != nil {
			return &sederr.InputReadError{Path: e.currentFileName(), Err: err}
		}
		if !ok {
			return nil
		}
		e.pattern = rec
		if e.opts.Separate && e.rd.CurrentFileChanged() && e.lineNum > 0 {
			e.lineNum = 1
		} else {
			e.lineNum++
		}
		e.subOK = false
		if e.opts.Trace != nil {
			e.opts.Trace("sed: cycle start, line %d: %q\n", e.lineNum, e.pattern)
		}

		stop, err := e.runCycle()
		if !e.skipDrain {
			e.drainAppendQ()
		}
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
}

func (e *Engine) currentFileName() string {
	if e.opts.CurrentFile != nil {
		return e.opts.CurrentFile()
	}
	return "-"
}

// runCycle executes the program against the current pattern space,
// looping D-restarts without pulling a new record, and reports whether
// the whole run should stop.
func (e *Engine) runCycle() (bool, error) {
restart:
	ip := 0
	for ip < len(e.prog.Commands) {
		cmd := &e.prog.Commands[ip]
		fires, err := e.commandFires(ip)
		if err != nil {
			return true, err
		}
		if !fires {
			if cmd.Code == '{' {
				ip = cmd.BlockEnd + 1
			} else {
				ip++
			}
			continue
		}

		if e.opts.Trace != nil {
			e.opts.Trace("sed: line %d: command %d `%c'\n", e.lineNum, ip, cmd.Code)
		}
		next, oc, err := e.execAt(ip)
		if err != nil {
			return true, err
		}

		switch oc.kind {
		case kDelete:
			return false, nil
		case kDeleteRestart:
			goto restart
		case kQuit:
			if oc.quitPrint && !e.opts.SuppressDefault {
				e.writeRecord(e.pattern)
			}
			e.quit = true
			e.skipDrain = oc.noDrain
			return true, nil
		}
		ip = next
	}
	if !e.opts.SuppressDefault {
		e.writeRecord(e.pattern)
	}
	return false, nil
}

func (e *Engine) drainAppendQ() {
	for _, a := range e.appendQ {
		e.writeRaw(a)
		if len(a) == 0 || a[len(a)-1] != e.opts.Term {
			e.writeRaw([]byte{e.opts.Term})
		}
	}
	e.appendQ = e.appendQ[:0]
}

package core

import (
	"bytes"
	"strings"
	"testing"
)

type fakeTerminal struct {
	finis int
}

func (f *fakeTerminal) Fini() { f.finis++ }

func captureCrash(t *testing.T) (*bytes.Buffer, <-chan int) {
	t.Helper()
	var buf bytes.Buffer
	codes := make(chan int, 1)

	prevOut, prevExit := crashOutput, crashExit
	crashOutput = &buf
	crashExit = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOutput, crashExit = prevOut, prevExit
		SetCrashTerminal(nil)
	})
	return &buf, codes
}

func TestHandleCrashNil(t *testing.T) {
	buf, codes := captureCrash(t)
	term := &fakeTerminal{}
	SetCrashTerminal(term)

	HandleCrash(nil)

	if buf.Len() != 0 || term.finis != 0 || len(codes) != 0 {
		t.Error("nil recovery value must be ignored")
	}
}

func TestHandleCrashRestoresTerminal(t *testing.T) {
	buf, codes := captureCrash(t)
	term := &fakeTerminal{}
	SetCrashTerminal(term)

	HandleCrash("boom")

	if term.finis != 1 {
		t.Errorf("expected terminal Fini once, got %d", term.finis)
	}
	if code := <-codes; code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "CRASH DETECTED: boom") {
		t.Errorf("missing crash banner in %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Stack Trace:") {
		t.Error("missing stack trace")
	}
}

func TestGoRecoversPanic(t *testing.T) {
	buf, codes := captureCrash(t)
	Go(func() {
		panic("worker failed")
	})

	if code := <-codes; code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "worker failed") {
		t.Errorf("expected panic value in output, got %q", buf.String())
	}
}

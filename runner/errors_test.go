package runner

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ekanter/workplanner"
)

func TestNewCommandTaggedError_NilErrIsNil(t *testing.T) {
	cmd := workplanner.NewBaseCommand(workplanner.TagProcessEvent)
	if got := newCommandTaggedError(nil, cmd); got != nil {
		t.Fatalf("newCommandTaggedError(nil, cmd) = %v, want nil", got)
	}
}

func TestCommandTaggedError_TagAndConflictKey(t *testing.T) {
	cmd := workplanner.NewBaseCommandWithConflictKey(workplanner.TagHaNvecSet, "node-1")
	boom := errors.New("boom")

	err := newCommandTaggedError(boom, cmd)

	var ce CommandError
	if !errors.As(err, &ce) {
		t.Fatal("expected err to be a CommandError")
	}
	if ce.CommandTag() != workplanner.TagHaNvecSet {
		t.Fatalf("CommandTag() = %q, want %q", ce.CommandTag(), workplanner.TagHaNvecSet)
	}
	key, ok := ce.ConflictKey()
	if !ok || key != "node-1" {
		t.Fatalf("ConflictKey() = (%q, %v), want (%q, true)", key, ok, "node-1")
	}
	if !errors.Is(err, boom) {
		t.Fatal("expected err to unwrap to boom via errors.Is")
	}
}

func TestCommandTaggedError_NoConflictKey(t *testing.T) {
	cmd := workplanner.NewBaseCommand(workplanner.TagBroadcastHAStates)
	err := newCommandTaggedError(errors.New("boom"), cmd)

	_, ok := ExtractCommandTag(err)
	if !ok {
		t.Fatal("ExtractCommandTag should succeed for a commandTaggedError")
	}

	var ce CommandError
	if !errors.As(err, &ce) {
		t.Fatal("expected err to be a CommandError")
	}
	if _, ok := ce.ConflictKey(); ok {
		t.Fatal("expected no conflict key")
	}
}

func TestExtractCommandTag_NotATaggedError(t *testing.T) {
	tag, ok := ExtractCommandTag(errors.New("plain error"))
	if ok {
		t.Fatalf("ExtractCommandTag should fail for a plain error, got tag=%q", tag)
	}
}

func TestCommandTaggedError_FormatVerbs(t *testing.T) {
	cmd := workplanner.NewBaseCommand(workplanner.TagSnsOperation)
	err := newCommandTaggedError(errors.New("boom"), cmd)

	if got := fmt.Sprintf("%s", err); got != "boom" {
		t.Fatalf("%%s = %q, want %q", got, "boom")
	}
	if got := fmt.Sprintf("%q", err); got != `"boom"` {
		t.Fatalf("%%q = %q, want %q", got, `"boom"`)
	}
	if got := fmt.Sprintf("%+v", err); got == "" {
		t.Fatalf("%%+v should produce non-empty output")
	}
}

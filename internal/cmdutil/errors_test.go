package cmdutil

import (
	"errors"
	"fmt"
	"testing"
)

func TestFlagErrorf(t *testing.T) {
	err := FlagErrorf("bad value %q", "x")

	var flagErr *FlagError
	if !errors.As(err, &flagErr) {
		t.Fatal("FlagErrorf() should produce a *FlagError")
	}
	if got := err.Error(); got != `bad value "x"` {
		t.Errorf("Error() = %q", got)
	}
}

func TestFlagErrorWrapUnwraps(t *testing.T) {
	inner := errors.New("inner")
	err := FlagErrorWrap(fmt.Errorf("outer: %w", inner))

	if !errors.Is(err, inner) {
		t.Error("wrapped error chain should reach the inner error")
	}
	var flagErr *FlagError
	if !errors.As(err, &flagErr) {
		t.Error("FlagErrorWrap() should produce a *FlagError")
	}
}

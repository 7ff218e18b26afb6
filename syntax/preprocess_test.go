package syntax

import (
	"errors"
	"testing"

	"github.com/regexdfa/followpos/alphabet"
)

func mustAlphabet(t *testing.T, symbols ...string) *alphabet.Alphabet {
	t.Helper()
	a, err := alphabet.New(symbols...)
	if err != nil {
		t.Fatalf("alphabet.New(%v) error = %v", symbols, err)
	}
	return a
}

func TestProcess_ImplicitConcatenation(t *testing.T) {
	a := mustAlphabet(t, "a", "b")
	p := NewPreprocessor(a)
	got, err := p.Process("ab")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got != "a.b" {
		t.Errorf("Process(%q) = %q, want %q", "ab", got, "a.b")
	}
}

func TestProcess_MultiCharSymbolStaysWhole(t *testing.T) {
	a := mustAlphabet(t, "ab")
	p := NewPreprocessor(a)
	got, err := p.Process("ab")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got != "ab" {
		t.Errorf("Process(%q) = %q, want %q (single symbol, no dot)", "ab", got, "ab")
	}
}

func TestProcess_StarThenConcat(t *testing.T) {
	a := mustAlphabet(t, "a", "b", "c")
	p := NewPreprocessor(a)
	got, err := p.Process("(a+b)*c")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if want := "(a+b)*.c"; got != want {
		t.Errorf("Process() = %q, want %q", got, want)
	}
}

func TestProcess_LeadingPlus(t *testing.T) {
	a := mustAlphabet(t, "a")
	p := NewPreprocessor(a)
	got, err := p.Process("+a")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if want := "$+a"; got != want {
		t.Errorf("Process() = %q, want %q", got, want)
	}
}

func TestProcess_TrailingPlus(t *testing.T) {
	a := mustAlphabet(t, "a")
	p := NewPreprocessor(a)
	got, err := p.Process("a+")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if want := "a+$"; got != want {
		t.Errorf("Process() = %q, want %q", got, want)
	}
}

func TestProcess_DoublePlus(t *testing.T) {
	a := mustAlphabet(t, "a", "b")
	p := NewPreprocessor(a)
	got, err := p.Process("a++b")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if want := "a+$+b"; got != want {
		t.Errorf("Process() = %q, want %q", got, want)
	}
}

func TestProcess_EmptyGroup(t *testing.T) {
	a := mustAlphabet(t, "a")
	p := NewPreprocessor(a)
	got, err := p.Process("()")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if want := "($)"; got != want {
		t.Errorf("Process() = %q, want %q", got, want)
	}
}

func TestProcess_RepetitionPassthrough(t *testing.T) {
	a := mustAlphabet(t, "a")
	p := NewPreprocessor(a)
	got, err := p.Process("a{2,3}")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if want := "a{2,3}"; got != want {
		t.Errorf("Process() = %q, want %q", got, want)
	}
}

func TestProcess_AmbiguousBufferFails(t *testing.T) {
	a := mustAlphabet(t, "ab", "a", "b")
	p := NewPreprocessor(a)
	_, err := p.Process("ab")
	if !errors.Is(err, alphabet.ErrAmbiguousAlphabet) {
		t.Fatalf("Process() error = %v, want ErrAmbiguousAlphabet", err)
	}
}

func TestProcess_UnsegmentableBufferFails(t *testing.T) {
	a := mustAlphabet(t, "a")
	p := NewPreprocessor(a)
	_, err := p.Process("ax")
	if !errors.Is(err, alphabet.ErrUnsegmentableString) {
		t.Fatalf("Process() error = %v, want ErrUnsegmentableString", err)
	}
}

func TestProcess_EscapePassthrough(t *testing.T) {
	a := mustAlphabet(t, "a", "b")
	p := NewPreprocessor(a)
	got, err := p.Process(`\a*b`)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if want := `\a*.b`; got != want {
		t.Errorf("Process() = %q, want %q", got, want)
	}
}

func TestProcess_NestedGroupsNoSpuriousDot(t *testing.T) {
	a := mustAlphabet(t, "a")
	p := NewPreprocessor(a)
	got, err := p.Process("((a))")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if want := "((a))"; got != want {
		t.Errorf("Process() = %q, want %q (no dot after '(')", got, want)
	}
}

func TestProcess_EscapeRightAfterOpenParen(t *testing.T) {
	a := mustAlphabet(t, "a", "b")
	p := NewPreprocessor(a)
	got, err := p.Process(`(\ab)`)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if want := `(\a.b)`; got != want {
		t.Errorf("Process() = %q, want %q (no dot between '(' and '\\\\')", got, want)
	}
}

func TestProcess_EscapedReservedCharacter(t *testing.T) {
	a := mustAlphabet(t, "a", "b", "+")
	p := NewPreprocessor(a)
	got, err := p.Process(`a\+b`)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if want := `a.\+.b`; got != want {
		t.Errorf("Process() = %q, want %q", got, want)
	}
}

package followpos_test

import (
	"fmt"

	"github.com/regexdfa/followpos"
)

// ExampleCompile builds a DFA and walks it over a string by hand, the way
// an external collaborator's matcher would (string-matching execution is
// explicitly out of scope for this package).
func ExampleCompile() {
	d, err := followpos.Compile("(a+b)*abb", []string{"a", "b"})
	if err != nil {
		panic(err)
	}

	cur := d.StartState()
	for _, sym := range []string{"a", "b", "b"} {
		next, ok := d.Step(cur, sym)
		if !ok {
			panic("missing transition")
		}
		cur = next
	}
	fmt.Println(d.Accepts(cur))
	// Output: true
}

// ExampleMustCompile demonstrates panic-on-error compilation for patterns
// known to be valid ahead of time.
func ExampleMustCompile() {
	d := followpos.MustCompile("a{2,3}", []string{"a"})
	fmt.Println(len(d.AcceptStates()) > 0)
	// Output: true
}

// ExampleDFA_Transitions demonstrates inspecting the full transition table.
func ExampleDFA_Transitions() {
	d, err := followpos.Compile("a", []string{"a", "b"})
	if err != nil {
		panic(err)
	}

	start := d.StartState()
	row := d.Transitions()[start]
	fmt.Println(len(row))
	// Output: 2
}

// ExampleCompileWithConfig demonstrates lowering the state cap.
func ExampleCompileWithConfig() {
	cfg := followpos.DefaultConfig()
	cfg.MaxStates = 100

	d, err := followpos.CompileWithConfig("(a+b)*c", []string{"a", "b", "c"}, cfg)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(d.States()) <= cfg.MaxStates)
	// Output: true
}

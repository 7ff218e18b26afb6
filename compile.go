package followpos

import (
	"github.com/regexdfa/followpos/alphabet"
	"github.com/regexdfa/followpos/ast"
	"github.com/regexdfa/followpos/dfa"
	"github.com/regexdfa/followpos/followpos"
	"github.com/regexdfa/followpos/syntax"
)

// Config tunes the compilation pipeline. It currently exposes the single
// knob the pipeline has: a cap on how many DFA states subset construction
// will build before giving up (dfa.Config.MaxStates).
//
// Example:
//
//	cfg := followpos.DefaultConfig()
//	cfg.MaxStates = 1000
//	d, err := followpos.CompileWithConfig("(a+b)*abb", []string{"a", "b"}, cfg)
type Config struct {
	MaxStates int
}

// DefaultConfig returns a Config with a generous but finite state cap.
func DefaultConfig() Config {
	return Config{MaxStates: dfa.DefaultConfig().MaxStates}
}

func (c Config) toDFAConfig() dfa.Config {
	return dfa.Config{MaxStates: c.MaxStates}
}

// Compile builds a DFA for regex over symbols.
//
// A multi-character symbol must not contain any reserved character
// (+ * ( ) . { } , \ $ #); a single-character symbol may be one of them
// except $ and #, and is then reachable only through a \ escape. Every run
// of literal text in regex must decompose into symbols in exactly one way.
// Compile runs the full pipeline: alphabet
// construction, regex preprocessing, scanning, parsing, position
// assignment, followpos analysis, and DFA construction. Any stage failing
// aborts the whole compilation; no partial DFA is ever returned.
//
// Example:
//
//	d, err := followpos.Compile("(a+b)*abb", []string{"a", "b"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(d.StartState())
func Compile(regex string, symbols []string) (*DFA, error) {
	return CompileWithConfig(regex, symbols, DefaultConfig())
}

// MustCompile is like Compile but panics if regex fails to compile.
// Intended for patterns known to be valid at init time.
//
// Example:
//
//	var ident = followpos.MustCompile("(a+b+c){1,8}", []string{"a", "b", "c"})
func MustCompile(regex string, symbols []string) *DFA {
	d, err := Compile(regex, symbols)
	if err != nil {
		panic("followpos: Compile(" + regex + "): " + err.Error())
	}
	return d
}

// CompileWithConfig is Compile with an explicit Config, letting callers
// raise or lower the state cap subset construction enforces.
func CompileWithConfig(regex string, symbols []string, cfg Config) (*DFA, error) {
	a, err := alphabet.New(symbols...)
	if err != nil {
		return nil, err
	}

	processed, err := syntax.NewPreprocessor(a).Process(regex)
	if err != nil {
		return nil, err
	}

	root, err := ast.NewParser(syntax.NewScanner(a, processed)).Parse()
	if err != nil {
		return nil, err
	}
	ast.AssignPositions(root)

	analysis := followpos.Analyze(root)

	d, err := dfa.NewBuilder(analysis, a.Symbols(), cfg.toDFAConfig()).Build()
	if err != nil {
		return nil, err
	}

	return &DFA{inner: d}, nil
}

package followpos

import (
	"reflect"
	"sort"
	"testing"

	"github.com/regexdfa/followpos/alphabet"
	"github.com/regexdfa/followpos/ast"
	"github.com/regexdfa/followpos/syntax"
)

// buildTree parses raw into a positioned AST, the same pipeline the
// root package's Compile will drive.
func buildTree(t *testing.T, symbols []string, raw string) *ast.Node {
	t.Helper()
	a, err := alphabet.New(symbols...)
	if err != nil {
		t.Fatalf("alphabet.New() error = %v", err)
	}
	processed, err := syntax.NewPreprocessor(a).Process(raw)
	if err != nil {
		t.Fatalf("Process(%q) error = %v", raw, err)
	}
	root, err := ast.NewParser(syntax.NewScanner(a, processed)).Parse()
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", raw, err)
	}
	ast.AssignPositions(root)
	return root
}

func sorted(s []int) []int {
	out := append([]int(nil), s...)
	sort.Ints(out)
	return out
}

// TestAnalyze_ClassicExample reproduces the textbook (a|b)*abb#
// followpos table (Aho, Sethi, Ullman), confirming the direct-
// construction algorithm against known-correct values.
func TestAnalyze_ClassicExample(t *testing.T) {
	root := buildTree(t, []string{"a", "b"}, "(a+b)*abb")
	analysis := Analyze(root)

	// Leaf positions in the classic numbering: a=1 b=2 (inside the
	// star), a=3 b=4 b=5, #=6.
	want := map[int][]int{
		1: {1, 2, 3},
		2: {1, 2, 3},
		3: {4},
		4: {5},
		5: {6},
		6: {},
	}
	for pos, wantFollow := range want {
		got := sorted(analysis.Table.Follow(pos).Values())
		if !reflect.DeepEqual(got, sorted(wantFollow)) {
			t.Errorf("Follow(%d) = %v, want %v", pos, got, wantFollow)
		}
	}

	if got := sorted(analysis.Start.Values()); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("Start = %v, want [1 2 3]", got)
	}
}

func TestNullable(t *testing.T) {
	root := buildTree(t, []string{"a"}, "a*")
	if !Nullable(root.Left) {
		t.Error("a* should be nullable")
	}
	if Nullable(root) {
		t.Error("CONCAT(a*, #) should not be nullable (# is a required symbol)")
	}
}

func TestNullable_Epsilon(t *testing.T) {
	root := buildTree(t, []string{"a"}, "()")
	if !Nullable(root.Left) {
		t.Error("epsilon should be nullable")
	}
}

func TestFirstpos_Union(t *testing.T) {
	root := buildTree(t, []string{"a", "b"}, "ab+b")
	// "ab+b" means implicit-concat(a,b) union b: UNION(CONCAT(a,b), b).
	body := root.Left
	universe := nextPosition(root)
	first := Firstpos(body, universe)
	got := sorted(first.Values())
	// firstpos of CONCAT(a,b) is {pos(a)}; union with firstpos(b) = {pos(b)}.
	if len(got) != 2 {
		t.Fatalf("Firstpos(ab+b) = %v, want 2 positions", got)
	}
}

func TestLastpos_Concat(t *testing.T) {
	root := buildTree(t, []string{"a", "b"}, "ab")
	universe := nextPosition(root)
	last := Lastpos(root.Left, universe)
	// lastpos(CONCAT(a,b)) = lastpos(b) since b is not nullable.
	if got := sorted(last.Values()); len(got) != 1 {
		t.Fatalf("Lastpos(ab) = %v, want 1 position", got)
	}
}

func TestTable_String(t *testing.T) {
	root := buildTree(t, []string{"a"}, "a*")
	analysis := Analyze(root)
	s := analysis.Table.String()
	if s == "" {
		t.Error("Table.String() should not be empty")
	}
}

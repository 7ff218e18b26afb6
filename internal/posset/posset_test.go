package posset

import "testing"

func TestPositionSet_Basic(t *testing.T) {
	s := New(10)

	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.Contains(3) {
		t.Error("empty set should not contain 3")
	}

	if !s.Insert(3) {
		t.Error("first insert should return true")
	}
	if !s.Contains(3) {
		t.Error("set should contain 3 after insert")
	}
	if s.Insert(3) {
		t.Error("duplicate insert should return false")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestPositionSet_Union(t *testing.T) {
	a := New(10)
	a.Insert(1)
	a.Insert(2)

	b := New(10)
	b.Insert(2)
	b.Insert(5)

	a.Union(b)

	want := map[int]bool{1: true, 2: true, 5: true}
	if a.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", a.Len(), len(want))
	}
	for p := range want {
		if !a.Contains(p) {
			t.Errorf("union missing position %d", p)
		}
	}
}

func TestComputeKey_OrderIndependent(t *testing.T) {
	k1 := ComputeKey([]int{1, 2, 3})
	k2 := ComputeKey([]int{3, 2, 1})
	if k1 != k2 {
		t.Errorf("ComputeKey not order independent: %v != %v", k1, k2)
	}
}

func TestComputeKey_Distinguishes(t *testing.T) {
	k1 := ComputeKey([]int{1, 2, 3})
	k2 := ComputeKey([]int{1, 2, 4})
	if k1 == k2 {
		t.Error("ComputeKey collided on distinct sets")
	}
}

func TestComputeKey_Empty(t *testing.T) {
	if ComputeKey(nil) != Key(0) {
		t.Error("empty set should have Key(0)")
	}
	if ComputeKey([]int{}) != Key(0) {
		t.Error("empty set should have Key(0)")
	}
}

func TestPositionSet_Key_MatchesComputeKey(t *testing.T) {
	s := New(10)
	s.Insert(4)
	s.Insert(1)
	s.Insert(7)

	if s.Key() != ComputeKey([]int{1, 4, 7}) {
		t.Error("PositionSet.Key() should match ComputeKey of its contents")
	}
}

func TestPositionSet_Sorted(t *testing.T) {
	s := New(10)
	s.Insert(5)
	s.Insert(1)
	s.Insert(3)

	got := s.Sorted()
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("Sorted() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sorted() = %v, want %v", got, want)
		}
	}
}

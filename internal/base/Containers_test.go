package base

import (
	"testing"
)

func TestStringSet_AppendUniq(t *testing.T) {
	set := NewStringSet("a", "b")
	set.AppendUniq("b", "c")
	if !set.Equals(StringSet{"a", "b", "c"}) {
		t.Errorf("AppendUniq: expected [a b c], got %v", set)
	}
}

func TestStringSet_Prepend(t *testing.T) {
	set := NewStringSet("c")
	set.Prepend("a", "b")
	if !set.Equals(StringSet{"a", "b", "c"}) {
		t.Errorf("Prepend: expected [a b c], got %v", set)
	}
}

func TestStringSet_Remove(t *testing.T) {
	set := NewStringSet("a", "b", "c")
	set.Remove("b")
	if !set.Equals(StringSet{"a", "c"}) {
		t.Errorf("Remove: expected [a c], got %v", set)
	}
	set.Remove("nonexistent")
	if set.Len() != 2 {
		t.Errorf("Remove: removing a missing element changed the set: %v", set)
	}
}

func TestStringSet_Contains_Any(t *testing.T) {
	set := NewStringSet("a", "b", "c")
	if !set.Contains("a", "c") {
		t.Errorf("Contains: expected true for subset")
	}
	if set.Contains("a", "z") {
		t.Errorf("Contains: expected false when any element is missing")
	}
	if !set.Any("z", "b") {
		t.Errorf("Any: expected true when at least one element matches")
	}
	if set.Any("x", "y") {
		t.Errorf("Any: expected false when no element matches")
	}
}

func TestStringSet_Join_String(t *testing.T) {
	set := NewStringSet("-flto", "-ffunction-sections")
	if joined := set.Join(" "); joined != "-flto -ffunction-sections" {
		t.Errorf("Join: got %q", joined)
	}
	if set.String() != set.Join(" ") {
		t.Errorf("String: expected same output as Join(\" \")")
	}
}

func TestIndexOf(t *testing.T) {
	if i, ok := IndexOf(3, 1, 2, 3); !ok || i != 2 {
		t.Errorf("IndexOf: expected (2, true), got (%d, %v)", i, ok)
	}
	if _, ok := IndexOf(42, 1, 2, 3); ok {
		t.Errorf("IndexOf: expected false for missing element")
	}
}

func TestMap(t *testing.T) {
	doubled := Map(func(x int) int { return x * 2 }, 1, 2, 3)
	if len(doubled) != 3 || doubled[0] != 2 || doubled[2] != 6 {
		t.Errorf("Map: got %v", doubled)
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 {
		t.Errorf("Min: expected 3")
	}
	if Max("a", "b") != "b" {
		t.Errorf("Max: expected b")
	}
}

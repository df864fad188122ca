package ident_test

import (
	"testing"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/ident"
)

func TestMapCaseInsensitiveLookup(t *testing.T) {
	m := ident.NewMap[int]()
	m.Set("Counter", 1)

	if !m.Has("COUNTER") {
		t.Fatalf("expected case-insensitive Has to find Counter")
	}
	v, ok := m.Get("counter")
	if !ok || v != 1 {
		t.Fatalf("Get(counter) = %v, %v; want 1, true", v, ok)
	}
}

func TestMapPreservesFirstCasing(t *testing.T) {
	m := ident.NewMap[int]()
	m.Set("Total", 1)
	m.Set("TOTAL", 2)

	if got := m.DisplayName("total"); got != "Total" {
		t.Fatalf("DisplayName = %q, want %q", got, "Total")
	}
	v, _ := m.Get("total")
	if v != 2 {
		t.Fatalf("Get after re-set = %d, want 2 (value updates, casing doesn't)", v)
	}
}

func TestMapKeysInsertionOrder(t *testing.T) {
	m := ident.NewMap[int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)

	want := []string{"b", "a", "c"}
	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMapDelete(t *testing.T) {
	m := ident.NewMap[int]()
	m.Set("x", 1)
	m.Delete("X")

	if m.Has("x") {
		t.Fatalf("expected x to be deleted")
	}
	if m.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", m.Len())
	}
}

func TestMapEachOrderAndCasing(t *testing.T) {
	m := ident.NewMap[string]()
	m.Set("First", "1")
	m.Set("Second", "2")

	var seen []string
	m.Each(func(key string, value string) {
		seen = append(seen, key+"="+value)
	})

	want := []string{"First=1", "Second=2"}
	for i, s := range want {
		if seen[i] != s {
			t.Fatalf("Each order[%d] = %q, want %q", i, seen[i], s)
		}
	}
}

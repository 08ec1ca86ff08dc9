package statictree

import (
	"testing"
)

func TestValueStorePutGet(t *testing.T) {
	s := newValueStore[string](2)
	a := s.put("a")
	b := s.put("b")
	c := s.put("c")
	if a != 0 || b != 1 || c != 2 {
		t.Fatalf("slots should be assigned densely, got %d %d %d", a, b, c)
	}
	if v, ok := s.get(b); !ok || v != "b" {
		t.Fatalf("expected b at slot %d, got %q", b, v)
	}
	if _, ok := s.get(noValue); ok {
		t.Fatalf("slot noValue must not yield a value")
	}
	if s.len() != 3 {
		t.Fatalf("expected 3 values, have %d", s.len())
	}
}

func TestValueStoreRejectsBadSlot(t *testing.T) {
	s := newValueStore[int](0)
	s.put(1)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for slot out of range")
		}
	}()
	s.get(5)
}

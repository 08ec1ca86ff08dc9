package statictree

import (
	"errors"
	"io"
	"testing"
)

type failingReader struct {
	n int
}

var errBroken = errors.New("broken stream")

func (r *failingReader) Next() ([]string, int, error) {
	if r.n == 0 {
		return nil, 0, errBroken
	}
	r.n--
	return []string{"k"}, r.n, nil
}

func TestLoadEntryList(t *testing.T) {
	tree, err := LoadEntryList("list", []Entry[string, int]{
		{Key: []string{"a", "b", "c"}, Value: 1},
		{Key: nil, Value: 99},
		{Key: []string{"e", "f"}, Value: 3},
	})
	if err != nil {
		t.Fatal(err)
	}
	if tree.Name() != "list" {
		t.Fatalf("tree should be named list, is %q", tree.Name())
	}
	if tree.Len() != 2 {
		t.Fatalf("expected 2 entries, have %d", tree.Len())
	}
	if v, ok := tree.Find([]string{"e", "f"}); !ok || v != 3 {
		t.Fatalf("e/f should be 3, is %d (found=%v)", v, ok)
	}
}

func TestLoadEntriesPropagatesReaderError(t *testing.T) {
	_, err := LoadEntries[string, int]("broken", &failingReader{n: 2})
	if !errors.Is(err, errBroken) {
		t.Fatalf("expected reader error, got %v", err)
	}
}

func TestSliceReaderEOF(t *testing.T) {
	r := &sliceReader[string, int]{}
	if _, _, err := r.Next(); err != io.EOF {
		t.Fatalf("empty reader should return io.EOF, got %v", err)
	}
}

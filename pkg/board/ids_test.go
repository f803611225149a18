package board

import "testing"

func TestUUIDSource(t *testing.T) {
	var src UUIDSource

	a := src.NewID()
	b := src.NewID()
	if a == "" || b == "" {
		t.Fatal("UUIDSource minted an empty id")
	}
	if a == b {
		t.Fatalf("UUIDSource minted duplicate ids: %q", a)
	}
	if len(a) != 36 {
		t.Errorf("UUIDSource id %q is not UUID shaped", a)
	}
}

func TestSequenceSource(t *testing.T) {
	src := &SequenceSource{Prefix: "node"}

	if got := src.NewID(); got != "node-1" {
		t.Errorf("NewID() = %q, want node-1", got)
	}
	if got := src.NewID(); got != "node-2" {
		t.Errorf("NewID() = %q, want node-2", got)
	}

	defaulted := &SequenceSource{}
	if got := defaulted.NewID(); got != "shape-1" {
		t.Errorf("NewID() = %q, want shape-1", got)
	}
}

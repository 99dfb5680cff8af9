package question

import "testing"

func TestQIDStable(t *testing.T) {
	text := "Which device forwards packets between networks?"
	first := QID(text)
	second := QID(text)
	if first != second {
		t.Fatalf("expected stable id, got %q and %q", first, second)
	}
	if len(first) != 12 {
		t.Fatalf("expected 12 characters, got %d", len(first))
	}
	if QID(text+" ") == first {
		t.Fatalf("expected different text to change the id")
	}
}

func TestQIDKnownValue(t *testing.T) {
	// sha256("abc") = ba7816bf8f01cfea414140de5dae2223...
	if got := QID("abc"); got != "ba7816bf8f01" {
		t.Fatalf("unexpected id %q", got)
	}
}

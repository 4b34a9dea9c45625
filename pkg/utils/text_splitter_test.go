package utils

import (
	"strings"
	"testing"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("short document", 1000, 200)
	if len(chunks) != 1 || chunks[0] != "short document" {
		t.Fatalf("expected single chunk, got %v", chunks)
	}
}

func TestSplitTextOverlap(t *testing.T) {
	text := strings.Repeat("a", 250)
	chunks := SplitText(text, 100, 20)

	// step = 100-20 = 80, so chunks start at 0, 80 and 160
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	for i, c := range chunks[:len(chunks)-1] {
		if len(c) != 100 {
			t.Errorf("chunk %d has length %d, want 100", i, len(c))
		}
	}
	if len(chunks[2]) != 90 {
		t.Errorf("last chunk has length %d, want 90", len(chunks[2]))
	}
	// Each chunk repeats the last 20 runes of its predecessor.
	for i := 1; i < len(chunks); i++ {
		prev, cur := chunks[i-1], chunks[i]
		if prev[len(prev)-20:] != cur[:20] {
			t.Errorf("chunk %d does not overlap its predecessor", i)
		}
	}
}

func TestSplitTextOverlapLargerThanChunk(t *testing.T) {
	text := strings.Repeat("b", 30)
	chunks := SplitText(text, 10, 15)
	// Falls back to non-overlapping steps.
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
}

package tokens

import "testing"

func TestCount_EmptyText(t *testing.T) {
	count, err := Count("text-davinci-003", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

// An unknown model must degrade to an error or a fallback count, never a
// panic: counting is advisory and the interaction continues without it.
func TestCount_UnknownModelDoesNotPanic(t *testing.T) {
	count, err := Count("definitely-not-a-model", "hello world")
	if err != nil {
		t.Logf("encoder unavailable: %v", err)
		return
	}
	if count <= 0 {
		t.Errorf("count = %d, want > 0 for non-empty text", count)
	}
}

package backoff_test

import (
	"testing"

	"github.com/creachadair/gate/backoff"
)

func TestCompletion(t *testing.T) {
	var b backoff.Backoff
	if b.IsCompleted() {
		t.Error("zero Backoff is already completed")
	}

	steps := 0
	for !b.IsCompleted() {
		b.Snooze()
		steps++
		if steps > 1000 {
			t.Fatal("backoff did not complete after 1000 steps")
		}
	}
	t.Logf("Backoff completed after %d steps", steps)
	if steps > 64 {
		t.Errorf("backoff completed after %d steps, want at most 64", steps)
	}

	// Completion is sticky under further snoozing.
	for range 5 {
		b.Snooze()
		if !b.IsCompleted() {
			t.Error("completed backoff reverted after Snooze")
		}
	}
}

func TestReset(t *testing.T) {
	var b backoff.Backoff
	for !b.IsCompleted() {
		b.Snooze()
	}
	b.Reset()
	if b.IsCompleted() {
		t.Error("backoff still completed after Reset")
	}
}

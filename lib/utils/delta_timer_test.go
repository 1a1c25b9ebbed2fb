package utils

import (
	"testing"
	"time"
)

func TestDeltaTimer(t *testing.T) {
	var d DeltaTimer
	start := time.Date(2024, 2, 3, 9, 0, 0, 0, time.UTC)

	if dt := d.NextAt(start); dt != 0 {
		t.Errorf("first delta should be 0, got %s", dt)
	}
	if dt := d.NextAt(start.Add(16 * time.Millisecond)); dt != 16*time.Millisecond {
		t.Errorf("expected 16ms, got %s", dt)
	}
	if dt := d.NextAt(start.Add(50 * time.Millisecond)); dt != 34*time.Millisecond {
		t.Errorf("expected 34ms, got %s", dt)
	}
}

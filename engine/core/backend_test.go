package core

import (
	"testing"
	"time"
)

func TestFrameLimiter(t *testing.T) {
	now := time.Unix(100, 0)
	var slept []time.Duration
	l := FrameLimiter{
		now:   func() time.Time { return now },
		sleep: func(d time.Duration) { slept = append(slept, d) },
	}
	l.SetLimit(10)

	l.Wait()
	now = now.Add(30 * time.Millisecond)
	l.Wait()
	if len(slept) != 1 || slept[0] != 70*time.Millisecond {
		t.Fatalf("slept %v, want [70ms]", slept)
	}

	// The next frame is due 100ms after the padded present.
	now = now.Add(250 * time.Millisecond)
	l.Wait()
	if len(slept) != 1 {
		t.Errorf("slept on a late frame: %v", slept)
	}

	l.SetLimit(0)
	l.Wait()
	if len(slept) != 1 {
		t.Errorf("slept with the limit off: %v", slept)
	}
}

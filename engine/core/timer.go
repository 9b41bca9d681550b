package core

import "time"

// Timer is the simulation clock. It advances one fixed step per Update
// and runs scheduled callbacks when their time comes. It only moves when
// the loop steps, so it stops while the loop is not stepping.
type Timer struct {
	step  time.Duration
	ticks uint64
	total time.Duration

	pending []*Timed
	seq     uint64
}

// Timed is a scheduled callback.
type Timed struct {
	due      time.Duration
	every    time.Duration
	fn       func()
	seq      uint64
	canceled bool
}

// Cancel stops the callback from firing again. Safe to call from inside
// the callback itself.
func (t *Timed) Cancel() { t.canceled = true }

func NewTimer(step time.Duration) *Timer { return &Timer{step: step} }

func (t *Timer) Step() time.Duration  { return t.step }
func (t *Timer) Ticks() uint64        { return t.ticks }
func (t *Timer) Total() time.Duration { return t.total }

// Seconds is Total in seconds.
func (t *Timer) Seconds() float64 { return t.total.Seconds() }

// After runs fn once, d of simulated time from now.
func (t *Timer) After(d time.Duration, fn func()) *Timed {
	return t.schedule(d, 0, fn)
}

// Every runs fn each d of simulated time. Periods shorter than one step
// are raised to one step, so fn runs at most once per Update.
func (t *Timer) Every(d time.Duration, fn func()) *Timed {
	if d < t.step {
		d = t.step
	}
	return t.schedule(d, d, fn)
}

func (t *Timer) schedule(d, every time.Duration, fn func()) *Timed {
	t.seq++
	td := &Timed{due: t.total + d, every: every, fn: fn, seq: t.seq}
	t.pending = append(t.pending, td)
	return td
}

// Update advances one step and fires everything now due, earliest first;
// ties fire in scheduling order.
func (t *Timer) Update() {
	t.ticks++
	t.total += t.step
	for {
		td := t.popDue()
		if td == nil {
			return
		}
		td.fn()
		if td.every > 0 && !td.canceled {
			td.due += td.every
			t.pending = append(t.pending, td)
		}
	}
}

// Pending reports how many callbacks are still scheduled.
func (t *Timer) Pending() int {
	n := 0
	for _, td := range t.pending {
		if !td.canceled {
			n++
		}
	}
	return n
}

func (t *Timer) popDue() *Timed {
	live := t.pending[:0]
	for _, td := range t.pending {
		if !td.canceled {
			live = append(live, td)
		}
	}
	clear(t.pending[len(live):])
	t.pending = live

	best := -1
	for i, td := range t.pending {
		if td.due > t.total {
			continue
		}
		if best < 0 || td.due < t.pending[best].due ||
			(td.due == t.pending[best].due && td.seq < t.pending[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	td := t.pending[best]
	t.pending = append(t.pending[:best], t.pending[best+1:]...)
	return td
}

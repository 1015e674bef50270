package feedback

import (
	"math"
	"strconv"
	"sync"
	"time"
)

// Clock abstraction supaya gampang ditest
type Clock interface {
	Now() time.Time
}

// Ledger is a fixed-capacity FIFO of feedback entries. When full, a new
// entry evicts the oldest one. It is safe for concurrent use.
type Ledger struct {
	mu    sync.RWMutex
	clock Clock

	buf   []Entry
	start int // index of the oldest entry
	size  int

	lastMilli int64
	seq       int
}

// NewLedger returns an empty ledger. A non-positive capacity falls back to
// DefaultCapacity.
func NewLedger(capacity int, clock Clock) *Ledger {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ledger{clock: clock, buf: make([]Entry, capacity)}
}

// Capacity is the maximum number of entries kept.
func (l *Ledger) Capacity() int { return len(l.buf) }

// Submit validates and stores one entry. Ratings outside [1,5] are rejected
// with ErrInvalidRating and never stored.
func (l *Ledger) Submit(rating int, comment string, wasHelpful bool) (Entry, error) {
	if rating < 1 || rating > 5 {
		return Entry{}, ErrInvalidRating
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	e := Entry{
		ID:         l.nextID(now),
		Rating:     rating,
		Comment:    comment,
		WasHelpful: wasHelpful,
		Timestamp:  now,
	}

	end := (l.start + l.size) % len(l.buf)
	l.buf[end] = e
	if l.size < len(l.buf) {
		l.size++
	} else {
		l.start = (l.start + 1) % len(l.buf)
	}
	return e, nil
}

// nextID derives the id from the millisecond timestamp. Submissions within
// the same millisecond, or under a clock that went backwards, reuse the last
// millisecond with an increasing "-N" suffix. Caller holds l.mu.
func (l *Ledger) nextID(now time.Time) string {
	ms := now.UnixMilli()
	if ms > l.lastMilli {
		l.lastMilli = ms
		l.seq = 0
		return strconv.FormatInt(ms, 10)
	}
	l.seq++
	return strconv.FormatInt(l.lastMilli, 10) + "-" + strconv.Itoa(l.seq)
}

// Stats returns aggregates over a consistent snapshot of the ledger.
func (l *Ledger) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.size == 0 {
		return Stats{}
	}
	var sum, helpful int
	for i := 0; i < l.size; i++ {
		e := l.buf[(l.start+i)%len(l.buf)]
		sum += e.Rating
		if e.WasHelpful {
			helpful++
		}
	}
	avg := float64(sum) / float64(l.size)
	return Stats{
		TotalFeedback: l.size,
		AverageRating: math.Round(avg*10) / 10,
		HelpfulCount:  helpful,
	}
}

// Entries returns a copy of the held entries, oldest first.
func (l *Ledger) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, l.size)
	for i := 0; i < l.size; i++ {
		out[i] = l.buf[(l.start+i)%len(l.buf)]
	}
	return out
}

// Len is the number of entries currently held.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.size
}

package services

import (
	"sync"
	"time"

	"github.com/custodia-labs/apikit/internal/core/domain"
	"github.com/custodia-labs/apikit/internal/logger"
)

// KeyedDebouncer coalesces bursts of calls into one callback.
//
// Each Call stores its arguments under a key and restarts a single shared
// timer. When the timer fires, the callback receives the latest arguments
// for every key touched since the previous flush.
//
// Thread-safety: All methods are safe for concurrent use. Flushes of one
// instance never overlap. The callback must not call Flush.
type KeyedDebouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	timer  *time.Timer
	seq    uint64 // sequence number to detect stale timers
	buffer domain.DebounceBuffer

	flushMu  sync.Mutex
	callback func(domain.DebounceBuffer)
}

// NewKeyedDebouncer creates a debouncer that flushes to callback after
// delay has passed without a new call. A non-positive delay falls back to
// domain.DefaultDebounceDelay.
func NewKeyedDebouncer(callback func(domain.DebounceBuffer), delay time.Duration) *KeyedDebouncer {
	if delay <= 0 {
		delay = domain.DefaultDebounceDelay
	}
	return &KeyedDebouncer{
		delay:    delay,
		buffer:   make(domain.DebounceBuffer),
		callback: callback,
	}
}

// Call records args for key and restarts the debounce window.
func (d *KeyedDebouncer) Call(key string, args ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.buffer[key] = args
	d.seq++
	currentSeq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.flush(currentSeq, false)
	})
}

// Flush delivers any buffered calls immediately instead of waiting for the
// window to pass.
func (d *KeyedDebouncer) Flush() {
	d.flush(0, true)
}

// Pending returns the number of keys waiting to be flushed.
func (d *KeyedDebouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buffer.Keys()
}

func (d *KeyedDebouncer) flush(seq uint64, force bool) {
	d.flushMu.Lock()
	defer d.flushMu.Unlock()

	d.mu.Lock()
	if !force && seq != d.seq {
		// A newer call replaced this timer.
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
	buf := d.buffer
	d.buffer = make(domain.DebounceBuffer)
	d.mu.Unlock()

	if buf.Keys() == 0 || d.callback == nil {
		return
	}
	logger.Debug("Debounce flush: %d keys", buf.Keys())
	d.callback(buf)
}

// debounceKey is the single key used by Debouncer.
const debounceKey = "default"

// Debouncer is a KeyedDebouncer with one fixed key. The callback receives
// the arguments of the most recent Call.
type Debouncer struct {
	keyed *KeyedDebouncer
}

// NewDebouncer creates an unkeyed debouncer.
func NewDebouncer(callback func(args ...any), delay time.Duration) *Debouncer {
	return &Debouncer{
		keyed: NewKeyedDebouncer(func(buf domain.DebounceBuffer) {
			if callback != nil {
				callback(buf[debounceKey]...)
			}
		}, delay),
	}
}

// Call records args and restarts the debounce window.
func (d *Debouncer) Call(args ...any) {
	d.keyed.Call(debounceKey, args...)
}

// Flush delivers a pending call immediately.
func (d *Debouncer) Flush() {
	d.keyed.Flush()
}

// IsPending returns true if a call is waiting to be flushed.
func (d *Debouncer) IsPending() bool {
	return d.keyed.Pending() > 0
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wakebench

// Strategy encapsulates how the producer informs one specific consumer that
// new data may be available, and how that consumer waits and wakes.
//
// A Strategy instance is owned exclusively by its worker; its wakeup state
// (semaphore, pending flag, event loop handle) is shared only between the
// producer-invoked Notify and the single owning consumer goroutine, never
// across workers.
type Strategy interface {
	// Init allocates the strategy's wakeup primitives and binds the
	// worker's drain function. The drain function empties the queue and
	// reports whether the shutdown sentinel was observed. Init must be
	// called before Notify or Run.
	Init(drain func() bool) error

	// Notify signals the owning consumer that new data may be available.
	// Called from the producer goroutine; never blocks. Implementations
	// that send a signal execute the queue's memory fence first.
	Notify()

	// Run executes the consumer loop on the calling goroutine and returns
	// once the drain function reports the sentinel.
	Run()
}

// Kind selects a notification strategy.
type Kind int

const (
	// KindBusySpin never blocks the consumer; Notify is a no-op.
	KindBusySpin Kind = iota
	// KindSemaphore blocks the consumer on a semaphore with per-worker
	// wakeup coalescing.
	KindSemaphore
	// KindEventLoop suspends the consumer inside an event loop woken
	// through an async handle.
	KindEventLoop
)

// String returns the benchmark name of the strategy.
func (k Kind) String() string {
	switch k {
	case KindBusySpin:
		return "busy"
	case KindSemaphore:
		return "sema"
	case KindEventLoop:
		return "loop"
	default:
		return "unknown"
	}
}

// Kinds returns all strategy kinds, in declaration order. Callers may
// shuffle the slice to randomize benchmark order.
func Kinds() []Kind {
	return []Kind{KindBusySpin, KindSemaphore, KindEventLoop}
}

// newStrategy creates a strategy of the given kind bound to the shared
// queue. Panics on an unknown kind.
func newStrategy(kind Kind, queue *TokenQueue) Strategy {
	switch kind {
	case KindBusySpin:
		return NewBusySpin()
	case KindSemaphore:
		return NewCoalescingSemaphore(queue)
	case KindEventLoop:
		return NewEventLoop(queue)
	default:
		panic("wakebench: unknown strategy kind")
	}
}

// Package queue provides the unbounded FIFO bridge used to connect
// concurrently running producers to a single lazy consumer, both between
// pipeline stages and inside vendor clients that republish a websocket read
// loop as an iterable sequence.
package queue

import "sync"

// Queue is an unbounded FIFO. Pushes never block; items are delivered in
// arrival order. There is no per-producer identity: ordering is only
// guaranteed within one producer's own pushes, not across producers.
//
// TODO: Optimize memory at some point, the backing slice keeps already
// consumed items alive until the queue is dropped. A ring buffer would do
// better under long sessions.
type Queue[T any] struct {
	mu           sync.Mutex
	items        []T
	consumed     int
	cancelled    bool
	updateSignal chan struct{}
}

func New[T any]() *Queue[T] {
	return &Queue[T]{
		updateSignal: make(chan struct{}, 1),
	}
}

// Push enqueues an item for delivery. Items pushed after Cancel are dropped.
func (q *Queue[T]) Push(item T) {
	q.mu.Lock()
	if q.cancelled {
		q.mu.Unlock()
		return
	}
	q.items = append(q.items, item)
	q.mu.Unlock()
	q.signalUpdate()
}

// Cancel marks that no further items will arrive. The consumer observes
// end-of-stream once every already-enqueued item has been drained.
// Repeated calls are ignored.
func (q *Queue[T]) Cancel() {
	q.mu.Lock()
	q.cancelled = true
	q.mu.Unlock()
	q.signalUpdate()
}

// Items is a single-consumer iterator over the queue's contents. It blocks
// waiting for the next item and returns only after Cancel once all enqueued
// items have been yielded. The consumer may start before any producer
// finishes.
func (q *Queue[T]) Items(yield func(T) bool) {
	for {
		q.mu.Lock()
		if q.consumed < len(q.items) {
			item := q.items[q.consumed]
			q.consumed++
			q.mu.Unlock()
			if !yield(item) {
				return
			}
			continue
		}

		if q.cancelled {
			q.mu.Unlock()
			return
		}

		q.mu.Unlock()
		<-q.updateSignal
	}
}

func (q *Queue[T]) signalUpdate() {
	select {
	case q.updateSignal <- struct{}{}:
	default:
	}
}

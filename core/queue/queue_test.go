package queue

import (
	"sync"
	"testing"
	"time"
)

func TestItemsDeliveredInArrivalOrder(t *testing.T) {
	q := New[int]()
	for i := range 10 {
		q.Push(i)
	}
	q.Cancel()

	var got []int
	for item := range q.Items {
		got = append(got, item)
	}

	if len(got) != 10 {
		t.Fatalf("expected 10 items, got %d", len(got))
	}
	for i, item := range got {
		if item != i {
			t.Fatalf("expected item %d at position %d, got %d", i, i, item)
		}
	}
}

func TestPerProducerOrderPreservedAcrossConcurrentProducers(t *testing.T) {
	type tagged struct {
		producer int
		seq      int
	}

	const producers = 4
	const perProducer = 250

	q := New[tagged]()

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProducer {
				q.Push(tagged{producer: p, seq: i})
			}
		}()
	}

	done := make(chan []tagged, 1)
	go func() {
		var got []tagged
		for item := range q.Items {
			got = append(got, item)
		}
		done <- got
	}()

	wg.Wait()
	q.Cancel()

	var got []tagged
	select {
	case got = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for consumer to drain")
	}

	if len(got) != producers*perProducer {
		t.Fatalf("expected %d items, got %d", producers*perProducer, len(got))
	}

	next := make([]int, producers)
	for _, item := range got {
		if item.seq != next[item.producer] {
			t.Fatalf("producer %d out of order: expected seq %d, got %d", item.producer, next[item.producer], item.seq)
		}
		next[item.producer]++
	}
}

func TestConsumerMayStartBeforeProducersFinish(t *testing.T) {
	q := New[string]()

	received := make(chan string, 1)
	go func() {
		for item := range q.Items {
			received <- item
			return
		}
	}()

	q.Push("first")

	select {
	case item := <-received:
		if item != "first" {
			t.Fatalf("expected %q, got %q", "first", item)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for first item")
	}
}

func TestCancelEndsStreamAfterDrain(t *testing.T) {
	q := New[int]()
	q.Push(1)
	q.Push(2)
	q.Cancel()
	q.Push(3) // dropped

	var got []int
	done := make(chan struct{})
	go func() {
		defer close(done)
		for item := range q.Items {
			got = append(got, item)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not observe end-of-stream after cancel")
	}

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected [1 2], got %v", got)
	}
}

func TestCancelUnblocksWaitingConsumer(t *testing.T) {
	q := New[int]()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range q.Items {
		}
	}()

	time.Sleep(20 * time.Millisecond)
	q.Cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cancel did not unblock waiting consumer")
	}
}

func TestRepeatedCancelIsIgnored(t *testing.T) {
	q := New[int]()
	q.Cancel()
	q.Cancel()

	for range q.Items {
		t.Fatal("expected no items")
	}
}

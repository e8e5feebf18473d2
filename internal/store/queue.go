package store

import (
	"context"
	"log"
	"time"
)

type writeTask struct {
	userID string
	save   func(ctx context.Context) error
}

// writeQueue runs best-effort persistence off the request path. Used only for
// implicit first-use provisioning, where a lost write just means provisioning
// repeats on the next request.
type writeQueue struct {
	tasks chan writeTask
}

func newWriteQueue() *writeQueue {
	q := &writeQueue{
		tasks: make(chan writeTask, 100),
	}

	go q.worker()
	return q
}

func (q *writeQueue) worker() {
	for t := range q.tasks {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := t.save(ctx); err != nil {
			log.Printf("background persist failed for %s: %v", t.userID, err)
		}
		cancel()
	}
}

func (q *writeQueue) Enqueue(t writeTask) {
	select {
	case q.tasks <- t:
	default:
		log.Printf("persist queue full, dropping write for %s", t.userID)
	}
}

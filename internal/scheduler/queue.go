package scheduler

import (
	"sync"

	"github.com/oshokin/alarm-scheduler/internal/domain/alarm"
)

// Queue is the shared, expiry-ordered sequence of pending alarm requests.
// A single mutex guards every read and write; the sequence is fully sorted
// (ascending by expiry, stable on ties) after any mutation completes.
type Queue struct {
	// mu protects concurrent access to the pending sequence.
	mu sync.Mutex
	// pending is sorted ascending by ExpiresAt, submission order on ties.
	pending []*alarm.Request
}

// NewQueue returns an empty pending queue.
func NewQueue() *Queue {
	return new(Queue)
}

// Insert places the request at its sorted position: immediately before the
// first entry whose expiry is strictly later, so requests with equal expiry
// instants keep their submission order.
func (q *Queue) Insert(request *alarm.Request) {
	q.mu.Lock()
	defer q.mu.Unlock()

	position := len(q.pending)

	for i, pending := range q.pending {
		if pending.ExpiresAt.After(request.ExpiresAt) {
			position = i
			break
		}
	}

	q.pending = append(q.pending, nil)
	copy(q.pending[position+1:], q.pending[position:])
	q.pending[position] = request
}

// TakeEarliest removes and returns the earliest-due request. It never
// blocks: when the queue is empty it reports false and the caller decides
// how long to back off, which keeps Insert from being starved.
func (q *Queue) TakeEarliest() (*alarm.Request, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil, false
	}

	request := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]

	return request, true
}

// Len returns the number of pending requests.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.pending)
}

// Snapshot returns a copy of the pending sequence in queue order.
func (q *Queue) Snapshot() []*alarm.Request {
	q.mu.Lock()
	defer q.mu.Unlock()

	result := make([]*alarm.Request, 0, len(q.pending))
	for _, pending := range q.pending {
		result = append(result, pending.Clone())
	}

	return result
}

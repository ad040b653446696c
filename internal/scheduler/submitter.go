package scheduler

import (
	"context"
	"time"

	"github.com/oshokin/alarm-scheduler/internal/domain/alarm"
)

// Submitter turns validated (duration, message) pairs into alarm requests
// and enters them into the pending queue. The expiry instant is stamped
// exactly once, at submission.
type Submitter struct {
	// queue receives the new requests in sorted position.
	queue *Queue
	// reporter receives Received notifications.
	reporter Reporter
	// now returns the current time; injectable for tests.
	now func() time.Time
}

// NewSubmitter wires a submitter to the pending queue.
func NewSubmitter(queue *Queue, reporter Reporter) *Submitter {
	return &Submitter{
		queue:    queue,
		reporter: reporter,
		now:      time.Now,
	}
}

// Submit validates the pair, stamps the expiry instant and inserts the
// request at its sorted position. The insert path blocks only for the
// queue's brief critical section.
func (s *Submitter) Submit(ctx context.Context, seconds int, message string) (*alarm.Request, error) {
	request, err := alarm.NewRequest(seconds, message, s.now())
	if err != nil {
		return nil, err
	}

	s.queue.Insert(request)
	s.reporter.Received(ctx, request)

	return request, nil
}

package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/oshokin/alarm-scheduler/internal/config"
	"github.com/oshokin/alarm-scheduler/internal/domain/alarm"
)

// Options controls scheduler construction.
type Options struct {
	// PollInterval overrides the dispatcher's empty-queue sleep.
	PollInterval time.Duration
	// TickInterval overrides the workers' countdown reporting period.
	TickInterval time.Duration
	// Reporter receives all lifecycle notifications.
	Reporter Reporter
}

// Scheduler owns the shared pending queue, one mailbox and one countdown
// worker per routing class, and the dispatcher connecting them. The queue
// and the mailboxes live for the scheduler's whole lifetime; there is no
// per-request teardown beyond the worker releasing an expired request.
type Scheduler struct {
	queue      *Queue
	mailboxes  map[alarm.Class]*Mailbox
	submitter  *Submitter
	dispatcher *Dispatcher
	workers    []*Worker
}

// New assembles a scheduler. Zero option values fall back to the
// configuration defaults; a nil reporter discards notifications.
func New(opts *Options) *Scheduler {
	if opts == nil {
		opts = new(Options)
	}

	pollInterval := opts.PollInterval
	if pollInterval <= 0 {
		pollInterval = config.DefaultPollInterval
	}

	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = config.DefaultTickInterval
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = NopReporter{}
	}

	queue := NewQueue()
	mailboxes := make(map[alarm.Class]*Mailbox, len(alarm.Classes()))
	workers := make([]*Worker, 0, len(alarm.Classes()))

	for _, class := range alarm.Classes() {
		mailbox := NewMailbox()
		mailboxes[class] = mailbox
		workers = append(workers, NewWorker(class, mailbox, tickInterval, reporter))
	}

	return &Scheduler{
		queue:      queue,
		mailboxes:  mailboxes,
		submitter:  NewSubmitter(queue, reporter),
		dispatcher: NewDispatcher(queue, mailboxes, pollInterval, reporter),
		workers:    workers,
	}
}

// Submit validates and enqueues a new alarm request.
func (s *Scheduler) Submit(ctx context.Context, seconds int, message string) (*alarm.Request, error) {
	return s.submitter.Submit(ctx, seconds, message)
}

// Pending returns a snapshot of the queued requests in expiry order.
func (s *Scheduler) Pending() []*alarm.Request {
	return s.queue.Snapshot()
}

// Run starts the dispatcher and the countdown workers and blocks until ctx
// is canceled and every loop has returned. Cancellation closes the
// mailboxes so workers blocked on an empty mailbox wake up and exit.
func (s *Scheduler) Run(ctx context.Context) {
	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		s.dispatcher.Run(ctx)
	}()

	for _, worker := range s.workers {
		wg.Add(1)

		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}

	<-ctx.Done()

	for _, mailbox := range s.mailboxes {
		mailbox.Close()
	}

	wg.Wait()
}

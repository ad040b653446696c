package scheduler

import (
	"context"
	"time"

	"github.com/oshokin/alarm-scheduler/internal/domain/alarm"
	"github.com/oshokin/alarm-scheduler/internal/logger"
)

// Dispatcher drains the earliest-due request from the pending queue and
// routes it to the worker mailbox selected by the request's class.
type Dispatcher struct {
	// queue is the shared pending queue drained by this dispatcher.
	queue *Queue
	// mailboxes maps each routing class to its worker's mailbox.
	mailboxes map[alarm.Class]*Mailbox
	// pollInterval is the sleep between polls while the queue is empty.
	// Sleeping with the lock released guarantees the submitter an
	// opportunity to insert at least once per interval.
	pollInterval time.Duration
	// reporter receives Routed notifications.
	reporter Reporter
}

// NewDispatcher wires a dispatcher to the queue and the per-class mailboxes.
func NewDispatcher(
	queue *Queue,
	mailboxes map[alarm.Class]*Mailbox,
	pollInterval time.Duration,
	reporter Reporter,
) *Dispatcher {
	return &Dispatcher{
		queue:        queue,
		mailboxes:    mailboxes,
		pollInterval: pollInterval,
		reporter:     reporter,
	}
}

// Run loops until ctx is canceled. When the queue yields a request it is
// routed and the loop continues immediately, so back-to-back due alarms
// drain without delay; only an empty queue causes a poll-interval sleep.
func (d *Dispatcher) Run(ctx context.Context) {
	ctx = logger.WithName(ctx, "dispatcher")

	timer := time.NewTimer(d.pollInterval)
	defer timer.Stop()

	for {
		if request, ok := d.queue.TakeEarliest(); ok {
			d.route(ctx, request)
			continue
		}

		timer.Reset(d.pollInterval)

		select {
		case <-ctx.Done():
			logger.Debug(ctx, "Context canceled, exiting")
			return
		case <-timer.C:
		}
	}
}

// route hands the request to the mailbox of its class and signals the worker.
func (d *Dispatcher) route(ctx context.Context, request *alarm.Request) {
	class := request.Class()

	d.mailboxes[class].Put(request)
	d.reporter.Routed(ctx, class, request)
}

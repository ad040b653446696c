package scheduler

import (
	"context"
	"time"

	"github.com/oshokin/alarm-scheduler/internal/domain/alarm"
	"github.com/oshokin/alarm-scheduler/internal/logger"
)

// Worker consumes one alarm request at a time from its mailbox and reports
// the countdown until expiry. Once dequeued, a request is owned exclusively
// by this worker until its expiry is reported.
type Worker struct {
	// class is the routing class this worker serves.
	class alarm.Class
	// mailbox is the worker's private handoff queue.
	mailbox *Mailbox
	// tickInterval is the pause between countdown reports. The countdown is
	// a coarse ticker, not a precise timer; drift of up to one interval is
	// accepted.
	tickInterval time.Duration
	// reporter receives WorkerReceived, CountdownTick and Expired notifications.
	reporter Reporter
	// now returns the current time; injectable for tests.
	now func() time.Time
}

// NewWorker wires a countdown worker to its mailbox.
func NewWorker(class alarm.Class, mailbox *Mailbox, tickInterval time.Duration, reporter Reporter) *Worker {
	return &Worker{
		class:        class,
		mailbox:      mailbox,
		tickInterval: tickInterval,
		reporter:     reporter,
		now:          time.Now,
	}
}

// Run loops until the mailbox is closed and drained or ctx is canceled
// mid-countdown. Requests are processed strictly one at a time in mailbox
// order.
func (w *Worker) Run(ctx context.Context) {
	ctx = logger.WithKV(logger.WithName(ctx, "worker"), "class", w.class.String())

	for {
		request, ok := w.mailbox.Take()
		if !ok {
			logger.Debug(ctx, "Mailbox closed, exiting")
			return
		}

		w.reporter.WorkerReceived(ctx, w.class, request)

		if !w.countdown(ctx, request) {
			// Canceled mid-countdown; the request is abandoned, not reported.
			return
		}

		w.reporter.Expired(ctx, w.class, request)
	}
}

// countdown reports remaining seconds every tick until the request expires.
// It returns false if ctx was canceled before expiry.
func (w *Worker) countdown(ctx context.Context, request *alarm.Request) bool {
	timer := time.NewTimer(w.tickInterval)
	defer timer.Stop()

	for {
		now := w.now()
		if request.Expired(now) {
			return true
		}

		w.reporter.CountdownTick(ctx, w.class, request.SecondsLeft(now), request)

		timer.Reset(w.tickInterval)

		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
	}
}

package scheduler

import (
	"context"

	"github.com/oshokin/alarm-scheduler/internal/domain/alarm"
	"github.com/oshokin/alarm-scheduler/internal/logger"
)

// Reporter is the sink for alarm lifecycle notifications. Every call is
// fire-and-forget: the core never consumes a return value, so a slow or
// failing sink cannot corrupt scheduling state.
type Reporter interface {
	// Received reports that a request was accepted and queued.
	Received(ctx context.Context, request *alarm.Request)
	// Routed reports that the dispatcher handed a request to a worker class.
	Routed(ctx context.Context, class alarm.Class, request *alarm.Request)
	// WorkerReceived reports that a worker dequeued a request and owns it now.
	WorkerReceived(ctx context.Context, class alarm.Class, request *alarm.Request)
	// CountdownTick reports the remaining whole seconds of an active countdown.
	CountdownTick(ctx context.Context, class alarm.Class, secondsLeft int, request *alarm.Request)
	// Expired reports that a request's countdown completed.
	Expired(ctx context.Context, class alarm.Class, request *alarm.Request)
}

// LogReporter writes every notification as a structured log line.
type LogReporter struct{}

// NewLogReporter returns the log-backed notification sink.
func NewLogReporter() *LogReporter {
	return new(LogReporter)
}

// Received logs acceptance of a new alarm request.
func (r *LogReporter) Received(ctx context.Context, request *alarm.Request) {
	logger.InfoKV(ctx, "Alarm request received",
		"seconds", request.Seconds, "message", request.Message)
}

// Routed logs the dispatcher handing a request to a worker class.
func (r *LogReporter) Routed(ctx context.Context, class alarm.Class, request *alarm.Request) {
	logger.InfoKV(ctx, "Alarm request passed to worker",
		"class", class.String(), "seconds", request.Seconds, "message", request.Message)
}

// WorkerReceived logs a worker taking ownership of a request.
func (r *LogReporter) WorkerReceived(ctx context.Context, class alarm.Class, request *alarm.Request) {
	logger.InfoKV(ctx, "Worker received alarm request",
		"class", class.String(), "seconds", request.Seconds,
		"message", request.Message, "expires_at", request.ExpiresAt)
}

// CountdownTick logs the remaining seconds of an active countdown.
func (r *LogReporter) CountdownTick(
	ctx context.Context,
	class alarm.Class,
	secondsLeft int,
	request *alarm.Request,
) {
	logger.InfoKV(ctx, "Seconds left until alarm",
		"class", class.String(), "seconds_left", secondsLeft,
		"seconds", request.Seconds, "message", request.Message)
}

// Expired logs the completion of a countdown.
func (r *LogReporter) Expired(ctx context.Context, class alarm.Class, request *alarm.Request) {
	logger.InfoKV(ctx, "Alarm expired",
		"class", class.String(), "seconds", request.Seconds, "message", request.Message)
}

// NopReporter discards every notification.
type NopReporter struct{}

// Received implements Reporter.
func (NopReporter) Received(context.Context, *alarm.Request) {}

// Routed implements Reporter.
func (NopReporter) Routed(context.Context, alarm.Class, *alarm.Request) {}

// WorkerReceived implements Reporter.
func (NopReporter) WorkerReceived(context.Context, alarm.Class, *alarm.Request) {}

// CountdownTick implements Reporter.
func (NopReporter) CountdownTick(context.Context, alarm.Class, int, *alarm.Request) {}

// Expired implements Reporter.
func (NopReporter) Expired(context.Context, alarm.Class, *alarm.Request) {}

package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/oshokin/alarm-scheduler/internal/domain/alarm"
)

// recordingReporter captures lifecycle notifications as compact strings so
// tests can assert on event order across goroutines.
type recordingReporter struct {
	// mu guards events; reporters are called from several goroutines.
	mu sync.Mutex
	// events holds entries like "expired:odd:tea".
	events []string
}

// record appends a formatted event under the lock.
func (r *recordingReporter) record(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, fmt.Sprintf(format, args...))
}

// Received implements Reporter.
func (r *recordingReporter) Received(_ context.Context, request *alarm.Request) {
	r.record("received:%s", request.Message)
}

// Routed implements Reporter.
func (r *recordingReporter) Routed(_ context.Context, class alarm.Class, request *alarm.Request) {
	r.record("routed:%s:%s", class, request.Message)
}

// WorkerReceived implements Reporter.
func (r *recordingReporter) WorkerReceived(_ context.Context, class alarm.Class, request *alarm.Request) {
	r.record("worker-received:%s:%s", class, request.Message)
}

// CountdownTick implements Reporter.
func (r *recordingReporter) CountdownTick(
	_ context.Context,
	class alarm.Class,
	secondsLeft int,
	request *alarm.Request,
) {
	r.record("tick:%s:%d:%s", class, secondsLeft, request.Message)
}

// Expired implements Reporter.
func (r *recordingReporter) Expired(_ context.Context, class alarm.Class, request *alarm.Request) {
	r.record("expired:%s:%s", class, request.Message)
}

// snapshot returns a copy of the recorded events.
func (r *recordingReporter) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]string, len(r.events))
	copy(result, r.events)

	return result
}

// filter returns the recorded events having the given prefix, in order.
func (r *recordingReporter) filter(prefix string) []string {
	var result []string

	for _, event := range r.snapshot() {
		if len(event) >= len(prefix) && event[:len(prefix)] == prefix {
			result = append(result, event)
		}
	}

	return result
}

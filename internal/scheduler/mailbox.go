package scheduler

import (
	"sync"

	"github.com/oshokin/alarm-scheduler/internal/domain/alarm"
)

// Mailbox is a per-worker handoff channel: an unbounded FIFO of alarm
// requests plus a condition signal. The dispatcher never blocks on Put, and
// a request queued while the worker was busy counting down is observed the
// next time the worker returns to Take — there is no slot to overwrite and
// no wakeup to lose.
type Mailbox struct {
	// mu guards items and closed; cond is signalled on Put and Close.
	mu   sync.Mutex
	cond *sync.Cond
	// items holds handed-off requests in arrival order.
	items []*alarm.Request
	// closed marks the mailbox as shut down; Take drains and then reports false.
	closed bool
}

// NewMailbox returns an empty open mailbox.
func NewMailbox() *Mailbox {
	m := new(Mailbox)
	m.cond = sync.NewCond(&m.mu)

	return m
}

// Put appends the request and wakes one waiting worker. It never blocks.
// Requests put after Close are dropped: the worker pool is already gone.
func (m *Mailbox) Put(request *alarm.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	m.items = append(m.items, request)
	m.cond.Signal()
}

// Take blocks until a request is available or the mailbox is closed.
// Queued requests are still delivered after Close; false means the mailbox
// is closed and drained.
func (m *Mailbox) Take() (*alarm.Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for len(m.items) == 0 && !m.closed {
		m.cond.Wait()
	}

	if len(m.items) == 0 {
		return nil, false
	}

	request := m.items[0]
	m.items[0] = nil
	m.items = m.items[1:]

	return request, true
}

// Len returns the number of queued requests.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.items)
}

// Close shuts the mailbox down and wakes every waiter. Idempotent.
func (m *Mailbox) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	m.closed = true
	m.cond.Broadcast()
}

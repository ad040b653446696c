package scheduler

import (
	"context"
	"fmt"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-scheduler/internal/domain/alarm"
)

// startScheduler runs the scheduler in the background and returns a stop
// function that cancels it and waits for all loops to return.
func startScheduler(s *Scheduler) (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		s.Run(ctx)
	}()

	return func() {
		cancel()
		<-done
	}
}

// TestScheduler_ConcreteScenario plays the reference scenario: submit
// (5, "a") then (3, "b") at the same instant. The queue orders b before a,
// the dispatcher routes b first, and b expires strictly before a.
func TestScheduler_ConcreteScenario(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		recorder := new(recordingReporter)
		s := New(&Options{
			PollInterval: time.Second,
			TickInterval: 2 * time.Second,
			Reporter:     recorder,
		})

		_, err := s.Submit(context.Background(), 5, "a")
		require.NoError(t, err)

		_, err = s.Submit(context.Background(), 3, "b")
		require.NoError(t, err)

		// Queue holds b (earlier expiry) before a.
		pending := s.Pending()
		require.Len(t, pending, 2)
		require.Equal(t, "b", pending[0].Message)
		require.Equal(t, "a", pending[1].Message)

		stop := startScheduler(s)
		defer stop()

		time.Sleep(8 * time.Second)
		synctest.Wait()

		routed := recorder.filter("routed")
		require.Len(t, routed, 2)
		require.Contains(t, routed[0], ":b")
		require.Contains(t, routed[1], ":a")

		expired := recorder.filter("expired")
		require.Len(t, expired, 2)
		require.Contains(t, expired[0], ":b")
		require.Contains(t, expired[1], ":a")
	})
}

// TestScheduler_RoutingDeterminism submits alarms with known expiry parity
// and checks each is handled by the worker of its class.
func TestScheduler_RoutingDeterminism(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		recorder := new(recordingReporter)
		s := New(&Options{
			PollInterval: time.Second,
			TickInterval: time.Second,
			Reporter:     recorder,
		})

		now := time.Now()

		// Durations 3 and 4 from the same submission instant land on
		// opposite parities.
		first, err := s.Submit(context.Background(), 3, "first")
		require.NoError(t, err)

		second, err := s.Submit(context.Background(), 4, "second")
		require.NoError(t, err)

		firstClass := alarm.ClassOf(now.Add(3 * time.Second))
		secondClass := alarm.ClassOf(now.Add(4 * time.Second))
		require.NotEqual(t, firstClass, secondClass)
		require.Equal(t, firstClass, first.Class())
		require.Equal(t, secondClass, second.Class())

		stop := startScheduler(s)
		defer stop()

		time.Sleep(7 * time.Second)
		synctest.Wait()

		require.Equal(t,
			[]string{"worker-received:" + firstClass.String() + ":first"},
			recorder.filter("worker-received:"+firstClass.String()))
		require.Equal(t,
			[]string{"worker-received:" + secondClass.String() + ":second"},
			recorder.filter("worker-received:"+secondClass.String()))
		require.Equal(t,
			[]string{"expired:" + firstClass.String() + ":first"},
			recorder.filter("expired:"+firstClass.String()))
		require.Equal(t,
			[]string{"expired:" + secondClass.String() + ":second"},
			recorder.filter("expired:"+secondClass.String()))
	})
}

// TestScheduler_NoLossUnderSameClassBurst is the single-slot overwrite
// regression: many same-class alarms dispatched while the worker is slowed
// must all be reported expired exactly once.
func TestScheduler_NoLossUnderSameClassBurst(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		recorder := new(recordingReporter)

		// A long tick slows the worker: the dispatcher outruns it and the
		// mailbox has to buffer the burst.
		s := New(&Options{
			PollInterval: time.Second,
			TickInterval: 10 * time.Second,
			Reporter:     recorder,
		})

		const burst = 5

		// Durations two seconds apart keep every expiry on the same parity.
		var class alarm.Class

		for i := range burst {
			request, err := s.Submit(context.Background(), 2+2*i, fmt.Sprintf("burst-%d", i))
			require.NoError(t, err)

			if i == 0 {
				class = request.Class()
			} else {
				require.Equal(t, class, request.Class())
			}
		}

		stop := startScheduler(s)
		defer stop()

		time.Sleep(time.Duration(2+2*burst+20) * time.Second)
		synctest.Wait()

		// Every alarm expired exactly once, in the order the dispatcher
		// selected them (FIFO within the class).
		want := make([]string, 0, burst)
		for i := range burst {
			want = append(want, fmt.Sprintf("expired:%s:burst-%d", class, i))
		}

		require.Equal(t, want, recorder.filter("expired"))
	})
}

package notify

import (
	"testing"
	"time"
)

func TestHub_NotifyReachesSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe("rentals")
	defer cancel()

	hub.Notify("rentals")

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a change signal")
	}
}

func TestHub_OtherTableDoesNotSignal(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe("rentals")
	defer cancel()

	hub.Notify("gadgets")

	select {
	case <-ch:
		t.Fatal("unexpected signal for unrelated table")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_NotifyCoalesces(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe("transactions")
	defer cancel()

	// Burst of writes collapses into a single pending signal.
	hub.Notify("transactions")
	hub.Notify("transactions")
	hub.Notify("transactions")

	<-ch
	select {
	case <-ch:
		t.Fatal("signals should coalesce")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_CancelStopsDelivery(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe("students")
	cancel()

	hub.Notify("students")

	select {
	case <-ch:
		t.Fatal("cancelled subscriber should not be signaled")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_MultipleSubscribers(t *testing.T) {
	hub := NewHub()
	ch1, cancel1 := hub.Subscribe("gadgets")
	defer cancel1()
	ch2, cancel2 := hub.Subscribe("gadgets")
	defer cancel2()

	hub.Notify("gadgets")

	for _, ch := range []<-chan struct{}{ch1, ch2} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("every subscriber should be signaled")
		}
	}
}

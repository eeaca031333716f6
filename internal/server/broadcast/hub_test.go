package broadcast

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, s *Subscription) Event {
	t.Helper()
	select {
	case ev, ok := <-s.Events():
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestHub_RoutesByTopic(t *testing.T) {
	h := NewHub(4)
	sess := h.Subscribe(SessionTopic("s1"))
	other := h.Subscribe(SessionTopic("s2"))
	owner := h.Subscribe(OwnerTopic("t1"))
	defer h.Close()

	n := h.Publish(SessionTopic("s1"), Event{Type: EventCheckIn, StudentName: "Asha", RollNumber: "101"})
	assert.Equal(t, 1, n)
	ev := recv(t, sess)
	assert.Equal(t, "Asha", ev.StudentName)

	h.Publish(OwnerTopic("t1"), Event{Type: EventDashboardRefresh, Subject: "Physics"})
	assert.Equal(t, "Physics", recv(t, owner).Subject)

	select {
	case ev := <-other.Events():
		t.Fatalf("unexpected event on s2: %+v", ev)
	default:
	}
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	h := NewHub(1)
	assert.Equal(t, 0, h.Publish(SessionTopic("nobody"), Event{Type: EventCheckIn}))
}

func TestHub_FullBufferDropsWithoutBlocking(t *testing.T) {
	h := NewHub(1)
	s := h.Subscribe(SessionTopic("s1"))
	defer s.Close()

	assert.Equal(t, 1, h.Publish(s.Topic(), Event{Type: EventCheckIn, RollNumber: "1"}))

	done := make(chan int)
	go func() { done <- h.Publish(s.Topic(), Event{Type: EventCheckIn, RollNumber: "2"}) }()

	select {
	case n := <-done:
		assert.Equal(t, 0, n, "second event must be dropped")
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full subscriber")
	}

	assert.Equal(t, "1", recv(t, s).RollNumber)
}

func TestSubscription_CloseIsIdempotent(t *testing.T) {
	h := NewHub(1)
	s := h.Subscribe(OwnerTopic("t1"))
	require.Equal(t, 1, h.Subscribers(OwnerTopic("t1")))

	s.Close()
	s.Close()

	_, ok := <-s.Events()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Subscribers(OwnerTopic("t1")))
}

func TestHub_CloseTopic(t *testing.T) {
	h := NewHub(1)
	a := h.Subscribe(SessionTopic("s1"))
	b := h.Subscribe(SessionTopic("s1"))
	keep := h.Subscribe(SessionTopic("s2"))

	h.CloseTopic(SessionTopic("s1"))

	_, okA := <-a.Events()
	_, okB := <-b.Events()
	assert.False(t, okA)
	assert.False(t, okB)
	assert.Equal(t, 1, h.Subscribers(SessionTopic("s2")))

	a.Close()
	keep.Close()
}

func TestHub_ConcurrentPublishAndClose(t *testing.T) {
	h := NewHub(8)
	topic := SessionTopic("s1")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s := h.Subscribe(topic)
			s.Close()
		}()
		go func() {
			defer wg.Done()
			h.Publish(topic, Event{Type: EventCheckIn})
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, h.Subscribers(topic))
}

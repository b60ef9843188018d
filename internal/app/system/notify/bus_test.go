package notify

import (
	"sync"
	"testing"

	"go.uber.org/zap"
)

func TestBus_PublishReachesEntitySubscribersOnly(t *testing.T) {
	bus := New(zap.NewNop())

	var students, services int
	bus.Subscribe(EntityStudents, func() { students++ })
	bus.Subscribe(EntityServices, func() { services++ })

	bus.Publish(EntityStudents)
	bus.Publish(EntityStudents)

	if students != 2 {
		t.Errorf("students subscriber called %d times, want 2", students)
	}
	if services != 0 {
		t.Errorf("services subscriber called %d times, want 0", services)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := New(zap.NewNop())

	var calls int
	id := bus.Subscribe(EntityServices, func() { calls++ })
	bus.Publish(EntityServices)
	bus.Unsubscribe(id)
	bus.Publish(EntityServices)

	if calls != 1 {
		t.Errorf("subscriber called %d times, want 1 after unsubscribe", calls)
	}
}

func TestBus_UnsubscribeUnknownIDIsIgnored(t *testing.T) {
	bus := New(zap.NewNop())
	bus.Unsubscribe(42) // must not panic
	bus.Publish(EntityMentors)
}

func TestBus_PublishWithNoSubscribers(t *testing.T) {
	bus := New(zap.NewNop())
	bus.Publish(EntityStudents) // no-op, must not panic
}

func TestBus_ConcurrentPublishAndSubscribe(t *testing.T) {
	bus := New(zap.NewNop())

	var mu sync.Mutex
	calls := 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			bus.Subscribe(EntityServices, func() {
				mu.Lock()
				calls++
				mu.Unlock()
			})
		}()
		go func() {
			defer wg.Done()
			bus.Publish(EntityServices)
		}()
	}
	wg.Wait()

	bus.Publish(EntityServices)
	mu.Lock()
	defer mu.Unlock()
	if calls < 8 {
		t.Errorf("final publish reached %d subscribers, want at least 8", calls)
	}
}

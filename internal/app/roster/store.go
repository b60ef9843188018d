// internal/app/roster/store.go
package roster

import (
	"context"
	"sync"

	"github.com/lumenadvising/lumenhub/internal/app/store/students"
	"github.com/lumenadvising/lumenhub/internal/app/system/notify"
	"github.com/lumenadvising/lumenhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Store is the read-side cache of student view models. It is created at
// app start, primed with one Refresh, and then kept current by change
// notifications: any student/service/mentor change triggers a full
// refetch and rebuild. That is deliberately simple — there is no
// incremental patching and no debouncing, so a burst of notifications
// causes redundant rebuilds. Acceptable at consulting-desk scale; revisit
// before pointing this at a bigger tenant.
type Store struct {
	students *students.Store
	log      *zap.Logger

	mu        sync.RWMutex
	records   []StudentRecord
	listeners []func()

	subIDs []int
}

// NewStore creates the cache. Call Start to prime it and attach it to
// the bus, and Stop on shutdown.
func NewStore(studentStore *students.Store, logger *zap.Logger) *Store {
	return &Store{
		students: studentStore,
		log:      logger,
	}
}

// Start primes the cache and subscribes to change notifications. A
// failing initial load is returned to the caller; notification-driven
// refreshes only log.
func (s *Store) Start(ctx context.Context, bus *notify.Bus) error {
	if err := s.Refresh(ctx); err != nil {
		return err
	}
	refetch := func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.Medium())
		defer cancel()
		if err := s.Refresh(ctx); err != nil {
			s.log.Error("roster: refresh on notification failed", zap.Error(err))
		}
	}
	for _, entity := range []string{notify.EntityStudents, notify.EntityServices, notify.EntityMentors} {
		s.subIDs = append(s.subIDs, bus.Subscribe(entity, refetch))
	}
	return nil
}

// Stop detaches the cache from the bus.
func (s *Store) Stop(bus *notify.Bus) {
	for _, id := range s.subIDs {
		bus.Unsubscribe(id)
	}
	s.subIDs = nil
}

// Refresh refetches everything and rebuilds the full record list. The
// previous cache stays in place if the fetch fails.
func (s *Store) Refresh(ctx context.Context) error {
	sts, svcsByStudent, err := s.students.ListWithServices(ctx)
	if err != nil {
		return err
	}

	records := make([]StudentRecord, 0, len(sts))
	for _, st := range sts {
		rec, dropped := BuildRecord(st, svcsByStudent[st.ID])
		if dropped > 0 {
			s.log.Warn("roster: staffing rows dropped for unparsable mentor ids",
				zap.String("student_id", st.ID),
				zap.Int("dropped", dropped))
		}
		records = append(records, rec)
	}

	s.mu.Lock()
	s.records = records
	listeners := append([]func(){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
	return nil
}

// GetAll returns the cached records. The slice is shared; callers must
// not mutate it.
func (s *Store) GetAll() []StudentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Get returns one cached record by student id.
func (s *Store) Get(id string) (StudentRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return StudentRecord{}, false
}

// Subscribe registers a listener invoked after every successful rebuild.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Summary rolls up the cached records.
func (s *Store) Summary() Summary {
	return Summarize(s.GetAll())
}

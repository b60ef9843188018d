package roster

import (
	"testing"

	"go.uber.org/zap"

	"github.com/lumenadvising/lumenhub/internal/app/store/students"
	"github.com/lumenadvising/lumenhub/internal/app/system/notify"
	"github.com/lumenadvising/lumenhub/internal/domain/models"
	"github.com/lumenadvising/lumenhub/internal/testutil"
)

func TestStore_StartPrimesCache(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	st := fix.CreateStudent(ctx, "Li Ming")
	fix.CreateService(ctx, st.ID, "美本申请", "留学申请", models.ServiceInProgress)

	bus := notify.New(zap.NewNop())
	cache := NewStore(students.New(db), zap.NewNop())
	if err := cache.Start(ctx, bus); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer cache.Stop(bus)

	records := cache.GetAll()
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec, ok := cache.Get(st.ID)
	if !ok {
		t.Fatal("Get: record not found")
	}
	if rec.Name != "Li Ming" || len(rec.Services) != 1 {
		t.Errorf("rec = %+v, want the built view model", rec)
	}

	sum := cache.Summary()
	if sum.Total != 1 || sum.ActiveCount != 1 {
		t.Errorf("summary = %+v, want one active student", sum)
	}
}

func TestStore_RefreshesOnNotification(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	bus := notify.New(zap.NewNop())
	cache := NewStore(students.New(db), zap.NewNop())
	if err := cache.Start(ctx, bus); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer cache.Stop(bus)

	if got := cache.GetAll(); len(got) != 0 {
		t.Fatalf("cache not empty before any data: %d records", len(got))
	}

	rebuilt := make(chan struct{}, 4)
	cache.Subscribe(func() { rebuilt <- struct{}{} })

	fix.CreateStudent(ctx, "New Student")
	bus.Publish(notify.EntityStudents)

	// Publish is synchronous, so the rebuild has happened by now.
	select {
	case <-rebuilt:
	default:
		t.Fatal("rebuild listener not invoked after publish")
	}
	if got := cache.GetAll(); len(got) != 1 {
		t.Errorf("got %d records after notification, want 1", len(got))
	}
}

func TestStore_StopDetaches(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	bus := notify.New(zap.NewNop())
	cache := NewStore(students.New(db), zap.NewNop())
	if err := cache.Start(ctx, bus); err != nil {
		t.Fatalf("Start: %v", err)
	}
	cache.Stop(bus)

	fix.CreateStudent(ctx, "Late Arrival")
	bus.Publish(notify.EntityStudents)

	if got := cache.GetAll(); len(got) != 0 {
		t.Errorf("got %d records after Stop, want stale cache untouched", len(got))
	}
}

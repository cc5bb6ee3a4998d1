// README: Concurrency tests for booking creation and transitions (run with -race).
package booking

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"gari/internal/types"
)

func TestConcurrentCreateSameCarWindow(t *testing.T) {
	ctx := context.Background()
	store, carID := setupTestStore(t)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	start := make(chan struct{})

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			<-start
			b := testBooking(carID, types.ID(fmt.Sprintf("user%d", n)), 10, 12)
			errs <- store.CreateIfAvailable(ctx, b)
		}(i)
	}

	close(start)
	wg.Wait()
	close(errs)

	success := 0
	for err := range errs {
		if err == nil {
			success++
			continue
		}
		if !errors.Is(err, ErrCarUnavailable) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if success != 1 {
		t.Fatalf("expected exactly 1 successful create, got %d", success)
	}
}

func TestCreateBlockedByConfirmedOverlap(t *testing.T) {
	ctx := context.Background()
	store, carID := setupTestStore(t)

	first := testBooking(carID, "user1", 10, 12)
	if err := store.CreateIfAvailable(ctx, first); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if ok, err := store.UpdateStatus(ctx, first.ID, StatusPending, StatusConfirmed, nil); err != nil || !ok {
		t.Fatalf("confirm first: ok=%v err=%v", ok, err)
	}

	overlapping := testBooking(carID, "user2", 11, 13)
	if err := store.CreateIfAvailable(ctx, overlapping); !errors.Is(err, ErrCarUnavailable) {
		t.Fatalf("overlapping create: err = %v, want ErrCarUnavailable", err)
	}

	adjacent := testBooking(carID, "user3", 12, 14)
	if err := store.CreateIfAvailable(ctx, adjacent); err != nil {
		t.Fatalf("adjacent create should succeed: %v", err)
	}
}

func TestCreateBlockedByOpenEndedBooking(t *testing.T) {
	ctx := context.Background()
	store, carID := setupTestStore(t)

	open := testBooking(carID, "user1", 8, 0)
	open.EndAt = nil
	if err := store.CreateIfAvailable(ctx, open); err != nil {
		t.Fatalf("open-ended create: %v", err)
	}

	later := testBooking(carID, "user2", 20, 22)
	if err := store.CreateIfAvailable(ctx, later); !errors.Is(err, ErrCarUnavailable) {
		t.Fatalf("later create against open booking: err = %v, want ErrCarUnavailable", err)
	}
}

func TestConcurrentConfirmVsCancel(t *testing.T) {
	ctx := context.Background()
	store, carID := setupTestStore(t)

	b := testBooking(carID, "user1", 10, 12)
	if err := store.CreateIfAvailable(ctx, b); err != nil {
		t.Fatalf("create: %v", err)
	}

	var wg sync.WaitGroup
	results := make(chan bool, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		ok, err := store.UpdateStatus(ctx, b.ID, StatusPending, StatusConfirmed, nil)
		if err != nil {
			t.Errorf("confirm: %v", err)
		}
		results <- ok
	}()
	go func() {
		defer wg.Done()
		ok, err := store.UpdateStatus(ctx, b.ID, StatusPending, StatusCancelled, nil)
		if err != nil {
			t.Errorf("cancel: %v", err)
		}
		results <- ok
	}()

	wg.Wait()
	close(results)

	wins := 0
	for ok := range results {
		if ok {
			wins++
		}
	}
	// The compare-and-swap admits exactly one pending -> X transition.
	if wins != 1 {
		t.Fatalf("expected exactly 1 winning transition from pending, got %d", wins)
	}

	got, err := store.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != StatusConfirmed && got.Status != StatusCancelled {
		t.Fatalf("unexpected final status %s", got.Status)
	}
}

func testBooking(carID types.ID, userID types.ID, startHour, endHour int) *Booking {
	b := &Booking{
		ID:             newID(),
		UserID:         userID,
		CarID:          carID,
		TripType:       "Hourly Rental",
		PickupLocation: "MG Road",
		StartAt:        time.Date(2026, 9, 1, startHour, 0, 0, 0, time.UTC),
		Status:         StatusPending,
		CreatedAt:      time.Now(),
	}
	if endHour > 0 {
		end := time.Date(2026, 9, 1, endHour, 0, 0, 0, time.UTC)
		b.EndAt = &end
	}
	return b
}

func setupTestStore(t *testing.T) (*Store, types.ID) {
	t.Helper()

	dsn := os.Getenv("GARI_TEST_DSN")
	if dsn == "" {
		t.Skip("GARI_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigration(ctx, db); err != nil {
		t.Fatalf("apply migration: %v", err)
	}

	if _, err := db.Exec(ctx, "TRUNCATE TABLE booking_state_events, booking_add_ons, bookings, cars CASCADE"); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	carID := newID()
	if _, err := db.Exec(ctx, `
		INSERT INTO cars (id, name, car_type, model_year, seats, luggage)
		VALUES ($1, 'Test Alto', 'Hatchback', 2025, 5, 2)`, string(carID),
	); err != nil {
		t.Fatalf("seed car: %v", err)
	}

	return NewStore(db), carID
}

func applyMigration(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	path := filepath.Join(root, "migrations", "0001_init.sql")
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	cleaned := stripSQLComments(string(content))
	for _, stmt := range splitSQL(cleaned) {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func stripSQLComments(input string) string {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	return b.String()
}

func splitSQL(input string) []string {
	parts := strings.Split(input, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}

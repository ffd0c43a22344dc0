package store

import (
	"errors"
	"testing"

	"liftday/internal/workout"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestSetGet verifies round-tripping a training max, including overwrite.
func TestSetGet(t *testing.T) {
	db := openTemp(t)

	if err := db.Set(workout.Squat, 325); err != nil {
		t.Fatal(err)
	}
	got, err := db.Get(workout.Squat)
	if err != nil {
		t.Fatal(err)
	}
	if got != 325 {
		t.Errorf("squat = %d, want 325", got)
	}

	if err := db.Set(workout.Squat, 335); err != nil {
		t.Fatal(err)
	}
	got, err = db.Get(workout.Squat)
	if err != nil {
		t.Fatal(err)
	}
	if got != 335 {
		t.Errorf("squat after overwrite = %d, want 335", got)
	}
}

// TestGetMissing verifies that an unstored lift surfaces as the engine's
// missing-training-max error, so the CLI reports it the same way the
// generators would.
func TestGetMissing(t *testing.T) {
	db := openTemp(t)

	_, err := db.Get(workout.Deadlift)
	if err == nil {
		t.Fatal("expected error for unstored lift")
	}
	var missing *workout.MissingTrainingMaxError
	if !errors.As(err, &missing) {
		t.Fatalf("error %v is not a MissingTrainingMaxError", err)
	}
	if missing.Lift != workout.Deadlift {
		t.Errorf("error names %s, want %s", missing.Lift, workout.Deadlift)
	}
}

// TestAll verifies the store produces an engine-ready table.
func TestAll(t *testing.T) {
	db := openTemp(t)

	want := workout.TrainingMaxes{
		workout.Squat:      325,
		workout.BenchPress: 235,
		workout.PowerClean: 205,
	}
	for lift, max := range want {
		if err := db.Set(lift, max); err != nil {
			t.Fatal(err)
		}
	}

	got, err := db.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("All() returned %d entries, want %d", len(got), len(want))
	}
	for lift, max := range want {
		if got[lift] != max {
			t.Errorf("%s = %d, want %d", lift, got[lift], max)
		}
	}
}

// TestNextCycle verifies the standard increments land on the stored
// primary lifts only: +10 squat/deadlift, +5 presses, assistance lifts
// untouched, and the bump is recorded as a cycle.
func TestNextCycle(t *testing.T) {
	db := openTemp(t)

	seed := workout.TrainingMaxes{
		workout.Squat:         325,
		workout.Deadlift:      365,
		workout.BenchPress:    235,
		workout.OverheadPress: 170,
		workout.PowerClean:    205,
	}
	for lift, max := range seed {
		if err := db.Set(lift, max); err != nil {
			t.Fatal(err)
		}
	}

	id, err := db.NextCycle()
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Error("expected a cycle id")
	}

	want := workout.TrainingMaxes{
		workout.Squat:         335,
		workout.Deadlift:      375,
		workout.BenchPress:    240,
		workout.OverheadPress: 175,
		workout.PowerClean:    205,
	}
	got, err := db.All()
	if err != nil {
		t.Fatal(err)
	}
	for lift, max := range want {
		if got[lift] != max {
			t.Errorf("%s = %d after bump, want %d", lift, got[lift], max)
		}
	}

	n, err := db.Cycles()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("cycle count = %d, want 1", n)
	}
}

// TestNextCyclePartialTable verifies bumping works when only some primary
// lifts are stored; absent lifts stay absent.
func TestNextCyclePartialTable(t *testing.T) {
	db := openTemp(t)

	if err := db.Set(workout.Squat, 325); err != nil {
		t.Fatal(err)
	}
	if _, err := db.NextCycle(); err != nil {
		t.Fatal(err)
	}

	got, err := db.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("All() returned %d entries, want 1: %v", len(got), got)
	}
	if got[workout.Squat] != 335 {
		t.Errorf("squat = %d, want 335", got[workout.Squat])
	}
}

// TestReopen verifies data survives closing and reopening the store.
func TestReopen(t *testing.T) {
	dir := t.TempDir()

	db, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Set(workout.OverheadPress, 170); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	db, err = Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	got, err := db.Get(workout.OverheadPress)
	if err != nil {
		t.Fatal(err)
	}
	if got != 170 {
		t.Errorf("overhead press = %d after reopen, want 170", got)
	}
}

package session

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/slidegym/internal/db"
	"github.com/balkashynov/slidegym/internal/models"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestController wires a controller to a real store in a temp dir.
func newTestController(t *testing.T, opts ...Option) (*Controller, *db.Store) {
	t.Helper()
	store := db.NewStore(filepath.Join(t.TempDir(), "test.db"), db.WithLogger(quiet))
	t.Cleanup(func() { _ = store.Close() })

	opts = append([]Option{WithLogger(quiet)}, opts...)
	c := New(store, opts...)
	require.NoError(t, c.ReloadAll(context.Background()))
	return c, store
}

func createExercise(t *testing.T, c *Controller, name string, weight float64, reps int) {
	t.Helper()
	c.RequestCreate()
	ok, err := c.Submit(context.Background(), name, weight, reps)
	require.NoError(t, err)
	require.True(t, ok, "submit %q rejected", name)
}

func TestNew_InitialSnapshot(t *testing.T) {
	c := New(&MockStore{}, WithLogger(quiet))

	snap := c.Snapshot()
	assert.Len(t, snap.ExercisesByDay, models.DaysInWeek)
	assert.Equal(t, models.Monday, snap.SelectedDay)
	assert.False(t, snap.EditorOpen)
	assert.Equal(t, EditorClosed, snap.Mode)
	assert.Nil(t, snap.EditingExercise)
}

func TestNew_WithSelectedDay(t *testing.T) {
	c := New(&MockStore{}, WithLogger(quiet), WithSelectedDay(models.Thursday))
	assert.Equal(t, models.Thursday, c.Snapshot().SelectedDay)

	c = New(&MockStore{}, WithLogger(quiet), WithSelectedDay(models.WeekDay(12)))
	assert.Equal(t, models.Monday, c.Snapshot().SelectedDay)
}

func TestSubmit_SquatScenario(t *testing.T) {
	c, store := newTestController(t)

	createExercise(t, c, "Squat", 40.0, 10)

	snap := c.Snapshot()
	assert.False(t, snap.EditorOpen)
	assert.Equal(t, EditorClosed, snap.Mode)
	assert.Equal(t, []models.Exercise{{
		ID: 1, Name: "Squat", Weight: 40.0, Reps: 10, Completed: false, Day: models.Monday,
	}}, snap.Exercises(models.Monday))

	stored, err := store.ListExercisesByDay(context.Background(), models.Monday)
	require.NoError(t, err)
	assert.Equal(t, snap.Exercises(models.Monday), stored)
}

func TestSubmit_CreatesOnSelectedDay(t *testing.T) {
	c, _ := newTestController(t)

	c.SelectDay(models.Friday)
	createExercise(t, c, "Deadlift", 80, 5)

	snap := c.Snapshot()
	assert.Empty(t, snap.Exercises(models.Monday))
	require.Len(t, snap.Exercises(models.Friday), 1)
	assert.Equal(t, models.Friday, snap.Exercises(models.Friday)[0].Day)
	assert.Equal(t, models.Friday, snap.SelectedDay)
}

func TestSubmit_NewestFirst(t *testing.T) {
	c, _ := newTestController(t)

	createExercise(t, c, "Squat", 40, 10)
	createExercise(t, c, "Bench", 30, 8)

	monday := c.Snapshot().Exercises(models.Monday)
	require.Len(t, monday, 2)
	assert.Equal(t, "Bench", monday[0].Name)
	assert.Equal(t, "Squat", monday[1].Name)
	assert.Greater(t, monday[0].ID, monday[1].ID)
}

func TestSubmit_EditMergesFields(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	createExercise(t, c, "Squat", 40, 10)
	original := c.Snapshot().Exercises(models.Monday)[0]
	require.NoError(t, c.ToggleCompletion(ctx, original))
	original = c.Snapshot().Exercises(models.Monday)[0]

	c.SelectDay(models.Sunday)
	c.RequestEdit(original)
	snap := c.Snapshot()
	assert.True(t, snap.EditorOpen)
	assert.Equal(t, EditorEdit, snap.Mode)
	require.NotNil(t, snap.EditingExercise)
	assert.Equal(t, original, *snap.EditingExercise)

	ok, err := c.Submit(ctx, "Front Squat", 45, 8)
	require.NoError(t, err)
	require.True(t, ok)

	snap = c.Snapshot()
	assert.False(t, snap.EditorOpen)
	assert.Nil(t, snap.EditingExercise)
	assert.Empty(t, snap.Exercises(models.Sunday), "edit must not move the exercise")
	require.Len(t, snap.Exercises(models.Monday), 1)
	got := snap.Exercises(models.Monday)[0]
	assert.Equal(t, models.Exercise{
		ID: original.ID, Name: "Front Squat", Weight: 45, Reps: 8, Completed: true, Day: models.Monday,
	}, got)
}

func TestSubmit_EditOfDeletedExerciseIsNoop(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	createExercise(t, c, "Squat", 40, 10)
	ex := c.Snapshot().Exercises(models.Monday)[0]

	c.RequestEdit(ex)
	require.NoError(t, c.Remove(ctx, ex))

	ok, err := c.Submit(ctx, "Ghost", 1, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, c.Snapshot().Exercises(models.Monday))
	assert.False(t, c.Snapshot().EditorOpen)
}

func TestSubmit_InvalidInputIsSilentNoop(t *testing.T) {
	tests := []struct {
		name   string
		ename  string
		weight float64
		reps   int
	}{
		{"empty name", "", 40, 10},
		{"blank name", "   ", 40, 10},
		{"zero weight", "Squat", 0, 10},
		{"negative weight", "Squat", -5, 10},
		{"zero reps", "Squat", 40, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockStore{}
			c := New(store, WithLogger(quiet))
			c.RequestCreate()
			before := c.Snapshot()

			ok, err := c.Submit(context.Background(), tt.ename, tt.weight, tt.reps)
			require.NoError(t, err)
			assert.False(t, ok)

			after := c.Snapshot()
			assert.Same(t, before, after, "no new snapshot expected")
			assert.True(t, after.EditorOpen)
			assert.Equal(t, EditorCreate, after.Mode)

			// any store call would panic on the unconfigured mock
			store.AssertNotCalled(t, "CreateExercise", mock.Anything, mock.Anything, mock.Anything)
			store.AssertNotCalled(t, "UpdateExercise", mock.Anything, mock.Anything)
			store.AssertNotCalled(t, "ListExercisesByDay", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmit_LongNameIsSaved(t *testing.T) {
	c, store := newTestController(t)
	name := strings.Repeat("a", 101)

	c.RequestCreate()
	ok, err := c.Submit(context.Background(), name, 40, 10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, c.Snapshot().EditorOpen)

	list, err := store.ListExercisesByDay(context.Background(), models.Monday)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, name, list[0].Name)
}

func TestSubmit_ClosedEditorIsNoop(t *testing.T) {
	store := &MockStore{}
	c := New(store, WithLogger(quiet))

	ok, err := c.Submit(context.Background(), "Squat", 40, 10)
	require.NoError(t, err)
	assert.False(t, ok)
	store.AssertExpectations(t)
}

func TestEditorStateMachine(t *testing.T) {
	c := New(&MockStore{}, WithLogger(quiet))
	ex := models.Exercise{ID: 7, Name: "Row", Weight: 20, Reps: 12, Day: models.Tuesday}

	c.RequestEdit(ex)
	snap := c.Snapshot()
	assert.Equal(t, EditorEdit, snap.Mode)
	require.NotNil(t, snap.EditingExercise)
	assert.Equal(t, int64(7), snap.EditingExercise.ID)

	c.RequestCreate()
	snap = c.Snapshot()
	assert.Equal(t, EditorCreate, snap.Mode)
	assert.True(t, snap.EditorOpen)
	assert.Nil(t, snap.EditingExercise)

	c.RequestEdit(ex)
	c.Dismiss()
	snap = c.Snapshot()
	assert.Equal(t, EditorClosed, snap.Mode)
	assert.False(t, snap.EditorOpen)
	assert.Nil(t, snap.EditingExercise)

	// dismiss from closed stays closed
	c.Dismiss()
	assert.Equal(t, EditorClosed, c.Snapshot().Mode)
}

func TestSelectDay_NoStoreAccess(t *testing.T) {
	store := &MockStore{}
	c := New(store, WithLogger(quiet))

	c.SelectDay(models.Saturday)
	assert.Equal(t, models.Saturday, c.Snapshot().SelectedDay)

	c.SelectDay(models.WeekDay(-1))
	assert.Equal(t, models.Saturday, c.Snapshot().SelectedDay)
	store.AssertExpectations(t)
}

func TestToggleCompletion(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	createExercise(t, c, "Squat", 40, 10)
	ex := c.Snapshot().Exercises(models.Monday)[0]

	require.NoError(t, c.ToggleCompletion(ctx, ex))
	assert.True(t, c.Snapshot().Exercises(models.Monday)[0].Completed)

	require.NoError(t, c.ToggleCompletion(ctx, c.Snapshot().Exercises(models.Monday)[0]))
	assert.False(t, c.Snapshot().Exercises(models.Monday)[0].Completed)
}

func TestRemove(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	createExercise(t, c, "Squat", 40, 10)
	createExercise(t, c, "Bench", 30, 8)
	bench := c.Snapshot().Exercises(models.Monday)[0]

	require.NoError(t, c.Remove(ctx, bench))

	monday := c.Snapshot().Exercises(models.Monday)
	require.Len(t, monday, 1)
	for _, ex := range monday {
		assert.NotEqual(t, bench.ID, ex.ID)
	}

	// removing again affects nothing and is not an error
	require.NoError(t, c.Remove(ctx, bench))
	assert.Len(t, c.Snapshot().Exercises(models.Monday), 1)
}

func TestReloadAll_SevenKeysAndIdempotent(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	createExercise(t, c, "Squat", 40, 10)
	c.SelectDay(models.Wednesday)
	createExercise(t, c, "Lunge", 20, 12)

	require.NoError(t, c.ReloadAll(ctx))
	first := c.Snapshot()
	require.NoError(t, c.ReloadAll(ctx))
	second := c.Snapshot()

	assert.Len(t, first.ExercisesByDay, models.DaysInWeek)
	for _, d := range models.WeekDays() {
		_, ok := first.ExercisesByDay[d]
		assert.True(t, ok, "missing %s", d)
		assert.NotNil(t, first.ExercisesByDay[d])
	}
	assert.NotSame(t, first, second)
	assert.Equal(t, first.ExercisesByDay, second.ExercisesByDay)
}

func TestReloadAll_PreservesOtherState(t *testing.T) {
	c, _ := newTestController(t)
	ex := models.Exercise{ID: 3, Name: "Row", Weight: 20, Reps: 12}

	c.SelectDay(models.Tuesday)
	c.RequestEdit(ex)
	require.NoError(t, c.ReloadAll(context.Background()))

	snap := c.Snapshot()
	assert.Equal(t, models.Tuesday, snap.SelectedDay)
	assert.True(t, snap.EditorOpen)
	assert.Equal(t, EditorEdit, snap.Mode)
	require.NotNil(t, snap.EditingExercise)
	assert.Equal(t, ex, *snap.EditingExercise)
}

func TestPublishedSnapshotsAreNotMutated(t *testing.T) {
	c, _ := newTestController(t)

	before := c.Snapshot()
	beforeMonday := before.Exercises(models.Monday)

	createExercise(t, c, "Squat", 40, 10)
	c.SelectDay(models.Sunday)

	assert.Equal(t, models.Monday, before.SelectedDay)
	assert.Empty(t, before.Exercises(models.Monday))
	assert.Empty(t, beforeMonday)
	assert.False(t, before.EditorOpen)
}

func TestSubscribe_ReceivesLatest(t *testing.T) {
	c, _ := newTestController(t)

	ch, cancel := c.Subscribe()
	defer cancel()

	initial := <-ch
	assert.Same(t, c.Snapshot(), initial)

	// several publishes without reading: only the newest is kept
	c.SelectDay(models.Tuesday)
	c.SelectDay(models.Wednesday)
	c.SelectDay(models.Thursday)

	latest := <-ch
	assert.Equal(t, models.Thursday, latest.SelectedDay)
	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra snapshot: %+v", extra)
	default:
	}
}

func TestSubscribe_Cancel(t *testing.T) {
	c := New(&MockStore{}, WithLogger(quiet))

	ch, cancel := c.Subscribe()
	<-ch
	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// publishing after cancel must not panic
	c.SelectDay(models.Friday)
}

func TestValidate_ReportsFields(t *testing.T) {
	c := New(&MockStore{}, WithLogger(quiet))

	assert.NoError(t, c.Validate("Squat", 40, 10))
	err := c.Validate("", 40, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "reps must be greater than 0")
}

func TestSnapshot_Helpers(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	createExercise(t, c, "Squat", 40, 10)
	createExercise(t, c, "Bench", 30, 8)
	squat := c.Snapshot().Exercises(models.Monday)[1]
	require.NoError(t, c.ToggleCompletion(ctx, squat))

	snap := c.Snapshot()
	done, total := snap.Progress(models.Monday)
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, total)

	found, ok := snap.Find(squat.ID)
	require.True(t, ok)
	assert.Equal(t, "Squat", found.Name)
	_, ok = snap.Find(999)
	assert.False(t, ok)

	assert.Equal(t, snap.Exercises(models.Monday), snap.Selected())
}

package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/balkashynov/slidegym/internal/models"
	"github.com/balkashynov/slidegym/internal/validator"
)

// Store is the persistence the controller drives. *db.Store implements it.
type Store interface {
	CreateExercise(ctx context.Context, ex models.Exercise, day models.WeekDay) (int64, error)
	ListExercisesByDay(ctx context.Context, day models.WeekDay) ([]models.Exercise, error)
	UpdateExercise(ctx context.Context, ex models.Exercise) (int64, error)
	DeleteExercise(ctx context.Context, id int64) (int64, error)
}

// Controller holds the session's view state and routes every mutation
// through the Store. After each mutation it rebuilds the whole week from
// the store and publishes a new Snapshot.
type Controller struct {
	store    Store
	validate *validator.Validator
	log      *slog.Logger

	current atomic.Pointer[Snapshot]

	// mu serialises publishers and guards subs
	mu      sync.Mutex
	subs    map[int]chan *Snapshot
	nextSub int
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the base logger. A session_id attribute is added.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSelectedDay sets the day selected when the session starts.
func WithSelectedDay(day models.WeekDay) Option {
	return func(c *Controller) {
		if day.Valid() {
			snap := c.current.Load().clone()
			snap.SelectedDay = day
			c.current.Store(snap)
		}
	}
}

// New returns a controller with an empty week and the editor closed. It does
// not touch the store; call ReloadAll to load persisted exercises.
func New(store Store, opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		validate: validator.New(),
		log:      slog.Default(),
		subs:     make(map[int]chan *Snapshot),
	}
	c.current.Store(&Snapshot{
		ExercisesByDay: emptyWeek(),
		SelectedDay:    models.Monday,
		Mode:           EditorClosed,
	})
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(slog.String("session_id", uuid.NewString()))
	return c
}

// Snapshot returns the latest published state.
func (c *Controller) Snapshot() *Snapshot {
	return c.current.Load()
}

// Subscribe returns a channel that always holds the most recent snapshot not
// yet received; an unread older snapshot is replaced. The returned func
// unsubscribes and closes the channel.
func (c *Controller) Subscribe() (<-chan *Snapshot, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	ch := make(chan *Snapshot, 1)
	c.subs[id] = ch
	ch <- c.current.Load()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs, id)
			close(ch)
		})
	}
}

// publish derives the next snapshot from the latest one and swaps it in.
func (c *Controller) publish(change func(next *Snapshot)) *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.current.Load().clone()
	change(next)
	c.current.Store(next)

	for _, ch := range c.subs {
		// drop the stale value, if any, so the newest always fits
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- next:
		default:
		}
	}
	return next
}

// SelectDay changes the selected day. No store access.
func (c *Controller) SelectDay(day models.WeekDay) {
	if !day.Valid() {
		return
	}
	c.publish(func(next *Snapshot) {
		next.SelectedDay = day
	})
}

// RequestCreate opens the editor for a new exercise on the selected day.
func (c *Controller) RequestCreate() {
	c.publish(func(next *Snapshot) {
		next.Mode = EditorCreate
		next.EditorOpen = true
		next.EditingExercise = nil
	})
}

// RequestEdit opens the editor on ex.
func (c *Controller) RequestEdit(ex models.Exercise) {
	c.publish(func(next *Snapshot) {
		next.Mode = EditorEdit
		next.EditorOpen = true
		next.EditingExercise = &ex
	})
}

// Dismiss closes the editor and forgets the edit target.
func (c *Controller) Dismiss() {
	c.publish(func(next *Snapshot) {
		next.Mode = EditorClosed
		next.EditorOpen = false
		next.EditingExercise = nil
	})
}

// Validate reports what is wrong with the editor fields as
// validator.ValidationErrors, or nil. It does not change any state.
func (c *Controller) Validate(name string, weight float64, reps int) error {
	return c.validate.ValidateExercise(name, weight, reps)
}

// Submit saves the editor fields. It reports whether anything was saved.
//
// Invalid input, or an editor that is not open, is a silent no-op: nothing
// is written and the editor state is unchanged. Otherwise the target is
// updated (edit) or a new exercise is created on the selected day (create),
// the editor closes and the week is reloaded. A store failure is returned
// and leaves the editor open.
func (c *Controller) Submit(ctx context.Context, name string, weight float64, reps int) (bool, error) {
	snap := c.Snapshot()
	if !snap.EditorOpen {
		return false, nil
	}
	if err := c.Validate(name, weight, reps); err != nil {
		c.log.Debug("submit rejected", slog.String("reason", err.Error()))
		return false, nil
	}

	switch {
	case snap.Mode == EditorEdit && snap.EditingExercise != nil:
		target := *snap.EditingExercise
		target.Name = name
		target.Weight = weight
		target.Reps = reps

		n, err := c.store.UpdateExercise(ctx, target)
		if err != nil {
			return false, fmt.Errorf("update exercise #%d: %w", target.ID, err)
		}
		if n == 0 {
			c.log.Info("edited exercise no longer exists", slog.Int64("id", target.ID))
		}

	default:
		ex := models.Exercise{Name: name, Weight: weight, Reps: reps}
		id, err := c.store.CreateExercise(ctx, ex, snap.SelectedDay)
		if err != nil {
			return false, fmt.Errorf("create exercise: %w", err)
		}
		c.log.Info("exercise created",
			slog.Int64("id", id),
			slog.String("day", snap.SelectedDay.String()))
	}

	c.Dismiss()
	return true, c.ReloadAll(ctx)
}

// ToggleCompletion flips ex's completed flag in the store, then reloads.
func (c *Controller) ToggleCompletion(ctx context.Context, ex models.Exercise) error {
	ex.Completed = !ex.Completed
	if _, err := c.store.UpdateExercise(ctx, ex); err != nil {
		return fmt.Errorf("toggle exercise #%d: %w", ex.ID, err)
	}
	return c.ReloadAll(ctx)
}

// Remove deletes ex from the store, then reloads.
func (c *Controller) Remove(ctx context.Context, ex models.Exercise) error {
	n, err := c.store.DeleteExercise(ctx, ex.ID)
	if err != nil {
		return fmt.Errorf("delete exercise #%d: %w", ex.ID, err)
	}
	c.log.Info("exercise deleted", slog.Int64("id", ex.ID), slog.Int64("rows", n))
	return c.ReloadAll(ctx)
}

// ReloadAll reads all seven days from the store and publishes them. The new
// week is built completely before it is swapped in; on error nothing is
// published and the previous snapshot stays current.
func (c *Controller) ReloadAll(ctx context.Context) error {
	week := make(map[models.WeekDay][]models.Exercise, models.DaysInWeek)
	for _, day := range models.WeekDays() {
		exercises, err := c.store.ListExercisesByDay(ctx, day)
		if err != nil {
			c.log.Error("reload failed", slog.String("day", day.String()), slog.Any("error", err))
			return fmt.Errorf("reload %s: %w", day.DisplayName(), err)
		}
		if exercises == nil {
			exercises = []models.Exercise{}
		}
		week[day] = exercises
	}

	c.publish(func(next *Snapshot) {
		next.ExercisesByDay = week
	})
	return nil
}

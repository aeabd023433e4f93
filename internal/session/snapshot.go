package session

import "github.com/balkashynov/slidegym/internal/models"

// EditorMode is the state of the exercise editor dialog.
type EditorMode int

const (
	EditorClosed EditorMode = iota
	EditorCreate
	EditorEdit
)

func (m EditorMode) String() string {
	switch m {
	case EditorCreate:
		return "create"
	case EditorEdit:
		return "edit"
	default:
		return "closed"
	}
}

// Snapshot is the published view state. A published Snapshot is never
// modified; every change produces a new one. Callers must not modify the
// slices or the map they read from it.
type Snapshot struct {
	// ExercisesByDay always has one entry per weekday, newest exercise first.
	ExercisesByDay  map[models.WeekDay][]models.Exercise
	SelectedDay     models.WeekDay
	EditingExercise *models.Exercise
	EditorOpen      bool
	Mode            EditorMode
}

// emptyWeek returns a map with an empty list for every day.
func emptyWeek() map[models.WeekDay][]models.Exercise {
	week := make(map[models.WeekDay][]models.Exercise, models.DaysInWeek)
	for _, d := range models.WeekDays() {
		week[d] = []models.Exercise{}
	}
	return week
}

// clone returns a shallow copy to build the next snapshot from. The exercise
// lists are shared; they are never written after publication.
func (s *Snapshot) clone() *Snapshot {
	next := *s
	if s.EditingExercise != nil {
		ex := *s.EditingExercise
		next.EditingExercise = &ex
	}
	return &next
}

// Exercises returns the list for day.
func (s *Snapshot) Exercises(day models.WeekDay) []models.Exercise {
	return s.ExercisesByDay[day]
}

// Selected returns the list for the selected day.
func (s *Snapshot) Selected() []models.Exercise {
	return s.ExercisesByDay[s.SelectedDay]
}

// Find looks an exercise up by ID across all days.
func (s *Snapshot) Find(id int64) (models.Exercise, bool) {
	for _, d := range models.WeekDays() {
		for _, ex := range s.ExercisesByDay[d] {
			if ex.ID == id {
				return ex, true
			}
		}
	}
	return models.Exercise{}, false
}

// Progress returns how many of day's exercises are completed, and the total.
func (s *Snapshot) Progress(day models.WeekDay) (done, total int) {
	for _, ex := range s.ExercisesByDay[day] {
		if ex.Completed {
			done++
		}
	}
	return done, len(s.ExercisesByDay[day])
}

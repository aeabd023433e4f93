package db

import (
	"context"

	"github.com/balkashynov/slidegym/internal/models"
)

// CreateExercise inserts ex tagged with day and returns the new ID.
// ex.ID and ex.Day are ignored.
func (s *Store) CreateExercise(ctx context.Context, ex models.Exercise, day models.WeekDay) (int64, error) {
	conn, err := s.db(ctx)
	if err != nil {
		return 0, err
	}

	row := models.Exercise{
		Name:      ex.Name,
		Weight:    ex.Weight,
		Reps:      ex.Reps,
		Completed: ex.Completed,
		Day:       day,
	}
	if err := conn.Create(&row).Error; err != nil {
		return 0, wrap("create", err)
	}

	s.log.Debug("exercise created", "id", row.ID, "day", day.String())
	return row.ID, nil
}

// ListExercisesByDay returns the exercises for day, newest first. An empty
// day yields an empty slice.
func (s *Store) ListExercisesByDay(ctx context.Context, day models.WeekDay) ([]models.Exercise, error) {
	conn, err := s.db(ctx)
	if err != nil {
		return nil, err
	}

	exercises := []models.Exercise{}
	err = conn.Where("weekday = ?", day).
		Order("id DESC").
		Find(&exercises).Error
	if err != nil {
		return nil, wrap("list", err)
	}
	if exercises == nil {
		exercises = []models.Exercise{}
	}
	return exercises, nil
}

// UpdateExercise overwrites name, weight, reps and completion of the row with
// ex.ID. The weekday is never changed. Returns the number of rows matched; 0
// means there was no such exercise.
func (s *Store) UpdateExercise(ctx context.Context, ex models.Exercise) (int64, error) {
	conn, err := s.db(ctx)
	if err != nil {
		return 0, err
	}

	// map form so zero values (completed=false) are written too
	result := conn.Model(&models.Exercise{}).
		Where("id = ?", ex.ID).
		Updates(map[string]any{
			"name":         ex.Name,
			"weight":       ex.Weight,
			"reps":         ex.Reps,
			"is_completed": ex.Completed,
		})
	if result.Error != nil {
		return 0, wrap("update", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteExercise removes the row with id. Returns 0 if it did not exist.
func (s *Store) DeleteExercise(ctx context.Context, id int64) (int64, error) {
	conn, err := s.db(ctx)
	if err != nil {
		return 0, err
	}

	result := conn.Where("id = ?", id).Delete(&models.Exercise{})
	if result.Error != nil {
		return 0, wrap("delete", result.Error)
	}
	return result.RowsAffected, nil
}

// Reset drops and recreates the exercises table. Every stored exercise is lost.
func (s *Store) Reset(ctx context.Context) error {
	conn, err := s.db(ctx)
	if err != nil {
		return err
	}
	if err := recreate(conn); err != nil {
		return wrap("reset", err)
	}
	s.log.Warn("exercises table reset", "path", s.path)
	return nil
}

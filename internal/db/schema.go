package db

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/balkashynov/slidegym/internal/models"
)

// SchemaVersion is stored in PRAGMA user_version.
//
// Bumping it is destructive: on the next open an older database has its
// exercises table dropped and recreated, and every stored exercise is lost.
// There are no incremental migrations.
const SchemaVersion = 1

const createExercisesTable = `
CREATE TABLE IF NOT EXISTS exercises (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	weight REAL NOT NULL,
	reps INTEGER NOT NULL,
	is_completed INTEGER NOT NULL DEFAULT 0,
	weekday TEXT NOT NULL CHECK (weekday IN ('MONDAY','TUESDAY','WEDNESDAY','THURSDAY','FRIDAY','SATURDAY','SUNDAY'))
)`

const createWeekdayIndex = `CREATE INDEX IF NOT EXISTS idx_exercises_weekday_id ON exercises(weekday, id)`

// migrate brings the schema to target. Same version: create if missing.
// Older: drop and recreate. Newer: refuse.
func migrate(conn *gorm.DB, target int, log *slog.Logger) error {
	current, err := userVersion(conn)
	if err != nil {
		return err
	}

	switch {
	case current > target:
		return fmt.Errorf("database schema version %d is newer than supported version %d", current, target)
	case current < target:
		if current > 0 {
			log.Warn("schema version changed, dropping exercises",
				slog.Int("from", current),
				slog.Int("to", target))
		}
		if err := dropTables(conn); err != nil {
			return err
		}
	}

	if err := createTables(conn); err != nil {
		return err
	}
	return setUserVersion(conn, target)
}

// recreate drops and recreates the table at the current version.
func recreate(conn *gorm.DB) error {
	if err := dropTables(conn); err != nil {
		return err
	}
	if err := createTables(conn); err != nil {
		return err
	}
	return setUserVersion(conn, SchemaVersion)
}

func createTables(conn *gorm.DB) error {
	if err := conn.Exec(createExercisesTable).Error; err != nil {
		return fmt.Errorf("create exercises table: %w", err)
	}
	if err := conn.Exec(createWeekdayIndex).Error; err != nil {
		return fmt.Errorf("create weekday index: %w", err)
	}
	return nil
}

func dropTables(conn *gorm.DB) error {
	if err := conn.Migrator().DropTable(&models.Exercise{}); err != nil {
		return fmt.Errorf("drop exercises table: %w", err)
	}
	return nil
}

func userVersion(conn *gorm.DB) (int, error) {
	var version int
	if err := conn.Raw("PRAGMA user_version").Scan(&version).Error; err != nil {
		return 0, fmt.Errorf("read user_version: %w", err)
	}
	return version, nil
}

func setUserVersion(conn *gorm.DB, version int) error {
	// PRAGMA does not take bound parameters
	if err := conn.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)).Error; err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}

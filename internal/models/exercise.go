package models

import "fmt"

// Exercise is one planned exercise on a given weekday.
// ID is zero until the store assigns one.
type Exercise struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string  `gorm:"column:name;not null" json:"name"`
	Weight    float64 `gorm:"column:weight;not null" json:"weight"` // kilograms
	Reps      int     `gorm:"column:reps;not null" json:"reps"`
	Completed bool    `gorm:"column:is_completed;not null" json:"completed"`
	Day       WeekDay `gorm:"column:weekday;type:text;not null" json:"day"`
}

// TableName pins the table name used by the schema.
func (Exercise) TableName() string {
	return "exercises"
}

// Persisted reports whether the store has assigned an ID.
func (e Exercise) Persisted() bool {
	return e.ID > 0
}

// Summary renders the card line, e.g. "40kg - 10 reps".
func (e Exercise) Summary() string {
	return fmt.Sprintf("%skg - %d reps", FormatWeight(e.Weight), e.Reps)
}

// FormatWeight prints a weight without trailing zeros: 40, 42.5.
func FormatWeight(w float64) string {
	return fmt.Sprintf("%g", w)
}

package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WeekDay is one of the seven fixed day partitions an exercise belongs to.
// The zero value is Monday; the order is Monday-first and never changes.
type WeekDay int

const (
	Monday WeekDay = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysInWeek is the number of WeekDay values.
const DaysInWeek = 7

// storage tags, indexed by WeekDay
var weekDayTags = [DaysInWeek]string{
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
}

// weekDayAliases maps lowercased input to a day. Includes the Portuguese names
// the first version of the app used for its tabs.
var weekDayAliases = map[string]WeekDay{
	"mon": Monday, "tue": Tuesday, "wed": Wednesday, "thu": Thursday,
	"fri": Friday, "sat": Saturday, "sun": Sunday,
	"segunda": Monday, "terca": Tuesday, "terça": Tuesday, "quarta": Wednesday,
	"quinta": Thursday, "sexta": Friday, "sabado": Saturday, "sábado": Saturday,
	"domingo": Sunday,
}

var titleCaser = cases.Title(language.English)

// WeekDays returns all days in their fixed order.
func WeekDays() []WeekDay {
	return []WeekDay{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// WeekDayFromIndex maps a tab index (0..6) to its day.
func WeekDayFromIndex(index int) (WeekDay, error) {
	if index < 0 || index >= DaysInWeek {
		return Monday, fmt.Errorf("weekday index %d out of range [0,%d)", index, DaysInWeek)
	}
	return WeekDay(index), nil
}

// ParseWeekDay accepts a storage tag, an English day name or abbreviation,
// or a Portuguese day name, case-insensitively.
func ParseWeekDay(s string) (WeekDay, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return Monday, fmt.Errorf("empty weekday")
	}
	for i, tag := range weekDayTags {
		if strings.ToLower(tag) == key {
			return WeekDay(i), nil
		}
	}
	if day, ok := weekDayAliases[key]; ok {
		return day, nil
	}
	return Monday, fmt.Errorf("unknown weekday %q", s)
}

// Today returns the WeekDay for now in its own location.
func Today(now time.Time) WeekDay {
	// time.Weekday is Sunday-first
	return WeekDay((int(now.Weekday()) + 6) % DaysInWeek)
}

// Valid reports whether d is one of the seven days.
func (d WeekDay) Valid() bool {
	return d >= Monday && d <= Sunday
}

// Index returns the tab index of the day.
func (d WeekDay) Index() int {
	return int(d)
}

// String returns the storage tag, e.g. "MONDAY".
func (d WeekDay) String() string {
	if !d.Valid() {
		return fmt.Sprintf("WeekDay(%d)", int(d))
	}
	return weekDayTags[d]
}

// DisplayName returns the human form, e.g. "Monday".
func (d WeekDay) DisplayName() string {
	if !d.Valid() {
		return d.String()
	}
	return titleCaser.String(weekDayTags[d])
}

// Short returns the three letter form, e.g. "Mon".
func (d WeekDay) Short() string {
	return d.DisplayName()[:3]
}

// Next returns the following day, wrapping Sunday to Monday.
func (d WeekDay) Next() WeekDay {
	return WeekDay((int(d) + 1) % DaysInWeek)
}

// Prev returns the preceding day, wrapping Monday to Sunday.
func (d WeekDay) Prev() WeekDay {
	return WeekDay((int(d) + DaysInWeek - 1) % DaysInWeek)
}

// Value stores the day as its tag.
func (d WeekDay) Value() (driver.Value, error) {
	if !d.Valid() {
		// let the weekday CHECK constraint reject it
		return d.String(), nil
	}
	return weekDayTags[d], nil
}

// Scan reads a day tag back from the database.
func (d *WeekDay) Scan(src any) error {
	var tag string
	switch v := src.(type) {
	case string:
		tag = v
	case []byte:
		tag = string(v)
	default:
		return fmt.Errorf("scan weekday: unsupported type %T", src)
	}
	day, err := ParseWeekDay(tag)
	if err != nil {
		return fmt.Errorf("scan weekday: %w", err)
	}
	*d = day
	return nil
}

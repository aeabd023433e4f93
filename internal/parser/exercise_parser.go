package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/balkashynov/slidegym/internal/models"
)

// ParsedExercise represents an exercise parsed from quick-add text
type ParsedExercise struct {
	Name   string
	Weight float64
	Reps   int
	Day    *models.WeekDay
	Errors []string
}

var (
	weightRegex = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*kgs?\b`)
	repsXRegex  = regexp.MustCompile(`(?i)(?:^|\s)x\s*(\d+)\b`)
	repsRegex   = regexp.MustCompile(`(?i)\b(\d+)\s*reps?\b`)
	dayRegex    = regexp.MustCompile(`@(\S+)`)
)

// ParseExercise extracts weight, reps and day from quick-add text; what is
// left becomes the name.
// Syntax: "Squat 40kg x10 @monday" or "Bench press 42,5 kg 8 reps @wed"
func ParseExercise(input string) ParsedExercise {
	result := ParsedExercise{
		Errors: []string{},
	}

	// Extract weight (40kg, 42.5 kg, 42,5kg)
	if m := weightRegex.FindStringSubmatch(input); len(m) > 1 {
		result.Weight = ParseWeight(m[1])
		input = weightRegex.ReplaceAllString(input, "")
	}

	// Extract reps (x10, 10 reps)
	if m := repsXRegex.FindStringSubmatch(input); len(m) > 1 {
		result.Reps = ParseReps(m[1])
		input = repsXRegex.ReplaceAllString(input, " ")
	} else if m := repsRegex.FindStringSubmatch(input); len(m) > 1 {
		result.Reps = ParseReps(m[1])
		input = repsRegex.ReplaceAllString(input, "")
	}

	// Extract day (@monday, @seg)
	if m := dayRegex.FindStringSubmatch(input); len(m) > 1 {
		day, err := models.ParseWeekDay(m[1])
		if err != nil {
			result.Errors = append(result.Errors, "Invalid day '"+m[1]+"'. Use a weekday name like monday or mon")
		} else {
			result.Day = &day
		}
		input = dayRegex.ReplaceAllString(input, "")
	}

	// Clean up the name (remove extra spaces)
	result.Name = strings.Join(strings.Fields(input), " ")

	return result
}

// ParseWeight reads a weight field: "40", "42.5", "42,5", "40kg".
// Anything unreadable yields 0, which validation then rejects.
func ParseWeight(s string) float64 {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(s, "s"), "kg"))
	s = strings.Replace(s, ",", ".", 1)

	w, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	return w
}

// ParseReps reads a reps field: "10", "x10", "10 reps". Unreadable yields 0.
func ParseReps(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "x")
	s = strings.TrimSuffix(s, "s")
	s = strings.TrimSpace(strings.TrimSuffix(s, "rep"))

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// ParseFields converts the three editor text fields.
func ParseFields(name, weight, reps string) (string, float64, int) {
	return strings.TrimSpace(name), ParseWeight(weight), ParseReps(reps)
}

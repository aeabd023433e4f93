package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/slidegym/internal/models"
)

func TestParseExercise(t *testing.T) {
	monday := models.Monday
	wednesday := models.Wednesday
	friday := models.Friday

	tests := []struct {
		input  string
		name   string
		weight float64
		reps   int
		day    *models.WeekDay
	}{
		{"Squat 40kg x10 @monday", "Squat", 40, 10, &monday},
		{"Bench press 42,5 kg 8 reps @wed", "Bench press", 42.5, 8, &wednesday},
		{"Deadlift 100KG X5", "Deadlift", 100, 5, nil},
		{"@sexta Box jumps x12 20kg", "Box jumps", 20, 12, &friday},
		{"Plank", "Plank", 0, 0, nil},
		{"Curl 12.5kgs 1 rep", "Curl", 12.5, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseExercise(tt.input)
			assert.Empty(t, got.Errors)
			assert.Equal(t, tt.name, got.Name)
			assert.Equal(t, tt.weight, got.Weight)
			assert.Equal(t, tt.reps, got.Reps)
			if tt.day == nil {
				assert.Nil(t, got.Day)
			} else {
				require.NotNil(t, got.Day)
				assert.Equal(t, *tt.day, *got.Day)
			}
		})
	}
}

func TestParseExercise_InvalidDay(t *testing.T) {
	got := ParseExercise("Squat 40kg x10 @someday")
	require.Len(t, got.Errors, 1)
	assert.Contains(t, got.Errors[0], "someday")
	assert.Nil(t, got.Day)
	assert.Equal(t, "Squat", got.Name)
}

func TestParseWeight(t *testing.T) {
	tests := map[string]float64{
		"40":     40,
		" 42.5 ": 42.5,
		"42,5":   42.5,
		"40kg":   40,
		"40 KG":  40,
		"":       0,
		"heavy":  0,
		"NaN":    0,
		"Inf":    0,
		"-5":     -5,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseWeight(in), "ParseWeight(%q)", in)
	}
}

func TestParseReps(t *testing.T) {
	tests := map[string]int{
		"10":      10,
		"x8":      8,
		"12 reps": 12,
		"1 rep":   1,
		"":        0,
		"ten":     0,
		"4.5":     0,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseReps(in), "ParseReps(%q)", in)
	}
}

func TestParseFields(t *testing.T) {
	name, weight, reps := ParseFields("  Squat ", "40", "abc")
	assert.Equal(t, "Squat", name)
	assert.Equal(t, 40.0, weight)
	assert.Equal(t, 0, reps)
}

package validator

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Exercise(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		input      ExerciseInput
		wantFields []string
	}{
		{
			name:  "Valid exercise",
			input: ExerciseInput{Name: "Squat", Weight: 40, Reps: 10},
		},
		{
			name:       "Empty name",
			input:      ExerciseInput{Name: "", Weight: 40, Reps: 10},
			wantFields: []string{"name"},
		},
		{
			name:       "Blank name",
			input:      ExerciseInput{Name: "   ", Weight: 40, Reps: 10},
			wantFields: []string{"name"},
		},
		{
			name:       "Zero weight",
			input:      ExerciseInput{Name: "Squat", Weight: 0, Reps: 10},
			wantFields: []string{"weight"},
		},
		{
			name:       "Negative reps",
			input:      ExerciseInput{Name: "Squat", Weight: 40, Reps: -1},
			wantFields: []string{"reps"},
		},
		{
			name:       "NaN weight",
			input:      ExerciseInput{Name: "Squat", Weight: math.NaN(), Reps: 1},
			wantFields: []string{"weight"},
		},
		{
			name:       "Everything wrong",
			input:      ExerciseInput{},
			wantFields: []string{"name", "weight", "reps"},
		},
		{
			name:  "Long name",
			input: ExerciseInput{Name: strings.Repeat("a", 101), Weight: 1, Reps: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Len(t, verrs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				_, ok := verrs.Field(f)
				assert.True(t, ok, "expected error on field %q, got %v", f, verrs)
			}
		})
	}
}

func TestValidator_Messages(t *testing.T) {
	v := New()

	err := v.ValidateExercise("", 0, 10)
	require.Error(t, err)
	assert.Equal(t, "name is required; weight must be greater than 0", err.Error())

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	nameErr, ok := verrs.Field("name")
	require.True(t, ok)
	assert.Equal(t, "notblank", nameErr.Tag)

	_, ok = verrs.Field("reps")
	assert.False(t, ok)
}

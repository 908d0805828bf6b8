package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSpecs(t *testing.T) {
	tests := []struct {
		name      string
		specs     []ProcessSpec
		wantID    int
		wantField string
	}{
		{
			name: "valid batch",
			specs: []ProcessSpec{
				{ID: 1, ArrivalTime: 0, BurstTime: 5},
				{ID: 2, ArrivalTime: 0, BurstTime: 3, Priority: 2},
				{ID: 3, ArrivalTime: 7, BurstTime: 1},
			},
		},
		{
			name: "negative id",
			specs: []ProcessSpec{
				{ID: -1, ArrivalTime: 0, BurstTime: 5},
			},
			wantID:    -1,
			wantField: "process_id",
		},
		{
			name: "negative arrival time",
			specs: []ProcessSpec{
				{ID: 1, ArrivalTime: 0, BurstTime: 5},
				{ID: 2, ArrivalTime: -1, BurstTime: 3},
			},
			wantID:    2,
			wantField: "arrival_time",
		},
		{
			name: "zero burst time",
			specs: []ProcessSpec{
				{ID: 7, ArrivalTime: 3, BurstTime: 0},
			},
			wantID:    7,
			wantField: "burst_time",
		},
		{
			name: "negative burst time",
			specs: []ProcessSpec{
				{ID: 4, ArrivalTime: 0, BurstTime: -2},
			},
			wantID:    4,
			wantField: "burst_time",
		},
		{
			name: "duplicate id",
			specs: []ProcessSpec{
				{ID: 1, ArrivalTime: 0, BurstTime: 5},
				{ID: 1, ArrivalTime: 2, BurstTime: 3},
			},
			wantID:    1,
			wantField: "process_id",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSpecs(tc.specs)
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSpec)

			var specErr *SpecError
			require.True(t, errors.As(err, &specErr))
			assert.Equal(t, tc.wantID, specErr.ProcessID)
			assert.Equal(t, tc.wantField, specErr.Field)
		})
	}
}

func TestValidateSpecsEmptyBatchIsValid(t *testing.T) {
	// Emptiness is the engine's concern (ErrEmptyInput), not the registry's.
	require.NoError(t, ValidateSpecs(nil))
}

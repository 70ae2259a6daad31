package flows

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferOutcome(t *testing.T) {
	tests := []struct {
		name            string
		dryRun          bool
		exitCode        int
		err             error
		expectedOutcome Outcome
	}{
		{
			name:            "success",
			expectedOutcome: OutcomeSuccess,
		},
		{
			name:            "non-zero exit",
			exitCode:        1,
			expectedOutcome: OutcomeFailed,
		},
		{
			name:            "dry run",
			dryRun:          true,
			expectedOutcome: OutcomeDryRun,
		},
		{
			name:            "error takes precedence over dry run",
			dryRun:          true,
			err:             errors.New("missing parameter"),
			expectedOutcome: OutcomeError,
		},
		{
			name:            "error takes precedence over exit code",
			exitCode:        2,
			err:             errors.New("spawn failed"),
			expectedOutcome: OutcomeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := inferOutcome(tt.dryRun, tt.exitCode, tt.err)
			assert.Equal(t, tt.expectedOutcome, outcome)
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "success", OutcomeSuccess.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "dry_run", OutcomeDryRun.String())
	assert.Equal(t, "error", OutcomeError.String())
	assert.Equal(t, "unknown", Outcome(99).String())
}

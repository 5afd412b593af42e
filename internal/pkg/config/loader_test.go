package config

import (
	"strings"
	"testing"
	"time"
)

/*────────────────────  test cases  ────────────────────*/

func TestLoadEnvWithFallback(t *testing.T) {
	rejectAll := func(string) error { return errValidation }

	tests := []struct {
		name         string
		envValue     string
		setEnv       bool
		validator    func(string) error
		wantValue    string
		wantFallback bool
	}{
		{
			name:      "unset variable uses default without warning",
			wantValue: "30 5 * * *",
		},
		{
			name:      "empty variable uses default without warning",
			setEnv:    true,
			wantValue: "30 5 * * *",
		},
		{
			name:      "valid value passes without validator",
			envValue:  "0 6 * * *",
			setEnv:    true,
			wantValue: "0 6 * * *",
		},
		{
			name:      "valid value passes validator",
			envValue:  "0 */6 * * *",
			setEnv:    true,
			validator: ValidateCronSchedule,
			wantValue: "0 */6 * * *",
		},
		{
			name:         "rejected value falls back with warning",
			envValue:     "whatever",
			setEnv:       true,
			validator:    rejectAll,
			wantValue:    "30 5 * * *",
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv("TEST_SCHEDULE", tt.envValue)
			}

			result := LoadEnvWithFallback("TEST_SCHEDULE", "30 5 * * *", tt.validator)

			if got := result.Value.(string); got != tt.wantValue {
				t.Errorf("Value = %q, want %q", got, tt.wantValue)
			}
			if result.FallbackApplied != tt.wantFallback {
				t.Errorf("FallbackApplied = %v, want %v", result.FallbackApplied, tt.wantFallback)
			}
			if tt.wantFallback && len(result.Warnings) == 0 {
				t.Error("expected a warning when fallback is applied")
			}
			if !tt.wantFallback && len(result.Warnings) != 0 {
				t.Errorf("unexpected warnings: %v", result.Warnings)
			}
		})
	}
}

func TestLoadEnvDuration(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		setEnv       bool
		validator    func(time.Duration) error
		wantValue    time.Duration
		wantFallback bool
	}{
		{
			name:      "unset variable uses default",
			wantValue: 30 * time.Minute,
		},
		{
			name:      "valid duration is parsed",
			envValue:  "45m",
			setEnv:    true,
			wantValue: 45 * time.Minute,
		},
		{
			name:      "compound duration is parsed",
			envValue:  "1h30m",
			setEnv:    true,
			wantValue: 90 * time.Minute,
		},
		{
			name:         "unparseable duration falls back",
			envValue:     "soon",
			setEnv:       true,
			wantValue:    30 * time.Minute,
			wantFallback: true,
		},
		{
			name:         "bare number falls back",
			envValue:     "30",
			setEnv:       true,
			wantValue:    30 * time.Minute,
			wantFallback: true,
		},
		{
			name:     "validator rejection falls back",
			envValue: "10s",
			setEnv:   true,
			validator: func(d time.Duration) error {
				return ValidateDuration(d, time.Minute, 4*time.Hour)
			},
			wantValue:    30 * time.Minute,
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv("TEST_TIMEOUT", tt.envValue)
			}

			result := LoadEnvDuration("TEST_TIMEOUT", 30*time.Minute, tt.validator)

			if got := result.Value.(time.Duration); got != tt.wantValue {
				t.Errorf("Value = %v, want %v", got, tt.wantValue)
			}
			if result.FallbackApplied != tt.wantFallback {
				t.Errorf("FallbackApplied = %v, want %v", result.FallbackApplied, tt.wantFallback)
			}
		})
	}
}

func TestLoadEnvInt(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		setEnv       bool
		validator    func(int) error
		wantValue    int
		wantFallback bool
	}{
		{
			name:      "unset variable uses default",
			wantValue: 5,
		},
		{
			name:      "valid integer is parsed",
			envValue:  "10",
			setEnv:    true,
			wantValue: 10,
		},
		{
			name:      "negative integer is parsed",
			envValue:  "-1",
			setEnv:    true,
			wantValue: -1,
		},
		{
			name:         "non-numeric value falls back",
			envValue:     "many",
			setEnv:       true,
			wantValue:    5,
			wantFallback: true,
		},
		{
			name:         "decimal value falls back",
			envValue:     "2.5",
			setEnv:       true,
			wantValue:    5,
			wantFallback: true,
		},
		{
			name:     "validator rejection falls back",
			envValue: "100",
			setEnv:   true,
			validator: func(v int) error {
				return ValidateIntRange(v, 1, 50)
			},
			wantValue:    5,
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv("TEST_PARALLELISM", tt.envValue)
			}

			result := LoadEnvInt("TEST_PARALLELISM", 5, tt.validator)

			if got := result.Value.(int); got != tt.wantValue {
				t.Errorf("Value = %d, want %d", got, tt.wantValue)
			}
			if result.FallbackApplied != tt.wantFallback {
				t.Errorf("FallbackApplied = %v, want %v", result.FallbackApplied, tt.wantFallback)
			}
		})
	}
}

func TestLoadEnv_WarningMentionsVariable(t *testing.T) {
	t.Setenv("TEST_TIMEOUT", "bogus")

	result := LoadEnvDuration("TEST_TIMEOUT", time.Minute, nil)
	if !result.FallbackApplied {
		t.Fatal("expected fallback for unparseable value")
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want exactly one", result.Warnings)
	}
	warning := result.Warnings[0]
	if !strings.Contains(warning, "TEST_TIMEOUT") || !strings.Contains(warning, "bogus") {
		t.Errorf("warning %q should name the variable and the rejected value", warning)
	}
}

var errValidation = ValidateIntRange(0, 1, 2)

package model

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// MaxSeconds is the largest whole-second count a time.Duration can hold.
const MaxSeconds = math.MaxInt64 / int64(time.Second)

// ErrInvalidConfig indicates a cycle configuration that cannot be started.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError describes the offending field of a CycleConfig.
type ConfigError struct {
	Field  string
	Value  int64
	Reason string
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %s (got %d)", ErrInvalidConfig, err.Field, err.Reason, err.Value)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (err *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// CycleConfig defines one full pomodoro cycle: Repeat pairs of work and
// short break, followed by a single long break.
type CycleConfig struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
	Repeat     int

	// overflow is set by NewCycleConfig when a second count does not fit.
	overflow *ConfigError
}

// DefaultCycleConfig returns the classic 25/5/30 x4 cycle.
func DefaultCycleConfig() CycleConfig {
	return CycleConfig{
		Work:       25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  30 * time.Minute,
		Repeat:     4,
	}
}

// NewCycleConfig builds a CycleConfig from whole seconds. Counts that do
// not fit a time.Duration make Validate fail instead of wrapping.
func NewCycleConfig(workSeconds, breakSeconds, repeat, longBreakSeconds int) CycleConfig {
	config := CycleConfig{Repeat: repeat}
	fields := []struct {
		name    string
		seconds int
		target  *time.Duration
	}{
		{"work duration", workSeconds, &config.Work},
		{"short break duration", breakSeconds, &config.ShortBreak},
		{"long break duration", longBreakSeconds, &config.LongBreak},
	}
	for _, field := range fields {
		if int64(field.seconds) > MaxSeconds || int64(field.seconds) < -MaxSeconds {
			if config.overflow == nil {
				config.overflow = &ConfigError{Field: field.name, Value: int64(field.seconds), Reason: "is too large"}
			}
			continue
		}
		*field.target = time.Duration(field.seconds) * time.Second
	}
	return config
}

// Validate reports the first invalid field as a *ConfigError.
func (config CycleConfig) Validate() error {
	if config.overflow != nil {
		return config.overflow
	}
	durations := []struct {
		field string
		value time.Duration
	}{
		{"work duration", config.Work},
		{"short break duration", config.ShortBreak},
		{"long break duration", config.LongBreak},
	}
	for _, item := range durations {
		if item.value <= 0 {
			return &ConfigError{
				Field:  item.field,
				Value:  int64(item.value / time.Second),
				Reason: "must be positive",
			}
		}
	}
	if config.Repeat < 1 {
		return &ConfigError{
			Field:  "repeat count",
			Value:  int64(config.Repeat),
			Reason: "must be at least 1",
		}
	}
	return nil
}

// PhaseCount returns the number of phases the cycle expands to.
func (config CycleConfig) PhaseCount() int {
	return 2*config.Repeat + 1
}

package preferences

import (
	"fmt"

	"pomodoro/internal/core/model"
)

// Input bounds for the duration and repeat fields.
const (
	MinValue  = 1
	MaxValue  = 3600
	MaxRepeat = 1000
)

// DurationSetting is a duration as the user typed it.
type DurationSetting struct {
	Value int
	Unit  model.Unit
}

// Seconds converts the setting to whole seconds.
func (setting DurationSetting) Seconds() (int, error) {
	return model.ToSeconds(setting.Value, setting.Unit)
}

func (setting DurationSetting) String() string {
	return fmt.Sprintf("%d %s", setting.Value, setting.Unit)
}

// Settings defines editable user preferences.
type Settings struct {
	Work       DurationSetting
	ShortBreak DurationSetting
	LongBreak  DurationSetting
	Repeat     int

	ShowIcon   bool
	ShowNotify bool
}

// DefaultSettings returns default settings for Pomodoro.
func DefaultSettings() Settings {
	return Settings{
		Work:       DurationSetting{Value: 25, Unit: model.UnitMinutes},
		ShortBreak: DurationSetting{Value: 5, Unit: model.UnitMinutes},
		LongBreak:  DurationSetting{Value: 30, Unit: model.UnitMinutes},
		Repeat:     4,
		ShowIcon:   true,
		ShowNotify: true,
	}
}

// CycleConfig converts settings to a validated CycleConfig.
func (settings Settings) CycleConfig() (model.CycleConfig, error) {
	work, err := settings.Work.Seconds()
	if err != nil {
		return model.CycleConfig{}, fmt.Errorf("work duration: %w", err)
	}
	shortBreak, err := settings.ShortBreak.Seconds()
	if err != nil {
		return model.CycleConfig{}, fmt.Errorf("short break duration: %w", err)
	}
	longBreak, err := settings.LongBreak.Seconds()
	if err != nil {
		return model.CycleConfig{}, fmt.Errorf("long break duration: %w", err)
	}

	config := model.NewCycleConfig(work, shortBreak, settings.Repeat, longBreak)
	if err := config.Validate(); err != nil {
		return model.CycleConfig{}, err
	}
	return config, nil
}

package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pomodoro/internal/core/model"
	"pomodoro/internal/platform"
	"pomodoro/internal/ui/preferences"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	settingsFileName = "settings.yaml"
	historyFileName  = "history.db"
)

type fileDuration struct {
	Value int    `yaml:"value" toml:"value"`
	Unit  string `yaml:"unit" toml:"unit"`
}

type fileSettings struct {
	Work       fileDuration `yaml:"work" toml:"work"`
	ShortBreak fileDuration `yaml:"short_break" toml:"short_break"`
	LongBreak  fileDuration `yaml:"long_break" toml:"long_break"`
	Repeat     int          `yaml:"repeat" toml:"repeat"`
	ShowIcon   *bool        `yaml:"show_icon,omitempty" toml:"show_icon,omitempty"`
	ShowNotify *bool        `yaml:"show_notify,omitempty" toml:"show_notify,omitempty"`
}

// DefaultSettingsPath returns settings.yaml in the application config dir.
func DefaultSettingsPath(service platform.Service, appName string) (string, error) {
	dirs, err := service.AppDirs(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.Config, settingsFileName), nil
}

// DefaultHistoryPath returns history.db in the application data dir.
func DefaultHistoryPath(service platform.Service, appName string) (string, error) {
	dirs, err := service.AppDirs(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.Data, historyFileName), nil
}

// LoadSettings reads user preferences from a YAML or TOML file, picked by
// extension. If the file does not exist, default settings are returned.
// Invalid fields keep their defaults.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData fileSettings
	if isTOML(path) {
		if _, err := toml.Decode(string(rawData), &fileData); err != nil {
			return settings, fmt.Errorf("parse settings toml: %w", err)
		}
	} else if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyFileSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences in the format matching the path.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	showIcon := settings.ShowIcon
	showNotify := settings.ShowNotify
	fileData := fileSettings{
		Work:       toFileDuration(settings.Work),
		ShortBreak: toFileDuration(settings.ShortBreak),
		LongBreak:  toFileDuration(settings.LongBreak),
		Repeat:     settings.Repeat,
		ShowIcon:   &showIcon,
		ShowNotify: &showNotify,
	}

	var serialized []byte
	if isTOML(path) {
		var buffer bytes.Buffer
		if err := toml.NewEncoder(&buffer).Encode(fileData); err != nil {
			return fmt.Errorf("marshal settings toml: %w", err)
		}
		serialized = buffer.Bytes()
	} else {
		var err error
		serialized, err = yaml.Marshal(fileData)
		if err != nil {
			return fmt.Errorf("marshal settings yaml: %w", err)
		}
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func toFileDuration(setting preferences.DurationSetting) fileDuration {
	return fileDuration{Value: setting.Value, Unit: setting.Unit.String()}
}

func applyFileSettings(settings *preferences.Settings, fileData fileSettings) {
	applyDuration(&settings.Work, fileData.Work)
	applyDuration(&settings.ShortBreak, fileData.ShortBreak)
	applyDuration(&settings.LongBreak, fileData.LongBreak)

	if fileData.Repeat >= preferences.MinValue && fileData.Repeat <= preferences.MaxRepeat {
		settings.Repeat = fileData.Repeat
	}
	if fileData.ShowIcon != nil {
		settings.ShowIcon = *fileData.ShowIcon
	}
	if fileData.ShowNotify != nil {
		settings.ShowNotify = *fileData.ShowNotify
	}
}

func applyDuration(setting *preferences.DurationSetting, fileData fileDuration) {
	if fileData.Value < preferences.MinValue || fileData.Value > preferences.MaxValue {
		return
	}
	unit := setting.Unit
	if fileData.Unit != "" {
		parsed, err := model.ParseUnit(fileData.Unit)
		if err != nil {
			return
		}
		unit = parsed
	}
	*setting = preferences.DurationSetting{Value: fileData.Value, Unit: unit}
}

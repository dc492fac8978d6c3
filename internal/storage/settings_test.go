package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
	"pomodoro/internal/platform"
	"pomodoro/internal/ui/preferences"
)

type fakeService struct {
	root string
	err  error
}

func (service fakeService) AppDirs(appName string) (platform.Dirs, error) {
	if service.err != nil {
		return platform.Dirs{}, service.err
	}
	return platform.Dirs{
		Config: filepath.Join(service.root, "config", appName),
		Data:   filepath.Join(service.root, "data", appName),
	}, nil
}

func customSettings() preferences.Settings {
	settings := preferences.DefaultSettings()
	settings.Work = preferences.DurationSetting{Value: 50, Unit: model.UnitMinutes}
	settings.ShortBreak = preferences.DurationSetting{Value: 90, Unit: model.UnitSeconds}
	settings.LongBreak = preferences.DurationSetting{Value: 1, Unit: model.UnitHours}
	settings.Repeat = 3
	settings.ShowNotify = false
	return settings
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveAndLoad(t *testing.T) {
	for _, name := range []string{"settings.yaml", "settings.toml", "nested/dir/settings.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, SaveSettings(path, customSettings()))

			loaded, err := LoadSettings(path)
			require.NoError(t, err)
			assert.Equal(t, customSettings(), loaded)
		})
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pomodoro.toml")
	content := `repeat = 2
show_icon = false

[work]
value = 45
unit = "minutes"

[long_break]
value = 20
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, preferences.DurationSetting{Value: 45, Unit: model.UnitMinutes}, settings.Work)
	assert.Equal(t, preferences.DurationSetting{Value: 20, Unit: model.UnitMinutes}, settings.LongBreak)
	assert.Equal(t, preferences.DefaultSettings().ShortBreak, settings.ShortBreak)
	assert.Equal(t, 2, settings.Repeat)
	assert.False(t, settings.ShowIcon)
	assert.True(t, settings.ShowNotify)
}

func TestLoadIgnoresInvalidFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `work:
  value: 0
  unit: min
short_break:
  value: 10
  unit: fortnight
long_break:
  value: 4000
repeat: -1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("work: [unclosed"), 0o644))
	settings, err := LoadSettings(yamlPath)
	assert.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)

	tomlPath := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("repeat = = 3"), 0o644))
	_, err = LoadSettings(tomlPath)
	assert.Error(t, err)
}

func TestDefaultPaths(t *testing.T) {
	service := fakeService{root: "/home/user"}

	settingsPath, err := DefaultSettingsPath(service, "Pomodoro")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/user", "config", "Pomodoro", "settings.yaml"), settingsPath)

	historyPath, err := DefaultHistoryPath(service, "Pomodoro")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/user", "data", "Pomodoro", "history.db"), historyPath)

	_, err = DefaultSettingsPath(fakeService{err: errors.New("no home")}, "Pomodoro")
	assert.Error(t, err)
}

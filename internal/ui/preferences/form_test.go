package preferences

import (
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
)

func TestDefaultSettingsCycle(t *testing.T) {
	config, err := DefaultSettings().CycleConfig()
	require.NoError(t, err)
	assert.Equal(t, model.NewCycleConfig(1500, 300, 4, 1800), config)
}

func TestSettingsCycleConfigErrors(t *testing.T) {
	settings := DefaultSettings()
	settings.Repeat = 0
	_, err := settings.CycleConfig()
	assert.True(t, errors.Is(err, model.ErrInvalidConfig))

	settings = DefaultSettings()
	settings.LongBreak = DurationSetting{Value: 1, Unit: model.Unit(9)}
	_, err = settings.CycleConfig()
	assert.Error(t, err)
}

func TestFormRoundTrip(t *testing.T) {
	test.NewApp()

	form := NewForm(DefaultSettings())
	settings, err := form.Settings()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
	assert.NotNil(t, form.Content())
}

func TestFormParsesUnits(t *testing.T) {
	test.NewApp()

	form := NewForm(DefaultSettings())
	form.work.value.SetText("2")
	form.work.unit.SetSelected("hour")
	form.short.value.SetText(" 90 ")
	form.short.unit.SetSelected("sec")
	form.repeat.SetText("3")

	settings, err := form.Settings()
	require.NoError(t, err)
	config, err := settings.CycleConfig()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, config.Work)
	assert.Equal(t, 90*time.Second, config.ShortBreak)
	assert.Equal(t, 30*time.Minute, config.LongBreak)
	assert.Equal(t, 3, config.Repeat)
}

func TestFormRejectsBadInput(t *testing.T) {
	test.NewApp()

	tests := []struct {
		name  string
		apply func(form *Form)
	}{
		{name: "not a number", apply: func(form *Form) { form.work.value.SetText("abc") }},
		{name: "zero", apply: func(form *Form) { form.short.value.SetText("0") }},
		{name: "too large", apply: func(form *Form) { form.long.value.SetText("3601") }},
		{name: "zero repeat", apply: func(form *Form) { form.repeat.SetText("0") }},
		{name: "repeat too large", apply: func(form *Form) { form.repeat.SetText("1001") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewForm(DefaultSettings())
			tt.apply(form)

			settings, err := form.Settings()
			assert.Error(t, err)
			assert.Equal(t, DefaultSettings(), settings)
		})
	}
}

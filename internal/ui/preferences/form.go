package preferences

import (
	"fmt"
	"strconv"
	"strings"

	"pomodoro/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Form is the "Timer options" panel: three durations with units and the
// number of pomodoros before the long break.
type Form struct {
	settings Settings
	content  fyne.CanvasObject
	work     durationRow
	short    durationRow
	long     durationRow
	repeat   *widget.Entry
}

type durationRow struct {
	label string
	value *widget.Entry
	unit  *widget.Select
}

// NewForm creates the options panel filled from settings.
func NewForm(settings Settings) *Form {
	form := &Form{
		settings: settings,
		work:     newDurationRow("Pomodoro"),
		short:    newDurationRow("Short break"),
		long:     newDurationRow("Long break"),
		repeat:   widget.NewEntry(),
	}

	grid := container.NewGridWithColumns(3,
		widget.NewLabel(form.work.label), form.work.value, form.work.unit,
		widget.NewLabel(form.short.label), form.short.value, form.short.unit,
		widget.NewLabel(form.long.label), form.long.value, form.long.unit,
		widget.NewLabel("Pomodoros to break"), form.repeat, widget.NewLabel(""),
	)
	form.content = widget.NewCard("Timer options", "", grid)
	form.SetSettings(settings)
	return form
}

func newDurationRow(label string) durationRow {
	options := make([]string, 0, len(model.Units))
	for _, unit := range model.Units {
		options = append(options, unit.String())
	}
	return durationRow{
		label: label,
		value: widget.NewEntry(),
		unit:  widget.NewSelect(options, nil),
	}
}

// Content returns the panel widget.
func (form *Form) Content() fyne.CanvasObject {
	return form.content
}

// SetSettings replaces form values.
func (form *Form) SetSettings(settings Settings) {
	form.settings = settings
	form.work.set(settings.Work)
	form.short.set(settings.ShortBreak)
	form.long.set(settings.LongBreak)
	form.repeat.SetText(strconv.Itoa(settings.Repeat))
}

// Settings parses the form. Out of range or non-numeric input is reported
// rather than replaced with a default.
func (form *Form) Settings() (Settings, error) {
	settings := form.settings

	var err error
	if settings.Work, err = form.work.parse(); err != nil {
		return form.settings, err
	}
	if settings.ShortBreak, err = form.short.parse(); err != nil {
		return form.settings, err
	}
	if settings.LongBreak, err = form.long.parse(); err != nil {
		return form.settings, err
	}
	if settings.Repeat, err = parseBounded(form.repeat.Text, MaxRepeat); err != nil {
		return form.settings, fmt.Errorf("pomodoros to break: %w", err)
	}

	form.settings = settings
	return settings, nil
}

func (row durationRow) set(setting DurationSetting) {
	row.value.SetText(strconv.Itoa(setting.Value))
	row.unit.SetSelected(setting.Unit.String())
}

func (row durationRow) parse() (DurationSetting, error) {
	value, err := parseBounded(row.value.Text, MaxValue)
	if err != nil {
		return DurationSetting{}, fmt.Errorf("%s: %w", strings.ToLower(row.label), err)
	}
	unit, err := model.ParseUnit(row.unit.Selected)
	if err != nil {
		return DurationSetting{}, fmt.Errorf("%s: %w", strings.ToLower(row.label), err)
	}
	return DurationSetting{Value: value, Unit: unit}, nil
}

func parseBounded(value string, max int) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", value)
	}
	if parsed < MinValue || parsed > max {
		return 0, fmt.Errorf("%d is outside %d..%d", parsed, MinValue, max)
	}
	return parsed, nil
}

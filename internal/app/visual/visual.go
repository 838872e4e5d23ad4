// Package visual binds host updates to the play axis: it rebuilds the view
// model on every update and routes user actions to the scheduler.
package visual

import (
	"strconv"
	"sync"

	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/playaxis/internal/app/caption"
	"github.com/osa030/playaxis/internal/app/controls"
	"github.com/osa030/playaxis/internal/app/playback"
	"github.com/osa030/playaxis/internal/app/stepunit"
	"github.com/osa030/playaxis/internal/domain/item"
	"github.com/osa030/playaxis/internal/domain/settings"
	"github.com/osa030/playaxis/internal/host"
	"github.com/osa030/playaxis/internal/render"
)

// Config holds the host services a visual is constructed with.
type Config struct {
	IDBuilder host.SelectionIDBuilder
	Selection host.SelectionManager
	Surface   render.Surface
	Clock     playback.Clock
}

// ViewModel is the data of one update cycle.
type ViewModel struct {
	Items    item.Sequence
	Settings settings.Settings
}

// Visual is one play axis instance.
type Visual struct {
	mu sync.Mutex

	idBuilder host.SelectionIDBuilder
	surface   render.Surface

	scheduler *playback.Scheduler
	steps     *stepunit.Selector
	caption   *caption.Reporter
	controls  *controls.Presenter

	viewModel *ViewModel
	fieldName string
}

// New creates a stopped visual with no data.
func New(cfg Config) *Visual {
	reporter := caption.NewReporter(cfg.Surface)
	presenter := controls.NewPresenter(cfg.Surface)
	scheduler := playback.NewScheduler(playback.Config{
		Clock:     cfg.Clock,
		Selection: cfg.Selection,
		Caption:   reporter,
		Controls:  presenter,
	})

	return &Visual{
		idBuilder: cfg.IDBuilder,
		surface:   cfg.Surface,
		scheduler: scheduler,
		steps:     stepunit.NewSelector(scheduler, cfg.Surface),
		caption:   reporter,
		controls:  presenter,
	}
}

// Update applies a host update notification. Updates without category
// data are ignored and leave the previous state untouched.
func (v *Visual) Update(opts host.UpdateOptions) {
	if !isDataReady(opts) {
		zlog.Debug().Msg("visual: update ignored: data not ready")
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.scheduler.Stop()

	vm := transform(opts, v.idBuilder)
	v.viewModel = &vm
	v.fieldName = opts.DataViews[0].Categorical.Categories[0].Source.DisplayName

	s := vm.Settings
	v.scheduler.Load(vm.Items, s.Transition, v.fieldName)

	v.controls.ApplyColors(s.Color)
	v.surface.SetFill(render.ElementLabel, s.Caption.Color)
	v.surface.SetAttr(render.ElementLabel, render.AttrFontSize, strconv.Itoa(s.Caption.FontSize))

	v.caption.SetShow(s.Caption.Show)
	if s.Caption.Show {
		v.caption.Report(v.fieldName)
		v.surface.SetAttr(render.ElementLabel, render.AttrTextAnchor, s.Caption.Align.TextAnchor())
	} else {
		v.surface.SetText(render.ElementLabel, "")
	}

	zlog.Info().Msgf("visual: updated field=%s items=%d autoStart=%t loop=%t interval=%dms",
		v.fieldName, vm.Items.Len(), s.Transition.AutoStart, s.Transition.Loop, s.Transition.TimeIntervalMs)

	// Must follow the caption report above.
	if s.Transition.AutoStart {
		v.scheduler.Play()
	}
}

// EnumerateSettings returns the current values of one settings group for
// the host configuration surface. Before the first update it reports defaults.
func (v *Visual) EnumerateSettings(group string) []settings.ObjectInstance {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.viewModel == nil {
		return settings.Default().Enumerate(group)
	}
	return v.viewModel.Settings.Enumerate(group)
}

// Play handles the play button.
func (v *Visual) Play() {
	v.scheduler.Play()
}

// Pause handles the pause button.
func (v *Visual) Pause() {
	v.scheduler.Pause()
}

// Stop handles the stop button.
func (v *Visual) Stop() {
	v.scheduler.Stop()
}

// Previous steps back by the current step size.
func (v *Visual) Previous() {
	v.scheduler.Step(-v.steps.StepSize())
}

// Next steps forward by the current step size.
func (v *Visual) Next() {
	v.scheduler.Step(v.steps.StepSize())
}

// SetStepSize handles a step size change.
func (v *Visual) SetStepSize(units int) {
	v.steps.SetStepSize(units)
}

// SelectPreset handles a click on a step preset element.
func (v *Visual) SelectPreset(element string) {
	v.steps.SelectPreset(element)
}

// Scheduler returns the playback scheduler.
func (v *Visual) Scheduler() *playback.Scheduler {
	return v.scheduler
}

// Steps returns the step size selector.
func (v *Visual) Steps() *stepunit.Selector {
	return v.steps
}

// ViewModel returns the view model of the last accepted update.
func (v *Visual) ViewModel() (ViewModel, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.viewModel == nil {
		return ViewModel{}, false
	}
	return *v.viewModel, true
}

// FieldName returns the display name of the category field.
func (v *Visual) FieldName() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fieldName
}

// Close releases the scheduler.
func (v *Visual) Close() {
	v.scheduler.Close()
}

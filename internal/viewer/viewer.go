// Package viewer holds the state shared by the window and terminal frontends: the control panel
// model, the memoized lattice, the spin clock and the preferences, plus the terminal commands
// that change them.
package viewer

import (
	"fmt"
	"log/slog"
	"time"

	"dotcube/internal/controls"
	"dotcube/internal/engineconfig"
	"dotcube/internal/lattice"
	"dotcube/internal/params"
	"dotcube/internal/spin"
)

// Viewer is owned by the frame loop and is not safe for concurrent use.
type Viewer struct {
	Panel *controls.Panel
	Prefs engineconfig.Prefs

	configPath string
	log        *slog.Logger
	lattice    lattice.Cache
	clock      *spin.Clock
}

// New returns a viewer starting from prefs. configPath is where "cmd save" writes.
func New(prefs engineconfig.Prefs, configPath string, log *slog.Logger) *Viewer {
	if log == nil {
		log = slog.Default()
	}
	v := &Viewer{
		Panel:      controls.NewPanel(prefs.Params),
		Prefs:      prefs,
		configPath: configPath,
		log:        log,
	}
	v.Prefs.Params = v.Panel.Committed()
	v.clock = spin.NewClock(spin.FromParams(v.Prefs.Params))
	v.Panel.OnChange = v.paramsChanged
	return v
}

func (v *Viewer) paramsChanged(old, next params.RenderParameters) {
	v.Prefs.Params = next
	v.clock.Set(spin.FromParams(next))
	if !old.SameLattice(next) {
		v.log.Info("lattice changed", "size", next.Size, "spacing", next.Spacing,
			"points", lattice.Count(next.Size, next.Spacing))
	}
	if !old.SameAnimation(next) {
		v.log.Info("rotation changed", "axis", next.Axis, "period", spin.Period(next.Speed))
	}
	if old.Radius != next.Radius || old.Wireframe != next.Wireframe {
		v.log.Info("appearance changed", "radius", next.Radius, "wireframe", next.Wireframe)
	}
}

// Params returns the committed render parameters.
func (v *Viewer) Params() params.RenderParameters {
	return v.Panel.Committed()
}

// Points returns the lattice for the current size and spacing, recomputed only when they change.
func (v *Viewer) Points() []lattice.Point3D {
	p := v.Params()
	return v.lattice.Points(p.Size, p.Spacing)
}

// Advance moves the rotation forward by one frame.
func (v *Viewer) Advance(dt time.Duration) {
	v.clock.Advance(dt)
}

// Clock exposes the spin clock for frontends that need the rotation.
func (v *Viewer) Clock() *spin.Clock {
	return v.clock
}

// Status is a one-line summary of the current state.
func (v *Viewer) Status() string {
	p := v.Params()
	return fmt.Sprintf("points %d | %s", lattice.Count(p.Size, p.Spacing), p)
}

// Save writes the preferences (including current parameters) to the config path.
func (v *Viewer) Save() error {
	v.Prefs.Params = v.Params()
	if err := engineconfig.Save(v.configPath, v.Prefs); err != nil {
		return err
	}
	v.log.Info("preferences saved", "path", v.configPath)
	return nil
}

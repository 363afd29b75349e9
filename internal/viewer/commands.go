package viewer

import (
	"fmt"
	"strconv"

	"dotcube/internal/commands"
	"dotcube/internal/params"

	"github.com/chewxy/math32"
)

// Register adds the viewer commands to reg. Every parameter change goes through the control
// panel so values are clamped and snapped exactly as the sliders do.
func (v *Viewer) Register(reg *commands.Registry) {
	number := func(name string, set func(*params.RenderParameters, float32)) {
		reg.Register(name, "<n>", nil, func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%s: expected one number", name)
			}
			n, err := strconv.ParseFloat(args[0], 32)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			f := float32(n)
			if math32.IsNaN(f) || math32.IsInf(f, 0) {
				return fmt.Errorf("%s: %q is not a finite number", name, args[0])
			}
			p := v.Params()
			set(&p, f)
			v.Panel.Apply(p)
			return nil
		})
	}
	number("size", func(p *params.RenderParameters, n float32) { p.Size = n })
	number("spacing", func(p *params.RenderParameters, n float32) { p.Spacing = int(n) })
	number("speed", func(p *params.RenderParameters, n float32) { p.Speed = n })
	number("radius", func(p *params.RenderParameters, n float32) { p.Radius = n })

	reg.Register("axis", "<rotate|rotateXY|rotateXZ|rotateYZ|rotateX|rotateY|rotateZ>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("axis: expected one name")
		}
		a, err := params.ParseAxis(args[0])
		if err != nil {
			return err
		}
		p := v.Params()
		p.Axis = a
		v.Panel.Apply(p)
		return nil
	})

	reg.Register("wireframe", "[on|off]", nil, func(args []string) error {
		p := v.Params()
		on, err := parseSwitch(args, p.Wireframe)
		if err != nil {
			return fmt.Errorf("wireframe: %w", err)
		}
		p.Wireframe = on
		v.Panel.Apply(p)
		return nil
	})

	pref := func(name string, field *bool) {
		reg.Register(name, "[on|off]", nil, func(args []string) error {
			on, err := parseSwitch(args, *field)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*field = on
			return nil
		})
	}
	pref("fps", &v.Prefs.ShowFPS)
	pref("mem", &v.Prefs.ShowMemAlloc)
	pref("grid", &v.Prefs.GridVisible)

	reg.Register("reset", "", nil, func([]string) error {
		v.Panel.Apply(params.Default())
		return nil
	})
	reg.Register("save", "", nil, func([]string) error {
		return v.Save()
	})
	reg.Register("status", "", nil, func([]string) error {
		v.log.Info(v.Status())
		return nil
	})
	reg.Register("help", "", nil, func([]string) error {
		for _, line := range reg.Help() {
			v.log.Info("cmd " + line)
		}
		return nil
	})
}

// parseSwitch reads an optional on/off argument; no argument toggles current.
func parseSwitch(args []string, current bool) (bool, error) {
	if len(args) == 0 {
		return !current, nil
	}
	switch args[0] {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return current, fmt.Errorf("expected on or off, got %q", args[0])
}

package app

import "dungen/internal/core"

// controlCursor tracks which tunable the viewer keys currently adjust. The
// control list comes from the generator itself, so new tunables show up in
// the viewer without touching this package.
type controlCursor struct {
	controls []core.ParameterControl
	selected int
}

func newControlCursor(gen core.Generator) *controlCursor {
	c := &controlCursor{}
	if provider, ok := gen.(core.ParameterControlsProvider); ok {
		c.controls = provider.ParameterControls()
	}
	return c
}

// Empty reports whether the generator exposes any controls.
func (c *controlCursor) Empty() bool { return len(c.controls) == 0 }

// Cycle advances the selection to the next control, wrapping around.
func (c *controlCursor) Cycle() {
	if len(c.controls) == 0 {
		return
	}
	c.selected = (c.selected + 1) % len(c.controls)
}

// Label names the selected control for display.
func (c *controlCursor) Label() string {
	if len(c.controls) == 0 {
		return ""
	}
	return c.controls[c.selected].Label
}

// Adjust moves the selected control by dir steps through the generator's
// parameter setters, honoring the control's bounds. It reports whether a
// value was applied, so the caller knows to regenerate.
func (c *controlCursor) Adjust(gen core.Generator, dir int) bool {
	if len(c.controls) == 0 || dir == 0 {
		return false
	}
	ctrl := c.controls[c.selected]

	switch ctrl.Type {
	case core.ParamTypeInt:
		getter, ok := gen.(core.IntParameterGetter)
		if !ok {
			return false
		}
		setter, ok := gen.(core.IntParameterSetter)
		if !ok {
			return false
		}
		current, ok := getter.IntParameter(ctrl.Key)
		if !ok {
			return false
		}
		step := int(ctrl.Step)
		if step <= 0 {
			step = 1
		}
		value := current + dir*step
		if ctrl.HasMin && value < int(ctrl.Min) {
			value = int(ctrl.Min)
		}
		if ctrl.HasMax && value > int(ctrl.Max) {
			value = int(ctrl.Max)
		}
		if value == current {
			return false
		}
		return setter.SetIntParameter(ctrl.Key, value)

	case core.ParamTypeFloat:
		getter, ok := gen.(core.FloatParameterGetter)
		if !ok {
			return false
		}
		setter, ok := gen.(core.FloatParameterSetter)
		if !ok {
			return false
		}
		current, ok := getter.FloatParameter(ctrl.Key)
		if !ok {
			return false
		}
		value := current + float64(dir)*ctrl.Step
		if ctrl.HasMin && value < ctrl.Min {
			value = ctrl.Min
		}
		if ctrl.HasMax && value > ctrl.Max {
			value = ctrl.Max
		}
		if value == current {
			return false
		}
		return setter.SetFloatParameter(ctrl.Key, value)
	}
	return false
}

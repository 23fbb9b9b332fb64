package rectlives

import (
	"strconv"

	"rect-lives/internal/core"
)

// Parameters reports the board layout, the rule and the run counters.
func (s *Sim) Parameters() core.ParameterSnapshot {
	name := s.pattern.Name
	if !s.hasPattern {
		name = "soup"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				stringParam("pattern", "Pattern", name),
				intParam("w", "Width", s.grid.Width()),
				intParam("h", "Height", s.grid.Height()),
				intParam("margin", "Margin", s.grid.Margin()),
				boolParam("torus", "Torus", s.grid.Torus()),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				stringParam("rule", "Rule", s.grid.Rule().String()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("generation", "Generation", s.grid.Generation()),
				intParam("population", "Population", s.grid.Population()),
				intParam("rate", "Generations/s", s.cfg.Rate),
				intParam("fade", "Fade frames", s.cfg.Fade),
				floatParam("density", "Soup density", s.cfg.Density),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
	}}
}

// ParameterControls lists the values adjustable from the HUD. Fade and
// density take effect on the next Reset.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rate", Label: "Generations/s", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 120, HasMin: true, HasMax: true},
		{Key: "fade", Label: "Fade frames", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 60, HasMin: true, HasMax: true},
		{Key: "density", Label: "Soup density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer parameter, clamping to its bounds.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "rate":
		s.cfg.Rate = clampInt(value, 1, 120)
	case "fade":
		s.cfg.Fade = clampInt(value, 0, 60)
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point parameter, clamping to its bounds.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	if key != "density" {
		return false
	}
	s.cfg.Density = min(max(value, 0), 1)
	return true
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}

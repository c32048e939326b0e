package depth

import (
	"github.com/janekbaraniewski/openchart/internal/colors"
	"github.com/janekbaraniewski/openchart/internal/core"
)

type LayerKind string

const (
	LayerShadow LayerKind = "shadow"
	LayerFace   LayerKind = "face"
	LayerEdge   LayerKind = "edge"
)

// Layer is one depth record: a shape, its fill and opacity, and its position
// in the paint order. Step groups shadow records planned for the same depth
// offset, 0 being the furthest.
type Layer struct {
	Z       int
	Step    int
	Kind    LayerKind
	Opacity float64
	Fill    colors.RGBA
	Shape   Shape
}

// Plan is an ordered list of layers, furthest first. Z strictly increases.
type Plan struct {
	Layers []Layer
}

func (p *Plan) add(l Layer) {
	l.Z = len(p.Layers)
	p.Layers = append(p.Layers, l)
}

func (p Plan) Len() int { return len(p.Layers) }

// Steps is the number of distinct shadow steps in the plan.
func (p Plan) Steps() int {
	seen := make(map[int]bool)
	for _, l := range p.Layers {
		if l.Kind == LayerShadow {
			seen[l.Step] = true
		}
	}
	return len(seen)
}

// StepOpacities returns the opacity of each shadow step in paint order.
func (p Plan) StepOpacities() []float64 {
	var out []float64
	last := -1
	for _, l := range p.Layers {
		if l.Kind != LayerShadow || l.Step == last {
			continue
		}
		out = append(out, l.Opacity)
		last = l.Step
	}
	return out
}

// ByKind filters the plan's layers.
func (p Plan) ByKind(kind LayerKind) []Layer {
	var out []Layer
	for _, l := range p.Layers {
		if l.Kind == kind {
			out = append(out, l)
		}
	}
	return out
}

// Options are the 3D settings shared by the planners.
type Options struct {
	Depth    int
	Position core.ShadowPosition
}

// OptionsFor derives planner options from a chart configuration.
func OptionsFor(cfg core.ChartConfig) Options {
	cfg = cfg.Normalize()
	return Options{
		Depth:    core.ClampDepth(cfg.Type, cfg.Shadow3DDepth),
		Position: cfg.Shadow3DPosition,
	}
}

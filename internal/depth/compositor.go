package depth

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/janekbaraniewski/openchart/internal/core"
)

type State int

const (
	StateDisabled State = iota
	StateCompositing
	StateDone
)

func (s State) String() string {
	switch s {
	case StateDisabled:
		return "disabled"
	case StateCompositing:
		return "compositing"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Scene is the finished 2D layout of one render: bars for bar-family kinds,
// slices for pie-family kinds.
type Scene struct {
	Bars   []Bar
	Slices []Slice
}

// Compositor runs the depth pass of a single render. Compose plans the layers
// without touching any surface; BeforePaint issues them, once, before the
// base primitives are painted.
type Compositor struct {
	id     string
	kind   core.ChartKind
	family core.Family
	opts   Options
	state  State
	plan   Plan
}

// NewCompositor starts Disabled unless 3D is requested and the chart kind
// supports it.
func NewCompositor(cfg core.ChartConfig) *Compositor {
	cfg = cfg.Normalize()
	c := &Compositor{
		id:     uuid.NewString(),
		kind:   cfg.Type,
		family: cfg.Type.Family(),
		opts:   OptionsFor(cfg),
		state:  StateDisabled,
	}
	if cfg.Enable3D && core.Supports(cfg.Type, core.Feature3D) && c.opts.Depth > 0 {
		c.state = StateCompositing
	}
	return c
}

func (c *Compositor) ID() string       { return c.id }
func (c *Compositor) State() State     { return c.state }
func (c *Compositor) Options() Options { return c.opts }

// Plan returns the layers from the last Compose call.
func (c *Compositor) Plan() Plan { return c.plan }

// Compose plans the depth layers for scene. It is pure with respect to the
// surface and returns an empty plan when the compositor is not compositing.
func (c *Compositor) Compose(scene Scene) Plan {
	if c.state != StateCompositing {
		return Plan{}
	}
	switch c.family {
	case core.FamilyBar:
		c.plan = PlanBars(scene.Bars, c.opts)
	case core.FamilyPie:
		c.plan = PlanSectors(scene.Slices, c.opts)
	default:
		c.plan = Plan{}
	}
	return c.plan
}

// BeforePaint issues the composed plan to s and moves to Done. It does
// nothing when Disabled or already Done.
func (c *Compositor) BeforePaint(s Surface) error {
	if c.state != StateCompositing {
		return nil
	}
	n, err := Paint(c.plan, s)
	c.state = StateDone
	if err != nil {
		return fmt.Errorf("depth pass %s: %w", c.id, err)
	}
	log.Printf("depth: pass %s painted %d layers for %s (depth %d, %s)", c.id, n, c.kind, c.opts.Depth, c.opts.Position)
	return nil
}

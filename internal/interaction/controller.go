// Package interaction spawns a random shape wherever a field is clicked.
package interaction

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clickfield/internal/core"
	"github.com/vovakirdan/clickfield/internal/field"
	"github.com/vovakirdan/clickfield/internal/shape"
)

// Stats counts the shapes a controller has spawned.
type Stats struct {
	Spawned int
	Squares int
	Rounds  int
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger logs every spawned shape at debug level.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithSpawnHook calls fn after a shape has been bound and rendered.
func WithSpawnHook(fn func(shape.Shape)) Option {
	return func(c *Controller) { c.onSpawn = fn }
}

// Controller turns field clicks into rendered shapes.
type Controller struct {
	rng     shape.Randomizer
	logger  *log.Logger
	onSpawn func(shape.Shape)
	stats   Stats
}

// New creates a controller drawing the kind choice and the shape
// parameters from rng.
func New(rng shape.Randomizer, opts ...Option) *Controller {
	c := &Controller{rng: rng}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Attach makes every click on f spawn a shape at the click point.
func (c *Controller) Attach(f *field.Field) {
	f.SetClickCallback(func(p core.Point) error {
		_, err := c.Spawn(f, p)
		return err
	})
}

// Spawn places a random shape centered on p. Square and Round are equally
// likely. The shape is bound before it is rendered.
func (c *Controller) Spawn(f *field.Field, p core.Point) (shape.Shape, error) {
	kind := shape.KindSquare
	if c.rng.RandInt(0, 1) != 0 {
		kind = shape.KindRound
	}

	s := shape.New(kind)
	s.SetRandomParams(c.rng, shape.WithCenter(p))
	if err := f.BindFigure(s); err != nil {
		return nil, err
	}
	if err := s.Render(); err != nil {
		return nil, err
	}

	c.stats.Spawned++
	if kind == shape.KindRound {
		c.stats.Rounds++
	} else {
		c.stats.Squares++
	}

	if c.logger != nil {
		c.logger.Debug("shape spawned",
			"kind", kind,
			"center", p,
			"size", s.Size(),
			"color", s.Color(),
			"z", f.ZIndex(),
		)
	}
	if c.onSpawn != nil {
		c.onSpawn(s)
	}
	return s, nil
}

// Stats returns the counters collected so far.
func (c *Controller) Stats() Stats {
	return c.stats
}

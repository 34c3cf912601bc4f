package folio

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrInvalidConfiguration is returned when a subsystem is constructed with
// settings it cannot honour. Errors wrap it with the offending value.
var ErrInvalidConfiguration = errors.New("folio: invalid configuration")

// Section names that change the ambient field's motion.
const (
	SectionHome     = "home"
	SectionAbout    = "about"
	SectionSkills   = "skills"
	SectionProjects = "projects"
	SectionContact  = "contact"
)

const (
	DefaultPointCount  = 1000
	DefaultPointBounds = 10.0
)

// FieldConfig controls the ambient point cloud.
type FieldConfig struct {
	// Count is the number of points. Must be positive.
	Count int `yaml:"count"`
	// Bounds is the half-width of the cube the points are sampled from.
	// Must be positive; points fall in [-Bounds, Bounds).
	Bounds float64 `yaml:"bounds"`
	// Seed makes the cloud reproducible. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`
	// PointSize is the world-space point size used by the projector.
	PointSize float64 `yaml:"point_size"`
	// Opacity is the overall opacity of the field layer.
	Opacity float64 `yaml:"opacity"`
}

// DefaultFieldConfig returns 1000 points in [-10, 10)^3.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Count:     DefaultPointCount,
		Bounds:    DefaultPointBounds,
		PointSize: 0.02,
		Opacity:   0.3,
	}
}

// Validate reports whether the configuration can build a field.
func (c FieldConfig) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("%w: point count %d must be positive", ErrInvalidConfiguration, c.Count)
	}
	if !(c.Bounds > 0) || math.IsInf(c.Bounds, 0) {
		return fmt.Errorf("%w: point bounds %v must be positive and finite", ErrInvalidConfiguration, c.Bounds)
	}
	return nil
}

// FieldTransform is the per-frame transform applied to the whole cloud.
type FieldTransform struct {
	RotationX, RotationY, RotationZ float64
	OffsetY                         float64
	ScaleX, ScaleY                  float64
}

// IdentityFieldTransform leaves the cloud untouched.
var IdentityFieldTransform = FieldTransform{ScaleX: 1, ScaleY: 1}

// StepTransform computes the transform for elapsed seconds in section,
// starting from prev. The base rotation is always recomputed; the
// section-specific fields only change for the sections that drive them
// and carry over from prev otherwise.
func StepTransform(prev FieldTransform, elapsed float64, section string) FieldTransform {
	next := prev
	next.RotationX = math.Sin(elapsed*0.1) * 0.1
	next.RotationY = math.Cos(elapsed*0.1) * 0.1

	switch section {
	case SectionHome:
		next.OffsetY = math.Sin(elapsed*0.5) * 0.5
	case SectionAbout:
		next.RotationZ = math.Sin(elapsed*0.2) * 0.1
	case SectionProjects:
		next.ScaleX = 1 + math.Sin(elapsed*0.3)*0.1
		next.ScaleY = 1 + math.Cos(elapsed*0.3)*0.1
	}
	return next
}

// AmbientField owns a fixed point cloud and its current transform.
type AmbientField struct {
	cfg       FieldConfig
	points    []Vec3
	transform FieldTransform
}

// NewAmbientField samples cfg.Count points uniformly in the cube
// [-cfg.Bounds, cfg.Bounds)^3. The points never change afterwards.
func NewAmbientField(cfg FieldConfig) (*AmbientField, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	points := make([]Vec3, cfg.Count)
	for i := range points {
		points[i] = Vec3{
			X: (rng.Float64()*2 - 1) * cfg.Bounds,
			Y: (rng.Float64()*2 - 1) * cfg.Bounds,
			Z: (rng.Float64()*2 - 1) * cfg.Bounds,
		}
	}
	return &AmbientField{
		cfg:       cfg,
		points:    points,
		transform: IdentityFieldTransform,
	}, nil
}

// Points returns the point cloud. The returned slice MUST NOT be mutated.
func (f *AmbientField) Points() []Vec3 {
	return f.points
}

// Len returns the number of points.
func (f *AmbientField) Len() int {
	return len(f.points)
}

// Config returns the configuration the field was built with.
func (f *AmbientField) Config() FieldConfig {
	return f.cfg
}

// Tick recomputes the transform for elapsed seconds since the field was
// mounted and the current section, stores it, and returns it. Repeating a
// call with the same arguments yields the same transform.
func (f *AmbientField) Tick(elapsed float64, section string) FieldTransform {
	f.transform = StepTransform(f.transform, elapsed, section)
	return f.transform
}

// Transform returns the transform computed by the most recent Tick.
func (f *AmbientField) Transform() FieldTransform {
	return f.transform
}

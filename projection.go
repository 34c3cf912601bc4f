package folio

import "math"

// Camera3D is a perspective camera looking down -Z.
type Camera3D struct {
	Position Vec3
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Near is the near clipping distance; closer points are culled.
	Near float64
}

// DefaultCamera3D sits at (0, 0, 5) with a 75 degree vertical FOV.
func DefaultCamera3D() Camera3D {
	return Camera3D{Position: Vec3{Z: 5}, FOV: 75, Near: 0.1}
}

// ProjectedPoint is a field point in viewport pixels.
type ProjectedPoint struct {
	X, Y float64
	// Size is the attenuated point diameter in pixels.
	Size float64
	// Depth is the distance in front of the camera.
	Depth float64
}

// Projector maps field points onto a viewport of a given size.
type Projector struct {
	Camera    Camera3D
	PointSize float64

	width, height float64
	focal         float64 // 1 / tan(fov/2)
}

// NewProjector creates a projector for a width x height viewport.
func NewProjector(cam Camera3D, pointSize float64, width, height int) *Projector {
	p := &Projector{Camera: cam, PointSize: pointSize}
	p.Resize(width, height)
	return p
}

// Resize updates the viewport size.
func (p *Projector) Resize(width, height int) {
	p.width = float64(width)
	p.height = float64(height)
	p.focal = 1 / math.Tan(p.Camera.FOV*math.Pi/360)
}

// Size returns the viewport size.
func (p *Projector) Size() (width, height float64) {
	return p.width, p.height
}

// projectPoint transforms pt by the field matrix m and projects it.
// ok is false when the point is behind the near plane or off screen.
func (p *Projector) projectPoint(m *mat3, offsetY float64, pt Vec3) (ProjectedPoint, bool) {
	w := m.apply(pt, offsetY)
	cx := w.X - p.Camera.Position.X
	cy := w.Y - p.Camera.Position.Y
	depth := p.Camera.Position.Z - w.Z
	if depth < p.Camera.Near || p.height == 0 {
		return ProjectedPoint{}, false
	}

	aspect := p.width / p.height
	ndcX := cx / depth * p.focal / aspect
	ndcY := cy / depth * p.focal
	if ndcX < -1 || ndcX > 1 || ndcY < -1 || ndcY > 1 {
		return ProjectedPoint{}, false
	}

	return ProjectedPoint{
		X:     (ndcX + 1) / 2 * p.width,
		Y:     (1 - ndcY) / 2 * p.height,
		Size:  p.PointSize * p.focal * p.height / 2 / depth,
		Depth: depth,
	}, true
}

// Project appends every visible point of pts, transformed by t, to out
// and returns the extended slice. Pass out[:0] to reuse a buffer.
func (p *Projector) Project(pts []Vec3, t FieldTransform, out []ProjectedPoint) []ProjectedPoint {
	m := fieldMatrix(t)
	for _, pt := range pts {
		if pp, ok := p.projectPoint(&m, t.OffsetY, pt); ok {
			out = append(out, pp)
		}
	}
	return out
}

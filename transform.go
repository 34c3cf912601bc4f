package folio

import "math"

// mat3 is a row-major 3x3 matrix.
type mat3 [9]float64

// fieldMatrix computes the linear part of a FieldTransform. Returns
// R * S where R = Rx * Ry * Rz (Euler order XYZ) and S = diag(sx, sy, 1).
//
// Composition order applied to a point p:
//
//	Scale -> RotateZ -> RotateY -> RotateX -> Translate(0, OffsetY, 0)
func fieldMatrix(t FieldTransform) mat3 {
	sx, cx := math.Sincos(t.RotationX)
	sy, cy := math.Sincos(t.RotationY)
	sz, cz := math.Sincos(t.RotationZ)

	// Rx * Ry * Rz, expanded.
	r := mat3{
		cy * cz, -cy * sz, sy,
		cx*sz + sx*sy*cz, cx*cz - sx*sy*sz, -sx * cy,
		sx*sz - cx*sy*cz, sx*cz + cx*sy*sz, cx * cy,
	}

	// Right-multiply by the scale diagonal: scale the first two columns.
	r[0] *= t.ScaleX
	r[3] *= t.ScaleX
	r[6] *= t.ScaleX
	r[1] *= t.ScaleY
	r[4] *= t.ScaleY
	r[7] *= t.ScaleY
	return r
}

// apply transforms p by m and then translates by (0, offsetY, 0).
func (m *mat3) apply(p Vec3, offsetY float64) Vec3 {
	return Vec3{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z,
		Y: m[3]*p.X + m[4]*p.Y + m[5]*p.Z + offsetY,
		Z: m[6]*p.X + m[7]*p.Y + m[8]*p.Z,
	}
}

// Apply returns p transformed by t: scaled, rotated, then offset.
func (t FieldTransform) Apply(p Vec3) Vec3 {
	m := fieldMatrix(t)
	return m.apply(p, t.OffsetY)
}

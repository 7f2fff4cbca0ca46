package vmath

// Mat4 is a column-major 4x4 transform, the layout surface-detection
// sources deliver hit poses in
type Mat4 [16]float64

// Mat4Identity returns the identity transform
func Mat4Identity() Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// Mat4Translation builds a pure translation transform
func Mat4Translation(v Vec3) Mat4 {
	m := Mat4Identity()
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

// Position extracts the world translation column
func (m Mat4) Position() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

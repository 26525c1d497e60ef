package geomtree

// Matrix is a rigid transform: rotate, then translate. Rotation is row
// major.
type Matrix struct {
	Rotation    [9]float64 `cbor:"r"`
	Translation Vector     `cbor:"t"`
}

func Identity() Matrix {
	return Matrix{Rotation: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// Translation returns the matrix moving points by t
func Translation(t Vector) Matrix {
	m := Identity()
	m.Translation = t
	return m
}

// Mul returns the transform applying o and then m
func (m Matrix) Mul(o Matrix) Matrix {
	var r Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += m.Rotation[i*3+k] * o.Rotation[k*3+j]
			}
			r.Rotation[i*3+j] = s
		}
	}
	r.Translation = m.Apply(o.Translation)
	return r
}

// Apply transforms a point from the local to the parent frame
func (m Matrix) Apply(p Vector) Vector {
	var r Vector
	for i := 0; i < 3; i++ {
		r[i] = m.Translation[i]
		for k := 0; k < 3; k++ {
			r[i] += m.Rotation[i*3+k] * p[k]
		}
	}
	return r
}

// InverseApply transforms a point from the parent to the local frame. The
// rotation is assumed orthonormal.
func (m Matrix) InverseApply(p Vector) Vector {
	var d, r Vector
	for i := 0; i < 3; i++ {
		d[i] = p[i] - m.Translation[i]
	}
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			r[i] += m.Rotation[k*3+i] * d[k]
		}
	}
	return r
}

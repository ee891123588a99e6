package math

/**
 * @brief A named pointer to one scalar of a persisted value. Serializers walk
 * the list returned by a Fields method to read or write every component in
 * declared order without reflection.
 */
type Field[T Scalar] struct {
	Name string
	Ptr  *T
}

func prefixed[T Scalar](prefix string, fields []Field[T]) []Field[T] {
	for i := range fields {
		fields[i].Name = prefix + "." + fields[i].Name
	}
	return fields
}

func (v *Vec2[T]) Fields() []Field[T] {
	return []Field[T]{{"X", &v.X}, {"Y", &v.Y}}
}

func (v *Vec3[T]) Fields() []Field[T] {
	return []Field[T]{{"X", &v.X}, {"Y", &v.Y}, {"Z", &v.Z}}
}

func (v *Vec4[T]) Fields() []Field[T] {
	return []Field[T]{{"X", &v.X}, {"Y", &v.Y}, {"Z", &v.Z}, {"W", &v.W}}
}

func (q *Quaternion[T]) Fields() []Field[T] {
	return []Field[T]{{"X", &q.X}, {"Y", &q.Y}, {"Z", &q.Z}, {"W", &q.W}}
}

// Fields lists the matrix elements row by row, M11 through M44.
func (mt *Matrix[T]) Fields() []Field[T] {
	return []Field[T]{
		{"M11", &mt.M11}, {"M12", &mt.M12}, {"M13", &mt.M13}, {"M14", &mt.M14},
		{"M21", &mt.M21}, {"M22", &mt.M22}, {"M23", &mt.M23}, {"M24", &mt.M24},
		{"M31", &mt.M31}, {"M32", &mt.M32}, {"M33", &mt.M33}, {"M34", &mt.M34},
		{"M41", &mt.M41}, {"M42", &mt.M42}, {"M43", &mt.M43}, {"M44", &mt.M44},
	}
}

func (p *Plane[T]) Fields() []Field[T] {
	return append(prefixed("Normal", p.Normal.Fields()), Field[T]{"D", &p.D})
}

func (r *Ray[T]) Fields() []Field[T] {
	return append(prefixed("Position", r.Position.Fields()), prefixed("Direction", r.Direction.Fields())...)
}

func (b *BoundingBox[T]) Fields() []Field[T] {
	return append(prefixed("Min", b.Min.Fields()), prefixed("Max", b.Max.Fields())...)
}

func (s *BoundingSphere[T]) Fields() []Field[T] {
	return append(prefixed("Center", s.Center.Fields()), Field[T]{"Radius", &s.Radius})
}

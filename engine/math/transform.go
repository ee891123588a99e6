package math

func NewTransform[T Scalar]() *Transform[T] {
	return NewTransformFrom(Vec3Zero[T](), QuaternionIdentity[T](), Vec3One[T]())
}

func TransformFromPosition[T Scalar](position Vec3[T]) *Transform[T] {
	return NewTransformFrom(position, QuaternionIdentity[T](), Vec3One[T]())
}

func TransformFromRotation[T Scalar](rotation Quaternion[T]) *Transform[T] {
	return NewTransformFrom(Vec3Zero[T](), rotation, Vec3One[T]())
}

func TransformFromPositionRotation[T Scalar](position Vec3[T], rotation Quaternion[T]) *Transform[T] {
	return NewTransformFrom(position, rotation, Vec3One[T]())
}

func NewTransformFrom[T Scalar](position Vec3[T], rotation Quaternion[T], scale Vec3[T]) *Transform[T] {
	t := &Transform[T]{Local: Identity[T]()}
	t.SetPositionRotationScale(position, rotation, scale)
	return t
}

/**
 * @brief Builds a transform from an affine matrix by decomposing it into
 * scale, rotation and translation.
 * @return The transform and false when the matrix has a zero scale axis; the
 * rotation is then identity.
 */
func TransformFromMatrix[T Scalar](mt Matrix[T]) (*Transform[T], bool) {
	scale, rotation, translation, ok := mt.Decompose()
	return NewTransformFrom(translation, rotation, scale), ok
}

func (t *Transform[T]) SetPosition(position Vec3[T]) {
	t.Position = position
	t.IsDirty = true
}

func (t *Transform[T]) Translate(translation Vec3[T]) {
	t.Position = t.Position.Add(translation)
	t.IsDirty = true
}

func (t *Transform[T]) SetRotation(rotation Quaternion[T]) {
	t.Rotation = rotation
	t.IsDirty = true
}

// Rotate applies rotation after the current rotation.
func (t *Transform[T]) Rotate(rotation Quaternion[T]) {
	t.Rotation = t.Rotation.Concatenate(rotation)
	t.IsDirty = true
}

func (t *Transform[T]) SetScale(scale Vec3[T]) {
	t.Scale = scale
	t.IsDirty = true
}

// ScaleBy multiplies the current scale componentwise.
func (t *Transform[T]) ScaleBy(scale Vec3[T]) {
	t.Scale = t.Scale.Mul(scale)
	t.IsDirty = true
}

func (t *Transform[T]) SetPositionRotation(position Vec3[T], rotation Quaternion[T]) {
	t.Position = position
	t.Rotation = rotation
	t.IsDirty = true
}

func (t *Transform[T]) SetPositionRotationScale(position Vec3[T], rotation Quaternion[T], scale Vec3[T]) {
	t.Position = position
	t.Rotation = rotation
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform[T]) TranslateRotate(translation Vec3[T], rotation Quaternion[T]) {
	t.Position = t.Position.Add(translation)
	t.Rotation = t.Rotation.Concatenate(rotation)
	t.IsDirty = true
}

/**
 * @brief Returns the local matrix Scale * Rotation * Translation, rebuilding
 * it when the transform is dirty. A nil transform is the identity.
 */
func (t *Transform[T]) LocalMatrix() Matrix[T] {
	if t == nil {
		return Identity[T]()
	}
	if t.IsDirty {
		t.Local = CreateScale(t.Scale).
			Mul(CreateFromQuaternion(t.Rotation)).
			Mul(CreateTranslation(t.Position))
		t.IsDirty = false
	}
	return t.Local
}

// WorldMatrix chains the local matrix with every parent's.
func (t *Transform[T]) WorldMatrix() Matrix[T] {
	if t == nil {
		return Identity[T]()
	}
	l := t.LocalMatrix()
	if t.Parent != nil {
		return l.Mul(t.Parent.WorldMatrix())
	}
	return l
}

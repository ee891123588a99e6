package math

// Vec2 represents a 2D vector
type Vec2[T Scalar] struct {
	X, Y T
}

// Vec3 represents a 3D vector
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// Vec4 represents a 4D vector
type Vec4[T Scalar] struct {
	X, Y, Z, W T
}

/**
 * @brief A 4x4 matrix stored row-major. Points are treated as row vectors,
 * so a point p is transformed as p * M and translation lives in M41..M43.
 */
type Matrix[T Scalar] struct {
	M11, M12, M13, M14 T
	M21, M22, M23, M24 T
	M31, M32, M33, M34 T
	M41, M42, M43, M44 T
}

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion[T Scalar] struct {
	X, Y, Z, W T
}

/**
 * @brief A plane defined by the equation Normal·p + D = 0. The positive
 * half-space (in front of the plane) is the side the normal points to.
 */
type Plane[T Scalar] struct {
	/** @brief The normal vector. Should be unit length for distances to be metric. */
	Normal Vec3[T]
	/** @brief Signed distance of the plane from the origin along -Normal. */
	D T
}

/**
 * @brief A half-line. Direction need not be unit length; intersection
 * distances are expressed in multiples of Direction.
 */
type Ray[T Scalar] struct {
	Position  Vec3[T]
	Direction Vec3[T]
}

/**
 * @brief An axis-aligned bounding box. Min should be <= Max componentwise;
 * this is not validated.
 */
type BoundingBox[T Scalar] struct {
	Min Vec3[T]
	Max Vec3[T]
}

/** @brief A sphere. Radius should be >= 0; this is not validated. */
type BoundingSphere[T Scalar] struct {
	Center Vec3[T]
	Radius T
}

/**
 * @brief Represents a single vertex in 3D space.
 */
type Vertex3D[T Scalar] struct {
	/** @brief The position of the vertex */
	Position Vec3[T]
	/** @brief The normal of the vertex. */
	Normal Vec3[T]
	/** @brief The texture coordinate of the vertex. */
	Texcoord Vec2[T]
	/** @brief The colour of the vertex. */
	Colour Vec4[T]
	/** @brief The tangent of the vertex. */
	Tangent Vec3[T]
}

/**
 * @brief Represents the transform of an object in the world.
 * Transforms can have a parent whose own transform is then
 * taken into account. NOTE: The properties of this should not
 * be edited directly, but done via the methods in transform.go
 * to ensure proper matrix generation.
 */
type Transform[T Scalar] struct {
	/** @brief The position in the world. */
	Position Vec3[T]
	/** @brief The rotation in the world. */
	Rotation Quaternion[T]
	/** @brief The scale in the world. */
	Scale Vec3[T]
	/**
	 * @brief Indicates if the position, rotation or scale have changed,
	 * indicating that the local matrix needs to be recalculated.
	 */
	IsDirty bool
	/**
	 * @brief The local transformation matrix, updated whenever
	 * the position, rotation or scale have changed.
	 */
	Local Matrix[T]
	/** @brief A pointer to a parent transform if one is assigned. Can also be nil. */
	Parent *Transform[T]
}

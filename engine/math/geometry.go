package math

import (
	"fmt"

	"github.com/spaghettifunk/spatial/engine/core"
)

func checkTriangles(op string, vertexCount int, indices []uint32) error {
	if len(indices)%3 != 0 {
		return fmt.Errorf("%s: index count %d is not a multiple of 3: %w", op, len(indices), core.ErrInvalidArgument)
	}
	for _, idx := range indices {
		if int(idx) >= vertexCount {
			return fmt.Errorf("%s: index %d with %d vertices: %w", op, idx, vertexCount, core.ErrOutOfRange)
		}
	}
	return nil
}

// GenerateNormals assigns each triangle's face normal to its three vertices.
func GenerateNormals[T Scalar](vertices []Vertex3D[T], indices []uint32) error {
	if err := checkTriangles("GenerateNormals", len(vertices), indices); err != nil {
		return err
	}
	for i := 0; i < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		// NOTE: This just generates a face normal. Smoothing out should be done in a separate pass if desired.
		normal := edge1.Cross(edge2).Normalize()
		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
	return nil
}

/**
 * @brief Computes per-triangle tangents from positions and texture
 * coordinates. The sign of the bitangent is folded into the tangent.
 */
func GenerateTangents[T Scalar](vertices []Vertex3D[T], indices []uint32) error {
	if err := checkTriangles("GenerateTangents", len(vertices), indices); err != nil {
		return err
	}
	for i := 0; i < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		deltaU1 := vertices[i1].Texcoord.X - vertices[i0].Texcoord.X
		deltaV1 := vertices[i1].Texcoord.Y - vertices[i0].Texcoord.Y
		deltaU2 := vertices[i2].Texcoord.X - vertices[i0].Texcoord.X
		deltaV2 := vertices[i2].Texcoord.Y - vertices[i0].Texcoord.Y

		fc := 1 / (deltaU1*deltaV2 - deltaU2*deltaV1)

		tangent := Vec3[T]{
			X: fc * (deltaV2*edge1.X - deltaV1*edge2.X),
			Y: fc * (deltaV2*edge1.Y - deltaV1*edge2.Y),
			Z: fc * (deltaV2*edge1.Z - deltaV1*edge2.Z),
		}.Normalize()

		var handedness T = 1
		if deltaV1*deltaU2-deltaV2*deltaU1 < 0 {
			handedness = -1
		}

		tangent = tangent.MulScalar(handedness)
		vertices[i0].Tangent = tangent
		vertices[i1].Tangent = tangent
		vertices[i2].Tangent = tangent
	}
	return nil
}

// VerticesNearlyEqual compares every attribute within tolerance.
func VerticesNearlyEqual[T Scalar](a, b Vertex3D[T], tolerance T) bool {
	return a.Position.NearlyEqual(b.Position, tolerance) &&
		a.Normal.NearlyEqual(b.Normal, tolerance) &&
		a.Texcoord.NearlyEqual(b.Texcoord, tolerance) &&
		a.Colour.NearlyEqual(b.Colour, tolerance) &&
		a.Tangent.NearlyEqual(b.Tangent, tolerance)
}

/**
 * @brief Removes vertices that are equal within FloatEpsilon, rewriting
 * indices in place to point at the surviving copy.
 * @return The unique vertices in first-seen order.
 */
func DeduplicateVertices[T Scalar](vertices []Vertex3D[T], indices []uint32) ([]Vertex3D[T], error) {
	if err := checkTriangles("DeduplicateVertices", len(vertices), indices); err != nil {
		return nil, err
	}

	unique := make([]Vertex3D[T], 0, len(vertices))
	remap := make([]uint32, len(vertices))
	for v := range vertices {
		found := false
		for u := range unique {
			if VerticesNearlyEqual(vertices[v], unique[u], FloatEpsilon) {
				remap[v] = uint32(u)
				found = true
				break
			}
		}
		if !found {
			remap[v] = uint32(len(unique))
			unique = append(unique, vertices[v])
		}
	}

	for i, idx := range indices {
		indices[i] = remap[idx]
	}

	core.LogDebug("DeduplicateVertices: removed %d vertices, orig/now %d/%d", len(vertices)-len(unique), len(vertices), len(unique))
	return unique, nil
}

// BoundsOf returns the box and the sphere enclosing the vertex positions.
func BoundsOf[T Scalar](vertices []Vertex3D[T]) (BoundingBox[T], BoundingSphere[T], error) {
	if len(vertices) == 0 {
		return BoundingBox[T]{}, BoundingSphere[T]{}, fmt.Errorf("BoundsOf: no vertices: %w", core.ErrInvalidArgument)
	}
	points := make([]Vec3[T], len(vertices))
	for i := range vertices {
		points[i] = vertices[i].Position
	}
	box, err := BoundingBoxFromPoints(points)
	if err != nil {
		return BoundingBox[T]{}, BoundingSphere[T]{}, err
	}
	sphere, err := BoundingSphereFromPoints(points)
	if err != nil {
		return BoundingBox[T]{}, BoundingSphere[T]{}, err
	}
	return box, sphere, nil
}

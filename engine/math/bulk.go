package math

import (
	"fmt"

	"github.com/spaghettifunk/spatial/engine/core"
)

func checkBulk(op string, dst, src int) error {
	if dst < src {
		return fmt.Errorf("%s: destination has %d elements, need %d: %w", op, dst, src, core.ErrInvalidArgument)
	}
	return nil
}

// TransformVec2s writes src[i] transformed by mt into dst[i].
func TransformVec2s[T Scalar](src []Vec2[T], mt Matrix[T], dst []Vec2[T]) error {
	if err := checkBulk("TransformVec2s", len(dst), len(src)); err != nil {
		return err
	}
	for i := range src {
		dst[i] = src[i].Transform(mt)
	}
	return nil
}

// TransformVec3s writes src[i] transformed by mt into dst[i]. dst may alias src.
func TransformVec3s[T Scalar](src []Vec3[T], mt Matrix[T], dst []Vec3[T]) error {
	if err := checkBulk("TransformVec3s", len(dst), len(src)); err != nil {
		return err
	}
	for i := range src {
		dst[i] = src[i].Transform(mt)
	}
	return nil
}

func TransformVec4s[T Scalar](src []Vec4[T], mt Matrix[T], dst []Vec4[T]) error {
	if err := checkBulk("TransformVec4s", len(dst), len(src)); err != nil {
		return err
	}
	for i := range src {
		dst[i] = src[i].Transform(mt)
	}
	return nil
}

// TransformNormals3 ignores the translation row of mt.
func TransformNormals3[T Scalar](src []Vec3[T], mt Matrix[T], dst []Vec3[T]) error {
	if err := checkBulk("TransformNormals3", len(dst), len(src)); err != nil {
		return err
	}
	for i := range src {
		dst[i] = src[i].TransformNormal(mt)
	}
	return nil
}

func TransformVec3sByQuaternion[T Scalar](src []Vec3[T], q Quaternion[T], dst []Vec3[T]) error {
	if err := checkBulk("TransformVec3sByQuaternion", len(dst), len(src)); err != nil {
		return err
	}
	for i := range src {
		dst[i] = src[i].TransformQuaternion(q)
	}
	return nil
}

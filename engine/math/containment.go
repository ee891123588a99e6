package math

// ContainmentType describes how one volume relates to another.
type ContainmentType uint8

const (
	// The volumes do not touch.
	Disjoint ContainmentType = iota
	// The tested volume lies entirely inside.
	Contains
	// The volumes overlap partially.
	Intersects
)

func (c ContainmentType) String() string {
	switch c {
	case Disjoint:
		return "Disjoint"
	case Contains:
		return "Contains"
	case Intersects:
		return "Intersects"
	}
	return "ContainmentType(?)"
}

// PlaneIntersectionType classifies a point or volume against a plane.
type PlaneIntersectionType uint8

const (
	// Entirely on the side the normal points to.
	Front PlaneIntersectionType = iota
	// Entirely on the opposite side.
	Back
	// Straddling or touching the plane.
	Intersecting
)

func (p PlaneIntersectionType) String() string {
	switch p {
	case Front:
		return "Front"
	case Back:
		return "Back"
	case Intersecting:
		return "Intersecting"
	}
	return "PlaneIntersectionType(?)"
}

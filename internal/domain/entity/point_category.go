// Package entity contains the core business objects of the project.
package entity

// PointCategory represents the drop variant of a point.
type PointCategory string

const (
	// PointCategoryNormal is the default drop variant.
	PointCategoryNormal PointCategory = "normal"
	// PointCategoryGolden is the rare golden variant.
	PointCategoryGolden PointCategory = "golden"
	// PointCategoryRainbow is the rarest rainbow variant.
	PointCategoryRainbow PointCategory = "rainbow"
)

// String returns the string representation of the PointCategory.
func (c PointCategory) String() string {
	return string(c)
}

// IsValid checks if the PointCategory is a valid value.
func (c PointCategory) IsValid() bool {
	switch c {
	case PointCategoryNormal, PointCategoryGolden, PointCategoryRainbow:
		return true
	default:
		return false
	}
}

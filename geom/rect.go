// Package geom holds simple geometric value types.
package geom

// Rectangle is a width/height pair.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle creates a rectangle with the given dimensions. Values are
// taken as is, nothing is validated.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns the product of width and height.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

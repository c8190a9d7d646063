package geom

import "math"

// Vector2D is a 2D point or displacement. All operations are value
// operations; nothing mutates the receiver.
type Vector2D struct {
	X float32 `json:"x" msgpack:"x"`
	Y float32 `json:"y" msgpack:"y"`
}

// Add returns the component-wise sum of v and other.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference of v and other.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vector2D) Scale(s float32) Vector2D {
	return Vector2D{X: v.X * s, Y: v.Y * s}
}

// Magnitude returns the Euclidean length of v.
func (v Vector2D) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalize returns v scaled to unit length. The zero vector normalizes
// to the zero vector rather than dividing by zero.
func (v Vector2D) Normalize() Vector2D {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector2D{}
	}
	return Vector2D{X: v.X / mag, Y: v.Y / mag}
}

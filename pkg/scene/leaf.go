package scene

import "fmt"

// Dot is a point-like leaf holding only a position.
type Dot struct {
	graphicNode
	x, y int
}

// NewDot creates a dot at (x, y).
func NewDot(x, y int) *Dot {
	return &Dot{x: x, y: y}
}

// Move translates the dot by (dx, dy).
func (d *Dot) Move(dx, dy int) {
	d.x += dx
	d.y += dy
}

// Draw returns the dot's description, e.g. "Dot(10,20)".
func (d *Dot) Draw() []string {
	return []string{fmt.Sprintf("Dot(%d,%d)", d.x, d.y)}
}

// Kind returns [KindLeaf].
func (d *Dot) Kind() Kind { return KindLeaf }

// Position returns the dot's current coordinates.
func (d *Dot) Position() (x, y int) { return d.x, d.y }

// Circle is a dot with a radius. It reuses the dot's positional state and
// movement, specializing only the description. Circles own no other graphics.
type Circle struct {
	Dot
	radius int
}

// NewCircle creates a circle at (x, y) with the given radius.
func NewCircle(x, y, radius int) *Circle {
	c := &Circle{radius: radius}
	c.x, c.y = x, y
	return c
}

// Draw returns the circle's description, e.g. "Circle(5,5,r=3)".
func (c *Circle) Draw() []string {
	return []string{fmt.Sprintf("Circle(%d,%d,r=%d)", c.x, c.y, c.radius)}
}

// Radius returns the circle's radius.
func (c *Circle) Radius() int { return c.radius }

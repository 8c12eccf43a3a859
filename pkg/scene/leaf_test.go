package scene

import (
	"slices"
	"testing"
)

func TestDot_MoveTranslates(t *testing.T) {
	d := NewDot(10, 20)
	d.Move(-3, 5)

	if x, y := d.Position(); x != 7 || y != 25 {
		t.Errorf("Position() = (%d,%d), want (7,25)", x, y)
	}
	if got := d.Draw(); !slices.Equal(got, []string{"Dot(7,25)"}) {
		t.Errorf("Draw() = %v", got)
	}
}

func TestCircle_SpecializesDraw(t *testing.T) {
	c := NewCircle(5, 5, 3)

	if got := c.Draw(); !slices.Equal(got, []string{"Circle(5,5,r=3)"}) {
		t.Errorf("Draw() = %v", got)
	}

	// Movement is inherited from Dot.
	c.Move(1, 2)
	if x, y := c.Position(); x != 6 || y != 7 {
		t.Errorf("Position() = (%d,%d), want (6,7)", x, y)
	}
	if c.Radius() != 3 {
		t.Errorf("Radius() = %d, want 3", c.Radius())
	}
}

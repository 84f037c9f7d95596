package shapes

import (
	"fmt"
	"math"
)

type Circle struct {
	radius float64
}

func NewCircle(radius float64) (*Circle, error) {
	if !validDimension(radius) {
		return nil, ErrInvalidRadius
	}

	return &Circle{
		radius: radius,
	}, nil
}

func (c *Circle) Name() string {
	return "Circle"
}

func (c *Circle) Radius() float64 {
	return c.radius
}

func (c *Circle) SetRadius(radius float64) error {
	if !validDimension(radius) {
		return ErrInvalidRadius
	}

	c.radius = radius

	return nil
}

func (c *Circle) Diameter() float64 {
	return 2 * c.radius
}

func (c *Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

func (c *Circle) Perimeter() float64 {
	return 2 * math.Pi * c.radius
}

func (c *Circle) Scale(factor float64) error {
	if !validDimension(factor) {
		return ErrInvalidFactor
	}

	radius := c.radius * factor
	if !validDimension(radius) {
		return ErrInvalidFactor
	}

	c.radius = radius

	return nil
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle(r=%g)", c.radius)
}

// Package shapes provides 2-D shapes behind a shared area/perimeter interface.
package shapes

type Shape interface {
	Name() string
	Area() float64
	Perimeter() float64
}

type Scalable interface {
	Shape

	Scale(factor float64) error
}

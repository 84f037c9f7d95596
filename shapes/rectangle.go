package shapes

import "fmt"

type Rectangle struct {
	width  float64
	height float64
}

func NewRectangle(width, height float64) (*Rectangle, error) {
	if !validDimension(width) {
		return nil, ErrInvalidWidth
	}

	if !validDimension(height) {
		return nil, ErrInvalidHeight
	}

	return &Rectangle{
		width:  width,
		height: height,
	}, nil
}

func (r *Rectangle) Name() string {
	return "Rectangle"
}

func (r *Rectangle) Width() float64 {
	return r.width
}

func (r *Rectangle) Height() float64 {
	return r.height
}

func (r *Rectangle) SetWidth(width float64) error {
	if !validDimension(width) {
		return ErrInvalidWidth
	}

	r.width = width

	return nil
}

func (r *Rectangle) SetHeight(height float64) error {
	if !validDimension(height) {
		return ErrInvalidHeight
	}

	r.height = height

	return nil
}

func (r *Rectangle) IsSquare() bool {
	return r.width == r.height
}

func (r *Rectangle) Area() float64 {
	return r.width * r.height
}

func (r *Rectangle) Perimeter() float64 {
	return 2 * (r.width + r.height)
}

func (r *Rectangle) Scale(factor float64) error {
	if !validDimension(factor) {
		return ErrInvalidFactor
	}

	width, height := r.width*factor, r.height*factor
	if !validDimension(width) || !validDimension(height) {
		return ErrInvalidFactor
	}

	r.width, r.height = width, height

	return nil
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%gx%g)", r.width, r.height)
}

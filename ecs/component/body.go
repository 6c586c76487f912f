package component

import "github.com/milk9111/fillthescreen/common"

// Body is an entity's position and render box. X and Y are the top-left corner.
type Body struct {
	X, Y          float64
	Width, Height float64
}

func (b *Body) Rect() common.Rect {
	return common.NewRect(b.X, b.Y, b.Width, b.Height)
}

func (b *Body) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

var BodyComponent = NewComponent[Body]()

package background

import "math"

// DrawBackground repaints the whole surface with the deep-space gradient
func DrawBackground(s Surface, width, height float64) {
	s.FillRadial(Rect{W: width, H: height}, width/2, height/2, math.Max(width, height), backgroundStops, 1)
}

// DrawNebula paints a soft radial glow sized by the blob
func DrawNebula(s Surface, n Nebula) {
	stops := []ColorStop{
		{Offset: 0, Color: n.Color},
		{Offset: 1, Color: Color{}},
	}
	rect := Rect{X: n.X - n.Size, Y: n.Y - n.Size, W: n.Size * 2, H: n.Size * 2}
	s.FillRadial(rect, n.X, n.Y, n.Size, stops, n.Opacity)
}

// DrawStar paints a glowing point. Large stars also get a brighter core.
func DrawStar(s Surface, st Star) {
	alpha := st.CurrentOpacity()
	s.FillCircle(st.X, st.Y, st.Size, st.Color, alpha, 8+st.Size*2)
	if st.Size > StarCoreSize {
		s.FillCircle(st.X, st.Y, st.Size*0.5, st.Color, clamp01(alpha*1.2), 15)
	}
}

// DrawShootingStar paints the fading trail and the bright head
func DrawShootingStar(s Surface, st ShootingStar) {
	tx, ty := st.Tail()
	s.StrokeGradient(st.X, st.Y, tx, ty, 2, trailStops, st.Opacity)
	s.FillCircle(st.X, st.Y, 2, Hex(0xFFFFFF), st.Opacity, 10)
}

package background

import "math"

// Star is an ambient, twinkling background star
type Star struct {
	X, Y         float64
	VX, VY       float64
	Size         float64
	Opacity      float64
	Brightness   float64
	Color        Color
	TwinkleSpeed float64
	TwinklePhase float64
}

// ShootingStar is a short-lived streak crossing the surface
type ShootingStar struct {
	X, Y    float64
	Length  float64
	Speed   float64
	Angle   float64
	Opacity float64
	Life    float64
	MaxLife float64
}

// Nebula is a large, faint colored glow
type Nebula struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Color   Color
	Opacity float64
}

// NewStar places a star uniformly on a width x height surface
func NewStar(src Source, width, height float64) Star {
	return Star{
		X:            src.Float64() * width,
		Y:            src.Float64() * height,
		Size:         between(src, StarMinSize, StarSizeRange),
		VX:           centered(src, StarMaxSpeed),
		VY:           centered(src, StarMaxSpeed),
		Opacity:      between(src, StarMinOpacity, 1-StarMinOpacity),
		Brightness:   between(src, StarMinBright, 1-StarMinBright),
		Color:        pick(src, starPalette),
		TwinkleSpeed: between(src, StarMinTwinkle, StarTwinkleRange),
		TwinklePhase: src.Float64() * 2 * math.Pi,
	}
}

// NewShootingStar starts a shooting star somewhere in the upper half
func NewShootingStar(src Source, width, height float64) ShootingStar {
	return ShootingStar{
		X:       src.Float64() * width,
		Y:       src.Float64() * height * 0.5,
		Length:  between(src, ShootingMinLength, ShootingLengthSpan),
		Speed:   between(src, ShootingMinSpeed, ShootingSpeedSpan),
		Angle:   ShootingBaseAngle + centered(src, ShootingAngleJit),
		Opacity: 1,
		MaxLife: between(src, ShootingMinLife, ShootingLifeSpan),
	}
}

// NewNebula places a nebula blob uniformly on the surface
func NewNebula(src Source, width, height float64) Nebula {
	return Nebula{
		X:       src.Float64() * width,
		Y:       src.Float64() * height,
		Size:    between(src, NebulaMinSize, NebulaSizeRange),
		Color:   pick(src, nebulaPalette),
		Opacity: between(src, NebulaMinOpacity, 0.5),
		VX:      centered(src, NebulaMaxSpeed),
		VY:      centered(src, NebulaMaxSpeed),
	}
}

// UpdateStar advances a star one frame, wrapping it around the edges
func UpdateStar(s Star, width, height float64) Star {
	s.X = wrap(s.X+s.VX, width, StarWrapMargin)
	s.Y = wrap(s.Y+s.VY, height, StarWrapMargin)
	s.TwinklePhase += s.TwinkleSpeed
	return s
}

// Twinkle is the sinusoidal brightness factor for the current phase, in [0.2, 1]
func (s Star) Twinkle() float64 {
	return math.Sin(s.TwinklePhase)*0.4 + 0.6
}

// CurrentOpacity is the opacity the star is drawn with this frame
func (s Star) CurrentOpacity() float64 {
	return s.Opacity * s.Twinkle() * s.Brightness
}

// UpdateNebula advances a blob one frame, wrapping it around the edges
func UpdateNebula(n Nebula, width, height float64) Nebula {
	n.X = wrap(n.X+n.VX, width, NebulaWrapMargin)
	n.Y = wrap(n.Y+n.VY, height, NebulaWrapMargin)
	return n
}

// UpdateShootingStar moves a shooting star along its trajectory and ages it.
// Past FadeStart of its life the opacity falls linearly to zero.
func UpdateShootingStar(s ShootingStar) ShootingStar {
	s.X += math.Cos(s.Angle) * s.Speed
	s.Y += math.Sin(s.Angle) * s.Speed
	s.Life++

	fadeAt := s.MaxLife * FadeStart
	if s.Life > fadeAt {
		s.Opacity = clamp01(1 - (s.Life-fadeAt)/(s.MaxLife*(1-FadeStart)))
	}
	return s
}

// Phase is where a shooting star is in its lifecycle
type Phase int

const (
	PhaseTraveling Phase = iota
	PhaseFading
	PhaseDead
)

func (p Phase) String() string {
	switch p {
	case PhaseTraveling:
		return "traveling"
	case PhaseFading:
		return "fading"
	case PhaseDead:
		return "dead"
	}
	return "unknown"
}

// Phase reports the lifecycle phase against a width x height surface
func (s ShootingStar) Phase(width, height float64) Phase {
	switch {
	case s.Dead(width, height):
		return PhaseDead
	case s.Life > s.MaxLife*FadeStart:
		return PhaseFading
	}
	return PhaseTraveling
}

// Dead reports whether the star has used up its life or left the surface
func (s ShootingStar) Dead(width, height float64) bool {
	if s.Life >= s.MaxLife {
		return true
	}
	return s.X < 0 || s.Y < 0 || s.X > width || s.Y > height
}

// Tail returns the far end of the trail
func (s ShootingStar) Tail() (x, y float64) {
	return s.X - math.Cos(s.Angle)*s.Length, s.Y - math.Sin(s.Angle)*s.Length
}

// wrap moves v to the opposite side once it is more than margin past
// either edge of [0, extent]
func wrap(v, extent, margin float64) float64 {
	if v < -margin {
		return extent + margin
	}
	if v > extent+margin {
		return -margin
	}
	return v
}

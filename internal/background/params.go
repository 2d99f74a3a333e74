package background

import "math"

// Population sizes
const (
	// DefaultStars is the number of ambient stars in a session
	DefaultStars = 400
	// DefaultNebulae is the number of nebula blobs in a session
	DefaultNebulae = 30
	// MaxShootingStars caps the live shooting-star population
	MaxShootingStars = 3
	// SpawnChance is the per-frame probability of spawning a shooting star
	SpawnChance = 0.02
)

// Ambient stars
const (
	StarMinSize      = 0.3
	StarSizeRange    = 2.5
	StarMaxSpeed     = 0.15 // full range, centered on zero
	StarMinOpacity   = 0.5
	StarMinBright    = 0.3
	StarMinTwinkle   = 0.01
	StarTwinkleRange = 0.03
	// StarWrapMargin is how far a star may drift off-surface before wrapping
	StarWrapMargin   = 10.0
	// StarCoreSize is the size above which a brighter core is drawn
	StarCoreSize     = 1.5
)

// Shooting stars
const (
	ShootingMinLength  = 40.0
	ShootingLengthSpan = 80.0
	ShootingMinSpeed   = 6.0
	ShootingSpeedSpan  = 8.0
	ShootingMinLife    = 60.0
	ShootingLifeSpan   = 60.0
	ShootingAngleJit   = 0.5
	// FadeStart is the fraction of max life after which opacity falls to zero
	FadeStart          = 0.7
)

// ShootingBaseAngle is the nominal trajectory, roughly 45 degrees down-right
const ShootingBaseAngle = math.Pi / 4

// Nebula blobs
const (
	NebulaMinSize    = 60.0
	NebulaSizeRange  = 100.0
	NebulaMinOpacity = 0.3
	NebulaMaxSpeed   = 0.08
	NebulaWrapMargin = 100.0
)

var starPalette = []Color{
	Hex(0xFFFFFF), Hex(0xFFFEF0), Hex(0xF0F8FF), Hex(0xFFFACD),
	Hex(0xFFE4B5), Hex(0xE0F6FF), Hex(0xFFF5E1),
}

var nebulaPalette = []Color{
	{R: 100, G: 50, B: 200, A: 0.12},
	{R: 50, G: 150, B: 255, A: 0.10},
	{R: 180, G: 80, B: 255, A: 0.11},
	{R: 80, G: 200, B: 255, A: 0.09},
	{R: 138, G: 43, B: 226, A: 0.10},
}

var backgroundStops = []ColorStop{
	{Offset: 0, Color: Hex(0x000000)},
	{Offset: 0.5, Color: Hex(0x000510)},
	{Offset: 1, Color: Hex(0x00000a)},
}

var trailStops = []ColorStop{
	{Offset: 0, Color: Color{R: 255, G: 255, B: 255, A: 1}},
	{Offset: 0.5, Color: Color{R: 255, G: 255, B: 200, A: 0.5}},
	{Offset: 1, Color: Color{R: 255, G: 255, B: 200, A: 0}},
}

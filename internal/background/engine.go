package background

// Config sizes a particle population
type Config struct {
	Stars            int
	Nebulae          int
	MaxShootingStars int
	SpawnChance      float64
}

// DefaultConfig returns the population used by the site
func DefaultConfig() Config {
	return Config{
		Stars:            DefaultStars,
		Nebulae:          DefaultNebulae,
		MaxShootingStars: MaxShootingStars,
		SpawnChance:      SpawnChance,
	}
}

// Population holds the three particle kinds of one session
type Population struct {
	Stars    []Star
	Shooting []ShootingStar
	Nebulae  []Nebula
}

// NewPopulation creates the ambient stars and nebulae. Shooting stars are
// only ever spawned by ticks.
func NewPopulation(cfg Config, src Source, width, height float64) *Population {
	p := &Population{
		Stars:    make([]Star, 0, cfg.Stars),
		Shooting: make([]ShootingStar, 0, cfg.MaxShootingStars),
		Nebulae:  make([]Nebula, 0, cfg.Nebulae),
	}
	for i := 0; i < cfg.Stars; i++ {
		p.Stars = append(p.Stars, NewStar(src, width, height))
	}
	for i := 0; i < cfg.Nebulae; i++ {
		p.Nebulae = append(p.Nebulae, NewNebula(src, width, height))
	}
	return p
}

// Engine advances and draws a population one frame at a time.
// It is not safe for concurrent use; an Animator owns it on a single goroutine.
type Engine struct {
	cfg    Config
	src    Source
	width  float64
	height float64
	pop    *Population
	frames uint64
}

// NewEngine creates an engine with a fresh population for the given surface size
func NewEngine(cfg Config, src Source, width, height int) *Engine {
	w, h := float64(width), float64(height)
	return &Engine{
		cfg:    cfg,
		src:    src,
		width:  w,
		height: h,
		pop:    NewPopulation(cfg, src, w, h),
	}
}

// Resize changes the bounds used for wrapping and repainting.
// Particles keep their positions.
func (e *Engine) Resize(width, height int) {
	e.width, e.height = float64(width), float64(height)
}

// Size returns the current bounds
func (e *Engine) Size() (width, height float64) {
	return e.width, e.height
}

// Population exposes the live particles
func (e *Engine) Population() *Population {
	return e.pop
}

// Frames returns how many ticks have run
func (e *Engine) Frames() uint64 {
	return e.frames
}

// Tick runs one frame: repaint, update and draw every particle, drop dead
// shooting stars, then maybe spawn a new one.
func (e *Engine) Tick(s Surface) {
	w, h := e.width, e.height
	p := e.pop

	DrawBackground(s, w, h)

	for i := range p.Nebulae {
		p.Nebulae[i] = UpdateNebula(p.Nebulae[i], w, h)
		DrawNebula(s, p.Nebulae[i])
	}

	for i := range p.Stars {
		p.Stars[i] = UpdateStar(p.Stars[i], w, h)
		DrawStar(s, p.Stars[i])
	}

	alive := p.Shooting[:0]
	for _, st := range p.Shooting {
		st = UpdateShootingStar(st)
		if st.Dead(w, h) {
			continue
		}
		DrawShootingStar(s, st)
		alive = append(alive, st)
	}
	p.Shooting = alive

	if e.src.Float64() < e.cfg.SpawnChance && len(p.Shooting) < e.cfg.MaxShootingStars {
		p.Shooting = append(p.Shooting, NewShootingStar(e.src, w, h))
	}

	e.frames++
}

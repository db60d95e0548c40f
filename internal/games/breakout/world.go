package breakout

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/boostout/internal/config"
	"github.com/vovakirdan/boostout/internal/core"
)

// ErrInvalidWorld is wrapped by every NewWorld failure.
var ErrInvalidWorld = errors.New("breakout: invalid world")

// ErrArenaTooSmall is also wrapped when the arena cannot hold the paddle.
// A larger window fixes it; other NewWorld errors need a config change.
var ErrArenaTooSmall = errors.New("arena too small")

// Colors for the non-brick sprites.
const (
	WallColor          = core.ColorGray
	PaddleColor        = core.ColorBrightWhite
	BallColor          = core.ColorBrightWhite
	HUDBackgroundColor = core.ColorGray
	HUDBarColor        = core.ColorLime
)

// WorldOptions selects the arena size, seed and brick field for NewWorld.
type WorldOptions struct {
	Width    float64 // Zero means cfg.Arena.Width
	Height   float64 // Zero means cfg.Arena.Height
	Seed     int64
	NoBricks bool
}

// World owns every entity of one simulation. Systems receive it by pointer for
// a single frame and keep nothing.
type World struct {
	Width  float64
	Height float64

	Ball   Ball
	Paddle Paddle
	Walls  [3]Wall
	Bricks []Brick
	Boost  BoostMeter
	Timer  BoostTimer
	HUD    HUD

	cfg      config.BreakoutConfig
	layout   []string
	noBricks bool
	emptied  bool // Layout removed the last brick
	rng      *rand.Rand
	src      *rand.PCG
}

// NewWorld builds the initial scene from configuration.
// The ball starts at (start_x, start_y) moving (+speed, -speed), the paddle
// sits offset_bottom above the bottom edge and the meter starts full.
func NewWorld(cfg config.BreakoutConfig, opts WorldOptions) (*World, error) {
	width, height := opts.Width, opts.Height
	if width == 0 {
		width = cfg.Arena.Width
	}
	if height == 0 {
		height = cfg.Arena.Height
	}

	if err := checkWorld(cfg, width, height); err != nil {
		return nil, err
	}

	layout, err := resolveLayout(cfg.Bricks)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorld, err)
	}
	rng, src := newRNG(opts.Seed)

	w := &World{
		Ball: Ball{
			Pos:  core.V2(cfg.Ball.StartX, cfg.Ball.StartY),
			Size: core.V2(cfg.Ball.Size, cfg.Ball.Size),
			Vel:  core.V2(cfg.Ball.Speed, -cfg.Ball.Speed),
		},
		Paddle: Paddle{
			Size:  core.V2(cfg.Paddle.Width, cfg.Paddle.Height),
			Speed: cfg.Paddle.Speed,
		},
		Walls: [3]Wall{
			{Slot: WallLeft},
			{Slot: WallRight},
			{Slot: WallTop},
		},
		Boost:    BoostMeter{Value: BoostMax},
		Timer:    NewBoostTimer(cfg.Boost.RechargeInterval),
		cfg:      cfg,
		layout:   layout,
		noBricks: opts.NoBricks,
		rng:      rng,
		src:      src,
	}

	w.Layout(width, height)
	w.RefillBricks()
	w.updateHUD()
	return w, nil
}

// checkWorld rejects geometry the simulation cannot run with.
func checkWorld(cfg config.BreakoutConfig, width, height float64) error {
	var errs []error
	if width <= 0 || height <= 0 {
		errs = append(errs, fmt.Errorf("%w: arena %gx%g is not positive", ErrArenaTooSmall, width, height))
	}
	if cfg.Arena.WallThickness <= 0 {
		errs = append(errs, fmt.Errorf("wall thickness %g is not positive", cfg.Arena.WallThickness))
	}
	if cfg.Ball.Size <= 0 {
		errs = append(errs, fmt.Errorf("ball size %g is not positive", cfg.Ball.Size))
	}
	if cfg.Ball.Speed == 0 {
		errs = append(errs, errors.New("ball velocity has a zero component"))
	}
	if cfg.Paddle.Width <= 0 || cfg.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle %gx%g is not positive", cfg.Paddle.Width, cfg.Paddle.Height))
	}
	if cfg.Paddle.Width > width {
		errs = append(errs, fmt.Errorf("%w: paddle width %g exceeds arena width %g", ErrArenaTooSmall, cfg.Paddle.Width, width))
	}
	if cfg.Bricks.FillChance < 0 || cfg.Bricks.FillChance > 1 {
		errs = append(errs, fmt.Errorf("fill chance %g outside [0, 1]", cfg.Bricks.FillChance))
	}
	if cfg.Bricks.MaxHealth < 1 {
		errs = append(errs, fmt.Errorf("max health %d is below 1", cfg.Bricks.MaxHealth))
	}
	if cfg.Bricks.Size <= 0 {
		errs = append(errs, fmt.Errorf("brick size %g is not positive", cfg.Bricks.Size))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidWorld, errors.Join(errs...))
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.BreakoutConfig {
	return w.cfg
}

// Epsilon returns the collision separation gap.
func (w *World) Epsilon() float64 {
	if w.cfg.Physics.Epsilon > 0 {
		return w.cfg.Physics.Epsilon
	}
	return DefaultEpsilon
}

// Layout applies a window size: walls hug the new edges from outside, the
// paddle bound is recomputed and reapplied, the paddle is re-anchored above
// the bottom edge and the HUD anchor moves with the window. Bricks keep their
// distance from the top edge and those no longer inside the arena are removed.
// The ball is pulled back inside the side and top walls. Applying the same
// size twice yields the same layout.
func (w *World) Layout(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	prevHeight := w.Height
	w.Width = width
	w.Height = height

	t := w.cfg.Arena.WallThickness
	halfW, halfH := width/2, height/2

	w.Walls[WallLeft].Pos = core.V2(-halfW-t/2, 0)
	w.Walls[WallLeft].Size = core.V2(t, height)
	w.Walls[WallRight].Pos = core.V2(halfW+t/2, 0)
	w.Walls[WallRight].Size = core.V2(t, height)
	w.Walls[WallTop].Pos = core.V2(0, halfH+t/2)
	w.Walls[WallTop].Size = core.V2(width, t)

	w.Paddle.Bound = math.Max(0, halfW-w.Paddle.Size.X/2)
	w.Paddle.Pos.X = core.ClampF(w.Paddle.Pos.X, -w.Paddle.Bound, w.Paddle.Bound)
	w.Paddle.Pos.Y = -halfH + w.cfg.Paddle.OffsetBottom

	if prevHeight > 0 {
		w.fitBricks((height - prevHeight) / 2)
	}
	w.fitBall()
	w.updateHUD()
}

// fitBricks moves every brick by dy and drops the ones not wholly inside the
// arena.
func (w *World) fitBricks(dy float64) {
	if len(w.Bricks) == 0 {
		return
	}
	halfW, halfH := w.Width/2, w.Height/2
	kept := w.Bricks[:0]
	for _, b := range w.Bricks {
		b.Pos.Y += dy
		box := b.Box()
		if box.Left() < -halfW || box.Right() > halfW || box.Top() > halfH || box.Bottom() < -halfH {
			continue
		}
		kept = append(kept, b)
	}
	clear(w.Bricks[len(kept):])
	w.Bricks = kept
	if len(w.Bricks) == 0 {
		w.emptied = true
	}
}

// fitBall keeps the ball eps inside the side and top walls. The bottom edge
// is open, so the ball is never pushed up.
func (w *World) fitBall() {
	eps := w.Epsilon()
	half := w.Ball.Size.Scale(0.5)
	maxX := math.Max(0, w.Width/2-half.X-eps)
	maxY := w.Height/2 - half.Y - eps
	w.Ball.Pos.X = core.ClampF(w.Ball.Pos.X, -maxX, maxX)
	w.Ball.Pos.Y = math.Min(w.Ball.Pos.Y, maxY)
}

// ApplyResizes relays out the world for each resize in order.
func (w *World) ApplyResizes(rs []core.Resize) {
	for _, r := range rs {
		w.Layout(r.Width, r.Height)
	}
}

// RefillBricks generates a new brick field for the current arena.
// Practice worlds stay empty.
func (w *World) RefillBricks() {
	if w.noBricks {
		w.Bricks = nil
		return
	}
	w.Bricks = generateField(w.cfg.Bricks, w.layout, w.Width, w.Height, w.rng)
	w.emptied = false
}

// HasBricks reports whether the world was built with a brick field.
func (w *World) HasBricks() bool {
	return !w.noBricks
}

// RespawnBall puts the ball back at its start position, pulled inside the
// walls, moving diagonally down-right at the given per-axis speed.
func (w *World) RespawnBall(speed float64) {
	w.Ball.Pos = core.V2(w.cfg.Ball.StartX, w.cfg.Ball.StartY)
	w.Ball.Vel = core.V2(speed, -speed)
	w.fitBall()
}

// BallLost reports whether the ball has fallen entirely below the arena.
func (w *World) BallLost() bool {
	return w.Ball.Box().Top() < -w.Height/2
}

// Scene returns the sprites to draw, back to front.
func (w *World) Scene() []core.Sprite {
	sprites := make([]core.Sprite, 0, len(w.Walls)+len(w.Bricks)+4)
	for _, wall := range w.Walls {
		sprites = append(sprites, core.Sprite{Kind: core.SpriteWall, Center: wall.Pos, Size: wall.Size, Color: WallColor})
	}
	for _, b := range w.Bricks {
		sprites = append(sprites, core.Sprite{Kind: core.SpriteBrick, Center: b.Pos, Size: core.V2(b.Size, b.Size), Color: b.Color})
	}
	sprites = append(sprites,
		core.Sprite{Kind: core.SpriteHUDBackground, Center: w.HUD.Background.Center, Size: w.HUD.Background.Size, Color: HUDBackgroundColor},
	)
	if w.HUD.Bar.Size.X > 0 {
		sprites = append(sprites, core.Sprite{Kind: core.SpriteHUDBar, Center: w.HUD.Bar.Center, Size: w.HUD.Bar.Size, Color: HUDBarColor})
	}
	sprites = append(sprites,
		core.Sprite{Kind: core.SpritePaddle, Center: w.Paddle.Pos, Size: w.Paddle.Size, Color: PaddleColor},
		core.Sprite{Kind: core.SpriteBall, Center: w.Ball.Pos, Size: w.Ball.Size, Color: BallColor},
	)
	return sprites
}

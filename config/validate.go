package config

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Validate rejects geometry and tuning that would make the simulation undefined.
// Misconfiguration is a startup failure, never a runtime condition.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.Errorf("canvas must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	}

	if c.Road.Lanes <= 0 {
		return errors.Errorf("road needs at least one lane, got %d", c.Road.Lanes)
	}
	if c.Road.Width <= 0 || c.Road.LaneWidth <= 0 {
		return errors.Errorf("road width and lane width must be positive, got %v/%v", c.Road.Width, c.Road.LaneWidth)
	}
	if c.Road.Width > c.Canvas.Width {
		return errors.Errorf("road width %v exceeds canvas width %v", c.Road.Width, c.Canvas.Width)
	}
	if float64(c.Road.Lanes)*c.Road.LaneWidth > c.Road.Width {
		return errors.Errorf("%d lanes of %v do not fit a road of %v", c.Road.Lanes, c.Road.LaneWidth, c.Road.Width)
	}

	if err := c.validateVehicles(); err != nil {
		return err
	}
	if err := c.validateTuning(); err != nil {
		return err
	}

	if len(c.Palette) == 0 {
		return errors.New("traffic palette is empty")
	}
	for i, hex := range c.Palette {
		if _, err := colorful.Hex(hex); err != nil {
			return errors.Wrapf(err, "palette[%d] %q", i, hex)
		}
	}

	return nil
}

func (c *Config) validateVehicles() error {
	p := c.Player
	if p.Width <= 0 || p.Height <= 0 {
		return errors.Errorf("player size must be positive, got %vx%v", p.Width, p.Height)
	}
	if p.Width > c.Road.Width {
		return errors.Errorf("player width %v exceeds road width %v", p.Width, c.Road.Width)
	}
	if p.Height+p.BottomMargin > c.Canvas.Height {
		return errors.Errorf("player (%v + margin %v) does not fit canvas height %v", p.Height, p.BottomMargin, c.Canvas.Height)
	}
	if p.SteerStep < 0 {
		return errors.Errorf("player steer step must not be negative, got %v", p.SteerStep)
	}
	if p.Smoothing <= 0 || p.Smoothing > 1 {
		return errors.Errorf("player smoothing must be in (0,1], got %v", p.Smoothing)
	}

	t := c.Traffic
	if t.Width <= 0 || t.Height <= 0 {
		return errors.Errorf("traffic size must be positive, got %vx%v", t.Width, t.Height)
	}
	if t.Width > c.Road.LaneWidth {
		return errors.Errorf("traffic width %v exceeds lane width %v", t.Width, c.Road.LaneWidth)
	}
	if t.MinSpeed < 0 || t.MaxSpeed < 0 {
		return errors.Errorf("traffic speeds must not be negative, got [%v,%v]", t.MinSpeed, t.MaxSpeed)
	}
	if t.MinSpeed > t.MaxSpeed {
		return errors.Errorf("traffic min speed %v above max speed %v", t.MinSpeed, t.MaxSpeed)
	}
	if t.PassBonus < 0 {
		return errors.Errorf("pass bonus must not be negative, got %d", t.PassBonus)
	}
	return nil
}

func (c *Config) validateTuning() error {
	t, d, s := c.Traffic, c.Difficulty, c.Session

	if t.SpawnRate < 0 || t.SpawnRate > 1 {
		return errors.Errorf("spawn rate must be a probability, got %v", t.SpawnRate)
	}
	if d.MaxSpawnRate < t.SpawnRate || d.MaxSpawnRate > 1 {
		return errors.Errorf("spawn cap %v must lie in [spawn rate %v, 1]", d.MaxSpawnRate, t.SpawnRate)
	}
	if d.SpeedIncrease < 0 || d.SpawnIncrease < 0 {
		return errors.Errorf("difficulty increments must not be negative, got %v/%v", d.SpeedIncrease, d.SpawnIncrease)
	}
	if d.LevelThreshold <= 0 {
		return errors.Errorf("level threshold must be positive, got %v", d.LevelThreshold)
	}

	if s.InitialSpeed < 0 {
		return errors.Errorf("initial speed must not be negative, got %v", s.InitialSpeed)
	}
	if s.DistanceFactor <= 0 {
		return errors.Errorf("distance factor must be positive, got %v", s.DistanceFactor)
	}
	if s.FramesPerSecond <= 0 {
		return errors.Errorf("frames per second must be positive, got %d", s.FramesPerSecond)
	}
	return nil
}

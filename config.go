package orbital

import (
	"fmt"
	"time"
)

// Size bounds for the user-facing size control.
const (
	MinSize     = 1
	MaxSize     = 20
	DefaultSize = 6

	DefaultResolution = 5

	// sizePerLength converts the size control into a Bohr radius in
	// world units.
	sizePerLength = 8
)

// LengthScale converts the size control into the Bohr radius used by the
// evaluator. The default size of 6 gives 0.75.
func LengthScale(size float32) float32 {
	return size / sizePerLength
}

// Config controls how a Scene compiles the density field. Zero fields take
// their defaults in NewScene.
type Config struct {
	// Resolution is the number of voxels per length unit, in [2, 11].
	Resolution int
	// Size is the orbital size control, in [1, 20].
	Size float32
	// Budget is the scan time allowed per frame. It is clamped to
	// [MinBudget, MaxBudget].
	Budget time.Duration
	// Spin rotates every orbital's yaw by this many degrees after each
	// committed pass. Zero disables the animation.
	Spin float32
	// Clock overrides the scan clock. Nil means time.Now.
	Clock Clock
	// Width and Height size the camera viewport in pixels.
	Width, Height int
}

// withDefaults fills zero fields and validates the rest.
func (c Config) withDefaults() (Config, error) {
	if c.Resolution == 0 {
		c.Resolution = DefaultResolution
	}
	if c.Size == 0 {
		c.Size = DefaultSize
	}
	if c.Budget == 0 {
		c.Budget = DefaultBudget
	}
	c.Budget = min(max(c.Budget, MinBudget), MaxBudget)
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if err := validateResolution(c.Resolution); err != nil {
		return c, err
	}
	if err := validateSize(c.Size); err != nil {
		return c, err
	}
	return c, nil
}

func validateResolution(res int) error {
	if res < MinResolution || res > MaxResolution {
		return fmt.Errorf("resolution %d not in [%d, %d]: %w", res, MinResolution, MaxResolution, ErrInvalidResolution)
	}
	return nil
}

func validateSize(size float32) error {
	if !(size >= MinSize && size <= MaxSize) {
		return fmt.Errorf("size %v not in [%d, %d]: %w", size, MinSize, MaxSize, ErrInvalidSize)
	}
	return nil
}

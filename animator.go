package main

import (
	"context"
	"fmt"
	"time"
)

// DriverState tracks where the animation driver is in its lifecycle.
type DriverState int

const (
	StateInitializing DriverState = iota
	StateRendering
	StateTerminated
)

func (s DriverState) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRendering:
		return "rendering"
	case StateTerminated:
		return "terminated"
	}
	return fmt.Sprintf("DriverState(%d)", int(s))
}

// AnimatorOptions configures the per-frame behavior of the driver.
type AnimatorOptions struct {
	AngleIncX     float64       // radians added to the X rotation each frame
	AngleIncY     float64       // radians added to the Y rotation each frame
	InitialTiltX  float64       // one-time tilt applied to the base surface
	FrameInterval time.Duration // pacing between frames
	FrameLimit    int           // stop after this many frames; 0 runs until cancelled
}

// Animator drives the render loop: advance the rotation angles, rotate the
// base surface, rasterize, hand the frame to the presenter, pace, repeat.
// The base surface is read-only after construction; the rotation state and
// the frame buffer are owned by the single render loop and never aliased.
type Animator struct {
	surface   *Surface
	raster    *Rasterizer
	presenter FramePresenter
	opts      AnimatorOptions

	angleX, angleY float64
	state          DriverState
	frames         int
}

// NewAnimator wires the pipeline together. A nonzero InitialTiltX pre-rotates
// the base surface once, before any animation, matching the original demo's
// opening tilt.
func NewAnimator(surface *Surface, raster *Rasterizer, presenter FramePresenter, opts AnimatorOptions) (*Animator, error) {
	if surface == nil || raster == nil || presenter == nil {
		return nil, fmt.Errorf("animator needs a surface, a rasterizer and a presenter")
	}
	if opts.FrameInterval <= 0 {
		return nil, fmt.Errorf("frame interval must be positive, got %v", opts.FrameInterval)
	}
	if opts.InitialTiltX != 0 {
		surface = surface.Rotated(opts.InitialTiltX, 0)
	}
	return &Animator{
		surface:   surface,
		raster:    raster,
		presenter: presenter,
		opts:      opts,
		state:     StateInitializing,
	}, nil
}

// State reports the driver's lifecycle state.
func (a *Animator) State() DriverState { return a.state }

// Frames reports how many frames have been presented.
func (a *Animator) Frames() int { return a.frames }

// Angles returns the current rotation state, wrapped to [0, 2π).
func (a *Animator) Angles() (x, y float64) { return a.angleX, a.angleY }

// Run renders until the context is cancelled, the frame limit is reached, or
// the presenter fails. Cancellation is checked at every frame boundary, never
// mid-pass, so a stop signal takes effect within one frame's compute time.
// Cancellation is normal termination and returns nil; a presenter error is
// fatal and propagates.
func (a *Animator) Run(ctx context.Context) error {
	a.state = StateRendering
	defer func() { a.state = StateTerminated }()

	ticker := time.NewTicker(a.opts.FrameInterval)
	defer ticker.Stop()

	frame := NewFrame(a.raster.Width, a.raster.Height)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		a.angleX = wrapAngle(a.angleX + a.opts.AngleIncX)
		a.angleY = wrapAngle(a.angleY + a.opts.AngleIncY)

		rotated := a.surface.Rotated(a.angleX, a.angleY)
		a.raster.Render(rotated, frame)
		if err := a.presenter.Present(frame); err != nil {
			return fmt.Errorf("present frame %d: %w", a.frames, err)
		}
		a.frames++
		if a.opts.FrameLimit > 0 && a.frames >= a.opts.FrameLimit {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

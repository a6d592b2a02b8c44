package main

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Frame is one rendered character grid. Cells is row-major; depth holds the
// inverse observer distance of the point currently winning each cell (zero
// means no point landed there yet). A Frame is transient: reset and refilled
// every animation step, read once by the presenter.
type Frame struct {
	Width, Height int
	Cells         []byte
	depth         []float64
}

// NewFrame allocates a background-filled frame.
func NewFrame(width, height int) *Frame {
	f := &Frame{
		Width:  width,
		Height: height,
		Cells:  make([]byte, width*height),
		depth:  make([]float64, width*height),
	}
	f.Reset()
	return f
}

// Reset returns every cell to background and clears the depth buffer.
func (f *Frame) Reset() {
	for i := range f.Cells {
		f.Cells[i] = background
		f.depth[i] = 0
	}
}

// At returns the character at (col, row).
func (f *Frame) At(col, row int) byte {
	return f.Cells[row*f.Width+col]
}

// Rasterizer projects rotated surface points onto a character grid, resolving
// per-cell overlaps by nearest inverse depth and shading the winner by its
// normal's light intensity. It is stateless across frames; everything here is
// fixed for the process lifetime.
type Rasterizer struct {
	Width, Height int

	observerZ float64 // f: eye position on the z axis, looking toward +z
	screenZ   float64 // d: projection plane, between observer and torus
	light     mgl64.Vec3
	ramp      Ramp

	// Half-extent of plane coordinates mapped onto the grid. Estimated from
	// the projection of the torus's widest point, widened by 10% so the
	// silhouette never clips.
	extent float64
}

// NewRasterizer validates the viewing geometry and builds a rasterizer for a
// torus of the given radii. The observer and screen sit on the negative z
// axis and must satisfy observerZ < screenZ < -(major+minor), which also
// guarantees every surface point stays strictly in front of the observer.
func NewRasterizer(width, height int, major, minor, observerZ, screenZ float64, lightDir mgl64.Vec3, ramp Ramp) (*Rasterizer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	if !(observerZ < screenZ && screenZ < -(major+minor)) {
		return nil, fmt.Errorf("viewing geometry must satisfy observerZ < screenZ < -(major+minor), got observer=%g screen=%g radius=%g",
			observerZ, screenZ, major+minor)
	}
	if lightDir.Len() == 0 || math.IsNaN(lightDir.Len()) {
		return nil, fmt.Errorf("light direction must be a nonzero vector")
	}
	if len(ramp) == 0 {
		return nil, fmt.Errorf("shading ramp must not be empty")
	}
	return &Rasterizer{
		Width:     width,
		Height:    height,
		observerZ: observerZ,
		screenZ:   screenZ,
		light:     lightDir.Normalize(),
		ramp:      ramp,
		extent:    1.1 * (major + minor) * (screenZ - observerZ) / -observerZ,
	}, nil
}

// Render rasterizes a rotated surface into dst. For each point: perspective
// projection onto the screen plane, integer cell mapping (projections landing
// outside [0,W)x[0,H) are discarded, including exactly on the far edges),
// then a nearest-wins depth test. Ties on equal depth keep the first writer;
// iteration order is arbitrary. The depth winner's normal picks the cell
// character.
func (r *Rasterizer) Render(s *Surface, dst *Frame) {
	dst.Reset()
	span := 2 * r.extent
	for i, p := range s.Points {
		x, y, inv, ok := projectToPlane(p, r.observerZ, r.screenZ)
		if !ok {
			continue
		}
		// y is negated: up in 3D space, down in grid rows. Floor, not
		// truncation: small negatives must fall off the grid, not into
		// column zero.
		col := int(math.Floor((x + r.extent) / span * float64(dst.Width)))
		row := int(math.Floor((r.extent - y) / span * float64(dst.Height)))
		if col < 0 || col >= dst.Width || row < 0 || row >= dst.Height {
			continue
		}
		cell := row*dst.Width + col
		if inv > dst.depth[cell] {
			dst.depth[cell] = inv
			dst.Cells[cell] = r.ramp.Shade(lightIntensity(s.Normals[i], r.light))
		}
	}
}

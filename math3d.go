package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const twoPi = 2 * math.Pi

// rotationXY returns the rotation applied to the donut each frame: first
// about the X axis by ax, then about the Y axis by ay. The same matrix must
// be applied to points and normals alike; rotations are orthogonal with
// determinant +1, so unit normals stay unit.
func rotationXY(ax, ay float64) mgl64.Mat3 {
	return mgl64.Rotate3DY(ay).Mul3(mgl64.Rotate3DX(ax))
}

// wrapAngle reduces an angle to [0, 2π) so long-running animations never
// accumulate unbounded magnitudes.
func wrapAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// projectToPlane projects p onto the screen plane z = d as seen by an
// observer at (0, 0, f), with f < d. It returns the plane coordinates, the
// inverse distance 1/(z-f) from the observer along the viewing axis (larger
// means nearer), and ok=false for points at or behind the observer, checked
// before the divide so the math stays total.
func projectToPlane(p mgl64.Vec3, f, d float64) (x, y, invDepth float64, ok bool) {
	dz := p.Z() - f
	if dz <= 1e-9 {
		return 0, 0, 0, false
	}
	invDepth = 1 / dz
	scale := (d - f) * invDepth
	return p.X() * scale, p.Y() * scale, invDepth, true
}

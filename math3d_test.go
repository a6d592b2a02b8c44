package main

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWrapAngle(t *testing.T) {
	Convey("Angles stay in [0, 2π)", t, func() {
		So(wrapAngle(0), ShouldEqual, 0.0)
		So(wrapAngle(twoPi), ShouldAlmostEqual, 0, tol)
		So(wrapAngle(3*math.Pi), ShouldAlmostEqual, math.Pi, tol)
		So(wrapAngle(-math.Pi/2), ShouldAlmostEqual, 3*math.Pi/2, tol)
		So(wrapAngle(100*twoPi+1), ShouldAlmostEqual, 1, 1e-9)
	})
}

func TestRotationComposition(t *testing.T) {
	Convey("rotationXY applies X first, then Y", t, func() {
		// Rotating +Z by 90° about X gives -Y; -Y is on the Y axis so the
		// following Y rotation leaves it alone.
		v := rotationXY(math.Pi/2, math.Pi/2).Mul3x1(mgl64.Vec3{0, 0, 1})
		So(v.X(), ShouldAlmostEqual, 0, tol)
		So(v.Y(), ShouldAlmostEqual, -1, tol)
		So(v.Z(), ShouldAlmostEqual, 0, tol)

		// The reverse order would differ: this pins the convention.
		w := mgl64.Rotate3DX(math.Pi / 2).Mul3(mgl64.Rotate3DY(math.Pi / 2)).Mul3x1(mgl64.Vec3{0, 0, 1})
		So(w.Sub(v).Len(), ShouldNotAlmostEqual, 0, tol)
	})
}

func TestProjectToPlane(t *testing.T) {
	const f, d = -5.0, -4.0

	Convey("Points project by similar triangles toward the observer", t, func() {
		x, y, inv, ok := projectToPlane(mgl64.Vec3{2, -1, 0}, f, d)
		So(ok, ShouldBeTrue)
		So(inv, ShouldAlmostEqual, 1.0/5.0, tol)
		So(x, ShouldAlmostEqual, 2.0/5.0, tol)
		So(y, ShouldAlmostEqual, -1.0/5.0, tol)
	})

	Convey("Nearer points have larger inverse depth", t, func() {
		_, _, near, _ := projectToPlane(mgl64.Vec3{0, 0, -1}, f, d)
		_, _, far, _ := projectToPlane(mgl64.Vec3{0, 0, 1}, f, d)
		So(near, ShouldBeGreaterThan, far)
	})

	Convey("Points at or behind the observer are rejected before dividing", t, func() {
		for _, z := range []float64{f, f - 1, f + 1e-12} {
			_, _, _, ok := projectToPlane(mgl64.Vec3{0, 0, z}, f, d)
			So(ok, ShouldBeFalse)
		}
	})
}

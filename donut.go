package main

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Surface is a fixed sampling of a torus: Points[i] lies on the surface and
// Normals[i] is the unit outward normal at that point. The pairing is
// index-aligned and must survive every transform. A Surface is never mutated
// after construction; Rotated returns fresh copies.
type Surface struct {
	Major float64 // distance from torus center to tube center
	Minor float64 // tube radius

	Points  []mgl64.Vec3
	Normals []mgl64.Vec3
}

// NewSurface samples the torus with thetaSamples points around the tube and
// phiSamples points around the axis of revolution, both evenly spaced in
// [0, 2π). It requires major > minor > 0 and positive sample counts.
func NewSurface(major, minor float64, thetaSamples, phiSamples int) (*Surface, error) {
	if minor <= 0 || major <= minor {
		return nil, fmt.Errorf("torus radii must satisfy major > minor > 0, got major=%g minor=%g", major, minor)
	}
	if thetaSamples <= 0 || phiSamples <= 0 {
		return nil, fmt.Errorf("sample counts must be positive, got theta=%d phi=%d", thetaSamples, phiSamples)
	}

	n := thetaSamples * phiSamples
	s := &Surface{
		Major:   major,
		Minor:   minor,
		Points:  make([]mgl64.Vec3, 0, n),
		Normals: make([]mgl64.Vec3, 0, n),
	}

	for ti := 0; ti < thetaSamples; ti++ {
		theta := twoPi * float64(ti) / float64(thetaSamples)
		cosT := math.Cos(theta)
		sinT := math.Sin(theta)

		// The tube cross-section point revolves around the z axis; the
		// normal starts from (cosθ, 0, sinθ) and gets the same revolution,
		// so it is unit length by construction.
		ring := major + minor*cosT

		for pi := 0; pi < phiSamples; pi++ {
			phi := twoPi * float64(pi) / float64(phiSamples)
			cosP := math.Cos(phi)
			sinP := math.Sin(phi)

			s.Points = append(s.Points, mgl64.Vec3{ring * cosP, ring * sinP, minor * sinT})
			s.Normals = append(s.Normals, mgl64.Vec3{cosT * cosP, cosT * sinP, sinT})
		}
	}
	return s, nil
}

// Len returns the number of sampled point/normal pairs.
func (s *Surface) Len() int { return len(s.Points) }

// Rotated returns a copy of the surface rotated first about the X axis by ax,
// then about the Y axis by ay. Points and their paired normals go through the
// same matrix; the receiver is left untouched.
func (s *Surface) Rotated(ax, ay float64) *Surface {
	m := rotationXY(ax, ay)
	out := &Surface{
		Major:   s.Major,
		Minor:   s.Minor,
		Points:  make([]mgl64.Vec3, len(s.Points)),
		Normals: make([]mgl64.Vec3, len(s.Normals)),
	}
	for i, p := range s.Points {
		out.Points[i] = m.Mul3x1(p)
	}
	for i, n := range s.Normals {
		out.Normals[i] = m.Mul3x1(n)
	}
	return out
}

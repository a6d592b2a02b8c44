package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultRamp is the classic donut shading ramp, darkest to brightest.
const DefaultRamp = ".,-~:;=!*#$@"

const background = ' '

// Ramp quantizes light intensity into an ordered run of ASCII characters.
type Ramp []byte

// NewRamp builds a shading ramp from an ordered darkest-to-brightest string.
func NewRamp(chars string) (Ramp, error) {
	if len(chars) == 0 {
		return nil, fmt.Errorf("shading ramp must not be empty")
	}
	return Ramp(chars), nil
}

// Shade maps an intensity in [-1, 1] to a ramp character. Intensities at or
// below zero are surfaces facing away from the light and render as the
// background space. The bucket is floor(clamp(i)·(K-1)), which keeps the
// mapping monotonic: brighter never maps to a dimmer character.
func (r Ramp) Shade(intensity float64) byte {
	if intensity <= 0 {
		return background
	}
	if intensity > 1 {
		intensity = 1
	}
	return r[int(intensity*float64(len(r)-1))]
}

// lightIntensity is the illumination model: the cosine of the angle between
// the rotated unit normal and the unit light direction.
func lightIntensity(normal, lightDir mgl64.Vec3) float64 {
	return normal.Dot(lightDir)
}

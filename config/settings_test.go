package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaults(t *testing.T) {
	Convey("The default settings are self-consistent", t, func() {
		s := Default()
		So(s.Validate(), ShouldBeNil)
		So(s.Torus.MajorRadius, ShouldEqual, 2.0)
		So(s.Torus.MinorRadius, ShouldEqual, 1.0)
		So(s.View.Ramp, ShouldEqual, ".,-~:;=!*#$@")
	})
}

func TestLoad(t *testing.T) {
	Convey("A missing settings file falls back to defaults", t, func() {
		s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		So(err, ShouldBeNil)
		So(s, ShouldResemble, Default())
	})

	Convey("A settings file overrides defaults and is validated", t, func() {
		dir := t.TempDir()

		Convey("valid overrides are applied", func() {
			path := filepath.Join(dir, "settings.json")
			So(os.WriteFile(path, []byte(`{"view": {"gridWidth": 60, "gridHeight": 30, "observerZ": -5, "screenZ": -4, "lightDir": [0,1,-1], "ramp": ".,-~:;=!*#$@"}}`), 0o644), ShouldBeNil)
			s, err := Load(path)
			So(err, ShouldBeNil)
			So(s.View.GridWidth, ShouldEqual, 60)
			So(s.View.GridHeight, ShouldEqual, 30)
			So(s.Torus.MajorRadius, ShouldEqual, 2.0) // untouched default
		})

		Convey("malformed JSON is an error", func() {
			path := filepath.Join(dir, "broken.json")
			So(os.WriteFile(path, []byte(`{"torus":`), 0o644), ShouldBeNil)
			_, err := Load(path)
			So(err, ShouldNotBeNil)
		})

		Convey("invalid values are configuration errors", func() {
			path := filepath.Join(dir, "bad.json")
			So(os.WriteFile(path, []byte(`{"torus": {"majorRadius": 1, "minorRadius": 2, "thetaSamples": 100, "phiSamples": 150}}`), 0o644), ShouldBeNil)
			_, err := Load(path)
			var cerr *ConfigError
			So(errors.As(err, &cerr), ShouldBeTrue)
			So(cerr.Field, ShouldEqual, "torus.majorRadius")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Every pipeline invariant is checked", t, func() {
		cases := []struct {
			field  string
			mutate func(*Settings)
		}{
			{"torus.minorRadius", func(s *Settings) { s.Torus.MinorRadius = 0 }},
			{"torus.majorRadius", func(s *Settings) { s.Torus.MajorRadius = 0.5 }},
			{"torus.thetaSamples", func(s *Settings) { s.Torus.ThetaSamples = 0 }},
			{"torus.phiSamples", func(s *Settings) { s.Torus.PhiSamples = -1 }},
			{"view.gridWidth", func(s *Settings) { s.View.GridWidth = 0 }},
			{"view.gridHeight", func(s *Settings) { s.View.GridHeight = -2 }},
			{"view.observerZ", func(s *Settings) { s.View.ObserverZ = -3 }},
			{"view.screenZ", func(s *Settings) { s.View.ScreenZ = -2.5 }},
			{"view.lightDir", func(s *Settings) { s.View.LightDir = [3]float64{} }},
			{"view.ramp", func(s *Settings) { s.View.Ramp = "" }},
			{"animation.frameIntervalMs", func(s *Settings) { s.Animation.FrameIntervalMs = 0 }},
		}
		for _, c := range cases {
			s := Default()
			c.mutate(&s)
			err := s.Validate()
			var cerr *ConfigError
			So(errors.As(err, &cerr), ShouldBeTrue)
			So(cerr.Field, ShouldEqual, c.field)
		}
	})
}

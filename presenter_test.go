package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestANSIPresenter(t *testing.T) {
	Convey("Given a small frame", t, func() {
		f := NewFrame(3, 2)
		f.Cells[0] = '@'
		f.Cells[4] = '.'

		var buf bytes.Buffer
		p := NewANSIPresenter(&buf)

		Convey("the first frame clears the screen and homes the cursor", func() {
			So(p.Present(f), ShouldBeNil)
			out := buf.String()
			So(out, ShouldStartWith, "\x1b[2J\x1b[H")
			So(out, ShouldContainSubstring, "@ ")
			So(strings.Count(out, "\n"), ShouldEqual, 2)
		})

		Convey("later frames only home the cursor", func() {
			So(p.Present(f), ShouldBeNil)
			buf.Reset()
			So(p.Present(f), ShouldBeNil)
			So(buf.String(), ShouldStartWith, "\x1b[H")
			So(buf.String(), ShouldNotContainSubstring, "\x1b[2J")
		})

		Convey("cells are space-separated to compensate terminal aspect", func() {
			So(p.Present(f), ShouldBeNil)
			lines := strings.Split(strings.TrimPrefix(buf.String(), "\x1b[2J\x1b[H"), "\n")
			So(lines[0], ShouldEqual, "@     ")
			So(lines[1], ShouldEqual, "  .   ")
		})

		Convey("writer errors propagate", func() {
			failing := NewANSIPresenter(failWriter{})
			So(failing.Present(f), ShouldNotBeNil)
		})
	})
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errWriteFailed
}

var errWriteFailed = errors.New("write failed")

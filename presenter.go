package main

import (
	"bytes"
	"io"
)

// FramePresenter accepts a finished character grid and writes it to a display
// surface. The animation driver calls Present once per frame; any error is
// fatal to the animation.
type FramePresenter interface {
	Present(f *Frame) error
}

// ANSIPresenter repaints frames in place on a writer using cursor-home escape
// sequences, the classic clear-and-reprint console loop. Cells are separated
// by a space so a square grid reads roughly square in a 2:1 terminal font.
type ANSIPresenter struct {
	w       io.Writer
	cleared bool
	buf     bytes.Buffer
}

// NewANSIPresenter wraps a writer, usually os.Stdout.
func NewANSIPresenter(w io.Writer) *ANSIPresenter {
	return &ANSIPresenter{w: w}
}

// Present writes the frame as one buffered chunk to avoid tearing.
func (p *ANSIPresenter) Present(f *Frame) error {
	p.buf.Reset()
	if !p.cleared {
		p.buf.WriteString("\x1b[2J")
		p.cleared = true
	}
	p.buf.WriteString("\x1b[H")
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			p.buf.WriteByte(f.At(col, row))
			p.buf.WriteByte(' ')
		}
		p.buf.WriteByte('\n')
	}
	_, err := p.w.Write(p.buf.Bytes())
	return err
}

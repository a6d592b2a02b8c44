package main

import (
	"context"

	"github.com/nsf/termbox-go"
)

// TermboxPresenter renders frames as termbox cells. A side goroutine polls
// key events; ESC or q cancels the animation through the driver's context.
type TermboxPresenter struct {
	cancel context.CancelFunc
}

// NewTermboxPresenter initializes termbox and starts the key poller. Call
// Close when the animation ends to restore the terminal.
func NewTermboxPresenter(cancel context.CancelFunc) (*TermboxPresenter, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	p := &TermboxPresenter{cancel: cancel}
	go func() {
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				return
			}
			if ev.Type == termbox.EventKey && (ev.Key == termbox.KeyEsc || ev.Ch == 'q') {
				p.cancel()
				return
			}
		}
	}()
	return p, nil
}

// Present copies the grid into the termbox back buffer and flushes it.
func (p *TermboxPresenter) Present(f *Frame) error {
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			termbox.SetCell(col, row, rune(f.At(col, row)), termbox.ColorDefault, termbox.ColorDefault)
		}
	}
	return termbox.Flush()
}

// Close unblocks the key poller and shuts termbox down.
func (p *TermboxPresenter) Close() {
	termbox.Interrupt()
	termbox.Close()
}

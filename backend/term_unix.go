//go:build unix

package backend

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lixenwraith/termframe/layout"
)

// NewTerm acquires the terminal: raw mode on, alternate screen entered,
// autowrap off. The returned backend must be Closed to restore the terminal,
// normally via defer right after this call.
func NewTerm(opts TermOptions) (*TermBackend, error) {
	if opts.In == nil || opts.Out == nil {
		def := DefaultTermOptions()
		if opts.In == nil {
			opts.In = def.In
		}
		if opts.Out == nil {
			opts.Out = def.Out
		}
	}
	outFd := int(opts.Out.Fd())
	if !term.IsTerminal(outFd) {
		return nil, fmt.Errorf("output fd %d: %w", outFd, ErrNotTerminal)
	}

	oldState, err := term.MakeRaw(int(opts.In.Fd()))
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	b := &TermBackend{
		opts:     opts,
		w:        bufio.NewWriterSize(opts.Out, 1<<16),
		oldState: oldState,
	}
	if opts.AltScreen {
		b.w.Write(csiAltScreenEnter)
	}
	b.w.Write(csiAutoWrapOff)
	if err := b.w.Flush(); err != nil {
		term.Restore(int(opts.In.Fd()), oldState)
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	return b, nil
}

// Close restores the terminal: attributes reset, cursor shown, autowrap on,
// alternate screen left, raw mode off. Safe to call once on any exit path.
func (b *TermBackend) Close() error {
	if b.closed {
		return ErrClosed
	}
	b.closed = true

	if b.resizeStop != nil {
		close(b.resizeStop)
		<-b.resizeDone
		b.resizeStop = nil
	}

	b.w.Write(csiSGR0)
	b.w.Write(csiCursorShow)
	b.w.Write(csiAutoWrapOn)
	if b.opts.AltScreen {
		b.w.Write(csiAltScreenExit)
	}
	flushErr := b.w.Flush()

	if err := term.Restore(int(b.opts.In.Fd()), b.oldState); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return flushErr
}

func (b *TermBackend) Size() (layout.Rect, error) {
	if b.closed {
		return layout.Rect{}, ErrClosed
	}
	ws, err := unix.IoctlGetWinsize(int(b.opts.Out.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return layout.Rect{}, fmt.Errorf("query winsize: %w", err)
	}
	return layout.Rect{Width: int(ws.Col), Height: int(ws.Row)}, nil
}

// SetResizeHandler invokes fn with the new size whenever the terminal
// reports SIGWINCH. The watching goroutine stops on Close.
func (b *TermBackend) SetResizeHandler(fn func(layout.Rect)) {
	b.resizeStop = make(chan struct{})
	b.resizeDone = make(chan struct{})

	go func() {
		defer close(b.resizeDone)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGWINCH)
		defer signal.Stop(sigCh)

		for {
			select {
			case <-b.resizeStop:
				return
			case <-sigCh:
				if size, err := b.Size(); err == nil {
					fn(size)
				}
			}
		}
	}()
}

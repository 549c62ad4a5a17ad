package stylesheet

import (
	"context"
	"fmt"

	"github.com/VanillaMaster/interpolate"
)

// Pending is the eventual result of an asynchronous compile. It settles
// exactly once.
type Pending struct {
	done  chan struct{}
	sheet *Sheet
	err   error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func rejected(err error) *Pending {
	p := newPending()
	p.settle(nil, err)
	return p
}

func (p *Pending) settle(sheet *Sheet, err error) {
	p.sheet, p.err = sheet, err
	close(p.done)
}

// Done is closed once the result is available.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the compile settles or ctx is done. A settled result is
// returned even when ctx is already done.
func (p *Pending) Wait(ctx context.Context) (*Sheet, error) {
	select {
	case <-p.done:
		return p.sheet, p.err
	default:
	}
	select {
	case <-p.done:
		return p.sheet, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// CSS interpolates the template and compiles the result in the background.
// The Pending result rejects with an *ArityError for malformed input and with
// a *SyntaxError for invalid stylesheet text.
func CSS(ctx context.Context, fragments []string, substitutions ...any) *Pending {
	if err := interpolate.Validate(fragments, substitutions); err != nil {
		return rejected(fmt.Errorf("stylesheet: %w", err))
	}
	return Replace(ctx, interpolate.Interpolate(fragments, substitutions))
}

// Replace compiles text in the background. If ctx is done before the compile
// starts the result rejects with ctx.Err().
func Replace(ctx context.Context, text string) *Pending {
	p := newPending()
	go func() {
		if err := ctx.Err(); err != nil {
			p.settle(nil, err)
			return
		}
		p.settle(ReplaceSync(text))
	}()
	return p
}

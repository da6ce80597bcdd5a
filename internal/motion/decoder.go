package motion

import (
	"context"
	"math/rand/v2"
	"time"
)

const (
	// DecodeAlphabet is the pool of placeholder characters for unrevealed positions.
	DecodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789@#$%&*"

	// DecodeInterval is the default time between frames.
	DecodeInterval = 30 * time.Millisecond

	decodeStep = 0.5
)

// Decoder reveals a target string left to right, half a character per
// tick, scrambling the unrevealed suffix. Spaces are never scrambled.
//
// A Decoder is not safe for concurrent use; each viewer gets its own.
type Decoder struct {
	target    []rune
	alphabet  []rune
	rng       *rand.Rand
	iteration float64
	done      bool
}

type DecoderOption func(*Decoder)

// WithRand sets the random source used for placeholder characters.
func WithRand(r *rand.Rand) DecoderOption {
	return func(d *Decoder) {
		d.rng = r
	}
}

// WithSeed makes the scrambled frames reproducible.
func WithSeed(seed uint64) DecoderOption {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithAlphabet replaces DecodeAlphabet. An empty alphabet is ignored.
func WithAlphabet(alphabet string) DecoderOption {
	return func(d *Decoder) {
		if alphabet != "" {
			d.alphabet = []rune(alphabet)
		}
	}
}

func NewDecoder(target string, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		target:   []rune(target),
		alphabet: []rune(DecodeAlphabet),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return d
}

// Target returns the string being revealed.
func (d *Decoder) Target() string {
	return string(d.target)
}

// Ticks returns the number of frames a full run produces.
func (d *Decoder) Ticks() int {
	return int(float64(len(d.target))/decodeStep) + 1
}

// Frame renders the display string for a given iteration without
// advancing the decoder.
func (d *Decoder) Frame(iteration float64) string {
	out := make([]rune, len(d.target))
	for i, r := range d.target {
		switch {
		case r == ' ':
			out[i] = ' '
		case float64(i) < iteration:
			out[i] = r
		default:
			out[i] = d.alphabet[d.rng.IntN(len(d.alphabet))]
		}
	}
	return string(out)
}

// Next produces the frame for the current tick and advances. done is true
// for the final frame, which always equals the target. Calls after the
// final frame keep returning the target.
func (d *Decoder) Next() (frame string, done bool) {
	if d.done {
		return string(d.target), true
	}
	frame = d.Frame(d.iteration)
	if d.iteration >= float64(len(d.target)) {
		d.done = true
	}
	d.iteration += decodeStep
	return frame, d.done
}

// Done reports whether the final frame has been produced.
func (d *Decoder) Done() bool {
	return d.done
}

// Run emits one frame per interval until the final frame or until ctx is
// cancelled. The ticker is always stopped before Run returns. The first
// frame is emitted after one interval.
func (d *Decoder) Run(ctx context.Context, interval time.Duration, emit func(frame string, done bool) error) error {
	if interval <= 0 {
		interval = DecodeInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			frame, done := d.Next()
			if err := emit(frame, done); err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

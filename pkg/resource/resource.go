// Package resource implements the scalar quantities owned by entities:
// bounded, unbounded, regenerating and lenient variants plus a named
// container.
package resource

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidAmount is returned when Consume or Produce receive a negative amount.
	ErrInvalidAmount = errors.New("resource: amount must not be negative")
	// ErrInsufficientResource is returned when a bounded resource cannot cover a Consume.
	ErrInsufficientResource = errors.New("resource: insufficient level")
)

// Resource is a scalar quantity that can be consumed and produced.
type Resource interface {
	Consume(amount float64) error
	Produce(amount float64) error
	Level() float64
}

// Regenerator is implemented by resources that replenish once per step when
// their owner asks them to.
type Regenerator interface {
	Regenerate() error
}

func checkAmount(op string, amount float64) error {
	if amount < 0 || math.IsNaN(amount) {
		return fmt.Errorf("%s %v: %w", op, amount, ErrInvalidAmount)
	}
	return nil
}

// Finite is a bounded resource. Its level never drops below zero and has no
// ceiling.
type Finite struct {
	level float64
}

// NewFinite returns a Finite resource. Negative initial levels clamp to 0.
func NewFinite(initial float64) *Finite {
	if initial < 0 {
		initial = 0
	}
	return &Finite{level: initial}
}

// Consume removes amount from the level. It fails without changing the level
// when amount exceeds what is available.
func (f *Finite) Consume(amount float64) error {
	if err := checkAmount("consume", amount); err != nil {
		return err
	}
	if amount > f.level {
		return fmt.Errorf("consume %v of %v: %w", amount, f.level, ErrInsufficientResource)
	}
	f.level -= amount
	return nil
}

// Produce adds amount to the level.
func (f *Finite) Produce(amount float64) error {
	if err := checkAmount("produce", amount); err != nil {
		return err
	}
	f.level += amount
	return nil
}

// Level reports the current amount.
func (f *Finite) Level() float64 { return f.level }

// Infinite always reports +Inf and ignores valid consumption or production.
type Infinite struct{}

// NewInfinite returns an unbounded resource.
func NewInfinite() *Infinite { return &Infinite{} }

// Consume validates amount and otherwise does nothing.
func (Infinite) Consume(amount float64) error { return checkAmount("consume", amount) }

// Produce validates amount and otherwise does nothing.
func (Infinite) Produce(amount float64) error { return checkAmount("produce", amount) }

// Level returns +Inf.
func (Infinite) Level() float64 { return math.Inf(1) }

// Regenerating is a Finite resource that gains a fixed rate each time
// Regenerate is called.
type Regenerating struct {
	Finite
	rate float64
}

// NewRegenerating returns a regenerating resource. Both arguments clamp to 0.
func NewRegenerating(initial, rate float64) *Regenerating {
	if rate < 0 {
		rate = 0
	}
	return &Regenerating{Finite: *NewFinite(initial), rate: rate}
}

// Rate reports the per-call regeneration amount.
func (r *Regenerating) Rate() float64 { return r.rate }

// Regenerate produces Rate units.
func (r *Regenerating) Regenerate() error {
	return r.Produce(r.rate)
}

// Computational is a lenient resource: consuming more than is available
// drains it to zero instead of failing.
type Computational struct {
	level float64
}

// NewComputational returns a Computational resource with the given level.
// Negative levels clamp to 0.
func NewComputational(initial float64) *Computational {
	if initial < 0 {
		initial = 0
	}
	return &Computational{level: initial}
}

// Consume removes amount, flooring the level at zero.
func (c *Computational) Consume(amount float64) error {
	if err := checkAmount("consume", amount); err != nil {
		return err
	}
	c.level -= amount
	if c.level < 0 {
		c.level = 0
	}
	return nil
}

// Produce adds amount to the level.
func (c *Computational) Produce(amount float64) error {
	if err := checkAmount("produce", amount); err != nil {
		return err
	}
	c.level += amount
	return nil
}

// Level reports the current amount.
func (c *Computational) Level() float64 { return c.level }

// Package counter holds the bounded counter that is the application's only state.
package counter

import "errors"

// Max is the largest value the counter may reach.
const Max uint8 = 2

// ErrOverflow is returned by Increment when the counter is already at Max.
var ErrOverflow = errors.New("counter overflow")

// ErrUnderflow is returned by Decrement when the counter is already at zero.
var ErrUnderflow = errors.New("counter underflow")

// Counter is a saturating counter over [0, Max]. A failed Increment or
// Decrement leaves the value unchanged; callers decide how to report the
// error, the counter itself never wraps.
type Counter struct {
	value uint8
}

// Value returns the current count.
func (c *Counter) Value() uint8 {
	return c.value
}

// Increment adds one, or returns ErrOverflow if the counter is at Max.
func (c *Counter) Increment() error {
	if c.value >= Max {
		return ErrOverflow
	}
	c.value++
	return nil
}

// Decrement subtracts one, or returns ErrUnderflow if the counter is at zero.
func (c *Counter) Decrement() error {
	if c.value == 0 {
		return ErrUnderflow
	}
	c.value--
	return nil
}

package feature

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

/*
Closure tells which margins of an interval belong to it.
*/
type Closure string

// Interval closures.
const (
	OpenOpen     Closure = "openOpen"
	OpenClosed   Closure = "openClosed"
	ClosedOpen   Closure = "closedOpen"
	ClosedClosed Closure = "closedClosed"
)

/*
Interval is a range of numeric values. A nil margin leaves the interval
unbounded on that side.
*/
type Interval struct {
	LeftMargin  *float64
	RightMargin *float64
	Closure     Closure
}

/*
NewInterval takes a closure and the optional left and right margins and
returns an Interval or an error wrapping ErrInvalidInterval if the
closure is unknown, no margin is given or the left margin is greater
than the right one.
*/
func NewInterval(closure Closure, left, right *float64) (Interval, error) {
	switch closure {
	case OpenOpen, OpenClosed, ClosedOpen, ClosedClosed:
	default:
		return Interval{}, errors.Wrapf(ErrInvalidInterval, "unknown closure %q", closure)
	}
	if left == nil && right == nil {
		return Interval{}, errors.Wrap(ErrInvalidInterval, "at least one margin is required")
	}
	if left != nil && right != nil && *left > *right {
		return Interval{}, errors.Wrapf(ErrInvalidInterval, "left margin %v is greater than right margin %v", *left, *right)
	}
	return Interval{LeftMargin: left, RightMargin: right, Closure: closure}, nil
}

/*
Contains returns whether the value falls into the interval.
*/
func (i Interval) Contains(v float64) bool {
	if i.LeftMargin != nil {
		if i.Closure == ClosedOpen || i.Closure == ClosedClosed {
			if v < *i.LeftMargin {
				return false
			}
		} else if v <= *i.LeftMargin {
			return false
		}
	}
	if i.RightMargin != nil {
		if i.Closure == OpenClosed || i.Closure == ClosedClosed {
			if v > *i.RightMargin {
				return false
			}
		} else if v >= *i.RightMargin {
			return false
		}
	}
	return true
}

func (i Interval) String() string {
	left, right := "(-Inf", "+Inf)"
	if i.LeftMargin != nil {
		left = "(" + strconv.FormatFloat(*i.LeftMargin, 'g', -1, 64)
		if i.Closure == ClosedOpen || i.Closure == ClosedClosed {
			left = "[" + left[1:]
		}
	}
	if i.RightMargin != nil {
		right = strconv.FormatFloat(*i.RightMargin, 'g', -1, 64) + ")"
		if i.Closure == OpenClosed || i.Closure == ClosedClosed {
			right = right[:len(right)-1] + "]"
		}
	}
	return fmt.Sprintf("%s, %s", left, right)
}

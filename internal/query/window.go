package query

import (
	"time"

	"github.com/solflow/dcadash/internal/model"
)

// Window names a relative execution-time interval used to partition orders
// into dashboard tabs.
type Window int

// Available windows.
const (
	WindowAll Window = iota
	WindowNextHour
	WindowNextDay
)

// String returns the tab label for the window.
func (w Window) String() string {
	switch w {
	case WindowNextHour:
		return "Next Hour"
	case WindowNextDay:
		return "Next Day"
	case WindowAll:
		return "All"
	default:
		return "Unknown"
	}
}

// span returns the window's forward extent from now, and whether the window
// is bounded at all.
func (w Window) span() (time.Duration, bool) {
	switch w {
	case WindowNextHour:
		return time.Hour, true
	case WindowNextDay:
		return 24 * time.Hour, true
	default:
		return 0, false
	}
}

// Partition returns the orders whose next execution falls inside the window
// relative to now: now < ExecuteAt <= now+span. The lower bound is strict, so
// an order due exactly at now is past due and excluded from the bounded
// windows; WindowAll is the identity and keeps past-due orders.
func Partition(orders []model.Order, now time.Time, w Window) []model.Order {
	span, bounded := w.span()
	if !bounded {
		return orders
	}

	edge := now.Add(span)
	inWindow := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.ExecuteAt.After(now) && !o.ExecuteAt.After(edge) {
			inWindow = append(inWindow, o)
		}
	}

	return inWindow
}

package chart

import (
	"errors"
	"fmt"

	"dasa.cc/cartesian/axis"
)

// ErrUninitialized is returned by queries made before the first layout pass
// or after Unload.
var ErrUninitialized = errors.New("chart core not initialized")

// AxisIndexError reports an axis index beyond the current axis list.
type AxisIndexError struct {
	Orientation axis.Orientation
	Index       int
	Len         int
}

func (e *AxisIndexError) Error() string {
	return fmt.Sprintf("%v axis %d of %d: %v", e.Orientation, e.Index, e.Len, axis.ErrIndexOutOfRange)
}

func (e *AxisIndexError) Unwrap() error { return axis.ErrIndexOutOfRange }

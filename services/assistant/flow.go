package assistant

import (
	"context"
	"errors"

	"concierge/models"
)

// slot is one entry in a flow's declared field order. The four flows share this shape
// and differ only in their slot tables.
type slot struct {
	name   string
	prompt string
	// required reports whether the slot applies given earlier answers; nil means
	// always required.
	required func() bool
	// supplied reports whether the caller provided a value for this slot on this
	// invocation.
	supplied func() bool
	// apply validates and stores the supplied value. A FlowError aborts the pass so
	// the same field is re-asked.
	apply func(ctx context.Context) error
	// filled reports whether the slot already holds a valid answer. Answered-with-zero
	// counts as filled.
	filled func() bool
}

// advance applies every supplied field in declared order, then scans for the first
// still-missing required slot. It returns (result, false) while the flow needs more
// input and (zero, true) once every required slot is filled.
func advance(ctx context.Context, step string, slots []slot) (models.ToolResult, bool) {
	for _, sl := range slots {
		if sl.required != nil && !sl.required() {
			continue
		}
		if !sl.supplied() {
			continue
		}
		if err := sl.apply(ctx); err != nil {
			var fe *FlowError
			if errors.As(err, &fe) {
				return models.Partial(step, fe.Message), false
			}
			return models.Error(step, err.Error()), false
		}
	}

	for _, sl := range slots {
		if sl.required != nil && !sl.required() {
			continue
		}
		if !sl.filled() {
			return models.Partial(step, sl.prompt), false
		}
	}

	return models.ToolResult{}, true
}

package schedule

import (
	"fmt"
	"iter"
	"time"

	domainErrors "github.com/ovenside/storefront/internal/domain/errors"
	"github.com/ovenside/storefront/internal/domain/model"
)

// Slot is a discrete pickup choice offered to a customer: a sub-interval of
// a pickup window.
type Slot struct {
	Start time.Time
	End   time.Time
}

// SlotSeq returns a restartable sequence of slots for one window.
//
// The anytime option yields exactly one slot spanning the whole window.
// A fixed interval N yields successive starts at N-minute increments while
// the start is before the window end; the final slot is clipped to the
// window end, so it may be shorter than N. Re-running the sequence produces
// identical results.
//
// Windows whose start is not strictly before their end are rejected with
// ErrInvalidWindow even though save-time validation should make that
// unreachable.
func (e *Engine) SlotSeq(w model.PickupWindow, opt model.TimeSlotsOption) (iter.Seq[Slot], error) {
	if !w.Start.Before(w.End) {
		return nil, domainErrors.ErrInvalidWindow
	}
	if !opt.Valid() {
		return nil, fmt.Errorf("unsupported time slot interval %d", int(opt))
	}

	start := w.StartAt(e.loc)
	end := w.EndAt(e.loc)

	if opt.Anytime() {
		return func(yield func(Slot) bool) {
			yield(Slot{Start: start, End: end})
		}, nil
	}

	step := time.Duration(opt) * time.Minute
	return func(yield func(Slot) bool) {
		for cur := start; cur.Before(end); cur = cur.Add(step) {
			slotEnd := cur.Add(step)
			if slotEnd.After(end) {
				slotEnd = end
			}
			if !yield(Slot{Start: cur, End: slotEnd}) {
				return
			}
		}
	}, nil
}

// Slots materializes SlotSeq into an ordered slice.
func (e *Engine) Slots(w model.PickupWindow, opt model.TimeSlotsOption) ([]Slot, error) {
	seq, err := e.SlotSeq(w, opt)
	if err != nil {
		return nil, err
	}
	var out []Slot
	for s := range seq {
		out = append(out, s)
	}
	return out, nil
}

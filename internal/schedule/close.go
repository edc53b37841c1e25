package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/ovenside/storefront/internal/domain/errors"
	"github.com/ovenside/storefront/internal/domain/model"
)

// Resolution is the outcome of resolving an order-close policy.
// Effective is the single instant after which new orders are rejected.
// PerWindow is populated only for the time-before variant: one close
// instant per window, with Effective being the earliest of them.
type Resolution struct {
	Effective time.Time
	PerWindow map[uuid.UUID]time.Time
}

// Resolve computes the effective close instant(s) for a policy over the
// event's window snapshot.
//
// last-window delegates to the set's latest end and fails with
// ErrNoWindowsAvailable on an empty set; callers must surface that as
// "cannot determine close time" rather than default it away.
// specific-time returns the configured instant verbatim and is valid even
// with zero windows.
func (e *Engine) Resolve(p model.ClosePolicy, set *WindowSet) (Resolution, error) {
	switch p.Option() {
	case model.CloseLastWindow:
		latest, err := set.LatestEnd()
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Effective: latest.EndAt(e.loc)}, nil

	case model.CloseTimeBefore:
		windows := set.Windows()
		if len(windows) == 0 {
			return Resolution{}, domainErrors.ErrNoWindowsAvailable
		}
		offset := p.OffsetDuration()
		perWindow := make(map[uuid.UUID]time.Time, len(windows))
		var effective time.Time
		for _, w := range windows {
			closeAt := w.StartAt(e.loc).Add(-offset)
			perWindow[w.ID] = closeAt
			if effective.IsZero() || closeAt.Before(effective) {
				effective = closeAt
			}
		}
		return Resolution{Effective: effective, PerWindow: perWindow}, nil

	case model.CloseSpecificTime:
		return Resolution{Effective: p.At()}, nil

	default:
		// Unreachable for policies that passed event validation.
		return Resolution{}, fmt.Errorf("unknown close option %q", p.Option())
	}
}

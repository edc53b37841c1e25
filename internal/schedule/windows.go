package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/ovenside/storefront/internal/domain/errors"
	"github.com/ovenside/storefront/internal/domain/model"
)

// WindowSet holds the pickup windows of one event ordered by pickup date
// then start time. It is a snapshot for a single logical caller: no internal
// locking.
type WindowSet struct {
	windows []model.PickupWindow
}

// NewWindowSet builds an ordered set from the given windows.
func NewWindowSet(windows ...model.PickupWindow) *WindowSet {
	s := &WindowSet{windows: make([]model.PickupWindow, 0, len(windows))}
	s.windows = append(s.windows, windows...)
	s.sort()
	return s
}

func (s *WindowSet) sort() {
	sort.SliceStable(s.windows, func(i, j int) bool {
		a, b := s.windows[i], s.windows[j]
		if c := compareDates(a.Date, b.Date); c != 0 {
			return c < 0
		}
		return a.Start.Before(b.Start)
	})
}

func compareDates(a, b time.Time) int {
	if a.Year() != b.Year() {
		if a.Year() < b.Year() {
			return -1
		}
		return 1
	}
	if a.YearDay() != b.YearDay() {
		if a.YearDay() < b.YearDay() {
			return -1
		}
		return 1
	}
	return 0
}

// Add inserts a window keeping the set ordered.
func (s *WindowSet) Add(w model.PickupWindow) {
	s.windows = append(s.windows, w)
	s.sort()
}

// Replace swaps the window with the same identifier. Reports whether a
// window was found.
func (s *WindowSet) Replace(w model.PickupWindow) bool {
	for i := range s.windows {
		if s.windows[i].ID == w.ID {
			s.windows[i] = w
			s.sort()
			return true
		}
	}
	return false
}

// Remove deletes the window with the given identifier. Reports whether a
// window was found.
func (s *WindowSet) Remove(id uuid.UUID) bool {
	for i := range s.windows {
		if s.windows[i].ID == id {
			s.windows = append(s.windows[:i], s.windows[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of windows in the set.
func (s *WindowSet) Len() int {
	return len(s.windows)
}

// Windows returns the ordered windows as a copy.
func (s *WindowSet) Windows() []model.PickupWindow {
	out := make([]model.PickupWindow, len(s.windows))
	copy(out, s.windows)
	return out
}

// LatestEnd returns the window whose (date, end time) pair is maximal.
// When two windows end at the identical instant the one with the
// lexicographically smaller identifier wins. Empty sets fail with
// ErrNoWindowsAvailable.
func (s *WindowSet) LatestEnd() (model.PickupWindow, error) {
	if len(s.windows) == 0 {
		return model.PickupWindow{}, domainErrors.ErrNoWindowsAvailable
	}

	latest := s.windows[0]
	for _, w := range s.windows[1:] {
		switch compareEnds(w, latest) {
		case 1:
			latest = w
		case 0:
			if strings.Compare(w.ID.String(), latest.ID.String()) < 0 {
				latest = w
			}
		}
	}
	return latest, nil
}

func compareEnds(a, b model.PickupWindow) int {
	if c := compareDates(a.Date, b.Date); c != 0 {
		return c
	}
	return a.End.Compare(b.End)
}

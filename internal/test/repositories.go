package test

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/ovenside/storefront/internal/domain/errors"
	"github.com/ovenside/storefront/internal/domain/model"
)

// MerchantRepositoryStub stores merchants in-memory for tests.
type MerchantRepositoryStub struct {
	Merchants map[string]*model.Merchant
	ByID      map[int64]*model.Merchant
	Next      int64
	Err       error
}

// NewMerchantRepositoryStub constructs stub repository with initialized maps.
func NewMerchantRepositoryStub() *MerchantRepositoryStub {
	return &MerchantRepositoryStub{
		Merchants: make(map[string]*model.Merchant),
		ByID:      make(map[int64]*model.Merchant),
		Next:      1,
	}
}

// Create registers merchant unless already exists or stub has explicit error.
func (s *MerchantRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.Merchant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Merchants == nil {
		s.Merchants = make(map[string]*model.Merchant)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Merchant)
	}
	if _, exists := s.Merchants[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	merchant := &model.Merchant{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Merchants[login] = merchant
	s.ByID[merchant.ID] = merchant
	return merchant, nil
}

// GetByLogin fetches merchant by login or returns not found.
func (s *MerchantRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.Merchant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if merchant, ok := s.Merchants[login]; ok {
		return merchant, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches merchant by identifier or returns not found.
func (s *MerchantRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Merchant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if merchant, ok := s.ByID[id]; ok {
		return merchant, nil
	}
	return nil, domainErrors.ErrNotFound
}

// PublishCall records arguments of a Publish invocation.
type PublishCall struct {
	ID         uuid.UUID
	MerchantID int64
	CloseAt    *time.Time
}

// EventRepositoryStub allows tests to customize event persistence behaviour.
type EventRepositoryStub struct {
	CreateFn        func(context.Context, *model.Event) (*model.Event, error)
	UpdateFn        func(context.Context, *model.Event) (*model.Event, error)
	GetByIDFn       func(context.Context, uuid.UUID) (*model.Event, error)
	ListFn          func(context.Context, int64) ([]model.Event, error)
	PublishFn       func(context.Context, uuid.UUID, int64, *time.Time) error
	UpdateCloseFn   func(context.Context, uuid.UUID, time.Time) error
	ListPublishedFn func(context.Context, int) ([]model.Event, error)
	StorefrontFn    func(context.Context) ([]model.Event, error)

	Events       []model.Event
	PublishCalls []PublishCall
	CloseUpdates map[uuid.UUID]time.Time
}

// Create stores event or delegates to override.
func (s *EventRepositoryStub) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, event)
	}
	stored := *event
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	s.Events = append(s.Events, stored)
	return &stored, nil
}

// Update replaces stored event or delegates to override.
func (s *EventRepositoryStub) Update(ctx context.Context, event *model.Event) (*model.Event, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, event)
	}
	for i := range s.Events {
		if s.Events[i].ID == event.ID {
			s.Events[i] = *event
			stored := s.Events[i]
			return &stored, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID returns a matched event either via override or stored slice.
func (s *EventRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, e := range s.Events {
		if e.ID == id {
			event := e
			return &event, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByMerchant returns events from the configured slice.
func (s *EventRepositoryStub) ListByMerchant(ctx context.Context, merchantID int64) ([]model.Event, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, merchantID)
	}
	var out []model.Event
	for _, e := range s.Events {
		if e.MerchantID == merchantID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Publish records the call and flips the stored status.
func (s *EventRepositoryStub) Publish(ctx context.Context, id uuid.UUID, merchantID int64, closeAt *time.Time) error {
	s.PublishCalls = append(s.PublishCalls, PublishCall{ID: id, MerchantID: merchantID, CloseAt: closeAt})
	if s.PublishFn != nil {
		return s.PublishFn(ctx, id, merchantID, closeAt)
	}
	for i := range s.Events {
		if s.Events[i].ID == id && s.Events[i].MerchantID == merchantID {
			if s.Events[i].Status != model.EventStatusDraft {
				return domainErrors.ErrAlreadyPublished
			}
			s.Events[i].Status = model.EventStatusPublished
			s.Events[i].CloseAt = closeAt
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// UpdateCloseAt records close instant rewrites.
func (s *EventRepositoryStub) UpdateCloseAt(ctx context.Context, id uuid.UUID, closeAt time.Time) error {
	if s.UpdateCloseFn != nil {
		return s.UpdateCloseFn(ctx, id, closeAt)
	}
	if s.CloseUpdates == nil {
		s.CloseUpdates = make(map[uuid.UUID]time.Time)
	}
	s.CloseUpdates[id] = closeAt
	return nil
}

// ListPublished returns published events from the stored slice.
func (s *EventRepositoryStub) ListPublished(ctx context.Context, limit int) ([]model.Event, error) {
	if s.ListPublishedFn != nil {
		return s.ListPublishedFn(ctx, limit)
	}
	var out []model.Event
	for _, e := range s.Events {
		if e.Status == model.EventStatusPublished {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// ListStorefront returns published, visible events.
func (s *EventRepositoryStub) ListStorefront(ctx context.Context) ([]model.Event, error) {
	if s.StorefrontFn != nil {
		return s.StorefrontFn(ctx)
	}
	var out []model.Event
	for _, e := range s.Events {
		if e.Status == model.EventStatusPublished && !e.HideFromStorefront {
			out = append(out, e)
		}
	}
	return out, nil
}

// WindowRepositoryStub keeps pickup windows in-memory for tests.
type WindowRepositoryStub struct {
	CreateFn func(context.Context, *model.PickupWindow) (*model.PickupWindow, error)
	UpdateFn func(context.Context, *model.PickupWindow) (*model.PickupWindow, error)
	DeleteFn func(context.Context, uuid.UUID) error
	ListFn   func(context.Context, uuid.UUID) ([]model.PickupWindow, error)
	CountFn  func(context.Context, uuid.UUID) (int, error)

	Windows []model.PickupWindow
	Deleted []uuid.UUID
}

// Create stores window or delegates to override.
func (s *WindowRepositoryStub) Create(ctx context.Context, window *model.PickupWindow) (*model.PickupWindow, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, window)
	}
	stored := *window
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	s.Windows = append(s.Windows, stored)
	return &stored, nil
}

// Update replaces stored window or delegates to override.
func (s *WindowRepositoryStub) Update(ctx context.Context, window *model.PickupWindow) (*model.PickupWindow, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, window)
	}
	for i := range s.Windows {
		if s.Windows[i].ID == window.ID {
			s.Windows[i] = *window
			stored := s.Windows[i]
			return &stored, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete records removal.
func (s *WindowRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	s.Deleted = append(s.Deleted, id)
	for i := range s.Windows {
		if s.Windows[i].ID == id {
			s.Windows = append(s.Windows[:i], s.Windows[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// GetByID returns a stored window or not found.
func (s *WindowRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.PickupWindow, error) {
	for _, w := range s.Windows {
		if w.ID == id {
			window := w
			return &window, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByEvent returns windows of one event.
func (s *WindowRepositoryStub) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.PickupWindow, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, eventID)
	}
	var out []model.PickupWindow
	for _, w := range s.Windows {
		if w.EventID == eventID {
			out = append(out, w)
		}
	}
	return out, nil
}

// CountByEvent counts windows of one event.
func (s *WindowRepositoryStub) CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx, eventID)
	}
	count := 0
	for _, w := range s.Windows {
		if w.EventID == eventID {
			count++
		}
	}
	return count, nil
}

// LocationRepositoryStub keeps pickup locations in-memory for tests.
type LocationRepositoryStub struct {
	CreateFn func(context.Context, *model.PickupLocation) (*model.PickupLocation, error)

	Locations []model.PickupLocation
}

// Create stores location or delegates to override.
func (s *LocationRepositoryStub) Create(ctx context.Context, location *model.PickupLocation) (*model.PickupLocation, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, location)
	}
	stored := *location
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	s.Locations = append(s.Locations, stored)
	return &stored, nil
}

// GetByID returns a stored location or not found.
func (s *LocationRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.PickupLocation, error) {
	for _, l := range s.Locations {
		if l.ID == id {
			location := l
			return &location, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByMerchant returns the merchant's locations.
func (s *LocationRepositoryStub) ListByMerchant(ctx context.Context, merchantID int64) ([]model.PickupLocation, error) {
	var out []model.PickupLocation
	for _, l := range s.Locations {
		if l.MerchantID == merchantID {
			out = append(out, l)
		}
	}
	return out, nil
}

// MenuItemRepositoryStub keeps menu items in-memory for tests.
type MenuItemRepositoryStub struct {
	CreateFn func(context.Context, *model.MenuItem) (*model.MenuItem, error)
	CountFn  func(context.Context, uuid.UUID) (int, error)

	Items   []model.MenuItem
	Deleted []uuid.UUID
}

// Create stores item or delegates to override.
func (s *MenuItemRepositoryStub) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, item)
	}
	stored := *item
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	s.Items = append(s.Items, stored)
	return &stored, nil
}

// GetByID returns a stored item or not found.
func (s *MenuItemRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	for _, item := range s.Items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete records removal.
func (s *MenuItemRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	s.Deleted = append(s.Deleted, id)
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ListByEvent returns items of one event.
func (s *MenuItemRepositoryStub) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.MenuItem, error) {
	var out []model.MenuItem
	for _, item := range s.Items {
		if item.EventID == eventID {
			out = append(out, item)
		}
	}
	return out, nil
}

// CountByEvent counts items of one event.
func (s *MenuItemRepositoryStub) CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx, eventID)
	}
	count := 0
	for _, item := range s.Items {
		if item.EventID == eventID {
			count++
		}
	}
	return count, nil
}

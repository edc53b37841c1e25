package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/ovenside/storefront/internal/domain/errors"
	"github.com/ovenside/storefront/internal/domain/model"
	"github.com/ovenside/storefront/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage uses; tests substitute a
// mock pool through it.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type merchantRepository struct {
	storage *Storage
}

type eventRepository struct {
	storage *Storage
}

type windowRepository struct {
	storage *Storage
}

type locationRepository struct {
	storage *Storage
}

type menuItemRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Merchants() repository.MerchantRepository {
	return &merchantRepository{storage: s}
}

func (s *Storage) Events() repository.EventRepository {
	return &eventRepository{storage: s}
}

func (s *Storage) Windows() repository.PickupWindowRepository {
	return &windowRepository{storage: s}
}

func (s *Storage) Locations() repository.LocationRepository {
	return &locationRepository{storage: s}
}

func (s *Storage) MenuItems() repository.MenuItemRepository {
	return &menuItemRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS merchants (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS pickup_locations (
            id UUID PRIMARY KEY,
            merchant_id BIGINT NOT NULL REFERENCES merchants(id),
            name TEXT NOT NULL,
            address TEXT NOT NULL DEFAULT '',
            tax_rate NUMERIC(7, 4) NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS events (
            id UUID PRIMARY KEY,
            merchant_id BIGINT NOT NULL REFERENCES merchants(id),
            title TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            open_date DATE NOT NULL,
            open_time TEXT NOT NULL,
            close_option TEXT NOT NULL,
            close_hours INT NOT NULL DEFAULT 0,
            close_minutes INT NOT NULL DEFAULT 0,
            close_specific TIMESTAMPTZ,
            status TEXT NOT NULL DEFAULT 'draft',
            walk_up BOOLEAN NOT NULL DEFAULT FALSE,
            walk_up_mode TEXT NOT NULL DEFAULT '',
            hide_open_time BOOLEAN NOT NULL DEFAULT FALSE,
            hide_from_storefront BOOLEAN NOT NULL DEFAULT FALSE,
            time_slot_minutes INT NOT NULL DEFAULT 0,
            close_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS pickup_windows (
            id UUID PRIMARY KEY,
            event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
            pickup_date DATE NOT NULL,
            start_time TEXT NOT NULL,
            end_time TEXT NOT NULL,
            location_id UUID NOT NULL REFERENCES pickup_locations(id),
            tz_label TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS menu_items (
            id UUID PRIMARY KEY,
            event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
            name TEXT NOT NULL,
            price_cents BIGINT NOT NULL DEFAULT 0,
            available BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_events_merchant ON events(merchant_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_windows_event ON pickup_windows(event_id, pickup_date, start_time)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_event ON menu_items(event_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- MerchantRepository implementation ---

func (r *merchantRepository) Create(ctx context.Context, login, passwordHash string) (*model.Merchant, error) {
	const query = `INSERT INTO merchants (login, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var m model.Merchant
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	m.Login = login
	m.PasswordHash = passwordHash
	return &m, nil
}

func (r *merchantRepository) GetByLogin(ctx context.Context, login string) (*model.Merchant, error) {
	const query = `SELECT id, login, password_hash, created_at FROM merchants WHERE login=$1`
	var m model.Merchant
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&m.ID, &m.Login, &m.PasswordHash, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *merchantRepository) GetByID(ctx context.Context, id int64) (*model.Merchant, error) {
	const query = `SELECT id, login, password_hash, created_at FROM merchants WHERE id=$1`
	var m model.Merchant
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&m.ID, &m.Login, &m.PasswordHash, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// --- EventRepository implementation ---

const eventColumns = `id, merchant_id, title, description, open_date, open_time,
       close_option, close_hours, close_minutes, close_specific,
       status, walk_up, walk_up_mode, hide_open_time, hide_from_storefront,
       time_slot_minutes, close_at, created_at, updated_at`

func policyColumns(p model.ClosePolicy) (option string, hours, minutes int, specific *time.Time) {
	option = string(p.Option())
	hours, minutes = p.Offset()
	if p.Option() == model.CloseSpecificTime {
		at := p.At()
		specific = &at
	}
	return option, hours, minutes, specific
}

func policyFromColumns(option string, hours, minutes int, specific *time.Time) (model.ClosePolicy, error) {
	switch model.CloseOption(option) {
	case model.CloseLastWindow:
		return model.CloseAtLastWindow(), nil
	case model.CloseTimeBefore:
		return model.CloseBeforeEachWindow(hours, minutes)
	case model.CloseSpecificTime:
		if specific == nil {
			return model.ClosePolicy{}, fmt.Errorf("specific-time policy without close_specific")
		}
		return model.CloseAtSpecificTime(*specific)
	default:
		return model.ClosePolicy{}, fmt.Errorf("unknown close option %q", option)
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*model.Event, error) {
	var (
		e             model.Event
		openTime      string
		closeOption   string
		closeHours    int
		closeMinutes  int
		closeSpecific *time.Time
		walkUpMode    string
	)
	err := row.Scan(&e.ID, &e.MerchantID, &e.Title, &e.Description, &e.OpenDate, &openTime,
		&closeOption, &closeHours, &closeMinutes, &closeSpecific,
		&e.Status, &e.WalkUpOrdering, &walkUpMode, &e.HideOpenTime, &e.HideFromStorefront,
		&e.TimeSlots, &e.CloseAt, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.WalkUpMode = model.WalkUpMode(walkUpMode)

	if e.OpenTime, err = model.ParseClock(openTime); err != nil {
		return nil, err
	}
	if e.ClosePolicy, err = policyFromColumns(closeOption, closeHours, closeMinutes, closeSpecific); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	const query = `INSERT INTO events (id, merchant_id, title, description, open_date, open_time,
                       close_option, close_hours, close_minutes, close_specific,
                       status, walk_up, walk_up_mode, hide_open_time, hide_from_storefront, time_slot_minutes)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
                   RETURNING created_at, updated_at`
	event.ID = uuid.New()
	option, hours, minutes, specific := policyColumns(event.ClosePolicy)
	err := r.storage.pool.QueryRow(ctx, query,
		event.ID, event.MerchantID, event.Title, event.Description, event.OpenDate, event.OpenTime.String(),
		option, hours, minutes, specific,
		event.Status, event.WalkUpOrdering, string(event.WalkUpMode), event.HideOpenTime, event.HideFromStorefront,
		int(event.TimeSlots),
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) Update(ctx context.Context, event *model.Event) (*model.Event, error) {
	const query = `UPDATE events SET title=$3, description=$4, open_date=$5, open_time=$6,
                       close_option=$7, close_hours=$8, close_minutes=$9, close_specific=$10,
                       walk_up=$11, walk_up_mode=$12, hide_open_time=$13, hide_from_storefront=$14,
                       time_slot_minutes=$15, updated_at=NOW()
                   WHERE id=$1 AND merchant_id=$2
                   RETURNING updated_at`
	option, hours, minutes, specific := policyColumns(event.ClosePolicy)
	err := r.storage.pool.QueryRow(ctx, query,
		event.ID, event.MerchantID, event.Title, event.Description, event.OpenDate, event.OpenTime.String(),
		option, hours, minutes, specific,
		event.WalkUpOrdering, string(event.WalkUpMode), event.HideOpenTime, event.HideFromStorefront,
		int(event.TimeSlots),
	).Scan(&event.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id=$1`
	event, err := scanEvent(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) ListByMerchant(ctx context.Context, merchantID int64) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE merchant_id=$1 ORDER BY created_at DESC`
	return r.storage.queryEvents(ctx, query, merchantID)
}

func (r *eventRepository) Publish(ctx context.Context, id uuid.UUID, merchantID int64, closeAt *time.Time) error {
	const query = `UPDATE events SET status=$3, close_at=$4, updated_at=NOW()
                   WHERE id=$1 AND merchant_id=$2 AND status=$5`
	tag, err := r.storage.pool.Exec(ctx, query, id, merchantID, model.EventStatusPublished, closeAt, model.EventStatusDraft)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrAlreadyPublished
	}
	return nil
}

func (r *eventRepository) UpdateCloseAt(ctx context.Context, id uuid.UUID, closeAt time.Time) error {
	const query = `UPDATE events SET close_at=$2, updated_at=NOW() WHERE id=$1`
	_, err := r.storage.pool.Exec(ctx, query, id, closeAt)
	return err
}

func (r *eventRepository) ListPublished(ctx context.Context, limit int) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE status='published' ORDER BY updated_at LIMIT $1`
	return r.storage.queryEvents(ctx, query, limit)
}

func (r *eventRepository) ListStorefront(ctx context.Context) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
              WHERE status='published' AND hide_from_storefront=FALSE
              ORDER BY open_date, open_time`
	return r.storage.queryEvents(ctx, query)
}

func (s *Storage) queryEvents(ctx context.Context, query string, args ...any) ([]model.Event, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- PickupWindowRepository implementation ---

const windowColumns = `id, event_id, pickup_date, start_time, end_time, location_id, tz_label, created_at, updated_at`

func scanWindow(row scanner) (*model.PickupWindow, error) {
	var (
		w          model.PickupWindow
		start, end string
	)
	err := row.Scan(&w.ID, &w.EventID, &w.Date, &start, &end, &w.LocationID, &w.TimeZoneLabel, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if w.Start, err = model.ParseClock(start); err != nil {
		return nil, err
	}
	if w.End, err = model.ParseClock(end); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *windowRepository) Create(ctx context.Context, window *model.PickupWindow) (*model.PickupWindow, error) {
	window.ID = uuid.New()
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO pickup_windows (id, event_id, pickup_date, start_time, end_time, location_id, tz_label)
                        VALUES ($1, $2, $3, $4, $5, $6, $7)
                        RETURNING created_at, updated_at`
		err := tx.QueryRow(ctx, insert,
			window.ID, window.EventID, window.Date, window.Start.String(), window.End.String(),
			window.LocationID, window.TimeZoneLabel,
		).Scan(&window.CreatedAt, &window.UpdatedAt)
		if err != nil {
			return err
		}
		// Window edits happen outside the event's own save cycle; touch the
		// parent so reconciliation picks it up.
		_, err = tx.Exec(ctx, `UPDATE events SET updated_at=NOW() WHERE id=$1`, window.EventID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return window, nil
}

func (r *windowRepository) Update(ctx context.Context, window *model.PickupWindow) (*model.PickupWindow, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const update = `UPDATE pickup_windows SET pickup_date=$2, start_time=$3, end_time=$4, location_id=$5, tz_label=$6, updated_at=NOW()
                        WHERE id=$1
                        RETURNING updated_at`
		err := tx.QueryRow(ctx, update,
			window.ID, window.Date, window.Start.String(), window.End.String(),
			window.LocationID, window.TimeZoneLabel,
		).Scan(&window.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE events SET updated_at=NOW() WHERE id=$1`, window.EventID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return window, nil
}

func (r *windowRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var eventID uuid.UUID
		err := tx.QueryRow(ctx, `DELETE FROM pickup_windows WHERE id=$1 RETURNING event_id`, id).Scan(&eventID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE events SET updated_at=NOW() WHERE id=$1`, eventID)
		return err
	})
}

func (r *windowRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.PickupWindow, error) {
	query := `SELECT ` + windowColumns + ` FROM pickup_windows WHERE id=$1`
	window, err := scanWindow(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return window, nil
}

func (r *windowRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.PickupWindow, error) {
	query := `SELECT ` + windowColumns + ` FROM pickup_windows WHERE event_id=$1 ORDER BY pickup_date, start_time`
	rows, err := r.storage.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PickupWindow
	for rows.Next() {
		window, err := scanWindow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *window)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *windowRepository) CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	var count int
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM pickup_windows WHERE event_id=$1`, eventID).Scan(&count)
	return count, err
}

// --- LocationRepository implementation ---

func (r *locationRepository) Create(ctx context.Context, location *model.PickupLocation) (*model.PickupLocation, error) {
	const query = `INSERT INTO pickup_locations (id, merchant_id, name, address, tax_rate)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING created_at`
	location.ID = uuid.New()
	err := r.storage.pool.QueryRow(ctx, query,
		location.ID, location.MerchantID, location.Name, location.Address, location.TaxRate,
	).Scan(&location.CreatedAt)
	if err != nil {
		return nil, err
	}
	return location, nil
}

func (r *locationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.PickupLocation, error) {
	const query = `SELECT id, merchant_id, name, address, tax_rate, created_at FROM pickup_locations WHERE id=$1`
	var l model.PickupLocation
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&l.ID, &l.MerchantID, &l.Name, &l.Address, &l.TaxRate, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *locationRepository) ListByMerchant(ctx context.Context, merchantID int64) ([]model.PickupLocation, error) {
	const query = `SELECT id, merchant_id, name, address, tax_rate, created_at
                   FROM pickup_locations WHERE merchant_id=$1 ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query, merchantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PickupLocation
	for rows.Next() {
		var l model.PickupLocation
		if err := rows.Scan(&l.ID, &l.MerchantID, &l.Name, &l.Address, &l.TaxRate, &l.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- MenuItemRepository implementation ---

func (r *menuItemRepository) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	const query = `INSERT INTO menu_items (id, event_id, name, price_cents, available)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING created_at`
	item.ID = uuid.New()
	err := r.storage.pool.QueryRow(ctx, query,
		item.ID, item.EventID, item.Name, item.PriceCents, item.Available,
	).Scan(&item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *menuItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	const query = `SELECT id, event_id, name, price_cents, available, created_at FROM menu_items WHERE id=$1`
	var item model.MenuItem
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&item.ID, &item.EventID, &item.Name, &item.PriceCents, &item.Available, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *menuItemRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.MenuItem, error) {
	const query = `SELECT id, event_id, name, price_cents, available, created_at
                   FROM menu_items WHERE event_id=$1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		if err := rows.Scan(&item.ID, &item.EventID, &item.Name, &item.PriceCents, &item.Available, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *menuItemRepository) CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	var count int
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items WHERE event_id=$1`, eventID).Scan(&count)
	return count, err
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

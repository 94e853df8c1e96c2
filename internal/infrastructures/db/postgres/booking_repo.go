package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	derr "github.com/ozzus/hotel-booking/internal/domain/errors"
	"github.com/ozzus/hotel-booking/internal/domain/models"
	"github.com/ozzus/hotel-booking/internal/infrastructures/db/model"
)

const currentSlot = 1

var bookingColumns = []string{
	"id",
	"name",
	"email",
	"check_in",
	"check_out",
	"room_type",
	"guests",
	"special_requests",
	"total_cost",
	"created_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// pool is the subset of *pgxpool.Pool the repository uses.
type pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

type Repository struct {
	db pool
}

func New(ctx context.Context, dsn string) (*Repository, error) {
	poolCfg, err := buildPoolConfig(dsn)
	if err != nil {
		return nil, err
	}

	pgxPool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pgxPool.Ping(ctx); err != nil {
		pgxPool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err := migrate(ctx, pgxPool); err != nil {
		pgxPool.Close()
		return nil, err
	}

	return &Repository{db: pgxPool}, nil
}

func buildPoolConfig(dsn string) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx pool config: %w", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.StatementCacheCapacity = 0
	poolCfg.ConnConfig.DescriptionCacheCapacity = 0

	return poolCfg, nil
}

func (r *Repository) Close() {
	r.db.Close()
}

func (r *Repository) SaveCurrent(ctx context.Context, booking models.Booking) error {
	query, args, err := saveCurrentQuery(booking)
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert current booking: %w", err)
	}

	return nil
}

func (r *Repository) AppendToAll(ctx context.Context, booking models.Booking) error {
	query, args, err := appendBookingQuery(booking)
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

// Record inserts the booking into the history and sets it as current in one
// transaction.
func (r *Repository) Record(ctx context.Context, booking models.Booking) error {
	appendSQL, appendArgs, err := appendBookingQuery(booking)
	if err != nil {
		return err
	}
	currentSQL, currentArgs, err := saveCurrentQuery(booking)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin record booking: %w", err)
	}

	if _, err := tx.Exec(ctx, appendSQL, appendArgs...); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("insert booking: %w", err)
	}
	if _, err := tx.Exec(ctx, currentSQL, currentArgs...); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("upsert current booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit record booking: %w", err)
	}

	return nil
}

func (r *Repository) LoadAll(ctx context.Context) ([]models.Booking, error) {
	query, args, err := listBookingsQuery()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0, 16)
	for rows.Next() {
		var record model.BookingRecord
		if err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.Email,
			&record.CheckIn,
			&record.CheckOut,
			&record.RoomType,
			&record.Guests,
			&record.SpecialRequests,
			&record.TotalCost,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, record.ToBooking())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}

func (r *Repository) LoadCurrent(ctx context.Context) (models.Booking, error) {
	query, args, err := loadCurrentQuery()
	if err != nil {
		return models.Booking{}, err
	}

	var payload string
	if err := r.db.QueryRow(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Booking{}, derr.ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("query current booking: %w", err)
	}

	var record model.BookingRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return models.Booking{}, fmt.Errorf("decode current booking: %w", err)
	}

	return record.ToBooking(), nil
}

func (r *Repository) ClearCurrent(ctx context.Context) error {
	query, args, err := clearCurrentQuery()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete current booking: %w", err)
	}

	return nil
}

func saveCurrentQuery(booking models.Booking) (string, []any, error) {
	payload, err := json.Marshal(model.FromBooking(booking))
	if err != nil {
		return "", nil, fmt.Errorf("marshal current booking: %w", err)
	}

	// jsonb goes over the simple protocol as text.
	query, args, err := psql.Insert("current_booking").
		Columns("slot", "payload", "updated_at").
		Values(currentSlot, string(payload), squirrel.Expr("now()")).
		Suffix("ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build upsert current booking query: %w", err)
	}

	return query, args, nil
}

func appendBookingQuery(booking models.Booking) (string, []any, error) {
	record := model.FromBooking(booking)

	query, args, err := psql.Insert("bookings").
		Columns(bookingColumns...).
		Values(
			record.ID,
			record.Name,
			record.Email,
			record.CheckIn,
			record.CheckOut,
			record.RoomType,
			record.Guests,
			record.SpecialRequests,
			record.TotalCost,
			record.CreatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build insert booking query: %w", err)
	}

	return query, args, nil
}

func listBookingsQuery() (string, []any, error) {
	query, args, err := psql.Select(bookingColumns...).
		From("bookings").
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build list bookings query: %w", err)
	}

	return query, args, nil
}

func loadCurrentQuery() (string, []any, error) {
	query, args, err := psql.Select("payload::text").
		From("current_booking").
		Where(squirrel.Eq{"slot": currentSlot}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build load current booking query: %w", err)
	}

	return query, args, nil
}

func clearCurrentQuery() (string, []any, error) {
	query, args, err := psql.Delete("current_booking").
		Where(squirrel.Eq{"slot": currentSlot}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build clear current booking query: %w", err)
	}

	return query, args, nil
}

package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/tablebook/reservation-api/internal/model"
)

// BookingRepo provides CRUD operations for bookings. A booking row holds
// the table assignment, the customer contact fields and the reserved
// interval. All timestamp columns are stored in UTC; the date column is the
// calendar date of starts_at and exists so day-scoped conflict reads hit an
// index instead of a range scan over starts_at.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, venue_id, table_id, customer_email, family_name, given_name, people, date, starts_at, ends_at, duration`

// filterClause renders the conjunctive filter into a WHERE clause and its
// arguments. An empty filter produces no clause at all.
func filterClause(filter model.BookingsFilter) (string, []interface{}) {
	conds := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)
	if filter.VenueID != nil {
		conds = append(conds, "venue_id = ?")
		args = append(args, *filter.VenueID)
	}
	if filter.Date != nil {
		conds = append(conds, "date = ?")
		args = append(args, *filter.Date)
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// GetBookings returns bookings matching the filter ordered ascending by
// start time. When limit is positive the query is paginated with the given
// row offset; otherwise every matching row is returned.
func (r *BookingRepo) GetBookings(ctx context.Context, filter model.BookingsFilter, offset, limit int) ([]model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	where, args := filterClause(filter)
	query += where + ` ORDER BY starts_at ASC`
	if limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CountBookings returns the number of stored bookings matching the filter.
func (r *BookingRepo) CountBookings(ctx context.Context, filter model.BookingsFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`
	where, args := filterClause(filter)
	var count int64
	if err := r.db.QueryRowContext(ctx, query+where, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CreateBooking inserts a confirmed booking. The identifier is minted by
// the caller; the row is written exactly as given.
func (r *BookingRepo) CreateBooking(ctx context.Context, b model.Booking) error {
	const q = `INSERT INTO bookings (` + bookingColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		b.ID, b.VenueID, b.TableID, b.Email, b.FamilyName, b.GivenName,
		b.People, b.Date, b.StartsAt.UTC(), b.EndsAt.UTC(), b.Duration,
	)
	return err
}

// DeleteBooking removes a booking and returns the prior record. The read
// and the delete run in a single transaction so a concurrent cancel of the
// same id cannot observe the row and then fail to remove it. Returns
// ErrBookingNotFound when no row matches.
func (r *BookingRepo) DeleteBooking(ctx context.Context, id string) (*model.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const sel = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	b, err := scanBooking(tx.QueryRowContext(ctx, sel, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrBookingNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return b, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows so one scan routine serves
// both single-row and multi-row queries.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*model.Booking, error) {
	var b model.Booking
	var date time.Time
	if err := row.Scan(
		&b.ID, &b.VenueID, &b.TableID, &b.Email, &b.FamilyName, &b.GivenName,
		&b.People, &date, &b.StartsAt, &b.EndsAt, &b.Duration,
	); err != nil {
		return nil, err
	}
	b.Date = date.UTC().Format(model.DateFormat)
	b.StartsAt = b.StartsAt.UTC()
	b.EndsAt = b.EndsAt.UTC()
	return &b, nil
}

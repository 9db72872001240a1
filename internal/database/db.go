package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the bookings table when it does not exist. The date
// column is indexed together with venue_id because every availability check
// reads one venue-day of bookings.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const ddl = `CREATE TABLE IF NOT EXISTS bookings (
		id             CHAR(36)     NOT NULL,
		venue_id       CHAR(36)     NOT NULL,
		table_id       CHAR(36)     NOT NULL,
		customer_email VARCHAR(255) NOT NULL,
		family_name    VARCHAR(255) NOT NULL DEFAULT '',
		given_name     VARCHAR(255) NOT NULL DEFAULT '',
		people         INT          NOT NULL,
		date           DATE         NOT NULL,
		starts_at      DATETIME     NOT NULL,
		ends_at        DATETIME     NOT NULL,
		duration       INT          NOT NULL,
		PRIMARY KEY (id),
		KEY idx_bookings_venue_date (venue_id, date),
		KEY idx_bookings_starts_at (starts_at)
	)`
	_, err := db.ExecContext(ctx, ddl)
	return err
}

// Package archive keeps downloaded statements in a local SQLite database.
//
// The Flex Web Service only serves statements for a rolling window, so
// anything not stored at download time is gone. The archive stores the raw
// bytes untouched; reparsing an archived statement with a newer schema is
// always possible.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
)

// Entry is one archived statement. Raw is the exact byte stream as
// downloaded; the remaining fields are denormalized for listing.
type Entry struct {
	ID         string
	QueryID    string
	AccountID  string
	FromDate   string
	ToDate     string
	Downloaded time.Time
	Raw        []byte
}

type Archive struct {
	db *sql.DB
}

func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &Archive{db: db}, nil
}

// Store saves a statement and returns its assigned ID. IDs are ULIDs, so
// lexical order is download order.
func (a *Archive) Store(ctx context.Context, e Entry) (string, error) {
	if e.ID == "" {
		e.ID = ulid.Make().String()
	}
	if e.Downloaded.IsZero() {
		e.Downloaded = time.Now().UTC()
	}
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO statements
		(id, query_id, account_id, from_date, to_date, downloaded, raw)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.QueryID, e.AccountID, e.FromDate, e.ToDate, e.Downloaded, e.Raw,
	)
	if err != nil {
		return "", err
	}
	return e.ID, nil
}

// Get returns a single archived statement by ID, raw bytes included.
func (a *Archive) Get(ctx context.Context, id string) (Entry, error) {
	var e Entry

	row := a.db.QueryRowContext(ctx, `
		SELECT id, query_id, account_id, from_date, to_date, downloaded, raw
		FROM statements
		WHERE id = ?`, id)

	err := row.Scan(
		&e.ID,
		&e.QueryID,
		&e.AccountID,
		&e.FromDate,
		&e.ToDate,
		&e.Downloaded,
		&e.Raw,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return Entry{}, fmt.Errorf("statement %q not found", id)
		}
		return Entry{}, err
	}
	return e, nil
}

// List returns all archived statements in download order, without the raw
// bytes.
func (a *Archive) List(ctx context.Context) ([]Entry, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, query_id, account_id, from_date, to_date, downloaded
		FROM statements
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID,
			&e.QueryID,
			&e.AccountID,
			&e.FromDate,
			&e.ToDate,
			&e.Downloaded,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

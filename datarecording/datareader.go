package datarecording

import (
	"context"
	"database/sql"
	"fmt"
)

// FeedbackReader reads recorded feedback back from a session database.
type FeedbackReader struct {
	*sql.DB
}

// NewFeedbackReader opens the given database file.
func NewFeedbackReader(dbFilename string) (*FeedbackReader, error) {
	db, err := sql.Open("sqlite3", dbFilename)
	if err != nil {
		return nil, err
	}

	return &FeedbackReader{DB: db}, nil
}

// NewFeedbackReaderWithDB creates a FeedbackReader on an open database.
func NewFeedbackReaderWithDB(db *sql.DB) *FeedbackReader {
	return &FeedbackReader{DB: db}
}

// Entries returns recorded feedback in insertion order. An empty container
// name returns the feedback of every container. A limit of 0 means no limit.
func (r *FeedbackReader) Entries(
	ctx context.Context,
	container string,
	limit int,
) ([]FeedbackEntry, error) {
	query := "SELECT ID, Time, Container, Command, Kind, Value, HasValue, " +
		"Message, Size, Capacity FROM " + FeedbackTable
	args := []any{}

	if container != "" {
		query += " WHERE Container = ?"
		args = append(args, container)
	}

	query += " ORDER BY rowid"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []FeedbackEntry

	for rows.Next() {
		var e FeedbackEntry

		err := rows.Scan(&e.ID, &e.Time, &e.Container, &e.Command, &e.Kind,
			&e.Value, &e.HasValue, &e.Message, &e.Size, &e.Capacity)
		if err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

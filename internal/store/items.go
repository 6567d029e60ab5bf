package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/erazemk/lostfound/internal/model"
)

// ErrInvalidStatus is returned for an item status other than active or claimed.
var ErrInvalidStatus = errors.New("invalid item status")

const itemColumns = `id, name, icon_class, location, date, status, description, admin_details, created_at`

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// CreateItem stores a new item and returns it as persisted. ID and CreatedAt
// are always assigned here; empty IconClass and Status get their defaults.
func CreateItem(ctx context.Context, db *sql.DB, item model.Item) (*model.Item, error) {
	if item.IconClass == "" {
		item.IconClass = model.DefaultIconClass
	}
	if item.Status == "" {
		item.Status = model.ItemStatusActive
	}
	if !model.ValidItemStatus(item.Status) {
		return nil, fmt.Errorf("creating item: %w: %q", ErrInvalidStatus, item.Status)
	}

	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO items (id, name, icon_class, location, date, status, description, admin_details)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, item.Name, item.IconClass, item.Location, item.Date, item.Status,
		nullString(item.Description), nullString(item.AdminDetails),
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, or nil if it does not exist.
func GetItem(ctx context.Context, db *sql.DB, id string) (*model.Item, error) {
	item, err := scanItem(db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns all items, newest first.
func ListItems(ctx context.Context, db *sql.DB) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// UpdateItemStatus sets an item's status. Unknown IDs are a no-op.
func UpdateItemStatus(ctx context.Context, db *sql.DB, id, status string) error {
	if !model.ValidItemStatus(status) {
		return fmt.Errorf("updating item status: %w: %q", ErrInvalidStatus, status)
	}

	_, err := db.ExecContext(ctx,
		`UPDATE items SET status = ? WHERE id = ?`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("updating item status: %w", err)
	}
	return nil
}

// DeleteItem removes an item together with every reservation that references
// it. Both deletes commit or roll back together. Unknown IDs are a no-op.
func DeleteItem(ctx context.Context, db *sql.DB, id string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	if err := deleteReservationsByItem(ctx, tx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing item delete: %w", err)
	}
	return nil
}

func scanItem(row rowScanner) (*model.Item, error) {
	item := &model.Item{}
	var description, adminDetails sql.NullString
	err := row.Scan(&item.ID, &item.Name, &item.IconClass, &item.Location, &item.Date,
		&item.Status, &description, &adminDetails, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	item.Description = description.String
	item.AdminDetails = adminDetails.String
	return item, nil
}

// nullString stores empty optional text as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

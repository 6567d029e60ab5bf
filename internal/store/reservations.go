package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/erazemk/lostfound/internal/model"
)

const reservationColumns = `id, item_id, item_name, full_name, user_type, contact_info, comment, status, date`

// CreateReservation stores a claim request. The reservation always starts out
// pending; ID and Date are assigned here.
func CreateReservation(ctx context.Context, db *sql.DB, r model.Reservation) (*model.Reservation, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO reservations (id, item_id, item_name, full_name, user_type, contact_info, comment, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, r.ItemID, nullString(r.ItemName), r.FullName, nullString(r.UserType),
		r.ContactInfo, nullString(r.Comment), model.ReservationStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("creating reservation: %w", err)
	}

	res, err := scanReservation(db.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = ?`, id,
	))
	if err != nil {
		return nil, fmt.Errorf("getting reservation: %w", err)
	}
	return res, nil
}

// ListReservations returns all reservations, newest first.
func ListReservations(ctx context.Context, db *sql.DB) ([]model.Reservation, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations ORDER BY date DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing reservations: %w", err)
	}
	defer rows.Close()

	var list []model.Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning reservation: %w", err)
		}
		list = append(list, *r)
	}
	return list, rows.Err()
}

// DeleteReservationsByItem removes every reservation that references itemID.
func DeleteReservationsByItem(ctx context.Context, db *sql.DB, itemID string) error {
	return deleteReservationsByItem(ctx, db, itemID)
}

func deleteReservationsByItem(ctx context.Context, ex execer, itemID string) error {
	if _, err := ex.ExecContext(ctx, `DELETE FROM reservations WHERE item_id = ?`, itemID); err != nil {
		return fmt.Errorf("deleting reservations for item: %w", err)
	}
	return nil
}

func scanReservation(row rowScanner) (*model.Reservation, error) {
	r := &model.Reservation{}
	var itemName, userType, comment sql.NullString
	err := row.Scan(&r.ID, &r.ItemID, &itemName, &r.FullName, &userType,
		&r.ContactInfo, &comment, &r.Status, &r.Date)
	if err != nil {
		return nil, err
	}
	r.ItemName = itemName.String
	r.UserType = userType.String
	r.Comment = comment.String
	return r, nil
}

package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"bptracker/internal/domain"
)

// Readings persists Reading rows in the blood_pressure_readings table.
type Readings struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Readings { return &Readings{db: db} }

// Insert stores the reading and fills in the generated id.
func (r *Readings) Insert(rd *domain.Reading) error {
	return r.db.QueryRow(
		`INSERT INTO blood_pressure_readings(systolic, diastolic, heart_rate, timestamp, note)
		 VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		rd.Systolic, rd.Diastolic, rd.HeartRate, rd.Timestamp, rd.Note,
	).Scan(&rd.ID)
}

// List returns readings ordered by timestamp descending.
func (r *Readings) List(skip, limit int) ([]domain.Reading, error) {
	out := []domain.Reading{}
	err := r.db.Select(&out,
		`SELECT id, systolic, diastolic, heart_rate, timestamp, note
		 FROM blood_pressure_readings
		 ORDER BY timestamp DESC OFFSET $1 LIMIT $2`,
		skip, limit)
	return out, err
}

func (r *Readings) Get(id int64) (*domain.Reading, error) {
	var rd domain.Reading
	err := r.db.Get(&rd,
		`SELECT id, systolic, diastolic, heart_rate, timestamp, note
		 FROM blood_pressure_readings WHERE id = $1`,
		id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rd, nil
}

func (r *Readings) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM blood_pressure_readings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll removes every reading and reports how many were removed.
func (r *Readings) DeleteAll() (int64, error) {
	res, err := r.db.Exec(`DELETE FROM blood_pressure_readings`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

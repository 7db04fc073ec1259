package database

import (
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"bptracker/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS blood_pressure_readings (
	id         SERIAL PRIMARY KEY,
	systolic   INTEGER NOT NULL,
	diastolic  INTEGER NOT NULL,
	heart_rate INTEGER NOT NULL,
	timestamp  TIMESTAMPTZ NOT NULL,
	note       TEXT
)`

func Connect() (*sqlx.DB, error) {
	return sqlx.Connect("pgx", config.DSN())
}

// EnsureSchema creates the readings table if it does not exist. This is
// the only migration the service performs.
func EnsureSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}

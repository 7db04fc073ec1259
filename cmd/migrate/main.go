package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"bptracker/internal/config"
	"bptracker/internal/database"
)

// sqliteReading mirrors a row as the old SQLite database stored it:
// timestamps are ISO-8601 text.
type sqliteReading struct {
	ID        int64   `db:"id"`
	Systolic  int     `db:"systolic"`
	Diastolic int     `db:"diastolic"`
	HeartRate int     `db:"heart_rate"`
	Timestamp string  `db:"timestamp"`
	Note      *string `db:"note"`
}

func main() {
	src := flag.String("sqlite", "bptracker.db", "path to the source SQLite database")
	flag.Parse()

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	if _, err := os.Stat(*src); err != nil {
		log.Fatal().Str("path", *src).Msg("SQLite database not found")
	}

	lite, err := sqlx.Connect("sqlite3", *src)
	if err != nil {
		log.Fatal().Err(err).Msg("sqlite open failed")
	}
	defer lite.Close()

	pg, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer pg.Close()

	if err := database.EnsureSchema(pg); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	var rows []sqliteReading
	if err := lite.Select(&rows,
		`SELECT id, systolic, diastolic, heart_rate, timestamp, note FROM blood_pressure_readings`); err != nil {
		log.Fatal().Err(err).Msg("sqlite read failed")
	}
	log.Info().Int("count", len(rows)).Msg("readings found in SQLite")

	if err := copyReadings(pg, rows); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Int("count", len(rows)).Msg("migration complete")
}

// copyReadings inserts all rows in one transaction, preserving ids, and
// moves the id sequence past the highest copied id.
func copyReadings(pg *sqlx.DB, rows []sqliteReading) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := pg.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, row := range rows {
		ts, err := parseTimestamp(row.Timestamp)
		if err != nil {
			return fmt.Errorf("reading %d: %w", row.ID, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO blood_pressure_readings(id, systolic, diastolic, heart_rate, timestamp, note)
			 VALUES ($1,$2,$3,$4,$5,$6)`,
			row.ID, row.Systolic, row.Diastolic, row.HeartRate, ts, row.Note); err != nil {
			return fmt.Errorf("reading %d: %w", row.ID, err)
		}
	}

	if _, err := tx.Exec(
		`SELECT setval('blood_pressure_readings_id_seq', (SELECT MAX(id) FROM blood_pressure_readings))`); err != nil {
		return fmt.Errorf("sequence reset: %w", err)
	}
	return tx.Commit()
}

func parseTimestamp(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"bptracker/internal/config"
	"bptracker/internal/database"
	"bptracker/internal/domain"
	"bptracker/internal/repository"
)

var notes = []string{"", "morning", "evening", "after coffee", "post workout"}

func main() {
	count := flag.Int("count", 100, "number of readings to insert")
	flag.Parse()

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	repo := repository.New(db)
	for i := 0; i < *count; i++ {
		rd := &domain.Reading{
			Systolic:  100 + rand.Intn(50),
			Diastolic: 60 + rand.Intn(35),
			HeartRate: 55 + rand.Intn(45),
			Timestamp: time.Now().UTC().Add(-time.Duration(i) * 8 * time.Hour),
		}
		if n := notes[rand.Intn(len(notes))]; n != "" {
			rd.Note = &n
		}
		if err := repo.Insert(rd); err != nil {
			log.Fatal().Err(err).Msg("insert failed")
		}
	}
	log.Info().Int("count", *count).Msg("seed done")
}

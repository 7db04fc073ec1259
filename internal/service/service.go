package service

import (
	"time"

	"github.com/rs/zerolog/log"

	"bptracker/internal/domain"
)

// ReadingStore is the persistence surface the service needs.
type ReadingStore interface {
	Insert(*domain.Reading) error
	List(skip, limit int) ([]domain.Reading, error)
	Get(id int64) (*domain.Reading, error)
	Delete(id int64) error
	DeleteAll() (int64, error)
}

// Readings validates and shapes requests before they reach the store.
type Readings struct {
	store ReadingStore
	now   func() time.Time
}

func New(store ReadingStore) *Readings {
	return &Readings{store: store, now: time.Now}
}

// Create validates the payload, defaults the timestamp to the current
// time when absent, and persists the reading. Nothing is written when
// validation fails.
func (s *Readings) Create(in domain.NewReading) (*domain.Reading, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	ts := s.now().UTC()
	if in.Timestamp != nil {
		ts = *in.Timestamp
	}
	rd := &domain.Reading{
		Systolic:  in.Systolic,
		Diastolic: in.Diastolic,
		HeartRate: in.HeartRate,
		Timestamp: ts,
		Note:      in.Note,
	}
	if err := s.store.Insert(rd); err != nil {
		return nil, err
	}
	return rd, nil
}

func (s *Readings) List(skip, limit int) ([]domain.Reading, error) {
	var errs domain.ValidationErrors
	if skip < 0 {
		errs = append(errs, domain.FieldError{Field: "skip", Message: "must be greater than or equal to 0"})
	}
	if limit < 1 || limit > 100 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 100"})
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return s.store.List(skip, limit)
}

func (s *Readings) Get(id int64) (*domain.Reading, error) { return s.store.Get(id) }

func (s *Readings) Delete(id int64) error { return s.store.Delete(id) }

// DeleteAll removes every reading. There is no confirmation step and no
// way back; the call is logged so bulk wipes are visible in the process
// log.
func (s *Readings) DeleteAll() (int64, error) {
	n, err := s.store.DeleteAll()
	if err != nil {
		return 0, err
	}
	log.Warn().Int64("removed", n).Msg("deleted all readings")
	return n, nil
}

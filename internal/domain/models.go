package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when no reading exists for a requested id.
var ErrNotFound = errors.New("reading not found")

// Reading is one blood pressure measurement.
type Reading struct {
	ID        int64     `db:"id" json:"id"`
	Systolic  int       `db:"systolic" json:"systolic"`
	Diastolic int       `db:"diastolic" json:"diastolic"`
	HeartRate int       `db:"heart_rate" json:"heart_rate"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
	Note      *string   `db:"note" json:"note"`
}

// NewReading is the create payload. Timestamp is optional; the service
// fills in the current time when it is absent.
type NewReading struct {
	Systolic  int        `json:"systolic"`
	Diastolic int        `json:"diastolic"`
	HeartRate int        `json:"heart_rate"`
	Timestamp *time.Time `json:"timestamp"`
	Note      *string    `json:"note"`
}

// Vital sign bounds in mmHg / BPM, inclusive.
const (
	SystolicMin  = 40
	SystolicMax  = 300
	DiastolicMin = 20
	DiastolicMax = 200
	HeartRateMin = 20
	HeartRateMax = 250
)

// FieldError describes a single violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Validate range-checks the vital signs. Every violation is reported,
// not just the first.
func (r NewReading) Validate() error {
	var errs ValidationErrors
	if r.Systolic < SystolicMin || r.Systolic > SystolicMax {
		errs = append(errs, rangeError("systolic", SystolicMin, SystolicMax))
	}
	if r.Diastolic < DiastolicMin || r.Diastolic > DiastolicMax {
		errs = append(errs, rangeError("diastolic", DiastolicMin, DiastolicMax))
	}
	if r.HeartRate < HeartRateMin || r.HeartRate > HeartRateMax {
		errs = append(errs, rangeError("heart_rate", HeartRateMin, HeartRateMax))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func rangeError(field string, min, max int) FieldError {
	return FieldError{Field: field, Message: fmt.Sprintf("must be between %d and %d", min, max)}
}

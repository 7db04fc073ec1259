package service

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bptracker/internal/domain"
)

// fakeStore keeps readings in memory and mimics the repository's
// ordering and not-found behavior.
type fakeStore struct {
	readings []domain.Reading
	nextID   int64
	inserts  int
	failWith error
}

func (f *fakeStore) Insert(rd *domain.Reading) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.nextID++
	rd.ID = f.nextID
	f.readings = append(f.readings, *rd)
	f.inserts++
	return nil
}

func (f *fakeStore) List(skip, limit int) ([]domain.Reading, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]domain.Reading, len(f.readings))
	copy(out, f.readings)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if skip >= len(out) {
		return []domain.Reading{}, nil
	}
	out = out[skip:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) Get(id int64) (*domain.Reading, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, rd := range f.readings {
		if rd.ID == id {
			rd := rd
			return &rd, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeStore) Delete(id int64) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, rd := range f.readings {
		if rd.ID == id {
			f.readings = append(f.readings[:i], f.readings[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeStore) DeleteAll() (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	n := int64(len(f.readings))
	f.readings = nil
	return n, nil
}

func TestCreate_DefaultsTimestamp(t *testing.T) {
	store := &fakeStore{}
	now := time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC)
	svc := &Readings{store: store, now: func() time.Time { return now }}

	rd, err := svc.Create(domain.NewReading{Systolic: 250, Diastolic: 150, HeartRate: 90})

	require.NoError(t, err)
	assert.Equal(t, now, rd.Timestamp)
	assert.Equal(t, int64(1), rd.ID)
}

func TestCreate_KeepsSubmittedFields(t *testing.T) {
	store := &fakeStore{}
	svc := New(store)

	ts := time.Date(2025, 2, 14, 7, 0, 0, 0, time.UTC)
	note := "before breakfast"
	rd, err := svc.Create(domain.NewReading{
		Systolic: 118, Diastolic: 76, HeartRate: 58,
		Timestamp: &ts, Note: &note,
	})

	require.NoError(t, err)
	assert.Equal(t, 118, rd.Systolic)
	assert.Equal(t, 76, rd.Diastolic)
	assert.Equal(t, 58, rd.HeartRate)
	assert.Equal(t, ts, rd.Timestamp)
	require.NotNil(t, rd.Note)
	assert.Equal(t, note, *rd.Note)
}

func TestCreate_AssignsUniqueIDs(t *testing.T) {
	store := &fakeStore{}
	svc := New(store)

	first, err := svc.Create(domain.NewReading{Systolic: 120, Diastolic: 80, HeartRate: 60})
	require.NoError(t, err)
	second, err := svc.Create(domain.NewReading{Systolic: 121, Diastolic: 81, HeartRate: 61})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreate_ValidationBlocksWrite(t *testing.T) {
	store := &fakeStore{}
	svc := New(store)

	_, err := svc.Create(domain.NewReading{Systolic: 301, Diastolic: 80, HeartRate: 60})

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "systolic", verrs[0].Field)
	assert.Equal(t, 0, store.inserts)
}

func TestList_ValidatesParams(t *testing.T) {
	store := &fakeStore{}
	svc := New(store)

	_, err := svc.List(-1, 0)

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 2)
	assert.Equal(t, "skip", verrs[0].Field)
	assert.Equal(t, "limit", verrs[1].Field)

	_, err = svc.List(0, 101)
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "limit", verrs[0].Field)
}

func TestList_SkipAndLimit(t *testing.T) {
	store := &fakeStore{}
	svc := New(store)

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		ts := base.Add(time.Duration(i) * time.Hour)
		_, err := svc.Create(domain.NewReading{Systolic: 120, Diastolic: 80, HeartRate: 60, Timestamp: &ts})
		require.NoError(t, err)
	}

	readings, err := svc.List(1, 2)

	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.Equal(t, base.Add(3*time.Hour), readings[0].Timestamp)
	assert.Equal(t, base.Add(2*time.Hour), readings[1].Timestamp)
}

func TestGetDelete_NotFoundPassthrough(t *testing.T) {
	store := &fakeStore{}
	svc := New(store)

	_, err := svc.Get(42)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(42), domain.ErrNotFound)
	// idempotent from the caller's view: still not-found, not a failure
	assert.ErrorIs(t, svc.Delete(42), domain.ErrNotFound)
}

func TestDeleteAll_ReportsCount(t *testing.T) {
	store := &fakeStore{}
	svc := New(store)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(domain.NewReading{Systolic: 120, Diastolic: 80, HeartRate: 60})
		require.NoError(t, err)
	}

	n, err := svc.DeleteAll()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	readings, err := svc.List(0, 100)
	require.NoError(t, err)
	assert.Empty(t, readings)
}

func TestStoreErrorsPropagate(t *testing.T) {
	boom := errors.New("db unreachable")
	svc := New(&fakeStore{failWith: boom})

	_, err := svc.Create(domain.NewReading{Systolic: 120, Diastolic: 80, HeartRate: 60})
	assert.ErrorIs(t, err, boom)

	_, err = svc.List(0, 100)
	assert.ErrorIs(t, err, boom)

	_, err = svc.DeleteAll()
	assert.ErrorIs(t, err, boom)
}

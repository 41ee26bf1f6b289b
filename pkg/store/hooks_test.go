package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeRecorder struct {
	loads   []bool
	saves   []int
	deletes []error
	backend string
}

func (r *storeRecorder) OnLoad(_ context.Context, backend string, hit bool, _ time.Duration) {
	r.backend = backend
	r.loads = append(r.loads, hit)
}

func (r *storeRecorder) OnSave(_ context.Context, backend string, size int, _ time.Duration, _ error) {
	r.backend = backend
	r.saves = append(r.saves, size)
}

func (r *storeRecorder) OnDelete(_ context.Context, backend string, err error) {
	r.backend = backend
	r.deletes = append(r.deletes, err)
}

func TestInstrumentWith(t *testing.T) {
	ctx := context.Background()
	rec := &storeRecorder{}
	s := InstrumentWith(NewMemoryStore(), BackendMemory, rec)

	_, err := s.Load(ctx, "nope")
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, s.Save(ctx, sampleSnapshot(t, "main")))
	_, err = s.Load(ctx, "main")
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, "main"))

	assert.Equal(t, BackendMemory, rec.backend)
	assert.Equal(t, []bool{false, true}, rec.loads)
	assert.Equal(t, []int{3}, rec.saves)
	assert.Equal(t, []error{nil}, rec.deletes)

	u, ok := s.(interface{ Unwrap() Store })
	require.True(t, ok)
	assert.IsType(t, &MemoryStore{}, u.Unwrap())
}

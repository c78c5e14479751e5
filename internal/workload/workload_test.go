package workload

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timed-go/timed/pkg/duration"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"alloc", "busywait", "noop", "sleep", "sort"}, Names())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{"noop", Params{}, nil},
		{"sleep", Params{Duration: duration.Millisecond}, nil},
		{"sleep", Params{}, ErrInvalidParams},
		{"busywait", Params{}, ErrInvalidParams},
		{"sort", Params{Size: 10}, nil},
		{"sort", Params{}, ErrInvalidParams},
		{"alloc", Params{Size: -1}, ErrInvalidParams},
		{"fft", Params{}, ErrUnknownWorkload},
	}
	for _, tt := range tests {
		err := Validate(tt.name, tt.params)
		if tt.wantErr == nil {
			assert.NoError(t, err, tt.name)
			continue
		}
		assert.ErrorIs(t, err, tt.wantErr, tt.name)
	}
}

func TestSortWorkload(t *testing.T) {
	w, err := New("sort", Params{Size: 100})
	require.NoError(t, err)
	assert.Equal(t, "sort", w.Name)

	for i := 0; i < 3; i++ {
		assert.NotPanics(t, w.Setup)
		assert.NotPanics(t, w.Op)
	}
}

func TestAllocWorkload(t *testing.T) {
	w, err := New("alloc", Params{Size: 10_000})
	require.NoError(t, err)
	w.Setup()
	w.Op()
	assert.Len(t, sink, 10_000)
	assert.Equal(t, byte(1), sink[4096])
}

func TestNoopHasSetup(t *testing.T) {
	w, err := New("noop", Params{})
	require.NoError(t, err)
	assert.NotNil(t, w.Setup)
	assert.NotPanics(t, w.Setup)
	assert.NotPanics(t, w.Op)
}

func TestUnknownWorkload(t *testing.T) {
	_, err := New("fft", Params{})
	assert.ErrorIs(t, err, ErrUnknownWorkload)
	assert.True(t, slices.Contains(Names(), "sleep"))
}

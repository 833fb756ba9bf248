package graphql

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatherCollectsInOrder(t *testing.T) {
	futures := make([]FieldFuture, 5)
	for i := range futures {
		i := i
		futures[i] = NewFieldFuture(func(ctx context.Context) (*FieldValue, error) {
			v := NewValue(Int(int64(i)))
			return &v, nil
		})
	}
	results, err := Gather(context.Background(), futures)
	require.NoError(t, err)
	require.Len(t, results, 5)
	for i, r := range results {
		v, _ := r.AsValue()
		assert.Equal(t, int64(i), v.Int)
	}
}

func TestGatherReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	futures := []FieldFuture{
		Ready(nil, nil),
		Ready(nil, boom),
	}
	_, err := Gather(context.Background(), futures)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

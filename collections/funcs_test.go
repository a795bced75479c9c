package collections_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-typed-collections/collections"
)

func TestMapFunc(t *testing.T) {
	got, err := collections.Map(collections.Of(1, 2, 3), collections.String, func(n, _ int) string {
		return strconv.Itoa(n * 2)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "4", "6"}, got.All())
	assert.Equal(t, collections.String, got.ElementType())
}

func TestMapFuncChangesDeclaredType(t *testing.T) {
	words := abcd(t)
	lengths, err := collections.Map(words, collections.Int, func(item any, _ int) any {
		return len(item.(string))
	})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 1, 1, 1}, lengths.All())
	assert.Equal(t, collections.Int, lengths.ElementType())
	assert.Equal(t, collections.String, words.ElementType())
}

func TestMapFuncValidatesResults(t *testing.T) {
	_, err := collections.Map(abcd(t), collections.Int, func(item any, _ int) any { return item })
	requireInvalid(t, err, 0, "string", "int")
}

func TestReduceFunc(t *testing.T) {
	s := collections.Reduce(collections.Of(1, 2, 3), func(acc string, n, _ int) string {
		if acc == "" {
			return strconv.Itoa(n)
		}
		return acc + "," + strconv.Itoa(n)
	}, "")
	assert.Equal(t, "1,2,3", s)
}

func TestVariants(t *testing.T) {
	tests := []struct {
		name  string
		build func(...any) (*collections.Collection[any], error)
		good  any
		bad   any
		want  collections.ElementType
	}{
		{"Strings", collections.Strings, "A", 1, collections.String},
		{"Ints", collections.Ints, 1, int64(1), collections.Int},
		{"Float64s", collections.Float64s, 1.5, float32(1.5), collections.Float64},
		{"Bools", collections.Bools, true, "true", collections.Bool},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.build(tt.good)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.ElementType())

			_, err = tt.build(tt.good, tt.bad)
			assert.ErrorIs(t, err, collections.ErrInvalidElement)
		})
	}
}

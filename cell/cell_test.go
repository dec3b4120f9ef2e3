package cell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCell_With(t *testing.T) {
	var testCases = []struct {
		description string
		cell        func() *Cell[int]
		expectKind  Kind
		expect      int
	}{
		{
			description: "never set",
			cell:        New[int],
			expectKind:  ValueNotPresent,
		},
		{
			description: "zero value cell",
			cell:        func() *Cell[int] { return &Cell[int]{} },
			expectKind:  ValueNotPresent,
		},
		{
			description: "pre-populated",
			cell:        func() *Cell[int] { return Of(222) },
			expect:      222,
		},
		{
			description: "set then read",
			cell: func() *Cell[int] {
				c := New[int]()
				_ = c.Set(1337)
				return c
			},
			expect: 1337,
		},
		{
			description: "cleared",
			cell: func() *Cell[int] {
				c := Of(7)
				_ = c.Clear()
				return c
			},
			expectKind: ValueNotPresent,
		},
		{
			description: "stored nil",
			cell: func() *Cell[int] {
				c := Of(7)
				_ = c.Store(nil)
				return c
			},
			expectKind: ValueNotPresent,
		},
	}

	for _, testCase := range testCases {
		c := testCase.cell()
		called := false
		var actual int
		err := c.With(func(value *int) {
			called = true
			actual = *value
		})
		if testCase.expectKind != 0 {
			assert.False(t, called, testCase.description)
			kind, ok := KindOf(err)
			assert.True(t, ok, testCase.description)
			assert.EqualValues(t, testCase.expectKind, kind, testCase.description)
			continue
		}
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.True(t, called, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestCell_WithMutates(t *testing.T) {
	c := Of(222)
	require.NoError(t, c.With(func(value *int) { *value *= 2 }))
	actual, err := Read(c, func(value *int) int { return *value })
	require.NoError(t, err)
	assert.EqualValues(t, 444, actual)
}

func TestCell_SetTwice(t *testing.T) {
	c := New[string]()
	assert.NoError(t, c.Set("v"))
	assert.NoError(t, c.Set("v"))
	assert.True(t, c.Populated())
	actual, err := Read(c, func(value *string) string { return *value })
	assert.NoError(t, err)
	assert.EqualValues(t, "v", actual)
}

func TestCell_StateTransitions(t *testing.T) {
	c := New[int]()
	assert.False(t, c.Populated())
	assert.NoError(t, c.Set(1))
	assert.True(t, c.Populated())
	assert.NoError(t, c.With(func(value *int) { *value++ }))
	assert.True(t, c.Populated())
	assert.NoError(t, c.Clear())
	assert.False(t, c.Populated())
	assert.ErrorIs(t, c.With(func(*int) {}), ErrValueNotPresent)
	assert.NoError(t, c.Set(5))
	assert.NoError(t, c.With(func(value *int) { assert.EqualValues(t, 5, *value) }))
}

func TestCell_ConcurrentIncrement(t *testing.T) {
	const workers = 10000
	c := Of(0)
	var group errgroup.Group
	for i := 0; i < workers; i++ {
		group.Go(func() error {
			return c.With(func(value *int) { *value++ })
		})
	}
	require.NoError(t, group.Wait())
	actual, err := Read(c, func(value *int) int { return *value })
	require.NoError(t, err)
	assert.EqualValues(t, workers, actual)
}

func TestCell_ConcurrentSetAndWith(t *testing.T) {
	c := New[int]()
	var group errgroup.Group
	for i := 0; i < 1000; i++ {
		i := i
		group.Go(func() error {
			if i%2 == 0 {
				return c.Set(i)
			}
			err := c.With(func(value *int) { *value++ })
			if errors.Is(err, ErrValueNotPresent) {
				return nil
			}
			return err
		})
	}
	require.NoError(t, group.Wait())
	assert.True(t, c.Populated())
}

func TestCell_Poisoned(t *testing.T) {
	c := Of(1)
	assert.Panics(t, func() {
		_ = c.With(func(value *int) {
			*value = 2
			panic("boom")
		})
	})
	assert.True(t, c.Poisoned())

	err := c.With(func(*int) { t.Fatal("must not be called on a poisoned cell") })
	assert.ErrorIs(t, err, ErrLockHolderFailed)
	assert.ErrorIs(t, c.Set(3), ErrLockHolderFailed)
	assert.ErrorIs(t, c.Clear(), ErrLockHolderFailed)
	_, err = Read(c, func(value *int) int { return *value })
	assert.ErrorIs(t, err, ErrLockHolderFailed)

	value := 10
	c.Reset(&value)
	assert.False(t, c.Poisoned())
	actual, err := Read(c, func(value *int) int { return *value })
	assert.NoError(t, err)
	assert.EqualValues(t, 10, actual)

	c.Reset(nil)
	assert.ErrorIs(t, c.With(func(*int) {}), ErrValueNotPresent)
}

func TestCell_Fill(t *testing.T) {
	c := New[[]string]()
	require.NoError(t, c.Fill(func() []string { return []string{"a"} }))
	actual, err := Read(c, func(value *[]string) []string { return *value })
	require.NoError(t, err)
	assert.EqualValues(t, []string{"a"}, actual)

	assert.Panics(t, func() {
		_ = c.Fill(func() []string { panic("boom") })
	})
	assert.True(t, c.Poisoned())
	assert.ErrorIs(t, c.Fill(func() []string { return nil }), ErrLockHolderFailed)

	c.Reset(nil)
	assert.False(t, c.Populated())
}

func TestError(t *testing.T) {
	var testCases = []struct {
		description string
		err         *Error
		expect      string
	}{
		{description: "bare", err: &Error{Kind: ValueNotPresent}, expect: "value not present"},
		{description: "op", err: &Error{Kind: LockHolderFailed, Op: "with"}, expect: "with: lock holder failed"},
		{description: "key", err: &Error{Kind: KeyNotFound, Op: "remove", Key: 1}, expect: "remove: key not found: 1"},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, testCase.err.Error(), testCase.description)
	}
	assert.False(t, errors.Is(&Error{Kind: KeyNotFound}, ErrValueNotPresent))
	_, ok := KindOf(errors.New("other"))
	assert.False(t, ok)
}

func BenchmarkCell_With(b *testing.B) {
	c := Of[uint32](0)
	for i := 0; i < b.N; i++ {
		_ = c.Set(0)
		_ = c.With(func(value *uint32) {
			*value++
			if *value%2 == 1 {
				*value++
			}
		})
	}
}

func BenchmarkCell_WithParallel(b *testing.B) {
	c := Of[uint64](0)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = c.With(func(value *uint64) { *value++ })
		}
	})
}

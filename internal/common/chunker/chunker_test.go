package chunker

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRows(n int) [][]string {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("row-%d", i)}
	}
	return rows
}

func newTestChunker(t *testing.T, size int) *Chunker {
	t.Helper()
	c, err := NewChunker(ChunkerConfig{ChunkSize: size}, zerolog.Nop())
	require.NoError(t, err)
	return c
}

func TestNewChunker_InvalidSize(t *testing.T) {
	_, err := NewChunker(ChunkerConfig{ChunkSize: 0}, zerolog.Nop())
	assert.Error(t, err)

	_, err = NewChunker(ChunkerConfig{ChunkSize: -1}, zerolog.Nop())
	assert.Error(t, err)
}

func TestNumChunks(t *testing.T) {
	cases := []struct {
		total     int
		chunkSize int
		want      int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{9, 10, 1},
		{10, 10, 1}, // exact multiple: no trailing empty chunk
		{11, 10, 2},
		{20, 10, 2},
		{21, 10, 3},
		{5, 1, 5},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d_rows_size_%d", tc.total, tc.chunkSize), func(t *testing.T) {
			c := newTestChunker(t, tc.chunkSize)
			assert.Equal(t, tc.want, c.NumChunks(tc.total))
		})
	}
}

func TestSplit_PreservesOrder(t *testing.T) {
	c := newTestChunker(t, 2)
	chunks := c.Split(makeRows(5))

	require.Len(t, chunks, 3)
	assert.Equal(t, [][]string{{"row-0"}, {"row-1"}}, chunks[0])
	assert.Equal(t, [][]string{{"row-2"}, {"row-3"}}, chunks[1])
	assert.Equal(t, [][]string{{"row-4"}}, chunks[2])
}

func TestSplit_Empty(t *testing.T) {
	c := newTestChunker(t, 10)
	assert.Nil(t, c.Split(nil))
	assert.Nil(t, c.Split([][]string{}))
}

func TestProcessSequentially_CountsAndOrder(t *testing.T) {
	c := newTestChunker(t, 10)

	var seen []int
	results, err := c.ProcessSequentially(context.Background(), makeRows(25), func(ctx context.Context, chunk [][]string, idx int) error {
		seen = append(seen, idx)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, seen)
	require.Len(t, results, 3)
	assert.Equal(t, 10, results[0].Rows)
	assert.Equal(t, 10, results[1].Rows)
	assert.Equal(t, 5, results[2].Rows)
	for _, r := range results {
		assert.True(t, r.Success)
	}
}

func TestProcessSequentially_EmptyInput(t *testing.T) {
	c := newTestChunker(t, 10)

	calls := 0
	results, err := c.ProcessSequentially(context.Background(), nil, func(ctx context.Context, chunk [][]string, idx int) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Nil(t, results)
	assert.Zero(t, calls)
}

func TestProcessSequentially_StopsOnError(t *testing.T) {
	c := newTestChunker(t, 1)
	boom := errors.New("load failed")

	calls := 0
	results, err := c.ProcessSequentially(context.Background(), makeRows(3), func(ctx context.Context, chunk [][]string, idx int) error {
		calls++
		if idx == 1 {
			return boom
		}
		return nil
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
	require.Len(t, results, 2)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
}

func TestProcessSequentially_ContextCancellation(t *testing.T) {
	c := newTestChunker(t, 1)
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	results, err := c.ProcessSequentially(ctx, makeRows(5), func(ctx context.Context, chunk [][]string, idx int) error {
		calls++
		if idx == 0 {
			cancel()
		}
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
	assert.Len(t, results, 1)
}

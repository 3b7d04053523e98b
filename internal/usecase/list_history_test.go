package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListHistory(t *testing.T) {
	history := &mockHistory{entries: make([]HistoryEntry, 30)}

	entries, err := NewListHistory(history).Run(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, entries, defaultHistoryLimit)

	entries, err = NewListHistory(history).Run(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, entries, 5)

	history.err = errors.New("locked")
	_, err = NewListHistory(history).Run(context.Background(), 5)
	assert.ErrorContains(t, err, "failed to read history")
}

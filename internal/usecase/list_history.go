package usecase

import (
	"context"
	"fmt"
)

const defaultHistoryLimit = 20

// ListHistory is a use case for listing recorded verification runs
type ListHistory struct {
	history RunHistory
}

// NewListHistory creates a new ListHistory use case
func NewListHistory(history RunHistory) *ListHistory {
	return &ListHistory{history: history}
}

// Run returns up to limit recent runs, newest first
func (uc *ListHistory) Run(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	entries, err := uc.history.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return entries, nil
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Reader is a mock implementation of sheets.Reader
type Reader struct {
	mock.Mock
}

func (m *Reader) Worksheets(ctx context.Context, spreadsheetID string) ([]string, error) {
	args := m.Called(ctx, spreadsheetID)
	if titles, ok := args.Get(0).([]string); ok {
		return titles, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Reader) Values(ctx context.Context, spreadsheetID, worksheetTitle string) ([][]string, error) {
	args := m.Called(ctx, spreadsheetID, worksheetTitle)
	if rows, ok := args.Get(0).([][]string); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

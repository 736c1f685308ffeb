package queries_test

import (
	"context"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/report"

	"github.com/stretchr/testify/mock"
)

type MockRunHistory struct{ mock.Mock }

func (m *MockRunHistory) Record(run report.Run) { m.Called(run) }

func (m *MockRunHistory) Latest() (report.Run, bool) {
	args := m.Called()
	return args.Get(0).(report.Run), args.Bool(1)
}

func (m *MockRunHistory) RecordSplit(r report.SplitReport) { m.Called(r) }

func (m *MockRunHistory) LatestSplit() (report.SplitReport, bool) {
	args := m.Called()
	return args.Get(0).(report.SplitReport), args.Bool(1)
}

type MockStoreDirectory struct{ mock.Mock }

func (m *MockStoreDirectory) ListStores(ctx context.Context) ([]catalog.Store, error) {
	args := m.Called(ctx)
	stores, _ := args.Get(0).([]catalog.Store)
	return stores, args.Error(1)
}

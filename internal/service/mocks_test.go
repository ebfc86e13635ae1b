package service

import (
	"context"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTariffRateRepository
type MockTariffRateRepository struct {
	mock.Mock
}

func (m *MockTariffRateRepository) Create(ctx context.Context, rate *model.TariffRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockTariffRateRepository) Search(ctx context.Context, q repository.TariffQuery) ([]model.TariffRate, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TariffRate), args.Error(1)
}

func (m *MockTariffRateRepository) FindBest(ctx context.Context, code, origin string) (*model.TariffRate, error) {
	args := m.Called(ctx, code, origin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TariffRate), args.Error(1)
}

// MockMatchHistoryRepository
type MockMatchHistoryRepository struct {
	mock.Mock
}

func (m *MockMatchHistoryRepository) Lookup(ctx context.Context, productName, material string) (*model.MatchHistoryRecord, error) {
	args := m.Called(ctx, productName, material)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MatchHistoryRecord), args.Error(1)
}

func (m *MockMatchHistoryRepository) Increment(ctx context.Context, productName, material, code string) error {
	args := m.Called(ctx, productName, material, code)
	return args.Error(0)
}

// MockBatchRepository
type MockBatchRepository struct {
	mock.Mock
}

func (m *MockBatchRepository) Create(ctx context.Context, batch *model.ImportBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockBatchRepository) FindByIDWithItems(ctx context.Context, id uuid.UUID) (*model.ImportBatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ImportBatch), args.Error(1)
}

func (m *MockBatchRepository) List(ctx context.Context, page, limit int) ([]model.ImportBatch, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.ImportBatch), args.Get(1).(int64), args.Error(2)
}

func (m *MockBatchRepository) UpdateBatch(ctx context.Context, batch *model.ImportBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockBatchRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*model.CargoItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CargoItem), args.Error(1)
}

func (m *MockBatchRepository) UpdateItem(ctx context.Context, item *model.CargoItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// MockRiskRecordRepository
type MockRiskRecordRepository struct {
	mock.Mock
}

func (m *MockRiskRecordRepository) CreateDeclaration(ctx context.Context, rec *model.DeclarationValueRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRiskRecordRepository) CreateInspection(ctx context.Context, rec *model.InspectionRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRiskRecordRepository) ListDeclarations(ctx context.Context, code, origin, unit string) ([]model.DeclarationValueRecord, error) {
	args := m.Called(ctx, code, origin, unit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DeclarationValueRecord), args.Error(1)
}

func (m *MockRiskRecordRepository) ListInspections(ctx context.Context, code, origin string) ([]model.InspectionRecord, error) {
	args := m.Called(ctx, code, origin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InspectionRecord), args.Error(1)
}

func (m *MockRiskRecordRepository) AggregateInspections(ctx context.Context, minShipments int) ([]repository.InspectionAggregate, error) {
	args := m.Called(ctx, minShipments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.InspectionAggregate), args.Error(1)
}

// MockAuditRepository
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Create(ctx context.Context, log *model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditRepository) List(ctx context.Context, action string, page, limit int) ([]model.AuditLog, int64, error) {
	args := m.Called(ctx, action, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.AuditLog), args.Get(1).(int64), args.Error(2)
}

// fakeTxManager runs the callback directly without a real transaction.
type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

// identityTranslator passes country names through unchanged.
type identityTranslator struct{}

func (identityTranslator) Translate(_ context.Context, countryName string) string {
	return countryName
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Publish(event string, payload interface{}) {
	m.Called(event, payload)
}

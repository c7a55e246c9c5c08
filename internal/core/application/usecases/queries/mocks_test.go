package queries_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/model/courier"
	"lastmile/internal/core/domain/model/facility"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/merchant"
	"lastmile/internal/core/ports"
)

type MockCourierRepository struct {
	mock.Mock
}

func (m *MockCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, courierID kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, courierID)
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAllActive(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockFacilityRepository struct {
	mock.Mock
}

func (m *MockFacilityRepository) Add(ctx context.Context, aggregate *facility.Facility) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockFacilityRepository) Get(ctx context.Context, facilityID int64) (*facility.Facility, error) {
	args := m.Called(ctx, facilityID)
	return args.Get(0).(*facility.Facility), args.Error(1)
}

func (m *MockFacilityRepository) GetAll(ctx context.Context) ([]*facility.Facility, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*facility.Facility), args.Error(1)
}

type MockMerchantConfigRepository struct {
	mock.Mock
}

func (m *MockMerchantConfigRepository) Save(ctx context.Context, config *merchant.Config) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockMerchantConfigRepository) Get(ctx context.Context, shopDomain string) (*merchant.Config, error) {
	args := m.Called(ctx, shopDomain)
	return args.Get(0).(*merchant.Config), args.Error(1)
}

type MockRatesUoW struct {
	mock.Mock
}

func (m *MockRatesUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRatesUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRatesUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRatesUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockRatesUoW) FacilityRepository() ports.FacilityRepository {
	args := m.Called()
	return args.Get(0).(ports.FacilityRepository)
}

func (m *MockRatesUoW) MerchantConfigRepository() ports.MerchantConfigRepository {
	args := m.Called()
	return args.Get(0).(ports.MerchantConfigRepository)
}

type MockRatesUoWFactory struct {
	mock.Mock
}

func (m *MockRatesUoWFactory) Create() queries.RatesUoW {
	args := m.Called()
	return args.Get(0).(queries.RatesUoW)
}

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (kernel.Coordinates, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(kernel.Coordinates), args.Error(1)
}

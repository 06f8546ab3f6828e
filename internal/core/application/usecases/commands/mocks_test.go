package commands_test

import (
	"context"
	"slices"
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/location"
	"supplychain/internal/core/domain/model/lot"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRegistry struct{ mock.Mock }

func (m *MockRegistry) CreateLot(ctx context.Context, l *lot.Lot, c *lot.Custody) error {
	args := m.Called(ctx, l, c)
	return args.Error(0)
}

func (m *MockRegistry) GetLot(ctx context.Context, t lot.Type, id string) (*lot.Lot, error) {
	args := m.Called(ctx, t, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lot.Lot), args.Error(1)
}

func (m *MockRegistry) GetCustody(ctx context.Context, t lot.Type, id string) (*lot.Custody, error) {
	args := m.Called(ctx, t, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lot.Custody), args.Error(1)
}

func (m *MockRegistry) SaveCustody(ctx context.Context, c *lot.Custody) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRegistry) DeleteLot(ctx context.Context, t lot.Type, id string) error {
	args := m.Called(ctx, t, id)
	return args.Error(0)
}

func (m *MockRegistry) CreateLocation(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockRegistry) GetLocation(ctx context.Context, id string) (*location.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

func (m *MockRegistry) SaveLocation(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockRegistry) ListRecords(
	ctx context.Context, docType string, pageSize int32, bookmark string,
) (ports.RecordPage, error) {
	args := m.Called(ctx, docType, pageSize, bookmark)
	return args.Get(0).(ports.RecordPage), args.Error(1)
}

func (m *MockRegistry) StatusHistory(ctx context.Context, t lot.Type, id string) ([]ports.KeyModification, error) {
	args := m.Called(ctx, t, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.KeyModification), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Registry() ports.Registry {
	args := m.Called()
	return args.Get(0).(ports.Registry)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// fakeCaller is a fixed identity: one organization and a set of role claims.
type fakeCaller struct {
	org   kernel.OrgID
	roles []kernel.Role
	err   error
}

func caller(org kernel.OrgID, roles ...kernel.Role) fakeCaller {
	return fakeCaller{org: org, roles: roles}
}

func (c fakeCaller) CurrentOrganization() (kernel.OrgID, error) {
	return c.org, c.err
}

func (c fakeCaller) HasRoleClaim(role kernel.Role) bool {
	return slices.Contains(c.roles, role)
}

var (
	producer     = caller("agr1MSP", kernel.RoleProducer)
	manufacturer = caller("floretteMSP", kernel.RoleManufacturer)
	courier1     = caller("courier1MSP", kernel.RoleCourier)
	courier2     = caller("courier2MSP", kernel.RoleCourier)
	retailer     = caller("retailerMSP", kernel.RoleClient)
	producerAdm  = caller("agr1MSP", kernel.RoleAdmin)
)

func newAuthorizer() *services.Authorizer {
	return services.NewAuthorizer(kernel.DefaultDirectory())
}

// transaction wires a factory that hands out one unit of work backed by registry
// and expects it to be rolled back when the handler returns.
func transaction(registry ports.Registry) (*MockUoWFactory, *MockUoW) {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Registry").Return(registry).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow
}

func newWarehouse(t *testing.T, id string, holder kernel.OrgID) *location.Location {
	t.Helper()
	coords, err := kernel.NewCoordinates(40.4, -3.7)
	require.NoError(t, err)
	l, err := location.NewLocation(id, id, location.Warehouse, coords, holder, kernel.Parameters{"humidity": 60.0})
	require.NoError(t, err)
	return l
}

func custodyAt(t *testing.T, lotType lot.Type, id string, r lot.StatusRecord) *lot.Custody {
	t.Helper()
	c, err := lot.RestoreCustody(lotType, id, r)
	require.NoError(t, err)
	return c
}

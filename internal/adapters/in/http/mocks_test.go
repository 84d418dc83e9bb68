package http_test

import (
	"context"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
)

type MockCommandHandler[C any] struct {
	mock.Mock
}

func (m *MockCommandHandler[C]) Handle(ctx context.Context, command C) error {
	args := m.Called(ctx, command)
	return args.Error(0)
}

type MockCreatingCommandHandler[C, R any] struct {
	mock.Mock
}

func (m *MockCreatingCommandHandler[C, R]) Handle(ctx context.Context, command C) (R, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(R), args.Error(1)
}

type MockQueryHandler[Q, R any] struct {
	mock.Mock
}

func (m *MockQueryHandler[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(R), args.Error(1)
}

type MockCatalogCommands struct {
	mock.Mock
}

func (m *MockCatalogCommands) HandleCreateVehicleType(ctx context.Context, command commands.CreateVehicleTypeCommand) error {
	args := m.Called(ctx, command)
	return args.Error(0)
}

func (m *MockCatalogCommands) HandleCreateService(ctx context.Context, command commands.CreateServiceCommand) error {
	args := m.Called(ctx, command)
	return args.Error(0)
}

func (m *MockCatalogCommands) HandleSetServicePrice(ctx context.Context, command commands.SetServicePriceCommand) error {
	args := m.Called(ctx, command)
	return args.Error(0)
}

func (m *MockCatalogCommands) HandleCreateInventoryItem(ctx context.Context, command commands.CreateInventoryItemCommand) error {
	args := m.Called(ctx, command)
	return args.Error(0)
}

func (m *MockCatalogCommands) HandleUpdateService(ctx context.Context, command commands.UpdateServiceCommand) error {
	args := m.Called(ctx, command)
	return args.Error(0)
}

func (m *MockCatalogCommands) HandleUpdateInventoryItem(ctx context.Context, command commands.UpdateInventoryItemCommand) error {
	args := m.Called(ctx, command)
	return args.Error(0)
}

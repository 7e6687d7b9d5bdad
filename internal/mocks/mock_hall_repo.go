package mocks

import (
	"context"

	"github.com/ardaguler/theatre-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTheatreHallRepo struct {
	mock.Mock
	domain.TheatreHallRepository
}

func (m *MockTheatreHallRepo) Create(ctx context.Context, hall *domain.TheatreHall) error {
	args := m.Called(ctx, hall)
	return args.Error(0)
}

func (m *MockTheatreHallRepo) GetById(ctx context.Context, id int) (*domain.TheatreHall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TheatreHall), args.Error(1)
}

func (m *MockTheatreHallRepo) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.TheatreHall, *domain.Metadata, error) {

	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.TheatreHall), args.Get(1).(*domain.Metadata), args.Error(2)
}

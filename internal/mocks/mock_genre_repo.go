package mocks

import (
	"context"

	"github.com/ardaguler/theatre-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockGenreRepo struct {
	mock.Mock
	domain.GenreRepository
}

func (m *MockGenreRepo) Create(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *MockGenreRepo) GetById(ctx context.Context, id int) (*domain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *MockGenreRepo) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Genre, *domain.Metadata, error) {

	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Genre), args.Get(1).(*domain.Metadata), args.Error(2)
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/flickstack/rental-api/internal/domain"
	"github.com/flickstack/rental-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBootstrap struct{ mock.Mock }

func (m *MockBootstrap) CheckTable(ctx context.Context, name string) domain.TableStatus {
	return m.Called(ctx, name).Get(0).(domain.TableStatus)
}
func (m *MockBootstrap) SeedSuperuser(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestHealthCheck_AllHealthy(t *testing.T) {
	db := new(MockBootstrap)
	svc := service.NewHealth(db)

	for _, table := range []string{"users", "customers", "movies", "movie_copies"} {
		db.On("CheckTable", mock.Anything, table).Return(domain.TableStatus{})
	}
	db.On("SeedSuperuser", mock.Anything).Return(nil)

	rep := svc.Check(context.Background())
	assert.False(t, rep.Error)
	assert.False(t, rep.UsersDatabase.Error)
	db.AssertExpectations(t)
}

func TestHealthCheck_OneTableDown(t *testing.T) {
	db := new(MockBootstrap)
	svc := service.NewHealth(db)

	db.On("CheckTable", mock.Anything, "users").Return(domain.TableStatus{})
	db.On("CheckTable", mock.Anything, "customers").
		Return(domain.TableStatus{Error: true, ErrorMsg: "Could not reach customers table"})
	db.On("CheckTable", mock.Anything, "movies").Return(domain.TableStatus{})
	db.On("CheckTable", mock.Anything, "movie_copies").Return(domain.TableStatus{})
	db.On("SeedSuperuser", mock.Anything).Return(nil)

	rep := svc.Check(context.Background())
	assert.True(t, rep.Error)
	assert.True(t, rep.CustomersDatabase.Error)
	assert.Equal(t, "Could not reach customers table", rep.CustomersDatabase.ErrorMsg)
}

func TestHealthCheck_SeedFailureDoesNotFailReport(t *testing.T) {
	db := new(MockBootstrap)
	svc := service.NewHealth(db)

	for _, table := range []string{"users", "customers", "movies", "movie_copies"} {
		db.On("CheckTable", mock.Anything, table).Return(domain.TableStatus{})
	}
	db.On("SeedSuperuser", mock.Anything).Return(errors.New("duplicate key"))

	rep := svc.Check(context.Background())
	assert.False(t, rep.Error)
}

package service_test

import (
	"context"
	"testing"

	"github.com/flickstack/rental-api/internal/domain"
	"github.com/flickstack/rental-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleCustomers() []domain.Customer {
	return []domain.Customer{
		{ID: "c1", FName: "Selina", Phone: "555-0100", Active: true},
		{ID: "c2", FName: "Harvey", Phone: "555-0200", Active: false},
		{ID: "c3", FName: "Lucius", Phone: "555-0100", Active: false},
	}
}

func TestCustomersList_NoFilters(t *testing.T) {
	repo := new(MockCustomers)
	svc := service.NewCustomers(repo)

	repo.On("List", mock.Anything).Return(sampleCustomers(), nil)

	rows, err := svc.List(context.Background(), "", false)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestCustomersList_PhoneFilter(t *testing.T) {
	repo := new(MockCustomers)
	svc := service.NewCustomers(repo)

	repo.On("List", mock.Anything).Return(sampleCustomers(), nil)

	rows, err := svc.List(context.Background(), "555-0100", false)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "c1", rows[0].ID)
	assert.Equal(t, "c3", rows[1].ID)
}

func TestCustomersList_ExcludeInactive(t *testing.T) {
	repo := new(MockCustomers)
	svc := service.NewCustomers(repo)

	repo.On("List", mock.Anything).Return(sampleCustomers(), nil)

	rows, err := svc.List(context.Background(), "555-0100", true)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "c1", rows[0].ID)
}

func TestCustomersCreate_DuplicateID(t *testing.T) {
	repo := new(MockCustomers)
	svc := service.NewCustomers(repo)

	repo.On("GetByID", mock.Anything, "c1").Return(&domain.Customer{ID: "c1"}, nil)

	err := svc.Create(context.Background(), domain.Customer{ID: "c1"})
	assert.ErrorIs(t, err, domain.ErrIDExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomersCreate_Success(t *testing.T) {
	repo := new(MockCustomers)
	svc := service.NewCustomers(repo)

	repo.On("GetByID", mock.Anything, "c9").Return(nil, domain.ErrCustomerNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c domain.Customer) bool {
		return c.ID == "c9"
	})).Return(nil)

	err := svc.Create(context.Background(), domain.Customer{ID: "c9", FName: "Dick", Active: true})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCustomersEdit_UnknownCustomer(t *testing.T) {
	repo := new(MockCustomers)
	svc := service.NewCustomers(repo)

	repo.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrCustomerNotFound)

	err := svc.Edit(context.Background(), domain.Customer{ID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCustomersEdit_Success(t *testing.T) {
	repo := new(MockCustomers)
	svc := service.NewCustomers(repo)

	repo.On("GetByID", mock.Anything, "c1").Return(&domain.Customer{ID: "c1"}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c domain.Customer) bool {
		return c.ID == "c1" && c.Phone == "555-9999"
	})).Return(nil)

	err := svc.Edit(context.Background(), domain.Customer{ID: "c1", Phone: "555-9999"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

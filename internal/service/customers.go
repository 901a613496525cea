package service

import (
	"context"
	"errors"

	"github.com/flickstack/rental-api/internal/domain"
)

// Customers is thin pass-through management over the customer table.
type Customers struct {
	customers domain.CustomerRepository
}

func NewCustomers(customers domain.CustomerRepository) *Customers {
	return &Customers{customers: customers}
}

// List returns customers, optionally filtered to a phone number and to
// active rows only.
func (s *Customers) List(ctx context.Context, phone string, excludeInactive bool) ([]domain.Customer, error) {
	all, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Customer, 0, len(all))
	for _, c := range all {
		if phone != "" && c.Phone != phone {
			continue
		}
		if excludeInactive && !c.Active {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *Customers) Create(ctx context.Context, c domain.Customer) error {
	if _, err := s.customers.GetByID(ctx, c.ID); err == nil {
		return domain.ErrIDExists
	} else if !errors.Is(err, domain.ErrCustomerNotFound) {
		return err
	}
	return s.customers.Create(ctx, c)
}

func (s *Customers) Edit(ctx context.Context, c domain.Customer) error {
	if _, err := s.customers.GetByID(ctx, c.ID); err != nil {
		return err
	}
	return s.customers.Update(ctx, c)
}

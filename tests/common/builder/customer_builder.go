//go:build unit || e2e

package builder

import (
	"elite-drive/internal/domain/customer"
	sqlc "elite-drive/internal/infra/sqlc/generated"
	"elite-drive/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID          uuid.UUID
	Name        string
	Phone       string
	LoyaltyTier string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:          uuid.New(),
		Name:        "Avi Levi",
		Phone:       "+972-50-1234567",
		LoyaltyTier: "VIP",
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	return customer.NewCustomer(b.Name, b.Phone, customer.LoyaltyTier(b.LoyaltyTier))
}

func (b *CustomerBuilder) BuildInfra() sqlc.Customers {
	return sqlc.Customers{
		ID:          b.ID,
		Name:        b.Name,
		Phone:       b.Phone,
		LoyaltyTier: b.LoyaltyTier,
	}
}

func (b *CustomerBuilder) BuildView() *queries.CustomerView {
	return &queries.CustomerView{
		ID:          b.ID,
		Name:        b.Name,
		Phone:       b.Phone,
		LoyaltyTier: b.LoyaltyTier,
	}
}

package response

import (
	"elite-drive/internal/usecase/queries"
)

type CustomerResponse struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	LoyaltyTier string `json:"loyalty_tier"`
}

func FromCustomerView(v *queries.CustomerView) *CustomerResponse {
	if v == nil {
		return nil
	}
	return &CustomerResponse{
		ID:          v.ID.String(),
		Name:        v.Name,
		Phone:       v.Phone,
		LoyaltyTier: v.LoyaltyTier,
	}
}

func FromCustomerList(items []*queries.CustomerView) []*CustomerResponse {
	res := make([]*CustomerResponse, len(items))
	for i, it := range items {
		res[i] = FromCustomerView(it)
	}
	return res
}

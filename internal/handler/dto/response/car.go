package response

import (
	"elite-drive/internal/usecase/queries"
)

type CarResponse struct {
	ID       string         `json:"_id"`
	Brand    string         `json:"brand"`
	Model    string         `json:"model"`
	Year     int            `json:"year"`
	Price    float64        `json:"price"`
	Specs    map[string]any `json:"specs"`
	Category string         `json:"category"`
}

func FromCarView(v *queries.CarView) *CarResponse {
	if v == nil {
		return nil
	}
	specs := v.Specs
	if specs == nil {
		specs = map[string]any{}
	}
	return &CarResponse{
		ID:       v.ID.String(),
		Brand:    v.Brand,
		Model:    v.Model,
		Year:     v.Year,
		Price:    v.Price,
		Specs:    specs,
		Category: v.Category,
	}
}

func FromCarList(items []*queries.CarView) []*CarResponse {
	res := make([]*CarResponse, len(items))
	for i, it := range items {
		res[i] = FromCarView(it)
	}
	return res
}

package usecase

import (
	"testing"

	"github.com/feastline/orderd/internal/domain/model"
)

func TestPriceOrderTable(t *testing.T) {
	cases := []struct {
		name     string
		items    []model.LineItem
		subtotal int64
		fee      int64
		tax      int64
		total    int64
	}{
		{
			name:     "below free delivery threshold",
			items:    []model.LineItem{{Name: "wrap", Price: 240, Quantity: 2}},
			subtotal: 480, fee: 40, tax: 86, total: 606,
		},
		{
			name:     "above free delivery threshold",
			items:    []model.LineItem{{Name: "platter", Price: 200, Quantity: 3}},
			subtotal: 600, fee: 0, tax: 108, total: 708,
		},
		{
			name:     "exactly at threshold still pays delivery",
			items:    []model.LineItem{{Name: "bowl", Price: 500, Quantity: 1}},
			subtotal: 500, fee: 40, tax: 90, total: 630,
		},
		{
			name:     "one above threshold ships free",
			items:    []model.LineItem{{Name: "bowl", Price: 501, Quantity: 1}},
			subtotal: 501, fee: 0, tax: 90, total: 591,
		},
		{
			name:     "tax rounds half up",
			items:    []model.LineItem{{Name: "snack", Price: 25, Quantity: 1}},
			subtotal: 25, fee: 40, tax: 5, total: 70,
		},
		{
			name: "multiple line items",
			items: []model.LineItem{
				{Name: "pizza", Price: 150, Quantity: 2},
				{Name: "soda", Price: 30, Quantity: 4},
			},
			subtotal: 420, fee: 40, tax: 76, total: 536,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote := PriceOrder(tc.items)
			if quote.Subtotal != tc.subtotal {
				t.Errorf("subtotal: expected %d, got %d", tc.subtotal, quote.Subtotal)
			}
			if quote.DeliveryFee != tc.fee {
				t.Errorf("delivery fee: expected %d, got %d", tc.fee, quote.DeliveryFee)
			}
			if quote.Tax != tc.tax {
				t.Errorf("tax: expected %d, got %d", tc.tax, quote.Tax)
			}
			if quote.Total != tc.total {
				t.Errorf("total: expected %d, got %d", tc.total, quote.Total)
			}
			if quote.Total != quote.Subtotal+quote.DeliveryFee+quote.Tax {
				t.Errorf("total must equal subtotal+fee+tax, got %+v", quote)
			}
		})
	}
}

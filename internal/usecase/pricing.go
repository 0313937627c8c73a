package usecase

import "github.com/feastline/orderd/internal/domain/model"

// Pricing constants, in minor currency units. Orders above the threshold
// ship free; the tax rate applies to the subtotal only.
const (
	freeDeliveryThreshold = 500
	deliveryFee           = 40
	taxRatePercent        = 18
)

// Quote is the price breakdown of an order at creation time.
type Quote struct {
	Subtotal    int64
	DeliveryFee int64
	Tax         int64
	Total       int64
}

// PriceOrder computes the immutable total for a line-item sequence. Tax is
// rounded half-up to the nearest minor unit.
func PriceOrder(items []model.LineItem) Quote {
	var subtotal int64
	for _, item := range items {
		subtotal += item.Price * int64(item.Quantity)
	}

	var fee int64
	if subtotal <= freeDeliveryThreshold {
		fee = deliveryFee
	}
	tax := (subtotal*taxRatePercent + 50) / 100

	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal + fee + tax,
	}
}

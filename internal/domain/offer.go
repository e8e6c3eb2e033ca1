package domain

// Offer is a promotional code held by the common service.
// A flat Discount and the DiscountPercentage/MaxDiscount pair are mutually exclusive.
type Offer struct {
	ID                 string   `json:"id,omitempty"`
	Promocode          string   `json:"promocode" validate:"required,max=20"`
	Description        string   `json:"description" validate:"required"`
	Discount           *float64 `json:"discount,omitempty"`
	DiscountPercentage *float64 `json:"discountPercentage,omitempty"`
	MaxDiscount        *float64 `json:"maxDiscount,omitempty"`
	MinFare            float64  `json:"minFare" validate:"gte=0"`
	State              string   `json:"state" validate:"required"`
	City               string   `json:"city" validate:"required"`
	PromoStartDate     string   `json:"promoStartDate" validate:"required"`
	PromoEndDate       string   `json:"promoEndDate" validate:"required"`
}

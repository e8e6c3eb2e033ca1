package service

import (
	"cabadmin/internal/domain"
	"cabadmin/internal/listing"
)

// UserSchema lists the searchable and sortable user fields.
var UserSchema = listing.Schema[domain.User]{
	Searchable: []listing.Field[domain.User]{
		{Name: "name", Value: func(u domain.User) any { return u.Name }},
		{Name: "email", Value: func(u domain.User) any { return u.Email }},
		{Name: "phone", Value: func(u domain.User) any { return u.Phone }},
		{Name: "role", Value: func(u domain.User) any { return string(u.Role) }},
	},
	Sortable: []listing.Field[domain.User]{
		{Name: "name", Value: func(u domain.User) any { return u.Name }},
		{Name: "email", Value: func(u domain.User) any { return u.Email }},
		{Name: "role", Value: func(u domain.User) any { return string(u.Role) }},
		{Name: "verified", Value: func(u domain.User) any { return u.Verified }},
		{Name: "createdAt", Value: func(u domain.User) any { return u.CreatedAt }},
	},
}

// CabSchema lists the searchable and sortable cab registration fields.
var CabSchema = listing.Schema[domain.CabRegistration]{
	Searchable: []listing.Field[domain.CabRegistration]{
		{Name: "ownerName", Value: func(c domain.CabRegistration) any { return c.OwnerName }},
		{Name: "driverName", Value: func(c domain.CabRegistration) any { return c.DriverName }},
		{Name: "cabNumber", Value: func(c domain.CabRegistration) any { return c.Cab.Number }},
		{Name: "cabName", Value: func(c domain.CabRegistration) any { return c.Cab.Name }},
		{Name: "city", Value: func(c domain.CabRegistration) any { return c.Cab.City }},
	},
	Sortable: []listing.Field[domain.CabRegistration]{
		{Name: "ownerName", Value: func(c domain.CabRegistration) any { return c.OwnerName }},
		{Name: "driverName", Value: func(c domain.CabRegistration) any { return c.DriverName }},
		{Name: "cabName", Value: func(c domain.CabRegistration) any { return c.Cab.Name }},
		{Name: "city", Value: func(c domain.CabRegistration) any { return c.Cab.City }},
		{Name: "perKmRate", Value: func(c domain.CabRegistration) any { return c.PerKmRate }},
		{Name: "baseFare", Value: func(c domain.CabRegistration) any { return c.BaseFare }},
		{Name: "capacity", Value: func(c domain.CabRegistration) any { return c.Cab.Capacity }},
		{Name: "status", Value: func(c domain.CabRegistration) any { return string(c.Status) }},
	},
}

// BookingSchema lists the searchable and sortable booking fields.
var BookingSchema = listing.Schema[domain.Booking]{
	Searchable: []listing.Field[domain.Booking]{
		{Name: "bookingId", Value: func(b domain.Booking) any { return b.BookingID }},
		{Name: "userId", Value: func(b domain.Booking) any { return b.UserID }},
		{Name: "pickupLocation", Value: func(b domain.Booking) any { return b.PickupLocation }},
		{Name: "dropLocation", Value: func(b domain.Booking) any { return b.DropLocation }},
		{Name: "bookingStatus", Value: func(b domain.Booking) any { return string(b.BookingStatus) }},
	},
	Sortable: []listing.Field[domain.Booking]{
		{Name: "bookingId", Value: func(b domain.Booking) any { return b.BookingID }},
		{Name: "pickupDateTime", Value: func(b domain.Booking) any { return b.PickupDateTime }},
		{Name: "dropDateTime", Value: func(b domain.Booking) any { return b.DropDateTime }},
		{Name: "fare", Value: func(b domain.Booking) any { return b.Fare }},
		{Name: "balanceAmount", Value: func(b domain.Booking) any { return b.BalanceAmount }},
		{Name: "bookingStatus", Value: func(b domain.Booking) any { return string(b.BookingStatus) }},
	},
}

// OfferSchema lists the searchable and sortable offer fields.
var OfferSchema = listing.Schema[domain.Offer]{
	Searchable: []listing.Field[domain.Offer]{
		{Name: "promocode", Value: func(o domain.Offer) any { return o.Promocode }},
		{Name: "city", Value: func(o domain.Offer) any { return o.City }},
		{Name: "state", Value: func(o domain.Offer) any { return o.State }},
		{Name: "description", Value: func(o domain.Offer) any { return o.Description }},
	},
	Sortable: []listing.Field[domain.Offer]{
		{Name: "promocode", Value: func(o domain.Offer) any { return o.Promocode }},
		{Name: "minFare", Value: func(o domain.Offer) any { return o.MinFare }},
		{Name: "discount", Value: func(o domain.Offer) any { return o.Discount }},
		{Name: "discountPercentage", Value: func(o domain.Offer) any { return o.DiscountPercentage }},
		{Name: "promoStartDate", Value: func(o domain.Offer) any { return o.PromoStartDate }},
		{Name: "promoEndDate", Value: func(o domain.Offer) any { return o.PromoEndDate }},
	},
}

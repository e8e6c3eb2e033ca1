package service

import (
	"context"

	"cabadmin/internal/domain"
	"cabadmin/internal/listing"
)

// OfferService handles promotional offer pages.
type OfferService struct {
	upstream UpstreamFor
	activity *ActivityService
}

// NewOfferService creates a new OfferService.
func NewOfferService(upstream UpstreamFor, activity *ActivityService) *OfferService {
	return &OfferService{upstream: upstream, activity: activity}
}

// List returns one page of offers matching q.
func (s *OfferService) List(ctx context.Context, session *domain.Session, q listing.Query) (listing.Page[domain.Offer], error) {
	offers, err := s.upstream(session.AuthToken).ListOffers(ctx)
	if err != nil {
		return listing.Page[domain.Offer]{}, err
	}
	return listing.Apply(offers, q, OfferSchema), nil
}

// Get returns a single offer.
func (s *OfferService) Get(ctx context.Context, session *domain.Session, id string) (*domain.Offer, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	return s.upstream(session.AuthToken).GetOffer(ctx, id)
}

// Create validates and creates an offer.
func (s *OfferService) Create(ctx context.Context, session *domain.Session, offer domain.Offer) (*domain.Offer, error) {
	if err := validateOffer(offer); err != nil {
		return nil, err
	}

	created, err := s.upstream(session.AuthToken).CreateOffer(ctx, offer)
	if err != nil {
		return nil, err
	}
	s.activity.Record(ctx, session, Change{
		Event:    EventOfferCreated,
		Entity:   "offer",
		EntityID: created.ID,
		Detail:   created.Promocode,
	})
	return created, nil
}

// Update validates and replaces an offer.
func (s *OfferService) Update(ctx context.Context, session *domain.Session, id string, offer domain.Offer) (*domain.Offer, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	if err := validateOffer(offer); err != nil {
		return nil, err
	}
	offer.ID = id

	updated, err := s.upstream(session.AuthToken).UpdateOffer(ctx, id, offer)
	if err != nil {
		return nil, err
	}
	s.activity.Record(ctx, session, Change{
		Event:    EventOfferUpdated,
		Entity:   "offer",
		EntityID: id,
		Detail:   updated.Promocode,
	})
	return updated, nil
}

// Delete removes an offer once confirmed.
func (s *OfferService) Delete(ctx context.Context, session *domain.Session, id string, confirmed bool) error {
	if id == "" {
		return ErrInvalidID
	}
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := s.upstream(session.AuthToken).DeleteOffer(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, session, Change{
		Event:    EventOfferDeleted,
		Entity:   "offer",
		EntityID: id,
	})
	return nil
}

// validateOffer checks struct tags plus the discount rules: either a flat discount or a
// percentage with a cap, and a start date no later than the end date.
func validateOffer(o domain.Offer) error {
	verr := &ValidationError{}

	flat := o.Discount != nil
	percent := o.DiscountPercentage != nil || o.MaxDiscount != nil
	switch {
	case flat && percent:
		verr.Add("discount", "cannot be combined with discountPercentage or maxDiscount")
	case !flat && !percent:
		verr.Add("discount", "either discount or discountPercentage with maxDiscount is required")
	case flat:
		if *o.Discount <= 0 {
			verr.Add("discount", "must be greater than 0")
		}
	default:
		if o.DiscountPercentage == nil {
			verr.Add("discountPercentage", "is required")
		} else if p := *o.DiscountPercentage; p <= 0 || p > 100 {
			verr.Add("discountPercentage", "must be greater than 0 and at most 100")
		}
		if o.MaxDiscount == nil {
			verr.Add("maxDiscount", "is required")
		} else if *o.MaxDiscount <= 0 {
			verr.Add("maxDiscount", "must be greater than 0")
		}
	}

	start, okStart := listing.ParseTime(o.PromoStartDate)
	end, okEnd := listing.ParseTime(o.PromoEndDate)
	if o.PromoStartDate != "" && !okStart {
		verr.Add("promoStartDate", "must be a date")
	}
	if o.PromoEndDate != "" && !okEnd {
		verr.Add("promoEndDate", "must be a date")
	}
	if okStart && okEnd && start.After(end) {
		verr.Add("promoEndDate", "must not be before promoStartDate")
	}

	return validateStruct(o, verr)
}

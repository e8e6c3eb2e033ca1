package service

import (
	"context"

	"cabadmin/internal/domain"
	"cabadmin/internal/listing"
)

// CabService handles cab registration pages.
type CabService struct {
	upstream UpstreamFor
	activity *ActivityService
}

// NewCabService creates a new CabService.
func NewCabService(upstream UpstreamFor, activity *ActivityService) *CabService {
	return &CabService{upstream: upstream, activity: activity}
}

// List returns one page of cab registrations matching q.
func (s *CabService) List(ctx context.Context, session *domain.Session, q listing.Query) (listing.Page[domain.CabRegistration], error) {
	cabs, err := s.upstream(session.AuthToken).ListCabs(ctx)
	if err != nil {
		return listing.Page[domain.CabRegistration]{}, err
	}
	return listing.Apply(cabs, q, CabSchema), nil
}

// Get returns a single cab registration.
func (s *CabService) Get(ctx context.Context, session *domain.Session, id string) (*domain.CabRegistration, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	return s.upstream(session.AuthToken).GetCab(ctx, id)
}

// Register validates and creates a cab registration.
func (s *CabService) Register(ctx context.Context, session *domain.Session, reg domain.CabRegistration) (*domain.CabRegistration, error) {
	if err := validateStruct(reg, nil); err != nil {
		return nil, err
	}

	created, err := s.upstream(session.AuthToken).RegisterCab(ctx, reg)
	if err != nil {
		return nil, err
	}
	s.activity.Record(ctx, session, Change{
		Event:    EventCabRegistered,
		Entity:   "cab",
		EntityID: created.RegistrationID,
		Detail:   created.Cab.Number,
	})
	return created, nil
}

// Update validates and replaces a cab registration.
func (s *CabService) Update(ctx context.Context, session *domain.Session, id string, reg domain.CabRegistration) (*domain.CabRegistration, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	if err := validateStruct(reg, nil); err != nil {
		return nil, err
	}
	reg.RegistrationID = id

	updated, err := s.upstream(session.AuthToken).UpdateCab(ctx, id, reg)
	if err != nil {
		return nil, err
	}
	s.activity.Record(ctx, session, Change{
		Event:    EventCabUpdated,
		Entity:   "cab",
		EntityID: id,
		Detail:   updated.Cab.Number,
	})
	return updated, nil
}

// Delete removes a cab registration once confirmed.
func (s *CabService) Delete(ctx context.Context, session *domain.Session, id string, confirmed bool) error {
	if id == "" {
		return ErrInvalidID
	}
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := s.upstream(session.AuthToken).DeleteCab(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, session, Change{
		Event:    EventCabDeleted,
		Entity:   "cab",
		EntityID: id,
	})
	return nil
}

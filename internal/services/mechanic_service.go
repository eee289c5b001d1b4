package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
)

// MechanicService holds the directory workflows: listing, lookup,
// search/ranking and profile registration.
type MechanicService struct {
	repo     domain.MechanicRepository
	userRepo domain.UserRepository
	geocoder domain.Geocoder
	bus      domain.EventBus
	logger   *slog.Logger
}

// NewMechanicService creates the directory service.
func NewMechanicService(repo domain.MechanicRepository, userRepo domain.UserRepository, geocoder domain.Geocoder, bus domain.EventBus, logger *slog.Logger) *MechanicService {
	return &MechanicService{
		repo:     repo,
		userRepo: userRepo,
		geocoder: geocoder,
		bus:      bus,
		logger:   logger,
	}
}

// List returns every profile in directory order.
func (s *MechanicService) List(ctx context.Context) ([]domain.MechanicProfile, error) {
	return s.repo.FindAll(ctx)
}

// Get returns a single profile by id.
func (s *MechanicService) Get(ctx context.Context, id string) (*domain.MechanicProfile, error) {
	if id == "" {
		return nil, domain.NewValidationError("Mechanic ID is required")
	}
	return s.repo.FindByID(ctx, id)
}

// Search runs the filter/rank engine over the whole directory. When
// distance sorting is requested without an explicit reference location,
// the free-text location query is geocoded as a fallback; explicit
// coordinates always win. A query that cannot be geocoded degrades to an
// unsorted result rather than failing the search.
func (s *MechanicService) Search(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	profiles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load directory: %w", err)
	}

	if query.SortByDistance && query.RefLocation == nil && query.LocationQuery != "" {
		coords, err := s.geocoder.Resolve(ctx, query.LocationQuery)
		if err == nil && coords != nil {
			query.RefLocation = coords
		}
	}

	return SearchMechanics(profiles, query), nil
}

// CreateProfileInput carries the fields of a profile registration.
type CreateProfileInput struct {
	ShopName    string
	ContactName string
	Description string
	Address     string
	Area        string
	City        string
	Pincode     string
	Coords      domain.Coordinates
	Services    []string
	Brands      []string
	Experience  int
}

// CreateProfile registers the shop profile for an existing account.
// Each account owns at most one profile.
func (s *MechanicService) CreateProfile(ctx context.Context, userID string, input CreateProfileInput) (*domain.MechanicProfile, error) {
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, domain.ErrUserNotFound
	}

	existing, err := s.repo.FindByUserID(ctx, userID)
	if err == nil && existing != nil {
		return nil, domain.ErrProfileAlreadyExists
	}

	now := time.Now()
	profile := &domain.MechanicProfile{
		ID:          uuid.NewString(),
		UserID:      userID,
		ShopName:    input.ShopName,
		ContactName: input.ContactName,
		Description: input.Description,
		Address:     input.Address,
		Area:        input.Area,
		City:        input.City,
		Pincode:     input.Pincode,
		Coords:      input.Coords,
		Services:    input.Services,
		Brands:      input.Brands,
		Experience:  input.Experience,
		Rating:      0,
		Verified:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.publish(ctx, domain.MechanicEvent{
		Type:       domain.MechanicCreatedEvent,
		MechanicID: profile.ID,
		OccurredAt: now,
	})

	return profile, nil
}

// MarkVerified flips the admin verification flag on a profile.
func (s *MechanicService) MarkVerified(ctx context.Context, id string) error {
	if err := s.repo.SetVerified(ctx, id, true); err != nil {
		return err
	}
	s.publish(ctx, domain.MechanicEvent{
		Type:       domain.MechanicVerifiedEvent,
		MechanicID: id,
		OccurredAt: time.Now(),
	})
	return nil
}

// publish is best effort: a dropped change notification only delays a
// listener's refresh.
func (s *MechanicService) publish(ctx context.Context, event domain.MechanicEvent) {
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Warn("publish mechanic event failed", "type", event.Type, "mechanic_id", event.MechanicID, "err", err)
	}
}

func validateProfileInput(input CreateProfileInput) error {
	switch {
	case input.ShopName == "":
		return domain.NewValidationError("Shop name is required")
	case input.ContactName == "":
		return domain.NewValidationError("Mechanic name is required")
	case input.Address == "":
		return domain.NewValidationError("Address is required")
	case input.Pincode == "":
		return domain.NewValidationError("Pincode is required")
	case len(input.Brands) == 0:
		return domain.NewValidationError("At least one brand must be selected")
	case len(input.Services) == 0:
		return domain.NewValidationError("At least one service must be selected")
	case !input.Coords.Valid():
		return domain.NewValidationError("Location coordinates are required")
	}
	return nil
}

package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"locator/config"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/geo"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/errors"
	"locator/internal/usecase"

	"go.uber.org/fx"
)

const maxRating = 5.0

type searchService struct {
	providerRepo repository.ProviderRepository
	publisher    service.EventPublisher
	clock        service.Clock
	config       *config.SearchConfig
	logger       *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	ProviderRepo repository.ProviderRepository
	Publisher    service.EventPublisher `optional:"true"`
	Clock        service.Clock          `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSearchService creates a new search service instance
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		providerRepo: params.ProviderRepo,
		publisher:    params.Publisher,
		clock:        service.ClockOrSystem(params.Clock),
		config:       params.Config.Search,
		logger:       params.Logger,
	}
}

// FindNearby returns active providers within the query radius
func (s *searchService) FindNearby(ctx context.Context, query *usecase.NearbyQuery) ([]*entity.DistanceAnnotatedProvider, error) {
	if query == nil {
		return nil, domainerrors.NewValidationError("query", "is required")
	}

	sortBy, err := s.validateNearby(query)
	if err != nil {
		return nil, err
	}

	candidates, err := s.providerRepo.FindWithinRadius(ctx, query.Point, query.RadiusKm)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find providers within radius")
	}

	hits := annotateWithinRadius(candidates, query.Point, query.RadiusKm)
	hits = filterHits(hits, query.MinRating, query.Service)
	sortHits(hits, sortBy)
	hits = s.capHits(hits)

	event := &service.SearchEvent{
		Kind:      service.SearchKindNearby,
		Longitude: &query.Point.Longitude,
		Latitude:  &query.Point.Latitude,
		RadiusKm:  &query.RadiusKm,
		MinRating: query.MinRating,
		SortBy:    string(sortBy),
	}
	if query.Service != nil {
		event.Service = string(*query.Service)
	}
	s.publishSearch(ctx, event, hits)

	return hits, nil
}

// TextSearch returns active providers whose name or address matches the query
func (s *searchService) TextSearch(ctx context.Context, query *usecase.TextQuery) ([]*entity.DistanceAnnotatedProvider, error) {
	if query == nil {
		return nil, domainerrors.NewValidationError("query", "is required")
	}

	text, radiusKm, sortBy, err := s.validateText(query)
	if err != nil {
		return nil, err
	}

	candidates, err := s.providerRepo.TextMatch(ctx, text)
	if err != nil {
		return nil, errors.Wrap(err, "failed to match providers by text")
	}

	var hits []*entity.DistanceAnnotatedProvider
	if query.Point != nil {
		hits = annotateWithinRadius(candidates, *query.Point, radiusKm)
		hits = filterHits(hits, query.MinRating, nil)
		sortHits(hits, sortBy)
	} else {
		hits = make([]*entity.DistanceAnnotatedProvider, 0, len(candidates))
		for _, p := range candidates {
			hits = append(hits, &entity.DistanceAnnotatedProvider{Provider: p})
		}
		// Without a point there is no distance to sort by and the store's
		// relevance order stands whatever sort_by says.
		hits = filterHits(hits, query.MinRating, nil)
	}
	hits = s.capHits(hits)

	event := &service.SearchEvent{
		Kind:      service.SearchKindText,
		Query:     text,
		MinRating: query.MinRating,
		SortBy:    string(sortBy),
	}
	if query.Point != nil {
		event.Longitude = &query.Point.Longitude
		event.Latitude = &query.Point.Latitude
		event.RadiusKm = &radiusKm
	}
	s.publishSearch(ctx, event, hits)

	return hits, nil
}

func (s *searchService) validateNearby(query *usecase.NearbyQuery) (entity.SortBy, error) {
	if err := geo.ValidatePoint(query.Point); err != nil {
		return "", err
	}
	if err := s.validateRadius(query.RadiusKm); err != nil {
		return "", err
	}
	if err := validateMinRating(query.MinRating); err != nil {
		return "", err
	}
	if query.Service != nil && !query.Service.IsValid() {
		return "", domainerrors.NewValidationError("service", fmt.Sprintf("unknown service type %q", *query.Service))
	}

	return normalizeSortBy(query.SortBy)
}

func (s *searchService) validateText(query *usecase.TextQuery) (string, float64, entity.SortBy, error) {
	text := strings.TrimSpace(query.Query)
	if text == "" {
		return "", 0, "", domainerrors.NewValidationError("query", "must not be empty")
	}

	var radiusKm float64
	switch {
	case query.Point == nil && query.RadiusKm != nil:
		return "", 0, "", domainerrors.NewValidationError("point", "is required when radius_km is given")
	case query.Point != nil:
		if err := geo.ValidatePoint(*query.Point); err != nil {
			return "", 0, "", err
		}
		radiusKm = s.config.DefaultRadiusKm
		if query.RadiusKm != nil {
			radiusKm = *query.RadiusKm
		}
		if err := s.validateRadius(radiusKm); err != nil {
			return "", 0, "", err
		}
	}

	if err := validateMinRating(query.MinRating); err != nil {
		return "", 0, "", err
	}

	sortBy, err := normalizeSortBy(query.SortBy)
	if err != nil {
		return "", 0, "", err
	}

	return text, radiusKm, sortBy, nil
}

func (s *searchService) validateRadius(radiusKm float64) error {
	if math.IsNaN(radiusKm) || radiusKm <= 0 || radiusKm > s.config.MaxRadiusKm {
		return domainerrors.NewValidationError("radius_km", fmt.Sprintf("must be greater than 0 and at most %g", s.config.MaxRadiusKm))
	}

	return nil
}

func validateMinRating(minRating *float64) error {
	if minRating == nil {
		return nil
	}
	if math.IsNaN(*minRating) || *minRating < 0 || *minRating > maxRating {
		return domainerrors.NewValidationError("min_rating", "must be between 0 and 5")
	}

	return nil
}

func normalizeSortBy(sortBy entity.SortBy) (entity.SortBy, error) {
	if sortBy == "" {
		return entity.SortByDistance, nil
	}
	if !sortBy.IsValid() {
		return "", domainerrors.NewValidationError("sort_by", "must be distance or rating")
	}

	return sortBy, nil
}

// annotateWithinRadius attaches the rounded haversine distance and drops
// candidates the store returned from outside the exact radius.
func annotateWithinRadius(candidates []*entity.Provider, point entity.GeoPoint, radiusKm float64) []*entity.DistanceAnnotatedProvider {
	hits := make([]*entity.DistanceAnnotatedProvider, 0, len(candidates))
	for _, p := range candidates {
		d := geo.HaversineKm(point, p.Location)
		if d > radiusKm {
			continue
		}
		rounded := geo.RoundKm(d)
		hits = append(hits, &entity.DistanceAnnotatedProvider{Provider: p, DistanceKm: &rounded})
	}

	return hits
}

func filterHits(hits []*entity.DistanceAnnotatedProvider, minRating *float64, serviceType *entity.ServiceType) []*entity.DistanceAnnotatedProvider {
	if minRating == nil && serviceType == nil {
		return hits
	}

	return slices.DeleteFunc(hits, func(h *entity.DistanceAnnotatedProvider) bool {
		if minRating != nil && h.Provider.Rating < *minRating {
			return true
		}

		return serviceType != nil && !h.Provider.Offers(*serviceType)
	})
}

// sortHits orders by distance (ties by ID) or by rating descending (ties by
// distance, then ID). Hits without a distance sort after those with one.
func sortHits(hits []*entity.DistanceAnnotatedProvider, sortBy entity.SortBy) {
	slices.SortStableFunc(hits, func(a, b *entity.DistanceAnnotatedProvider) int {
		if sortBy == entity.SortByRating && a.Provider.Rating != b.Provider.Rating {
			if a.Provider.Rating > b.Provider.Rating {
				return -1
			}

			return 1
		}

		if c := compareDistance(a.DistanceKm, b.DistanceKm); c != 0 {
			return c
		}

		if a.DistanceKm == nil && b.DistanceKm == nil {
			// Keep the incoming relevance order.
			return 0
		}

		return strings.Compare(a.Provider.ID.String(), b.Provider.ID.String())
	})
}

func compareDistance(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}

	return 0
}

func (s *searchService) capHits(hits []*entity.DistanceAnnotatedProvider) []*entity.DistanceAnnotatedProvider {
	if len(hits) > s.config.MaxResults {
		return hits[:s.config.MaxResults]
	}

	return hits
}

// publishSearch emits the search event in the background. Publishing never
// delays or fails the search itself.
func (s *searchService) publishSearch(ctx context.Context, event *service.SearchEvent, hits []*entity.DistanceAnnotatedProvider) {
	if s.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.ResultCount = len(hits)
	event.ProviderIDs = make([]string, 0, len(hits))
	for _, h := range hits {
		event.ProviderIDs = append(event.ProviderIDs, h.Provider.ID.String())
	}
	event.OccurredAt = s.clock.Now().UTC()

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.EventPublishTimeout)

	go func() {
		defer cancel()

		if err := s.publisher.PublishSearchEvent(pubCtx, event); err != nil {
			logger.Warn("Failed to publish search event",
				slog.String("kind", event.Kind),
				slog.Any("error", err),
			)
		}
	}()
}

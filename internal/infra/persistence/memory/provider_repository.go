package memory

import (
	"context"
	"slices"
	"strings"

	"locator/internal/domain/entity"
	"locator/internal/domain/geo"
	"locator/internal/domain/repository"

	"github.com/google/uuid"
)

type providerRepository struct {
	store *Store
}

// NewProviderRepository creates an in-memory provider directory.
func NewProviderRepository(store *Store) repository.ProviderRepository {
	return &providerRepository{store: store}
}

// GetActiveProvider returns the provider only if it is active.
func (r *providerRepository) GetActiveProvider(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	provider, err := r.GetProvider(ctx, id)
	if err != nil {
		return nil, err
	}
	if !provider.IsActive {
		return nil, repository.ErrProviderNotFound
	}

	return provider, nil
}

// GetProvider returns the provider regardless of its active state.
func (r *providerRepository) GetProvider(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	if err := checkContext(ctx, "failed to find provider"); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	provider, ok := r.store.providers[id]
	if !ok {
		return nil, repository.ErrProviderNotFound
	}

	return cloneProvider(provider), nil
}

// FindWithinRadius returns active providers inside the bounding box of the
// circle. Corners of the box lie outside the radius; callers re-check.
func (r *providerRepository) FindWithinRadius(ctx context.Context, point entity.GeoPoint, radiusKm float64) ([]*entity.Provider, error) {
	if err := checkContext(ctx, "failed to find providers within radius"); err != nil {
		return nil, err
	}

	bound := geo.BoundAround(point, radiusKm)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*entity.Provider, 0)
	for _, p := range r.store.providers {
		if p.IsActive && geo.Within(bound, p.Location) {
			result = append(result, cloneProvider(p))
		}
	}
	slices.SortFunc(result, func(a, b *entity.Provider) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	return result, nil
}

// TextMatch returns active providers whose name or address contains every
// word of the query, best matches first.
func (r *providerRepository) TextMatch(ctx context.Context, query string) ([]*entity.Provider, error) {
	if err := checkContext(ctx, "failed to match providers by text"); err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	tokens := strings.Fields(needle)
	if len(tokens) == 0 {
		return []*entity.Provider{}, nil
	}

	type scored struct {
		provider *entity.Provider
		score    int
	}

	r.store.mu.RLock()
	matches := make([]scored, 0)
	for _, p := range r.store.providers {
		if !p.IsActive {
			continue
		}
		if score := relevance(p, needle, tokens); score > 0 {
			matches = append(matches, scored{provider: cloneProvider(p), score: score})
		}
	}
	r.store.mu.RUnlock()

	slices.SortFunc(matches, func(a, b scored) int {
		if a.score != b.score {
			return b.score - a.score
		}
		if c := strings.Compare(a.provider.Name, b.provider.Name); c != 0 {
			return c
		}

		return strings.Compare(a.provider.ID.String(), b.provider.ID.String())
	})

	result := make([]*entity.Provider, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.provider)
	}

	return result, nil
}

// relevance scores a provider against the query: 0 means no match.
func relevance(p *entity.Provider, needle string, tokens []string) int {
	name := strings.ToLower(p.Name)
	address := strings.ToLower(p.Address)

	for _, token := range tokens {
		if !strings.Contains(name, token) && !strings.Contains(address, token) {
			return 0
		}
	}

	switch {
	case strings.HasPrefix(name, needle):
		return 4
	case strings.Contains(name, needle):
		return 3
	case strings.Contains(address, needle):
		return 2
	default:
		return 1
	}
}

// UpsertProvider creates or replaces a provider.
func (r *providerRepository) UpsertProvider(ctx context.Context, provider *entity.Provider) error {
	if err := checkContext(ctx, "failed to upsert provider"); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := cloneProvider(provider)
	now := r.store.clock.Now().UTC()
	if existing, ok := r.store.providers[provider.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	r.store.providers[provider.ID] = stored

	return nil
}

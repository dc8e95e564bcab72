package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"

	"locator/config"
	"locator/internal/domain/entity"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ProviderCacheParams defines the dependencies of the provider cache.
type ProviderCacheParams struct {
	fx.In

	Store  repository.ProviderRepository `name:"providerStore"`
	Cache  service.CacheProvider         `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// ProviderCacheResult exposes the cached repository and its invalidator.
type ProviderCacheResult struct {
	fx.Out

	Repository  repository.ProviderRepository
	Invalidator repository.ProviderCacheInvalidator
}

// cachedProviderRepository is a read-through cache over provider lookups by
// ID. Spatial and text queries always go to the store.
type cachedProviderRepository struct {
	repository.ProviderRepository

	cache      service.CacheProvider
	ttlSeconds int
	logger     *slog.Logger
}

// NewProviderCache wraps the store when a cache is configured and passes it
// through untouched otherwise.
func NewProviderCache(params ProviderCacheParams) ProviderCacheResult {
	if params.Cache == nil {
		return ProviderCacheResult{
			Repository:  params.Store,
			Invalidator: noopInvalidator{},
		}
	}

	ttlSeconds := 1
	if params.Config.Cache != nil {
		ttlSeconds = max(ttlSeconds, int(math.Ceil(params.Config.Cache.ProviderTTL.Seconds())))
	}

	cached := NewCachedProviderRepository(params.Store, params.Cache, ttlSeconds, params.Logger)

	return ProviderCacheResult{
		Repository:  cached,
		Invalidator: cached,
	}
}

// NewCachedProviderRepository decorates store with a read-through cache.
func NewCachedProviderRepository(
	store repository.ProviderRepository,
	cache service.CacheProvider,
	ttlSeconds int,
	logger *slog.Logger,
) *cachedProviderRepository {
	return &cachedProviderRepository{
		ProviderRepository: store,
		cache:              cache,
		ttlSeconds:         ttlSeconds,
		logger:             logger,
	}
}

func providerCacheKey(id uuid.UUID) string {
	return "provider:" + id.String()
}

// GetActiveProvider serves from cache and re-applies the active filter.
func (r *cachedProviderRepository) GetActiveProvider(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	provider, err := r.GetProvider(ctx, id)
	if err != nil {
		return nil, err
	}
	if !provider.IsActive {
		return nil, repository.ErrProviderNotFound
	}

	return provider, nil
}

// GetProvider retrieves a provider by ID with caching.
func (r *cachedProviderRepository) GetProvider(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	key := providerCacheKey(id)

	cached, err := r.cache.Get(ctx, key)
	switch {
	case err == nil:
		var provider entity.Provider
		if err := json.Unmarshal(cached, &provider); err == nil {
			return &provider, nil
		}
		r.logger.WarnContext(ctx, "Discarding undecodable cached provider", slog.String("key", key))
	case !errors.Is(err, ErrCacheMiss):
		r.logger.WarnContext(ctx, "Provider cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	provider, err := r.ProviderRepository.GetProvider(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(provider); err == nil {
		if err := r.cache.Set(ctx, key, data, r.ttlSeconds); err != nil {
			r.logger.WarnContext(ctx, "Provider cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return provider, nil
}

// UpsertProvider writes through to the store and evicts the cached copy.
func (r *cachedProviderRepository) UpsertProvider(ctx context.Context, provider *entity.Provider) error {
	if err := r.ProviderRepository.UpsertProvider(ctx, provider); err != nil {
		return err
	}

	return r.InvalidateProvider(ctx, provider.ID)
}

// InvalidateProvider evicts the cached copy of a provider.
func (r *cachedProviderRepository) InvalidateProvider(ctx context.Context, id uuid.UUID) error {
	if err := r.cache.Delete(ctx, providerCacheKey(id)); err != nil {
		return errors.Wrap(err, "failed to invalidate cached provider")
	}

	return nil
}

type noopInvalidator struct{}

func (noopInvalidator) InvalidateProvider(context.Context, uuid.UUID) error {
	return nil
}

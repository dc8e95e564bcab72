package postgres

import (
	"context"
	"strings"
	"time"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// providerRepository implements the repository.ProviderRepository interface.
type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(db *gorm.DB) repository.ProviderRepository {
	return &providerRepository{
		db: db,
	}
}

// GetActiveProvider returns the provider only if it exists and is active.
func (repo *providerRepository) GetActiveProvider(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	return repo.findProvider(ctx, repo.db.Where("id = ? AND is_active = ?", id, true))
}

// GetProvider returns the provider regardless of its active state.
func (repo *providerRepository) GetProvider(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	return repo.findProvider(ctx, repo.db.Where("id = ?", id))
}

func (repo *providerRepository) findProvider(ctx context.Context, scope *gorm.DB) (*entity.Provider, error) {
	var providerM model.ProviderModel

	if err := scope.WithContext(ctx).
		Preload("WorkingHours").
		First(&providerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find provider")
	}

	return toProviderDomain(&providerM), nil
}

// FindWithinRadius runs a PostGIS ST_DWithin query over the geography column,
// which is backed by a GiST index. Distances on geography are in meters.
func (repo *providerRepository) FindWithinRadius(ctx context.Context, point entity.GeoPoint, radiusKm float64) ([]*entity.Provider, error) {
	var providerModels []*model.ProviderModel

	if err := repo.db.WithContext(ctx).
		Preload("WorkingHours").
		Where("is_active = ?", true).
		Where("ST_DWithin(location, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)",
			point.Longitude, point.Latitude, radiusKm*1000).
		Order("id").
		Find(&providerModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find providers within radius")
	}

	return toProviderDomains(providerModels), nil
}

// TextMatch returns active providers whose name or address contains every
// word of the query. Name prefix matches rank first, then name matches, then
// address matches.
func (repo *providerRepository) TextMatch(ctx context.Context, query string) ([]*entity.Provider, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	tokens := strings.Fields(needle)
	if len(tokens) == 0 {
		return []*entity.Provider{}, nil
	}

	scope := repo.db.WithContext(ctx).
		Preload("WorkingHours").
		Where("is_active = ?", true)
	for _, token := range tokens {
		pattern := "%" + escapeLike(token) + "%"
		scope = scope.Where("(name ILIKE ? OR address ILIKE ?)", pattern, pattern)
	}

	prefix := escapeLike(needle) + "%"
	contains := "%" + escapeLike(needle) + "%"
	relevance := clause.OrderBy{Expression: clause.Expr{
		SQL:                "CASE WHEN name ILIKE ? THEN 4 WHEN name ILIKE ? THEN 3 WHEN address ILIKE ? THEN 2 ELSE 1 END DESC",
		Vars:               []any{prefix, contains, contains},
		WithoutParentheses: true,
	}}

	var providerModels []*model.ProviderModel
	if err := scope.
		Order(relevance).
		Order("name").
		Order("id").
		Find(&providerModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to match providers by text")
	}

	return toProviderDomains(providerModels), nil
}

// UpsertProvider creates or replaces a provider and its working hours. It is
// meant to run inside txManager.Execute so the hours swap is atomic.
func (repo *providerRepository) UpsertProvider(ctx context.Context, provider *entity.Provider) error {
	providerM := fromProviderDomain(provider)
	now := time.Now().UTC()
	if providerM.CreatedAt.IsZero() {
		providerM.CreatedAt = now
	}
	providerM.UpdatedAt = now

	db := repo.db.WithContext(ctx)

	if err := db.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"owner_id", "name", "address", "latitude", "longitude",
				"rating", "services", "is_active", "updated_at",
			}),
		}).
		Create(providerM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("provider", "violates a storage constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert provider")
	}

	if err := db.
		Where("provider_id = ?", provider.ID).
		Delete(&model.WorkingHoursModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear working hours")
	}

	if len(providerM.WorkingHours) == 0 {
		return nil
	}

	if err := db.Create(&providerM.WorkingHours).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store working hours")
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

func toProviderDomains(data []*model.ProviderModel) []*entity.Provider {
	providers := make([]*entity.Provider, 0, len(data))
	for _, providerM := range data {
		providers = append(providers, toProviderDomain(providerM))
	}

	return providers
}

// toProviderDomain converts a GORM ProviderModel to a domain Provider entity.
func toProviderDomain(data *model.ProviderModel) *entity.Provider {
	if data == nil {
		return nil
	}

	services := make([]entity.ServiceType, 0, len(data.Services))
	for _, s := range data.Services {
		services = append(services, entity.ServiceType(s))
	}

	hours := make(entity.WorkingHours, len(data.WorkingHours))
	for _, h := range data.WorkingHours {
		hours[time.Weekday(h.Weekday)] = entity.DayHours{
			Open:   entity.Slot(h.OpenMinute),
			Close:  entity.Slot(h.CloseMinute),
			Closed: h.Closed,
		}
	}

	return &entity.Provider{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Address:      data.Address,
		Location:     entity.NewGeoPoint(data.Longitude, data.Latitude),
		Rating:       data.Rating,
		Services:     services,
		WorkingHours: hours,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromProviderDomain converts a domain Provider entity to a GORM ProviderModel.
func fromProviderDomain(data *entity.Provider) *model.ProviderModel {
	if data == nil {
		return nil
	}

	hours := make([]model.WorkingHoursModel, 0, len(data.WorkingHours))
	for day := time.Sunday; day <= time.Saturday; day++ {
		h, ok := data.WorkingHours[day]
		if !ok {
			continue
		}
		hours = append(hours, model.WorkingHoursModel{
			ProviderID:  data.ID,
			Weekday:     int16(day),
			OpenMinute:  int(h.Open),
			CloseMinute: int(h.Close),
			Closed:      h.Closed,
		})
	}

	return &model.ProviderModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Address:      data.Address,
		Latitude:     data.Location.Latitude,
		Longitude:    data.Location.Longitude,
		Rating:       data.Rating,
		Services:     datatypes.NewJSONSlice(data.ServiceNames()),
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		WorkingHours: hours,
	}
}

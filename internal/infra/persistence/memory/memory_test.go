package memory

import (
	"context"
	"testing"
	"time"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var center = entity.NewGeoPoint(-73.9352, 40.7306)

func provider(name, address string, latOffset float64, active bool) *entity.Provider {
	return &entity.Provider{
		ID:       uuid.New(),
		Name:     name,
		Address:  address,
		Location: entity.NewGeoPoint(center.Longitude, center.Latitude+latOffset),
		IsActive: active,
	}
}

func TestProviderRepository_FindWithinRadius(t *testing.T) {
	ctx := context.Background()
	repo := NewProviderRepository(NewStore())

	near := provider("Near", "", 0.01, true)
	far := provider("Far", "", 0.2, true)
	inactive := provider("Inactive", "", 0.01, false)
	for _, p := range []*entity.Provider{near, far, inactive} {
		require.NoError(t, repo.UpsertProvider(ctx, p))
	}

	got, err := repo.FindWithinRadius(ctx, center, 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, near.ID, got[0].ID)
}

func TestProviderRepository_GetActiveProvider(t *testing.T) {
	ctx := context.Background()
	repo := NewProviderRepository(NewStore())

	inactive := provider("Inactive", "", 0, false)
	require.NoError(t, repo.UpsertProvider(ctx, inactive))

	_, err := repo.GetActiveProvider(ctx, inactive.ID)
	assert.ErrorIs(t, err, repository.ErrProviderNotFound)

	got, err := repo.GetProvider(ctx, inactive.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inactive", got.Name)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestProviderRepository_TextMatch(t *testing.T) {
	ctx := context.Background()
	repo := NewProviderRepository(NewStore())

	fixtures := []*entity.Provider{
		provider("Queens Tire Pros", "12 Auto Row, Queens", 0, true),
		provider("Auto Express", "1 Main St", 0, true),
		provider("Downtown Auto", "350 5th Ave", 0, true),
		provider("Closed Auto", "9 Main St", 0, false),
		provider("Brake Masters", "77 Elm St", 0, true),
	}
	for _, p := range fixtures {
		require.NoError(t, repo.UpsertProvider(ctx, p))
	}

	got, err := repo.TextMatch(ctx, "AUTO")
	require.NoError(t, err)

	gotNames := make([]string, 0, len(got))
	for _, p := range got {
		gotNames = append(gotNames, p.Name)
	}
	assert.Equal(t, []string{"Auto Express", "Downtown Auto", "Queens Tire Pros"}, gotNames)

	got, err = repo.TextMatch(ctx, "main express")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Auto Express", got[0].Name)
}

func TestAppointmentRepository_InsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository(NewStore())

	providerID := uuid.New()
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	slot := entity.NewSlot(9, 0)

	first := &entity.Appointment{ID: uuid.New(), ProviderID: providerID, Date: date, Slot: slot, Status: entity.StatusPending}
	require.NoError(t, repo.InsertIfAbsent(ctx, first))

	second := &entity.Appointment{ID: uuid.New(), ProviderID: providerID, Date: date, Slot: slot, Status: entity.StatusPending}
	assert.ErrorIs(t, repo.InsertIfAbsent(ctx, second), repository.ErrSlotTaken)

	otherSlot := &entity.Appointment{ID: uuid.New(), ProviderID: providerID, Date: date, Slot: entity.NewSlot(10, 0), Status: entity.StatusPending}
	require.NoError(t, repo.InsertIfAbsent(ctx, otherSlot))

	_, err := repo.UpdateStatus(ctx, repository.StatusChange{ID: first.ID, From: entity.StatusPending, To: entity.StatusCancelled, At: time.Now()})
	require.NoError(t, err)
	require.NoError(t, repo.InsertIfAbsent(ctx, second))

	held, err := repo.FindByProviderAndDate(ctx, providerID, date, entity.SlotHoldingStatuses)
	require.NoError(t, err)
	require.Len(t, held, 2)
	assert.Equal(t, second.ID, held[0].ID)
	assert.Equal(t, otherSlot.ID, held[1].ID)
}

func TestAppointmentRepository_CompletedKeepsSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository(NewStore())

	providerID := uuid.New()
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	slot := entity.NewSlot(9, 0)

	done := &entity.Appointment{ID: uuid.New(), ProviderID: providerID, Date: date, Slot: slot, Status: entity.StatusCompleted}
	require.NoError(t, repo.InsertIfAbsent(ctx, done))

	held, err := repo.FindByProviderAndDate(ctx, providerID, date, entity.SlotHoldingStatuses)
	require.NoError(t, err)
	require.Len(t, held, 1)

	again := &entity.Appointment{ID: uuid.New(), ProviderID: providerID, Date: date, Slot: slot, Status: entity.StatusPending}
	assert.ErrorIs(t, repo.InsertIfAbsent(ctx, again), repository.ErrSlotTaken)
}

func TestAppointmentRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository(NewStore())

	appointment := &entity.Appointment{ID: uuid.New(), ProviderID: uuid.New(), Status: entity.StatusInProgress}
	require.NoError(t, repo.InsertIfAbsent(ctx, appointment))

	_, err := repo.UpdateStatus(ctx, repository.StatusChange{ID: appointment.ID, From: entity.StatusConfirmed, To: entity.StatusCancelled})
	assert.ErrorIs(t, err, repository.ErrStatusMismatch)

	cost := 89.99
	at := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	updated, err := repo.UpdateStatus(ctx, repository.StatusChange{
		ID:         appointment.ID,
		From:       entity.StatusInProgress,
		To:         entity.StatusCompleted,
		ActualCost: &cost,
		At:         at,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, updated.Status)
	assert.Equal(t, 89.99, *updated.ActualCost)
	assert.Equal(t, at, updated.UpdatedAt)
	assert.Nil(t, updated.CancelledAt)

	_, err = repo.UpdateStatus(ctx, repository.StatusChange{ID: uuid.New(), From: entity.StatusPending, To: entity.StatusConfirmed})
	assert.ErrorIs(t, err, repository.ErrAppointmentNotFound)
}

func TestStore_CancelledContextIsStoreError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore()
	providers := NewProviderRepository(store)
	appointments := NewAppointmentRepository(store)
	searchLog := NewSearchLogRepository(store)

	calls := map[string]func() error{
		"insert appointment": func() error {
			return appointments.InsertIfAbsent(ctx, &entity.Appointment{ID: uuid.New()})
		},
		"update status": func() error {
			_, err := appointments.UpdateStatus(ctx, repository.StatusChange{ID: uuid.New()})
			return err
		},
		"find within radius": func() error {
			_, err := providers.FindWithinRadius(ctx, center, 5)
			return err
		},
		"text match": func() error {
			_, err := providers.TextMatch(ctx, "auto")
			return err
		},
		"append search": func() error {
			return searchLog.AppendSearch(ctx, &service.SearchEvent{})
		},
		"transaction": func() error {
			return NewTransactionManager(store).Execute(ctx, func(repository.RepositoryFactory) error {
				t.Fatal("fn must not run on a cancelled context")

				return nil
			})
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			assert.ErrorIs(t, err, context.Canceled)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
		})
	}
}

type stubClock struct{ now time.Time }

func (c stubClock) Now() time.Time { return c.now }

func TestProviderRepository_UpsertUsesStoreClock(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	clock := &stubClock{now: created}
	repo := NewProviderRepository(NewStore(WithClock(clock)))

	p := provider("Clocked", "", 0, true)
	require.NoError(t, repo.UpsertProvider(ctx, p))

	clock.now = created.Add(time.Hour)
	require.NoError(t, repo.UpsertProvider(ctx, p))

	got, err := repo.GetProvider(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, created.Add(time.Hour), got.UpdatedAt)
}

func TestSearchLogRepository(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewSearchLogRepository(store)

	require.NoError(t, repo.AppendSearch(ctx, &service.SearchEvent{Kind: service.SearchKindNearby, ResultCount: 3}))
	require.NoError(t, repo.AppendAppointmentEvent(ctx, &service.AppointmentEvent{Status: "pending"}))

	require.Len(t, store.Searches(), 1)
	assert.Equal(t, 3, store.Searches()[0].ResultCount)
	require.Len(t, store.AppointmentEvents(), 1)
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	cachepkg "github.com/stpnv0/VaccineBooker/internal/cache"
	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/stpnv0/VaccineBooker/internal/repository/memory"
	"github.com/stpnv0/VaccineBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVaccineService(t *testing.T) (*VaccineService, *mocks.MockVaccineRepo, *mocks.MockVaccineCache) {
	repo := mocks.NewMockVaccineRepo(t)
	cache := mocks.NewMockVaccineCache(t)
	svc := NewVaccineService(repo, cache, newTestLogger(t))
	svc.now = func() time.Time { return fixedNow }
	return svc, repo, cache
}

func vaccineInput() domain.CreateVaccineInput {
	return domain.CreateVaccineInput{
		Name:         " MMR ",
		Description:  "Measles, mumps and rubella",
		Dosage:       "2 doses",
		Availability: time.Date(2026, 11, 1, 15, 0, 0, 0, time.UTC),
		Location:     "City Clinic",
		Price:        25,
	}
}

func TestVaccineService_Create_Defaults(t *testing.T) {
	svc, repo, cache := newVaccineService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything).Return(nil)

	v, err := svc.Create(context.Background(), vaccineInput())

	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "MMR", v.Name)
	assert.Equal(t, domain.DefaultAvailableSlots, v.AvailableSlots)
	assert.Equal(t, []domain.AgeGroup{domain.AgeGroupAll}, v.AgeGroups)
	assert.True(t, v.IsActive)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), v.Availability)
}

func TestVaccineService_Create_ExplicitZeroSlots(t *testing.T) {
	svc, repo, cache := newVaccineService(t)
	in := vaccineInput()
	zero, inactive := 0, false
	in.AvailableSlots = &zero
	in.IsActive = &inactive

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything).Return(nil)

	v, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, 0, v.AvailableSlots)
	assert.False(t, v.IsActive)
}

func TestVaccineService_Create_Invalid(t *testing.T) {
	svc, _, _ := newVaccineService(t)
	in := vaccineInput()
	in.AgeGroups = []domain.AgeGroup{"toddler"}

	_, err := svc.Create(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestVaccineService_Create_NameTaken(t *testing.T) {
	svc, repo, _ := newVaccineService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrVaccineNameTaken)

	_, err := svc.Create(context.Background(), vaccineInput())

	assert.ErrorIs(t, err, domain.ErrVaccineNameTaken)
}

// applyTo отвечает на repo.Update так же, как хранилище: apply над копией.
func applyTo(stored domain.Vaccine, taken int) func(context.Context, string, func(*domain.Vaccine) error) (*domain.Vaccine, error) {
	return func(_ context.Context, _ string, apply func(*domain.Vaccine) error) (*domain.Vaccine, error) {
		v := stored
		if err := apply(&v); err != nil {
			return nil, err
		}
		v.EnforceCapacity(taken)
		return &v, nil
	}
}

func TestVaccineService_Update_PartialMerge(t *testing.T) {
	svc, repo, cache := newVaccineService(t)
	stored := domain.Vaccine{
		ID: "v1", Name: "MMR", Description: "d", Dosage: "2 doses", Location: "City Clinic",
		Availability: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), AvailableSlots: 10,
		AgeGroups: []domain.AgeGroup{domain.AgeGroupChild}, IsActive: true,
	}

	repo.EXPECT().Update(mock.Anything, "v1", mock.Anything).RunAndReturn(applyTo(stored, 0))
	cache.EXPECT().Invalidate(mock.Anything).Return(errors.New("redis down"))

	price := 40.0
	v, err := svc.Update(context.Background(), "v1", domain.UpdateVaccineInput{Price: &price})

	require.NoError(t, err)
	assert.Equal(t, 40.0, v.Price)
	assert.Equal(t, "MMR", v.Name)
	assert.True(t, v.IsActive)
	assert.Equal(t, fixedNow, v.UpdatedAt)
}

func TestVaccineService_Update_InvalidLeavesStore(t *testing.T) {
	svc, repo, _ := newVaccineService(t)

	repo.EXPECT().Update(mock.Anything, "v1", mock.Anything).
		RunAndReturn(applyTo(domain.Vaccine{ID: "v1", Name: "MMR"}, 0))

	slots := -1
	_, err := svc.Update(context.Background(), "v1", domain.UpdateVaccineInput{AvailableSlots: &slots})

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestVaccineService_Update_NotFound(t *testing.T) {
	svc, repo, _ := newVaccineService(t)

	repo.EXPECT().Update(mock.Anything, "missing", mock.Anything).Return(nil, domain.ErrVaccineNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.UpdateVaccineInput{})

	assert.ErrorIs(t, err, domain.ErrVaccineNotFound)
}

func TestVaccineService_Create_ZeroSlotsIsInactive(t *testing.T) {
	svc, repo, cache := newVaccineService(t)
	in := vaccineInput()
	zero, active := 0, true
	in.AvailableSlots = &zero
	in.IsActive = &active

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(v *domain.Vaccine) bool {
		return !v.IsActive
	})).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything).Return(nil)

	v, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.False(t, v.IsActive)
}

// Проверки вместимости на настоящем хранилище в памяти.
func TestVaccineService_Update_KeepsFullVaccineClosed(t *testing.T) {
	ctx := context.Background()
	newSvc := func(t *testing.T) (*VaccineService, *memory.Store) {
		store := memory.NewStore()
		return NewVaccineService(store.Vaccines(), cachepkg.Noop{}, newTestLogger(t)), store
	}
	book := func(t *testing.T, store *memory.Store, vaccineID string) {
		t.Helper()
		_, err := store.Bookings().Create(ctx, &domain.Booking{
			ID: uuid.NewString(), VaccineID: vaccineID, BookingDate: fixedNow.AddDate(0, 0, 7),
			Status:   domain.BookingStatusPending,
			UserInfo: domain.UserInfo{Name: "Alice", Email: "alice@example.com", Phone: "+100"},
		})
		require.NoError(t, err)
	}
	publicIDs := func(t *testing.T, svc *VaccineService) []string {
		t.Helper()
		list, err := svc.ListPublic(ctx, domain.VaccineQuery{})
		require.NoError(t, err)
		ids := make([]string, 0, len(list))
		for _, v := range list {
			ids = append(ids, v.ID)
		}
		return ids
	}

	t.Run("activating a full vaccine", func(t *testing.T) {
		svc, store := newSvc(t)
		one := 1
		in := vaccineInput()
		in.AvailableSlots = &one
		v, err := svc.Create(ctx, in)
		require.NoError(t, err)
		book(t, store, v.ID)

		active := true
		price := 30.0
		got, err := svc.Update(ctx, v.ID, domain.UpdateVaccineInput{IsActive: &active, Price: &price})

		require.NoError(t, err)
		assert.False(t, got.IsActive)
		assert.NotContains(t, publicIDs(t, svc), v.ID)
	})

	t.Run("lowering slots to the booked count", func(t *testing.T) {
		svc, store := newSvc(t)
		v, err := svc.Create(ctx, vaccineInput())
		require.NoError(t, err)
		book(t, store, v.ID)
		book(t, store, v.ID)

		two := 2
		got, err := svc.Update(ctx, v.ID, domain.UpdateVaccineInput{AvailableSlots: &two})

		require.NoError(t, err)
		assert.False(t, got.IsActive)
		assert.NotContains(t, publicIDs(t, svc), v.ID)
	})

	t.Run("created without slots", func(t *testing.T) {
		svc, _ := newSvc(t)
		zero := 0
		in := vaccineInput()
		in.AvailableSlots = &zero
		v, err := svc.Create(ctx, in)
		require.NoError(t, err)

		assert.False(t, v.IsActive)
		assert.NotContains(t, publicIDs(t, svc), v.ID)
	})
}

func TestVaccineService_Delete(t *testing.T) {
	svc, repo, cache := newVaccineService(t)

	repo.EXPECT().Delete(mock.Anything, "v1").Return(nil)
	cache.EXPECT().Invalidate(mock.Anything).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "v1"))
}

func TestVaccineService_Delete_NotFound(t *testing.T) {
	svc, repo, _ := newVaccineService(t)

	repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrVaccineNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), domain.ErrVaccineNotFound)
}

func TestVaccineService_ListPublic_UsesCache(t *testing.T) {
	svc, repo, cache := newVaccineService(t)
	list := []*domain.Vaccine{{ID: "v1", IsActive: true}}

	want := domain.VaccineQuery{
		Search:     "mmr",
		SortBy:     domain.SortByPrice,
		SortOrder:  domain.SortAsc,
		ActiveOnly: true,
	}
	repo.EXPECT().List(mock.Anything, want).Return(list, nil)
	cache.EXPECT().GetOrLoad(mock.Anything, want, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.VaccineQuery, load func(context.Context) ([]*domain.Vaccine, error)) ([]*domain.Vaccine, error) {
			return load(ctx)
		})

	got, err := svc.ListPublic(context.Background(), domain.VaccineQuery{Search: " mmr ", SortBy: domain.SortByPrice})

	require.NoError(t, err)
	assert.Equal(t, list, got)
}

func TestVaccineService_ListPublic_BadSort(t *testing.T) {
	svc, _, _ := newVaccineService(t)

	_, err := svc.ListPublic(context.Background(), domain.VaccineQuery{SortBy: "popularity"})

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestVaccineService_ListAll_BypassesCache(t *testing.T) {
	svc, repo, _ := newVaccineService(t)

	repo.EXPECT().List(mock.Anything, mock.MatchedBy(func(q domain.VaccineQuery) bool {
		return !q.ActiveOnly && q.SortBy == domain.SortByName && q.SortOrder == domain.SortDesc
	})).Return([]*domain.Vaccine{{ID: "v1"}, {ID: "v2", IsActive: false}}, nil)

	got, err := svc.ListAll(context.Background(), domain.VaccineQuery{SortOrder: domain.SortDesc, ActiveOnly: true})

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

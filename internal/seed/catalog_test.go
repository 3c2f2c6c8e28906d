package seed

import (
	"context"
	"testing"

	"github.com/stpnv0/VaccineBooker/internal/cache"
	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/stpnv0/VaccineBooker/internal/repository/memory"
	"github.com/stpnv0/VaccineBooker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestCatalog_Valid(t *testing.T) {
	inputs, err := Catalog()
	require.NoError(t, err)
	require.Len(t, inputs, len(catalog))

	names := make(map[string]struct{}, len(inputs))
	for _, in := range inputs {
		_, dup := names[in.Name]
		assert.False(t, dup, "duplicate name %q", in.Name)
		names[in.Name] = struct{}{}

		require.NotNil(t, in.AvailableSlots)
		assert.Positive(t, *in.AvailableSlots)
		for _, g := range in.AgeGroups {
			assert.True(t, g.Valid(), "%s: invalid age group %q", in.Name, g)
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	log := newTestLogger(t)
	store := memory.NewStore()
	svc := service.NewVaccineService(store.Vaccines(), cache.Noop{}, log)
	ctx := context.Background()

	created, err := Run(ctx, svc, log)
	require.NoError(t, err)
	assert.Equal(t, len(catalog), created)

	created, err = Run(ctx, svc, log)
	require.NoError(t, err)
	assert.Zero(t, created)

	list, err := svc.ListAll(ctx, domain.VaccineQuery{})
	require.NoError(t, err)
	assert.Len(t, list, len(catalog))
}

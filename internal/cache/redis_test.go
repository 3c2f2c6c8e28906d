package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stpnv0/VaccineBooker/internal/domain"
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

func publicQuery() domain.VaccineQuery {
	return domain.VaccineQuery{
		SortBy:     domain.SortByName,
		SortOrder:  domain.SortAsc,
		ActiveOnly: true,
	}
}

func TestVaccineCache_MissLoadsAndStores(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewVaccineCache(db, "vb:", time.Minute, newTestLogger(t))
	ctx := context.Background()
	q := publicQuery()

	list := []*domain.Vaccine{{ID: "v1", Name: "MMR", IsActive: true}}
	data, err := json.Marshal(list)
	require.NoError(t, err)
	key := "vb:vaccines:v0:" + q.CacheKey()

	mock.ExpectGet("vb:vaccines:version").RedisNil()
	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, string(data), time.Minute).SetVal("OK")

	var loads atomic.Int32
	got, err := c.GetOrLoad(ctx, q, func(context.Context) ([]*domain.Vaccine, error) {
		loads.Add(1)
		return list, nil
	})

	require.NoError(t, err)
	assert.Equal(t, list, got)
	assert.EqualValues(t, 1, loads.Load())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaccineCache_LoadSurvivesCallerCancel(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewVaccineCache(db, "vb:", time.Minute, newTestLogger(t))
	type ctxKey struct{}
	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "req-1"))
	defer cancel()
	q := publicQuery()

	list := []*domain.Vaccine{{ID: "v1", Name: "MMR", IsActive: true}}
	data, err := json.Marshal(list)
	require.NoError(t, err)
	key := "vb:vaccines:v0:" + q.CacheKey()

	mock.ExpectGet("vb:vaccines:version").RedisNil()
	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, string(data), time.Minute).SetVal("OK")

	got, err := c.GetOrLoad(ctx, q, func(loadCtx context.Context) ([]*domain.Vaccine, error) {
		// Первый вызывающий ушёл, пока загрузка идёт.
		cancel()
		assert.NoError(t, loadCtx.Err())
		assert.Equal(t, "req-1", loadCtx.Value(ctxKey{}))
		return list, nil
	})

	require.NoError(t, err)
	assert.Equal(t, list, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaccineCache_HitSkipsLoader(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewVaccineCache(db, "vb:", time.Minute, newTestLogger(t))
	q := publicQuery()

	data, err := json.Marshal([]*domain.Vaccine{{ID: "v1", Name: "MMR"}, {ID: "v2", Name: "BCG"}})
	require.NoError(t, err)

	mock.ExpectGet("vb:vaccines:version").SetVal("3")
	mock.ExpectGet("vb:vaccines:v3:" + q.CacheKey()).SetVal(string(data))

	got, err := c.GetOrLoad(context.Background(), q, func(context.Context) ([]*domain.Vaccine, error) {
		t.Fatal("loader must not be called on a hit")
		return nil, nil
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "v1", got[0].ID)
	assert.Equal(t, "BCG", got[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaccineCache_RedisDownFallsBackToLoader(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewVaccineCache(db, "vb:", time.Minute, newTestLogger(t))

	mock.ExpectGet("vb:vaccines:version").SetErr(errors.New("connection refused"))

	got, err := c.GetOrLoad(context.Background(), publicQuery(), func(context.Context) ([]*domain.Vaccine, error) {
		return []*domain.Vaccine{{ID: "v1"}}, nil
	})

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaccineCache_LoaderErrorNotCached(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewVaccineCache(db, "vb:", time.Minute, newTestLogger(t))
	q := publicQuery()

	mock.ExpectGet("vb:vaccines:version").RedisNil()
	mock.ExpectGet("vb:vaccines:v0:" + q.CacheKey()).RedisNil()

	_, err := c.GetOrLoad(context.Background(), q, func(context.Context) ([]*domain.Vaccine, error) {
		return nil, domain.ErrStorage
	})

	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaccineCache_Invalidate(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewVaccineCache(db, "vb:", time.Minute, newTestLogger(t))

	mock.ExpectIncr("vb:vaccines:version").SetVal(4)
	require.NoError(t, c.Invalidate(context.Background()))

	mock.ExpectIncr("vb:vaccines:version").SetErr(errors.New("readonly"))
	assert.Error(t, c.Invalidate(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoop(t *testing.T) {
	var c Noop
	got, err := c.GetOrLoad(context.Background(), publicQuery(), func(context.Context) ([]*domain.Vaccine, error) {
		return []*domain.Vaccine{{ID: "v1"}}, nil
	})

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, c.Invalidate(context.Background()))
}

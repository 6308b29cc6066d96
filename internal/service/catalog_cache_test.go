package service

import (
	"context"
	"io"
	"testing"
	"time"

	"nextcare-api/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*CatalogCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewCatalogCache(client, log, time.Minute), mr
}

func TestCatalogCache_DisabledWithoutClient(t *testing.T) {
	cache := NewCatalogCache(nil, logrus.New(), time.Minute)
	assert.False(t, cache.Enabled())

	cache.SetDoctors(context.Background(), entity.DoctorFilter{}, []entity.Doctor{{Name: "Dr. A"}})
	_, ok := cache.GetDoctors(context.Background(), entity.DoctorFilter{})
	assert.False(t, ok)
	cache.InvalidateDoctors(context.Background())
}

func TestCatalogCache_RoundTrip(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	_, ok := cache.GetDoctors(ctx, entity.DoctorFilter{})
	assert.False(t, ok)

	created := time.Date(2030, 3, 4, 5, 6, 7, 0, time.UTC)
	doctor := entity.Doctor{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: created, UpdatedAt: created},
		Name:         "Dr. Sarah Johnson",
		Specialty:    "Cardiology",
		Facility:     "Heart Center",
		Availability: []string{"Monday", "Wednesday"},
		Active:       true,
	}
	cache.SetDoctors(ctx, entity.DoctorFilter{}, []entity.Doctor{doctor})

	assert.True(t, mr.Exists(RedisDoctorListKeyPrefix+"all"))
	assert.Equal(t, time.Minute, mr.TTL(RedisDoctorListKeyPrefix+"all"))

	cached, ok := cache.GetDoctors(ctx, entity.DoctorFilter{})
	require.True(t, ok)
	require.Len(t, cached, 1)
	assert.Equal(t, doctor.ID, cached[0].ID)
	assert.True(t, created.Equal(cached[0].CreatedAt))
	assert.Equal(t, doctor.Name, cached[0].Name)
	assert.Equal(t, doctor.Specialty, cached[0].Specialty)
	assert.Equal(t, []string{"Monday", "Wednesday"}, []string(cached[0].Availability))
	assert.True(t, cached[0].Active)
}

func TestCatalogCache_KeysPerFilter(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	active, inactive := true, false
	cache.SetDoctors(ctx, entity.DoctorFilter{Active: &active}, []entity.Doctor{{Name: "On duty"}})
	cache.SetDoctors(ctx, entity.DoctorFilter{Active: &inactive}, []entity.Doctor{{Name: "Retired"}})

	_, ok := cache.GetDoctors(ctx, entity.DoctorFilter{})
	assert.False(t, ok)

	got, ok := cache.GetDoctors(ctx, entity.DoctorFilter{Active: &active})
	require.True(t, ok)
	assert.Equal(t, "On duty", got[0].Name)

	got, ok = cache.GetDoctors(ctx, entity.DoctorFilter{Active: &inactive})
	require.True(t, ok)
	assert.Equal(t, "Retired", got[0].Name)

	cache.SetDoctors(ctx, entity.DoctorFilter{}, []entity.Doctor{{Name: "Everyone"}})
	cache.InvalidateDoctors(ctx)
	for _, key := range doctorListKeys {
		assert.False(t, mr.Exists(key), key)
	}
}

func TestCatalogCache_CorruptEntryIsMiss(t *testing.T) {
	cache, mr := newTestCache(t)

	require.NoError(t, mr.Set(RedisDoctorListKeyPrefix+"all", "not json"))

	_, ok := cache.GetDoctors(context.Background(), entity.DoctorFilter{})
	assert.False(t, ok)
}

func TestCatalogCache_RedisDownIsMiss(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.SetDoctors(ctx, entity.DoctorFilter{}, []entity.Doctor{{Name: "Dr. A"}})
	mr.Close()

	_, ok := cache.GetDoctors(ctx, entity.DoctorFilter{})
	assert.False(t, ok)
	cache.SetDoctors(ctx, entity.DoctorFilter{}, []entity.Doctor{{Name: "Dr. B"}})
	cache.InvalidateDoctors(ctx)
}

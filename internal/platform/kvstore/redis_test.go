package kvstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })
	return mr, NewRedisStore(client, "clinic:")
}

func TestRedisStore(t *testing.T) {
	_, s := setupTestRedis(t)
	exerciseStore(t, s)
}

func TestRedisStore_UsesPrefix(t *testing.T) {
	mr, s := setupTestRedis(t)

	require.NoError(t, s.Set(context.Background(), "doctorName", []byte(`"house"`)))

	got, err := mr.Get("clinic:doctorName")
	require.NoError(t, err)
	assert.Equal(t, `"house"`, got)
	assert.False(t, mr.Exists("doctorName"))
}

func TestRedisStore_Ping(t *testing.T) {
	_, s := setupTestRedis(t)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestNewRedisClient_BadURL(t *testing.T) {
	_, err := NewRedisClient("http://not-redis")
	assert.Error(t, err)
}

package services

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// TTLs del cache de consultas. Los listados caducan rápido porque cualquier
// consola puede mutar datos; las mutaciones además invalidan por prefijo.
const (
	ListTTL    = 2 * time.Minute
	DetailTTL  = 5 * time.Minute
	ReportTTL  = 30 * time.Minute
	SessionTTL = 24 * time.Hour
)

// Cache es el almacén de consultas y sesiones de la consola. La
// implementación productiva es redis; los tests usan una en memoria.
type Cache interface {
	Get(ctx context.Context, key string, target interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// RedisCache implementa Cache sobre redis
type RedisCache struct {
	rdb *redis.Client
}

// NewRedisCache crea el cache sobre el cliente de redis dado.
func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

// Get recupera y decodifica el valor de la llave; regresa false si no existe.
func (c *RedisCache) Get(ctx context.Context, key string, target interface{}) (bool, error) {
	cachedData, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return false, err
	}
	return true, nil
}

// Set serializa y guarda el valor con su TTL.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, dataJSON, ttl).Err()
}

// Delete borra las llaves dadas.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// DeletePrefix borra todas las llaves bajo el prefijo. Es la invalidación
// declarativa que corre después de cada mutación.
func (c *RedisCache) DeletePrefix(ctx context.Context, prefix string) error {
	iter := c.rdb.Scan(ctx, 0, prefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// cacheKey arma la llave de una consulta a partir de sus parámetros.
func cacheKey(prefix string, params interface{}) string {
	if params == nil {
		return prefix
	}
	b, err := json.Marshal(params)
	if err != nil {
		return prefix
	}
	return prefix + ":" + string(b)
}

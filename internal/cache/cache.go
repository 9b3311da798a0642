package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mataxelle/BilMo/internal/database"
)

const ListTTL = 10 * time.Minute

// GetList récupère une liste depuis Redis. Retourne false si le cache est
// désactivé, la clé absente ou le contenu illisible.
func GetList(ctx context.Context, key string, dest interface{}) bool {
	if database.Redis == nil {
		return false
	}

	data, err := database.Redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}

	return json.Unmarshal([]byte(data), dest) == nil
}

// SetList met une liste en cache, best-effort.
func SetList(ctx context.Context, key string, value interface{}) {
	if database.Redis == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	database.Redis.Set(ctx, key, data, ListTTL)
}

// Invalidate supprime des clés après une mutation.
func Invalidate(ctx context.Context, keys ...string) {
	if database.Redis == nil || len(keys) == 0 {
		return
	}

	database.Redis.Del(ctx, keys...)
}

package session_fx

import (
	"log"
	"os"
	"strconv"
	"time"
	"wayfare/internal/infra"
	"wayfare/internal/repositories"
	mem "wayfare/pkg/memcache"

	"go.uber.org/fx"
)

var Module = fx.Provide(provideSessionStore)

// provideSessionStore picks the session-scoped KV backend: Redis when
// REDIS_URL is set, otherwise the in-process cache. Both expire entries
// after the session TTL.
func provideSessionStore() repositories.SessionStore {
	ttl := sessionTTL()

	if os.Getenv("REDIS_URL") != "" {
		log.Printf("Using redis session store (ttl %s)", ttl)
		return repositories.NewRedisSessionStore(infra.InitRedis(), ttl)
	}

	log.Printf("REDIS_URL not set, using in-memory session store (ttl %s)", ttl)
	return mem.NewSessionCache(ttl)
}

func sessionTTL() time.Duration {
	if raw := os.Getenv("SESSION_TTL_MINUTES"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
		log.Printf("Invalid SESSION_TTL_MINUTES %q, using default", raw)
	}
	return 60 * time.Minute
}

package session

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/zakerai/zaker-web/internal/pkg/cache"
	"github.com/zakerai/zaker-web/internal/pkg/env"
)

// Expiration matches the lifetime of a stored signup wizard.
const Expiration = 30 * time.Minute

var sessionStore *session.Store

// NewSessionStore keeps sessions in redis when a cache is configured and in
// process memory otherwise.
func NewSessionStore() *session.Store {
	cfg := session.Config{
		CookieHTTPOnly: true,
		CookieSecure:   !env.IsDev(),
		CookieSameSite: "Lax",
		Expiration:     Expiration,
		KeyLookup:      "cookie:session_id",
	}

	if cacheClient := cache.GetClient(); cacheClient != nil {
		host := "localhost"
		port := 6379
		if h, p, err := net.SplitHostPort(cacheClient.Options().Addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}

		// Separate database for sessions (cache and wizard states use DB 0)
		cfg.Storage = redis.New(redis.Config{
			Host:     host,
			Port:     port,
			Password: cacheClient.Options().Password,
			Database: 1,
			Reset:    false,
		})
	} else {
		log.Warn("session: no cache configured, using in-memory sessions")
	}

	sessionStore = session.New(cfg)
	return sessionStore
}

// UseStore installs an existing store, e.g. an in-memory one in tests
func UseStore(store *session.Store) {
	sessionStore = store
}

func GetSessionStore() *session.Store {
	return sessionStore
}

// SetSessionValue stores a key-value pair in the visitor's session
func SetSessionValue(c *fiber.Ctx, key string, value string) error {
	if sessionStore == nil {
		return fmt.Errorf("session store not initialized")
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %v", err)
	}

	sess.Set(key, value)
	return sess.Save()
}

// GetSessionValue retrieves a value by key from the visitor's session
func GetSessionValue(c *fiber.Ctx, key string) string {
	if sessionStore == nil {
		return ""
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return ""
	}

	if strValue, ok := sess.Get(key).(string); ok {
		return strValue
	}
	return ""
}

// DeleteSessionValue removes key from the visitor's session
func DeleteSessionValue(c *fiber.Ctx, key string) error {
	if sessionStore == nil {
		return fmt.Errorf("session store not initialized")
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %v", err)
	}

	sess.Delete(key)
	return sess.Save()
}

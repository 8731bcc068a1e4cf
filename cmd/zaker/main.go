package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/zakerai/zaker-web/app/repository"
	"github.com/zakerai/zaker-web/internal/pkg/backend"
	"github.com/zakerai/zaker-web/internal/pkg/cache"
	"github.com/zakerai/zaker-web/internal/pkg/catalog"
	"github.com/zakerai/zaker-web/internal/pkg/database"
	"github.com/zakerai/zaker-web/internal/pkg/env"
	"github.com/zakerai/zaker-web/internal/pkg/funnel"
	"github.com/zakerai/zaker-web/internal/pkg/hcaptcha"
	"github.com/zakerai/zaker-web/internal/pkg/middleware"
	"github.com/zakerai/zaker-web/internal/pkg/provisioning"
	"github.com/zakerai/zaker-web/internal/pkg/router"
	"github.com/zakerai/zaker-web/internal/pkg/wizard"
	"github.com/zakerai/zaker-web/views"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/zaker to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:     views.NewEngine(),
		BodyLimit: 1 << 20,
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", middleware.OperatorAuth(), monitor.New())

	// static files
	app.Static("/", basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, newDependencies())

	return app
}

// newDependencies wires the backend clients, the wizard store and the funnel
// recorder from the environment
func newDependencies() router.Dependencies {
	api := backend.NewFromEnv()
	catalogs := catalog.NewService(
		catalog.NewClient(api).WithAttempts(env.GetEnvInt("CATALOG_ATTEMPTS", 3)),
		env.GetEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
	)

	var store wizard.Store
	if rdb := cache.GetClient(); rdb != nil {
		store = wizard.NewRedisStore(rdb, wizard.StateTTL)
	} else {
		store = wizard.NewMemoryStore(env.GetEnvInt("WIZARD_MEMORY_SIZE", 10000), wizard.StateTTL)
	}

	var recorder *funnel.Recorder
	if db := database.GetDB(); db != nil {
		repository.InitializeFactory(db)
		recorder = funnel.NewRecorder(repository.GetGlobalFactory().GetSignupEventRepository())
		recorder.StartRetention(context.Background(),
			env.GetEnvDuration("FUNNEL_RETENTION", 90*24*time.Hour),
			env.GetEnvDuration("FUNNEL_RETENTION_INTERVAL", time.Hour),
		)
	} else {
		recorder = funnel.NewRecorder(nil)
	}

	return router.Dependencies{
		Catalogs:     catalogs,
		Machine:      wizard.NewMachine(store, catalogs, provisioning.NewClient(api), recorder),
		Captcha:      hcaptcha.NewFromEnv(),
		Funnel:       recorder,
		DomainSuffix: env.GetEnv("PUBLIC_DOMAIN_SUFFIX", ".zaker.ai"),
	}
}

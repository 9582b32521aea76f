// Command stubapi levanta el backend super-admin en memoria para desarrollo local de la consola.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/videeinfotech/sultan-super-admin-app/docs"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/backoffice"
	"github.com/videeinfotech/sultan-super-admin-app/internal/infrastructure/memory"
	httpRouter "github.com/videeinfotech/sultan-super-admin-app/internal/interfaces/http"
	"github.com/videeinfotech/sultan-super-admin-app/pkg/config"
	"github.com/videeinfotech/sultan-super-admin-app/pkg/logger"
)

// @title                       Sultan Super Admin API
// @version                     1.0
// @description                 Backend super-admin en memoria para desarrollo local de la consola.
// @BasePath                    /api/v1/super-admin
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Token con prefijo "Bearer ".
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("addr", cfg.HTTP.Addr()).
		Msg("iniciando backend stub")

	if cfg.JWT.Secret == "" {
		// Sin secreto configurado los tokens solo valen mientras viva el proceso.
		cfg.JWT.Secret = uuid.NewString()
		log.Warn().Msg("JWT_SECRET vacío: usando secreto efímero")
	}

	db := memory.NewDB()
	memory.Seed(db, time.Now())

	userRepo := memory.NewUserRepository(db)
	storeRepo := memory.NewStoreRepository(db)
	productRepo := memory.NewProductRepository(db)
	stockRepo := memory.NewStockRepository(db)
	orderRepo := memory.NewOrderRepository(db)
	staffRepo := memory.NewStaffRepository(db)
	analyticsRepo := memory.NewAnalyticsRepository(db)

	authUC := backoffice.NewAuthUseCase(userRepo, backoffice.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if _, err := authUC.RegisterUser(backoffice.RegisterInput{
		Name:     "Super Admin",
		Email:    cfg.Stub.AdminEmail,
		Password: cfg.Stub.AdminPassword,
	}); err != nil {
		log.Fatal().Err(err).Msg("alta del administrador")
	}
	catalogUC := backoffice.NewCatalogUseCase(productRepo, stockRepo, orderRepo, storeRepo, analyticsRepo)
	storeUC := backoffice.NewStoreUseCase(storeRepo, stockRepo, orderRepo, staffRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	if !httpRouter.MountDocs(app, cfg.Stub.SwaggerFile) {
		log.Warn().Str("file", cfg.Stub.SwaggerFile).Msg("swagger.json no encontrado: /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CatalogUC: catalogUC,
		StoreUC:   storeUC,
		Avatars:   memory.NewAvatarStore(),
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("admin", cfg.Stub.AdminEmail).Msg("backend stub listo")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("backend stub detenido")
}

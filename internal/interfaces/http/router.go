package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/backoffice"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
	"github.com/videeinfotech/sultan-super-admin-app/internal/infrastructure/memory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *backoffice.AuthUseCase
	CatalogUC *backoffice.CatalogUseCase
	StoreUC   *backoffice.StoreUseCase
	Avatars   *memory.AvatarStore
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Avatars)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	storeHandler := NewStoreHandler(deps.StoreUC)

	app.Get("/avatars/:name", authHandler.Avatar)

	api := app.Group("/api/v1/super-admin")

	// Auth (público)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (Bearer Token + rol super_admin)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleSuperAdmin))

	protected.Get("/user", authHandler.User)
	protected.Put("/profile", authHandler.UpdateProfile)
	protected.Put("/password", authHandler.UpdatePassword)
	protected.Post("/avatar", authHandler.UploadAvatar)

	protected.Get("/dashboard", catalogHandler.Dashboard)
	protected.Get("/products", catalogHandler.Products)
	protected.Get("/products/:id", catalogHandler.Product)
	protected.Get("/orders", catalogHandler.Orders)
	protected.Get("/orders/:id", catalogHandler.Order)
	protected.Get("/analytics", catalogHandler.Analytics)

	protected.Get("/stores", storeHandler.List)
	protected.Get("/stores/:id", storeHandler.Get)
	protected.Put("/stores/:id", storeHandler.Update)
	protected.Get("/stores/:id/stock", storeHandler.Stock)
	protected.Patch("/stores/:id/stock/:productId", storeHandler.UpdateStock)

	protected.Get("/staff", storeHandler.Staff)
	protected.Post("/staff", storeHandler.AddStaff)
	protected.Put("/staff/:id", storeHandler.UpdateStaff)
	protected.Delete("/staff/:id", storeHandler.RemoveStaff)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/boutique-api/internal/application/auth"
	appcart "github.com/jhoicas/boutique-api/internal/application/cart"
	"github.com/jhoicas/boutique-api/internal/application/sales"
	"github.com/jhoicas/boutique-api/internal/application/usecase"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CustomerUC *usecase.CustomerUseCase
	ExpenseUC  *usecase.ExpenseUseCase
	RateUC     *usecase.ExchangeRateUseCase
	SalesUC    *sales.UseCase
	ReceiptUC  *sales.ReceiptUseCase
	CartUC     *appcart.UseCase
	CartStore  *appcart.Store
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API: vitrina y carrito públicos, panel
// admin detrás de Bearer Token con rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Vitrina (público)
	catalogHandler := NewCatalogHandler(deps.ProductUC, deps.RateUC, deps.CartUC)
	catalog := api.Group("/catalog")
	catalog.Get("/", catalogHandler.List)
	catalog.Get("/:id", catalogHandler.GetByID)
	catalog.Get("/:id/buy", catalogHandler.BuyNow)
	api.Get("/exchange-rate", catalogHandler.ExchangeRate)

	// Carrito (público, sesión vía X-Session-ID)
	cartHandler := NewCartHandler(deps.CartUC, deps.CartStore)
	cart := api.Group("/cart")
	cart.Get("/", cartHandler.Get)
	cart.Delete("/", cartHandler.Clear)
	cart.Post("/items", cartHandler.AddItem)
	cart.Put("/items", cartHandler.UpdateItem)
	cart.Delete("/items/:product_id", cartHandler.RemoveItem)
	cart.Post("/checkout", cartHandler.Checkout)

	// Panel admin (requiere Bearer Token con rol admin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))

	products := admin.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/sizes", productHandler.AddSize)
	admin.Put("/sizes/:id/stock", productHandler.SetStock)
	admin.Delete("/sizes/:id", productHandler.DeleteSize)

	salesGroup := admin.Group("/sales")
	saleHandler := NewSaleHandler(deps.SalesUC, deps.ReceiptUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/summary", saleHandler.Summary)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)
	salesGroup.Delete("/:id", saleHandler.Delete)

	customers := admin.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	expenses := admin.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/totals", expenseHandler.Totals)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	rateHandler := NewExchangeRateHandler(deps.RateUC)
	admin.Put("/exchange-rate", rateHandler.Update)
}

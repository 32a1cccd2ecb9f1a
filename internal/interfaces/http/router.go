package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/canek/storefront/internal/application/cart"
	"github.com/canek/storefront/internal/application/session"
	"github.com/canek/storefront/internal/infrastructure/backend"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	SessionStore *session.Store
	CartStore    *cart.Store
	Backend      *backend.Client
	DetailLoader *backend.DetailLoader
	Navigator    *Navigator
}

// Router registra as rotas do storefront.
func Router(app *fiber.App, deps RouterDeps) {
	sessionHandler := NewSessionHandler(deps.SessionStore, deps.Navigator, deps.Backend)
	cartHandler := NewCartHandler(deps.CartStore, deps.Backend)
	catalogHandler := NewCatalogHandler(deps.Backend, deps.DetailLoader)
	adminHandler := NewAdminHandler(deps.SessionStore, deps.Backend)

	// Destinos de navegação do Store de sessão.
	app.Get(session.RouteHome, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"page": "home"})
	})
	app.Get(session.RouteAdminDashboard,
		RequireBackoffice(deps.SessionStore),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"page": "admin-dashboard"})
		})

	api := app.Group("/api")

	// Sessão (público)
	api.Post("/login", sessionHandler.Login)
	api.Post("/backoffice/login", sessionHandler.BackofficeLogin)
	api.Post("/cadastro", sessionHandler.Register)
	api.Post("/logout", sessionHandler.Logout)
	api.Get("/session", sessionHandler.Session)

	// Vitrine (público)
	api.Get("/produtos", catalogHandler.List)
	api.Get("/produtos/:id", catalogHandler.Detail)

	// Carrinho (público; o carrinho existe antes do login)
	carrinho := api.Group("/carrinho")
	carrinho.Get("/", cartHandler.Get)
	carrinho.Delete("/", cartHandler.Clear)
	carrinho.Post("/itens", cartHandler.AddItem)
	carrinho.Put("/itens/:id", cartHandler.SetQuantity)
	carrinho.Post("/itens/:id/decrementar", cartHandler.Decrement)
	carrinho.Delete("/itens/:id", cartHandler.RemoveItem)
	carrinho.Post("/frete/calcular", cartHandler.QuoteShipping)
	carrinho.Post("/frete", cartHandler.SelectShipping)
	carrinho.Post("/painel/abrir", cartHandler.OpenSidePanel)
	carrinho.Post("/painel/fechar", cartHandler.CloseSidePanel)

	// Área do cliente (qualquer usuário autenticado)
	conta := api.Group("/minha-conta", RequireAuthenticated(deps.SessionStore))
	conta.Get("/", sessionHandler.Session)

	// Backoffice (ADMIN ou ESTOQUISTA)
	admin := api.Group("/admin", RequireBackoffice(deps.SessionStore))
	admin.Get("/produtos", adminHandler.ListProducts)
	admin.Post("/produtos", adminHandler.CreateProduct)
	admin.Put("/produtos/:id", adminHandler.UpdateProduct)
	admin.Put("/produtos/:id/status", adminHandler.ToggleProductStatus)
	admin.Get("/usuarios", adminHandler.ListAdmins)
	admin.Post("/usuarios", adminHandler.CreateAdmin)
	admin.Get("/usuarios/:id", adminHandler.GetAdmin)
	admin.Put("/usuarios/:id", adminHandler.UpdateAdmin)
	admin.Put("/usuarios/:id/status", adminHandler.ToggleAdminStatus)
	admin.Post("/upload", adminHandler.Upload)
}

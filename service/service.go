package service

import (
	"context"
	"net/http"

	"github.com/bellavista/storefront/internal/auth"
	"github.com/bellavista/storefront/internal/cart"
	"github.com/bellavista/storefront/internal/handlers"
	"github.com/bellavista/storefront/internal/session"
	"github.com/bellavista/storefront/storage"
	"github.com/labstack/echo/v4"
)

type Service struct {
	storage  *storage.Storage
	config   *Config
	sessions *session.Manager
	carts    *cart.Manager

	productHandler *handlers.ProductHandler
	cartHandler    *handlers.CartHandler
	authHandler    *handlers.AuthHandler
	orderHandler   *handlers.OrderHandler
	adminHandler   *handlers.AdminHandler
}

func New(storage *storage.Storage, config *Config) *Service {
	sessions := session.NewManager(config.Session.Secret)
	carts := cart.NewManager(config.Cart.Dir)
	authService := auth.NewService(storage.Queries)

	// Make sure someone can open the dashboard on a fresh database.
	authService.EnsureAdmin(context.Background(), config.Admin.Email, config.Admin.Password)

	return &Service{
		storage:        storage,
		config:         config,
		sessions:       sessions,
		carts:          carts,
		productHandler: handlers.NewProductHandler(storage),
		cartHandler:    handlers.NewCartHandler(storage, sessions, carts),
		authHandler:    handlers.NewAuthHandler(storage, authService, sessions),
		orderHandler:   handlers.NewOrderHandler(storage, sessions, carts, config.WhatsApp.Phone),
		adminHandler:   handlers.NewAdminHandler(storage, config.Upload.Dir),
	}
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	// Static files - no auth middleware
	e.Static("/public", "public")
	e.Static("/images", "public/images")

	// Catalog
	e.GET("/api/products", s.productHandler.HandleListProducts)
	e.GET("/api/products/:slug", s.productHandler.HandleGetProduct)

	// Cart
	e.GET("/api/cart", s.cartHandler.HandleGetCart)
	e.POST("/api/cart/items", s.cartHandler.HandleAddItem)
	e.PUT("/api/cart/items/:uid", s.cartHandler.HandleUpdateItem)
	e.DELETE("/api/cart/items/:uid", s.cartHandler.HandleRemoveItem)
	e.DELETE("/api/cart", s.cartHandler.HandleClearCart)

	// Checkout
	e.POST("/api/orders", s.orderHandler.HandleCreateOrder)
	e.GET("/api/orders/:id/qr.png", s.orderHandler.HandleOrderQR)

	// Accounts
	e.POST("/api/auth/register", s.authHandler.HandleRegister)
	e.POST("/api/auth/login", s.authHandler.HandleLogin)
	e.POST("/api/auth/logout", s.authHandler.HandleLogout)
	e.POST("/api/auth/forgot-password", s.authHandler.HandleForgotPassword)

	user := e.Group("/api/user")
	user.GET("/profile", s.authHandler.HandleGetProfile)
	user.PUT("/profile", s.authHandler.HandleUpdateProfile)
	user.PUT("/password", s.authHandler.HandleChangePassword)
	user.GET("/settings", s.authHandler.HandleGetSettings)
	user.PUT("/settings", s.authHandler.HandleSaveSettings)

	// Dashboard - admin role required
	dashboard := e.Group("/api/dashboard", s.requireAdmin)
	dashboard.GET("/overview", s.adminHandler.HandleOverview)
	dashboard.GET("/products", s.adminHandler.HandleProductsOverview)
	dashboard.POST("/products", s.adminHandler.HandleSaveProduct)
	dashboard.DELETE("/products", s.adminHandler.HandleDeleteProduct)
	dashboard.GET("/orders", s.adminHandler.HandleOrdersOverview)
	dashboard.GET("/orders/export.pdf", s.adminHandler.HandleExportOrdersPDF)
	dashboard.GET("/customers", s.adminHandler.HandleCustomersOverview)

	// Health check - no auth
	e.GET("/health", s.handleHealth)
}

func (s *Service) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := s.sessions.GetUser(c)
		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Inicia sesión para continuar")
		}
		if !user.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "Se requiere acceso de administrador")
		}
		return next(c)
	}
}

func (s *Service) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":      "healthy",
		"environment": s.config.Environment,
	})
}

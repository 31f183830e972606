package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hospedaje-lider-api/internal/application/auth"
	"github.com/jhoicas/hospedaje-lider-api/internal/application/documentos"
	"github.com/jhoicas/hospedaje-lider-api/internal/application/ports"
	"github.com/jhoicas/hospedaje-lider-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC             *auth.AuthUseCase
	Backend            ports.Backend
	Docs               *documentos.Service // nil = almacenamiento deshabilitado
	Log                *logger.Logger
	Cookie             CookieConfig
	RateLimitPerMinute int // login y registro; 0 = sin límite
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	proxy := NewProxy(deps.Backend, deps.Log)
	requireToken := TokenMiddleware()
	optionalToken := OptionalToken()

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie, deps.Log)
	limit := RateLimit(deps.RateLimitPerMinute)
	authGroup.Post("/register", limit, authHandler.Register)
	authGroup.Post("/login", limit, authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Usuarios
	usuarios := api.Group("/usuarios", requireToken)
	usuarioHandler := NewUsuarioHandler(proxy, deps.Docs)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Patch("/change-password", usuarioHandler.ChangePassword)
	usuarios.Patch("/update-documents", usuarioHandler.UpdateDocuments)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)

	// Clientes (usuarios con rol cliente)
	clientes := api.Group("/clientes", requireToken)
	clienteHandler := NewClienteHandler(proxy)
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", clienteHandler.Create)

	// Habitaciones: disponibles es público y se registra antes de /:id
	habitacionHandler := NewHabitacionHandler(proxy)
	api.Get("/habitaciones/disponibles", optionalToken, habitacionHandler.Disponibles)
	habitaciones := api.Group("/habitaciones", requireToken)
	habitaciones.Get("/", habitacionHandler.List)
	habitaciones.Post("/", habitacionHandler.Create)
	habitaciones.Get("/:id", habitacionHandler.GetByID)
	habitaciones.Put("/:id", habitacionHandler.Update)
	habitaciones.Patch("/:id", habitacionHandler.Update)
	habitaciones.Patch("/:id/:operacion", habitacionHandler.UpdateOperacion)

	// Horarios (público)
	horarioHandler := NewHorarioHandler(proxy)
	api.Get("/horarios/disponibles", optionalToken, horarioHandler.Disponibles)

	// Reservas
	reservas := api.Group("/reservas", requireToken)
	reservaHandler := NewReservaHandler(proxy)
	reservas.Get("/admin", reservaHandler.Admin)
	reservas.Get("/mis-reservas", reservaHandler.MisReservas)
	reservas.Post("/", reservaHandler.Create)

	// Servicios
	servicios := api.Group("/servicios", requireToken)
	servicioHandler := NewServicioHandler(proxy)
	servicios.Get("/", servicioHandler.List)
	servicios.Post("/", servicioHandler.Create)
	servicios.Put("/:id", servicioHandler.Update)

	// QRs de pago
	qrs := api.Group("/qrs", requireToken)
	qrHandler := NewQRHandler(proxy)
	qrs.Get("/", qrHandler.List)
	qrs.Post("/", qrHandler.Create)
	qrs.Get("/:id", qrHandler.GetByID)
	qrs.Put("/:id", qrHandler.Update)
	qrs.Patch("/:id/estado", qrHandler.UpdateEstado)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-closers/internal/application/auth"
	"github.com/tu-usuario/crm-closers/internal/application/usecase"
	"github.com/tu-usuario/crm-closers/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	ClientUC       *usecase.ClientUseCase
	MeetingUC      *usecase.MeetingUseCase
	PaymentUC      *usecase.PaymentUseCase
	NotificationUC *usecase.NotificationUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	userHandler := NewUserHandler(deps.AuthUC, deps.UserUC)
	clientHandler := NewClientHandler(deps.ClientUC, deps.PaymentUC)
	meetingHandler := NewMeetingHandler(deps.MeetingUC)
	notificationHandler := NewNotificationHandler(deps.NotificationUC)

	// Users: login es la única ruta pública de toda la API.
	users := api.Group("/users")
	users.Post("/login", userHandler.Login)

	usersAuth := users.Group("/", AuthMiddleware(deps.JWTSecret))
	usersAuth.Post("/register", RequireRole(entity.RoleAdmin), userHandler.Register)
	usersAuth.Get("/profile", userHandler.GetProfile)
	usersAuth.Put("/password", userHandler.ChangePassword)
	usersAuth.Put("/objective", RequireRole(entity.RoleCloser), userHandler.SetObjective)
	usersAuth.Post("/achievement", RequireRole(entity.RoleCloser), userHandler.AddAchievement)
	usersAuth.Get("/clients", RequireRole(entity.RoleCloser), userHandler.ListClients)
	usersAuth.Get("/meetings", RequireRole(entity.RoleCloser), userHandler.ListMeetings)
	usersAuth.Get("/closers", RequireRole(entity.RoleAdmin), userHandler.ListClosers)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clients (protegido; los comprobantes de pago cuelgan del cliente)
	clients := protected.Group("/clients")
	clients.Post("/", RequireRole(entity.RoleCloser), clientHandler.Create)
	clients.Get("/:id", clientHandler.GetDetail)
	clients.Put("/:id/status", clientHandler.SetStatus)
	clients.Put("/:id/reassign", RequireRole(entity.RoleAdmin), clientHandler.Reassign)
	clients.Delete("/:id", RequireRole(entity.RoleAdmin), clientHandler.Delete)
	clients.Post("/:id/payment-proof", clientHandler.UploadProof)
	clients.Get("/:id/payment-proofs", clientHandler.ListProofs)
	clients.Delete("/:id/payment-proofs/:proofId", clientHandler.DeleteProof)

	// Meetings (protegido). Las rutas fijas van antes de /:id para que
	// "closer" o "client" no se interpreten como un id.
	meetings := protected.Group("/meetings")
	meetings.Post("/", meetingHandler.Schedule)
	meetings.Get("/closer", RequireRole(entity.RoleCloser), meetingHandler.ListForCloser)
	meetings.Get("/client/:clientId", meetingHandler.ListForClient)
	meetings.Get("/:id", meetingHandler.GetDetail)
	meetings.Put("/:id", meetingHandler.Update)
	meetings.Delete("/:id", meetingHandler.Delete)

	// Notifications (protegido)
	notifications := protected.Group("/notifications")
	notifications.Post("/", RequireRole(entity.RoleAdmin), notificationHandler.Send)
	notifications.Get("/", notificationHandler.ListMine)
	notifications.Put("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/recibospro/recibos-api/internal/application/auth"
	"github.com/recibospro/recibos-api/internal/application/receipts"
	"github.com/recibospro/recibos-api/internal/application/subscription"
	"github.com/recibospro/recibos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CompanyUC      *usecase.CompanyUseCase
	EmployeeUC     *usecase.EmployeeUseCase
	CreateReceipt  *receipts.CreateReceiptUseCase
	ListReceipts   *receipts.ListReceiptsUseCase
	ReceiptPDF     *receipts.PDFUseCase
	SubscriptionUC *subscription.UseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies (protegido, sujeto a cuota del plan en el alta)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	// Employees (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)

	// Receipts (protegido; inmutables: sin PUT ni DELETE)
	receiptGroup := protected.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.CreateReceipt, deps.ListReceipts, deps.ReceiptPDF)
	receiptGroup.Post("/", receiptHandler.Create)
	receiptGroup.Get("/", receiptHandler.List)
	receiptGroup.Get("/:id", receiptHandler.GetByID)
	receiptGroup.Get("/:id/pdf", receiptHandler.DownloadPDF)

	// Subscription (protegido)
	subGroup := protected.Group("/subscription")
	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	subGroup.Get("/status", subscriptionHandler.Status)
}

package handlers

import (
	"regexp"

	portssvc "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/services"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/middleware"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// auMobilePattern matches Australian mobile numbers in "04XX XXX XXX" form.
var auMobilePattern = regexp.MustCompile(`^04\d{2} \d{3} \d{3}$`)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerCustomerRoutes(v1, services.Customer)
	registerAccountRoutes(v1, services.Account)
	registerBankingRoutes(v1, services.Banking)
	registerPayeeRoutes(v1, services.Payee)
	registerBillPayRoutes(v1, services.BillPay)
}

// registerCustomValidators installs binding-level validators used by the
// request DTOs.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("au_mobile", func(fl validator.FieldLevel) bool {
			return auMobilePattern.MatchString(fl.Field().String())
		})
	}
}

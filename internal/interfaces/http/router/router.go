package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/residence/backend/internal/infrastructure/auth"
	"github.com/residence/backend/internal/infrastructure/config"
	"github.com/residence/backend/internal/interfaces/http/handler"
	"github.com/residence/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every HTTP handler the router mounts
type Handlers struct {
	Auth      *handler.AuthHandler
	Residence *handler.ResidenceHandler
	House     *handler.HouseHandler
	Resident  *handler.ResidentHandler
	User      *handler.UserHandler
	Payment   *handler.PaymentHandler
	Expense   *handler.ExpenseHandler
	Incident  *handler.IncidentHandler
	Post      *handler.PostHandler
}

// New builds the gin engine with all middleware and routes mounted.
//
// Auth endpoints are public; everything else requires a valid access token
// whose residence claim matches the residence in the path.
func New(cfg *config.Config, logger *zap.Logger, jwtService *auth.JWTService, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.CORS(nil),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.Refresh)
	}

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(jwtService, logger))

	residences := protected.Group("/residences")
	{
		residences.POST("", h.Residence.Create)
		residences.GET("", h.Residence.List)
	}

	one := residences.Group("/:residenceId")
	one.Use(middleware.ResidenceGuard())
	{
		one.GET("", h.Residence.Get)
		one.PUT("", h.Residence.Update)
		one.DELETE("", h.Residence.Delete)
		one.GET("/settings", h.Residence.GetSettings)
		one.PUT("/settings", h.Residence.UpdateSettings)

		houses := one.Group("/houses")
		{
			houses.POST("", h.House.Create)
			houses.GET("", h.House.List)
			houses.GET("/:id", h.House.Get)
			houses.PUT("/:id", h.House.Update)
			houses.DELETE("/:id", h.House.Delete)
		}

		residents := one.Group("/residents")
		{
			residents.POST("", h.Resident.Create)
			residents.GET("", h.Resident.List)
			residents.GET("/:id", h.Resident.Get)
			residents.PUT("/:id", h.Resident.Update)
			residents.DELETE("/:id", h.Resident.Delete)
		}

		users := one.Group("/users")
		{
			users.POST("", h.User.Create)
			users.GET("", h.User.List)
			users.GET("/:id", h.User.Get)
			users.PUT("/:id", h.User.Update)
			users.DELETE("/:id", h.User.Delete)
		}

		payments := one.Group("/payments")
		{
			payments.POST("", h.Payment.Create)
			payments.GET("", h.Payment.List)
			payments.GET("/overdue", h.Payment.ListOverdue)
			payments.GET("/summary", h.Payment.Summary)
			payments.GET("/:id", h.Payment.Get)
			payments.PUT("/:id", h.Payment.Update)
			payments.DELETE("/:id", h.Payment.Delete)
		}

		expenses := one.Group("/expenses")
		{
			expenses.POST("", h.Expense.Create)
			expenses.GET("", h.Expense.List)
			expenses.GET("/summary", h.Expense.Summary)
			expenses.GET("/:id", h.Expense.Get)
			expenses.PUT("/:id", h.Expense.Update)
			expenses.DELETE("/:id", h.Expense.Delete)
			expenses.POST("/:id/images", h.Expense.AddImage)
			expenses.DELETE("/:id/images/:imageId", h.Expense.RemoveImage)
		}

		incidents := one.Group("/incidents")
		{
			incidents.POST("", h.Incident.Create)
			incidents.GET("", h.Incident.List)
			incidents.GET("/:id", h.Incident.Get)
			incidents.PUT("/:id", h.Incident.Update)
			incidents.DELETE("/:id", h.Incident.Delete)
			incidents.POST("/:id/comments", h.Incident.AddComment)
			incidents.GET("/:id/comments", h.Incident.GetComments)
		}

		posts := one.Group("/posts")
		{
			posts.POST("", h.Post.Create)
			posts.GET("", h.Post.List)
			posts.GET("/:id", h.Post.Get)
			posts.PUT("/:id", h.Post.Update)
			posts.DELETE("/:id", h.Post.Delete)
			posts.POST("/:id/likes", h.Post.Like)
			posts.DELETE("/:id/likes", h.Post.Unlike)
			posts.POST("/:id/comments", h.Post.AddComment)
			posts.GET("/:id/comments", h.Post.GetComments)
			posts.DELETE("/comments/:commentId", h.Post.DeleteComment)
		}
	}

	return engine
}

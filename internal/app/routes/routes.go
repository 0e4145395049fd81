package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tndevfactory/labtim/internal/app/controllers"
	"github.com/Tndevfactory/labtim/internal/middleware"
	"github.com/Tndevfactory/labtim/internal/pkg/auth"
)

// Controllers bundles every controller needed by the router.
type Controllers struct {
	Auth         *controllers.AuthController
	User         *controllers.UserController
	Publication  *controllers.PublicationController
	These        *controllers.TheseController
	Master       *controllers.MasterController
	Actu         *controllers.ActuController
	Presentation *controllers.PresentationController
}

// SetupRoutes registers the API surface. Reads are public; mutations need
// a token, and admin-only surfaces add RequireAdmin on top.
func SetupRoutes(router *gin.Engine, ctrl Controllers, jwtService *auth.JWTService) {
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	authRequired := middleware.JWTAuth(jwtService)
	adminOnly := middleware.RequireAdmin()

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", ctrl.Auth.Register)
		authGroup.POST("/login", ctrl.Auth.Login)
		authGroup.POST("/refresh", ctrl.Auth.RefreshToken)
		authGroup.GET("/me", authRequired, ctrl.Auth.GetProfile)
		authGroup.POST("/change-password", authRequired, ctrl.Auth.ChangePassword)
	}

	users := api.Group("/users")
	{
		users.GET("", ctrl.User.GetAll)
		users.GET("/:id", ctrl.User.GetByID)
		users.POST("", authRequired, adminOnly, ctrl.User.Create)
		users.PUT("/:id", authRequired, ctrl.User.Update)
		users.DELETE("/:id", authRequired, adminOnly, ctrl.User.Delete)
	}

	publications := api.Group("/publications")
	{
		publications.GET("", ctrl.Publication.GetAll)
		publications.GET("/:id", ctrl.Publication.GetByID)
		publications.POST("", authRequired, ctrl.Publication.Create)
		publications.PUT("/:id", authRequired, ctrl.Publication.Update)
		publications.DELETE("/:id", authRequired, ctrl.Publication.Delete)
	}

	theses := api.Group("/theses")
	{
		theses.GET("", ctrl.These.GetAll)
		theses.GET("/:id", ctrl.These.GetByID)
		theses.POST("", authRequired, ctrl.These.Create)
		theses.PUT("/:id", authRequired, ctrl.These.Update)
		theses.DELETE("/:id", authRequired, ctrl.These.Delete)
	}

	masters := api.Group("/masters")
	{
		masters.GET("", ctrl.Master.GetAll)
		masters.GET("/:id", ctrl.Master.GetByID)
		masters.POST("", authRequired, ctrl.Master.Create)
		masters.PUT("/:id", authRequired, ctrl.Master.Update)
		masters.DELETE("/:id", authRequired, ctrl.Master.Delete)
	}

	actus := api.Group("/actus")
	{
		actus.GET("", ctrl.Actu.GetAll)
		actus.GET("/:id", ctrl.Actu.GetByID)
		actus.POST("", authRequired, ctrl.Actu.Create)
		actus.PUT("/:id", authRequired, ctrl.Actu.Update)
		actus.DELETE("/:id", authRequired, ctrl.Actu.Delete)
	}

	hero := api.Group("/hero")
	{
		hero.GET("", ctrl.Presentation.GetHero)
		hero.PUT("", authRequired, adminOnly, ctrl.Presentation.UpdateHero)
	}

	carousel := api.Group("/carousel")
	{
		carousel.GET("", ctrl.Presentation.GetCarouselItems)
		carousel.POST("", authRequired, adminOnly, ctrl.Presentation.CreateCarouselItem)
		carousel.PUT("/:id", authRequired, adminOnly, ctrl.Presentation.UpdateCarouselItem)
		carousel.DELETE("/:id", authRequired, adminOnly, ctrl.Presentation.DeleteCarouselItem)
	}
}

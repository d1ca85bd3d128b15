package httpserver

import (
	"context"
	"errors"
	"net/http"

	"yoga-marketplace/internal/domain"
	classsvc "yoga-marketplace/internal/service/class"
	cartsvc "yoga-marketplace/internal/service/cart"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClassService is the class registry as seen by the handlers.
type ClassService interface {
	Create(ctx context.Context, in classsvc.CreateInput) (domain.InsertResult, error)
	ListApproved(ctx context.Context) ([]domain.Class, error)
	ListByInstructor(ctx context.Context, email string) ([]domain.Class, error)
	ListAll(ctx context.Context) ([]domain.Class, error)
	Get(ctx context.Context, id string) (*domain.Class, error)
	ChangeStatus(ctx context.Context, id string, in classsvc.StatusInput) (domain.UpdateResult, error)
	UpdateDetails(ctx context.Context, id string, in classsvc.DetailsInput) (domain.UpdateResult, error)
}

// CartService is the cart resolver as seen by the handlers.
type CartService interface {
	AddItem(ctx context.Context, in cartsvc.AddInput) (domain.InsertResult, error)
	GetItem(ctx context.Context, classID, email string) (*domain.CartEntry, error)
	ListForUser(ctx context.Context, email string) ([]domain.Class, error)
	RemoveItem(ctx context.Context, classID, email string) (domain.DeleteResult, error)
}

// Deps groups the services the router needs.
type Deps struct {
	ClassSvc ClassService
	CartSvc  CartService
	// AllowedOrigins feeds the CORS policy. Empty or "*" allows any origin.
	AllowedOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, store Pinger, deps Deps) (*gin.Engine, error) {
	if deps.ClassSvc == nil || deps.CartSvc == nil {
		return nil, errors.New("httpserver: class and cart services are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		requestIDMiddleware(),
		loggingMiddleware(logger),
		gin.CustomRecovery(recoveryHandler(logger)),
		cors.New(corsConfig(deps.AllowedOrigins)),
		errorMiddleware(logger),
	)

	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "Hello World!") })
	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(store))

	router.POST("/new-class", createClassHandler(deps.ClassSvc))
	router.GET("/classes", approvedClassesHandler(deps.ClassSvc))
	router.GET("/approved-classes", approvedClassesHandler(deps.ClassSvc))
	router.GET("/classes/:email", instructorClassesHandler(deps.ClassSvc))
	router.GET("/classes-manage", allClassesHandler(deps.ClassSvc))
	router.GET("/class/:id", getClassHandler(deps.ClassSvc))
	router.PATCH("/change-status/:id", changeStatusHandler(deps.ClassSvc))
	router.PUT("/update-class/:id", updateClassHandler(deps.ClassSvc))

	router.POST("/add-to-cart", addToCartHandler(deps.CartSvc))
	router.GET("/cart-item/:id", cartItemHandler(deps.CartSvc))
	router.GET("/cart/:email", cartHandler(deps.CartSvc))
	router.DELETE("/delete-item/:id", deleteCartItemHandler(deps.CartSvc))

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", requestIDHeader)
	cfg.ExposeHeaders = []string{requestIDHeader}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

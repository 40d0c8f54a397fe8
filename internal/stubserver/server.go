// Package stubserver is an in-memory double of the remote storefront
// backend, used for local development and integration tests. It speaks the
// same REST surface and {success, message} envelope as the real API.
package stubserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server around the given store.
func New(addr string, logger *log.Logger, store *Store) *Server {
	router := BuildRouter(logger, store)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// BuildRouter wires all routes. Exported so tests can drive the engine
// through httptest without opening a socket.
func BuildRouter(logger *log.Logger, store *Store) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := &handlers{store: store}

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/product/list", h.productList)
		apiGroup.GET("/category/list", h.categoryList)

		apiGroup.POST("/user/register", h.register)
		apiGroup.POST("/user/login", h.login)
		apiGroup.POST("/user/logout", h.logout)
		apiGroup.GET("/user/is-auth", h.requireUser, h.isAuth)

		apiGroup.POST("/cart/add", h.requireUser, h.cartAdd)
		apiGroup.POST("/cart/update", h.requireUser, h.cartUpdate)

		apiGroup.POST("/order/cod", h.requireUser, h.orderCOD)
		apiGroup.POST("/order/stripe", h.requireUser, h.orderStripe)
		apiGroup.POST("/order/userorders", h.requireUser, h.myOrders)
		apiGroup.POST("/order/list", h.requireUser, h.requireStaff, h.orderList)
		apiGroup.POST("/order/status", h.requireUser, h.requireStaff, h.orderStatus)

		apiGroup.GET("/wishlist/list", h.requireUser, h.wishlistList)
		apiGroup.POST("/wishlist/add", h.requireUser, h.wishlistAdd)
		apiGroup.POST("/wishlist/remove", h.requireUser, h.wishlistRemove)

		apiGroup.GET("/review/list", h.reviewList)
		apiGroup.POST("/review/add", h.requireUser, h.reviewAdd)
	}

	return router
}

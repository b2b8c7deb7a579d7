package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mov9900/AutoLib-Ecosystem014/internal/auth"
	"github.com/mov9900/AutoLib-Ecosystem014/internal/auth/credentials"
	"github.com/mov9900/AutoLib-Ecosystem014/internal/auth/handler"
	"github.com/mov9900/AutoLib-Ecosystem014/internal/auth/token"
	"github.com/mov9900/AutoLib-Ecosystem014/internal/catalog"
	"github.com/mov9900/AutoLib-Ecosystem014/internal/config"
	"github.com/mov9900/AutoLib-Ecosystem014/internal/middleware"
	"github.com/mov9900/AutoLib-Ecosystem014/internal/session"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)

	var credentialStore credentials.Store
	if infra.DB != nil {
		credentialStore = credentials.NewPostgresStore(infra.DB)
	} else {
		memStore := credentials.NewMemoryStore()
		if err := credentials.SeedDemoUsers(memStore); err != nil {
			return nil, nil, err
		}
		credentialStore = memStore
	}

	signer := token.NewSigner(
		cfg.AccessSecret,
		cfg.RefreshSecret,
		cfg.AccessTTL,
		cfg.RefreshTTL,
	)

	sessionManager := auth.NewManager(credentialStore, signer, sessionStore)

	authHandler := handler.NewHandler(sessionManager)

	authMiddleware := middleware.NewAuthMiddleware(signer)

	books := catalog.NewMemoryCatalog()

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	api.GET("/books", func(c *gin.Context) {
		list, err := books.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
			return
		}
		c.JSON(200, gin.H{"books": list})
	})

	api.GET("/books/search", func(c *gin.Context) {
		list, err := books.Search(c.Request.Context(), c.Query("q"))
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
			return
		}
		c.JSON(200, gin.H{"books": list})
	})

	// ----------------------------
	// Protected Resource Routes
	// ----------------------------

	user := router.Group("/user")
	user.Use(middleware.GinRequireAuth(authMiddleware))

	user.GET("/data", func(c *gin.Context) {
		claims, _ := middleware.ClaimsFromContext(c.Request.Context())
		c.JSON(200, gin.H{
			"message": "User data",
			"userId":  claims.Subject,
		})
	})

	admin := router.Group("/admin")
	admin.Use(middleware.GinRequireAuth(authMiddleware))
	admin.Use(middleware.RequireRole(credentials.RoleAdmin))

	admin.GET("/data", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Admin secret data"})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if infra.DB != nil {
			return infra.DB.Close()
		}
		return nil
	}, nil
}

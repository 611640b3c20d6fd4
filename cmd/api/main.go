package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/instaladores-backend/docs"
	"github.com/rafabene/instaladores-backend/internal/domain/entities"
	httphandlers "github.com/rafabene/instaladores-backend/internal/handlers/http"
	"github.com/rafabene/instaladores-backend/internal/handlers/middleware"
	"github.com/rafabene/instaladores-backend/internal/handlers/ws"
	"github.com/rafabene/instaladores-backend/internal/infrastructure/auth"
	"github.com/rafabene/instaladores-backend/internal/infrastructure/config"
	"github.com/rafabene/instaladores-backend/internal/infrastructure/i18n"
	"github.com/rafabene/instaladores-backend/internal/infrastructure/logging"
	"github.com/rafabene/instaladores-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/instaladores-backend/internal/infrastructure/storage"
	"github.com/rafabene/instaladores-backend/internal/services"
)

// @title       Instaladores Backend API
// @version     1.0
// @description API de catálogo de aplicativos e instaladores con autenticación JWT.
// @BasePath    /api
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting instaladores backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.AutoMigrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "es")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	aplicativoRepo := postgres.NewAplicativoRepository(db)
	instaladorRepo := postgres.NewInstaladorRepository(db)
	usuarioRepo := postgres.NewUsuarioRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar infraestrutura de domínio
	archivoStorage, err := storage.NewLocalStorage(&cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		log.Fatal(err)
	}
	hasher := auth.NewBcryptHasher()
	tokens := auth.NewJWTService(&cfg.JWT)
	hub := ws.NewHub(logger)

	// Inicializar services
	usuarioService := services.NewUsuarioService(usuarioRepo, hasher, tokens, logger)
	aplicativoService := services.NewAplicativoService(aplicativoRepo, instaladorRepo, archivoStorage, uow, logger)
	instaladorService := services.NewInstaladorService(instaladorRepo, aplicativoRepo, archivoStorage, hub, logger)

	// Inicializar handlers
	usuarioHandler := httphandlers.NewUsuarioHandler(usuarioService)
	aplicativoHandler := httphandlers.NewAplicativoHandler(aplicativoService)
	instaladorHandler := httphandlers.NewInstaladorHandler(instaladorService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "Accept-Language")
	router.Use(cors.New(corsConfig))

	// Middleware de autenticação
	authMiddleware := middleware.NewAuthMiddleware(tokens, i18nService)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// API routes
	api := router.Group("/api")
	{
		usuarios := api.Group("/usuarios")
		{
			usuarios.POST("/register", usuarioHandler.Registrar)
			usuarios.POST("/login", usuarioHandler.Login)
			usuarios.GET("/profile", authMiddleware.Autenticar(), usuarioHandler.Perfil)
		}

		aplicativos := api.Group("/aplicativos")
		{
			aplicativos.GET("", aplicativoHandler.Listar)
			aplicativos.GET("/:id", aplicativoHandler.Obtener)

			soloAdmin := aplicativos.Group("", authMiddleware.Autenticar(), authMiddleware.Autorizar(entities.RolAdmin))
			{
				soloAdmin.POST("", aplicativoHandler.Crear)
				soloAdmin.PUT("/:id", aplicativoHandler.Actualizar)
				soloAdmin.DELETE("/:id", aplicativoHandler.Eliminar)
			}
		}

		instaladores := api.Group("/instaladores")
		{
			instaladores.GET("", instaladorHandler.Listar)
			instaladores.POST("/upload", authMiddleware.Autenticar(), instaladorHandler.Subir)

			conRol := instaladores.Group("", authMiddleware.Autenticar(), authMiddleware.Autorizar(entities.RolAdmin, entities.RolUsuario))
			{
				conRol.GET("/:id/download", instaladorHandler.Descargar)
				conRol.PUT("/:id", instaladorHandler.Actualizar)
				conRol.DELETE("/:id", instaladorHandler.Eliminar)
			}
		}

		api.GET("/eventos", authMiddleware.Autenticar(), hub.Manejar)
		api.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

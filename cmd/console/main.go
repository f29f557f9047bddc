package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	adminHandler "github.com/waumini/sadaka/services/admin/handler"
	adminUsecase "github.com/waumini/sadaka/services/admin/usecase"
	authHandler "github.com/waumini/sadaka/services/auth/handler"
	authUsecase "github.com/waumini/sadaka/services/auth/usecase"
	txHandler "github.com/waumini/sadaka/services/transactions/handler"
	txUsecase "github.com/waumini/sadaka/services/transactions/usecase"

	"github.com/waumini/sadaka/internal/pkg/config"
	"github.com/waumini/sadaka/internal/pkg/health"
	httpclient "github.com/waumini/sadaka/internal/pkg/http"
	"github.com/waumini/sadaka/internal/pkg/logger"
	"github.com/waumini/sadaka/internal/pkg/notify"
	"github.com/waumini/sadaka/internal/pkg/tokenstore"
	"github.com/waumini/sadaka/internal/pkg/view"
	adminGateway "github.com/waumini/sadaka/services/admin/gateway/http"
	authGateway "github.com/waumini/sadaka/services/auth/gateway/http"
	txGateway "github.com/waumini/sadaka/services/transactions/gateway/http"
)

func main() {
	appName := "sadaka-console"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitFromConfig(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("environment", configs.App.Environment),
	)

	// API client and gateways
	apiClient := httpclient.NewClient(configs.API.BaseURL, time.Duration(configs.API.Timeout)*time.Second, nil)
	authGW := authGateway.NewAuthGateway(apiClient)
	transactionGW := txGateway.NewTransactionGateway(apiClient)
	userGW := adminGateway.NewUserGateway(apiClient)

	// Session store; it feeds the bearer token back into the client
	tokens := tokenstore.NewFileStore(configs.Token.Path)
	notifier := notify.NewLogNotifier()
	sessionStore := authUsecase.NewSessionStore(authGW, tokens, notifier)
	apiClient.SetTokenSource(sessionStore)

	// Restore a persisted session before serving
	restoreCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	sessionStore.Restore(restoreCtx)
	cancel()

	// Page controllers
	transactionUC := txUsecase.NewTransactionController(transactionGW, notifier)
	adminUC := adminUsecase.NewUserAdminController(userGW, notifier)

	// Handlers
	authH := authHandler.NewAuthHandler(sessionStore, transactionUC, adminUC)
	transactionH := txHandler.NewTransactionHandler(transactionUC, sessionStore)
	adminH := adminHandler.NewAdminHandler(adminUC, sessionStore)

	// Echo router
	e := echo.New()
	e.HideBanner = true

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Fatal("Failed to load templates", logger.Err(err))
	}
	e.Renderer = renderer

	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	authH.RegisterRoutes(e)
	transactionH.RegisterRoutes(e)
	adminH.RegisterRoutes(e)

	go func() {
		logger.Info("Starting server",
			logger.String("app", appName),
			logger.Int("port", configs.Server.Port),
		)
		if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
			logger.Info("Server stopped", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down", logger.String("app", appName))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", logger.Err(err))
	}
}

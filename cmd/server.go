package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"communify/internal/config"
	"communify/internal/core"
	"communify/internal/db"
	"communify/internal/http/handler"
	"communify/internal/http/handler/middleware"
	"communify/internal/http/server"
	"communify/internal/repository"
	"communify/internal/session"
	"communify/internal/web"
	tokenIssuer "communify/pkg/jwt"
	"communify/pkg/log"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("communify", zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewCommunityRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	err = repo.SeedAdminUser(context.Background())
	if err != nil {
		logger.Errorw("failed to seed admin user", "error", err)
		return err
	}

	// session manager backed by signed cookie tokens
	jwtService := tokenIssuer.NewJWTService([]byte(config.SessionSecret))
	sessions := session.NewManager(logger, jwtService)

	// application core
	community := core.NewCommunity(
		logger,
		repo,
		core.PlaintextVerifier{})

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Errorw("failed to parse templates", "error", err)
		return err
	}

	// handler
	webHlr := handler.NewWebHandler(
		logger,
		renderer,
		sessions,
		community)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Home, webHlr.HandleHome)
	mux.HandleFunc(handler.LoginPage, webHlr.HandleLoginPage)
	mux.HandleFunc(handler.LoginSubmit, webHlr.HandleLoginSubmit)
	mux.HandleFunc(handler.Logout, webHlr.HandleLogout)
	mux.HandleFunc(handler.Dashboard, webHlr.HandleDashboard)
	mux.HandleFunc(handler.MemberList, webHlr.HandleMemberList)
	mux.HandleFunc(handler.MemberForm, webHlr.HandleMemberForm)
	mux.HandleFunc(handler.MemberSubmit, webHlr.HandleMemberSubmit)
	mux.HandleFunc(handler.AttendanceForm, webHlr.HandleAttendanceForm)
	mux.HandleFunc(handler.AttendanceSubmit, webHlr.HandleAttendanceSubmit)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}

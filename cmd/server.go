package cmd

import (
	"feedbacker/internal/config"
	"feedbacker/internal/core"
	"feedbacker/internal/db"
	"feedbacker/internal/http/handler"
	"feedbacker/internal/http/handler/middleware"
	"feedbacker/internal/http/payload"
	"feedbacker/internal/http/server"
	"feedbacker/internal/repository"
	"feedbacker/pkg/jwt"
	"feedbacker/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("feedbacker", zapcore.InfoLevel)

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

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewBoardRepository(dbConn)

	if err = repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// board
	board := core.NewBoard(
		logger,
		repo,
		jwtService)

	// handler
	boardHlr := handler.NewBoardHandler(
		logger,
		payload.DecodeValidator{},
		board)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Register, boardHlr.HandleRegister)
	mux.HandleFunc(handler.Login, boardHlr.HandleLogin)
	mux.HandleFunc(handler.GetUserPage, boardHlr.HandleGetUserPage)
	mux.HandleFunc(handler.DeleteUser, boardHlr.HandleDeleteUser)
	mux.HandleFunc(handler.AddFeedback, boardHlr.HandleAddFeedback)
	mux.HandleFunc(handler.GetFeedback, boardHlr.HandleGetFeedback)
	mux.HandleFunc(handler.EditFeedback, boardHlr.HandleEditFeedback)
	mux.HandleFunc(handler.DeleteFeedback, boardHlr.HandleDeleteFeedback)

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

package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-server/internal/config"
	"github.com/rocketscienceinc/tictactoe-server/internal/repository"
	"github.com/rocketscienceinc/tictactoe-server/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-server/internal/service"
	"github.com/rocketscienceinc/tictactoe-server/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-server/transport/rest"
	"github.com/rocketscienceinc/tictactoe-server/transport/tcp"
	"github.com/rocketscienceinc/tictactoe-server/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

type waiter interface {
	Wait(ctx context.Context) error
}

// RunApp - runs the application until a termination signal or a fatal listener error.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	outcomeRepo, closeStorage, err := initOutcomes(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	managers := usecase.NewGameManagerFactory(service.NewBotService(), outcomeRepo)

	errCh := make(chan error, 3)
	var workers []waiter

	// run TCP server
	tcpServer := tcp.New(logger, managers, conf.ReadTimeout)
	workers = append(workers, tcpServer)
	go func() {
		log.Info("Starting TCP server", "port", conf.Port)
		if tcpErr := tcpServer.Start(ctx, conf.Port); tcpErr != nil {
			errCh <- fmt.Errorf("TCP server error: %w", tcpErr)
		}
	}()

	// run Websocket server
	if conf.WebSocketPort != "" {
		wsServer := websocket.New(logger, managers, conf.ReadTimeout)
		workers = append(workers, wsServer)
		go func() {
			log.Info("Starting WebSocket server", "port", conf.WebSocketPort)
			if wsErr := wsServer.Start(ctx, conf.WebSocketPort); wsErr != nil {
				errCh <- fmt.Errorf("WebSocket server error: %w", wsErr)
			}
		}()
	}

	// run HTTP server
	if conf.HTTPPort != "" {
		handlers := rest.NewHandlers(logger.With("component", "rest"), outcomeRepo)
		go func() {
			log.Info("Starting HTTP server", "port", conf.HTTPPort)
			if httpErr := rest.Start(ctx, conf.HTTPPort, handlers); httpErr != nil {
				errCh <- fmt.Errorf("HTTP server error: %w", httpErr)
			}
		}()
	}

	select {
	case err = <-errCh:
		log.Error("Server failed, shutting down", "error", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
	defer shutdownCancel()

	for _, worker := range workers {
		if waitErr := worker.Wait(shutdownCtx); waitErr != nil {
			log.Warn("Shutdown timed out", "error", waitErr)
		}
	}

	return err
}

// initOutcomes - Redis backed outcome counters when enabled, a no-op recorder otherwise.
func initOutcomes(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.OutcomeRepository, func(), error) {
	if !conf.Redis.Enabled {
		log.Info("Redis disabled, outcome counters are not kept")
		return repository.NewNoopOutcomeRepository(), func() {}, nil
	}

	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, storage.RedisOptions{
		Addr:     conf.Redis.GetRedisAddr(),
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewOutcomeRepository(redisStorage.Connection), closeStorage, nil
}

// Package server initializes and runs the election server: it opens the
// repository backend, wires the notification and archive channels, sends
// the bootstrap invitation and serves gRPC until a signal arrives.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/unielect/internal/logging"
	"github.com/dmitrijs2005/unielect/internal/server/archive"
	"github.com/dmitrijs2005/unielect/internal/server/config"
	"github.com/dmitrijs2005/unielect/internal/server/notify"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/memory"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/unielect/internal/server/services"

	gs "github.com/dmitrijs2005/unielect/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	manager  repomanager.RepositoryManager
	services gs.Services
}

// openManager selects the in-memory store for config.MemoryDSN and
// PostgreSQL otherwise.
func openManager(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	if c.DatabaseDSN == config.MemoryDSN {
		return memory.NewStore(), nil
	}
	m, err := repomanager.Open(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := m.RunMigrations(ctx); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}
	return m, nil
}

func newNotifier(c *config.Config, logger logging.Logger) notify.Sink {
	if c.SMTPAddr == "" {
		return notify.NewLogSink(logger)
	}
	return notify.NewSMTPSink(notify.SMTPConfig{
		Addr:     c.SMTPAddr,
		From:     c.SMTPFrom,
		User:     c.SMTPUser,
		Password: c.SMTPPassword,
	})
}

func newArchiver(ctx context.Context, c *config.Config) (archive.Archiver, error) {
	if c.S3Bucket == "" {
		return archive.Nop{}, nil
	}
	return archive.NewS3Archiver(ctx, archive.S3Config{
		User:     c.S3RootUser,
		Password: c.S3RootPassword,
		Bucket:   c.S3Bucket,
		Region:   c.S3Region,
		Endpoint: c.S3BaseEndpoint,
	})
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	m, err := openManager(ctx, c)
	if err != nil {
		return nil, err
	}

	archiver, err := newArchiver(ctx, c)
	if err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("archive init error: %w", err)
	}
	notifier := newNotifier(c, logger)

	svc := gs.Services{
		Auth:        services.NewAuthService(m, c, logger),
		Elections:   services.NewElectionService(m, notifier, archiver, logger),
		Assignments: services.NewAssignmentService(m, notifier, logger),
		Invitations: services.NewInvitationService(m, notifier, c, logger),
		Votes:       services.NewVoteService(m, logger),
	}

	return &App{config: c, logger: logger, manager: m, services: svc}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// bootstrap invites the configured address as SUPERADMIN while nobody
// holds that role.
func (app *App) bootstrap(ctx context.Context) {
	inv, err := app.services.Invitations.Bootstrap(ctx, app.config.BootstrapEmail)
	if err != nil {
		app.logger.Error(ctx, "bootstrap invitation failed", "error", err)
		return
	}
	if inv != nil {
		app.logger.Info(ctx, "bootstrap invitation sent", "email", inv.Email, "expires_at", inv.ExpiresAt)
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.services)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)
	app.bootstrap(ctx)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "closing storage failed", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}

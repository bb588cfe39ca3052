package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/epicevents/crm/cmd/app/screens"
	"github.com/epicevents/crm/internal/app"
	"github.com/epicevents/crm/internal/crm/controller"
)

// RunApp starts the interactive terminal application. It assembles the
// screens over the container's use cases and drives the controller loop
// until the user quits or a fatal error occurs.
//
// Requirements: Database must be migrated and accessible.
func RunApp(ctx context.Context, container *app.Container, io IOTuple, version string) error {
	logger := container.Logger()
	logger.Info("starting application", slog.String("version", version))

	if err := container.Config().Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	tokenUseCase, err := container.TokenUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize token use case: %w", err)
	}

	userUseCase, err := container.UserUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize user use case: %w", err)
	}

	clientUseCase, err := container.ClientUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize client use case: %w", err)
	}

	contractUseCase, err := container.ContractUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize contract use case: %w", err)
	}

	eventUseCase, err := container.EventUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize event use case: %w", err)
	}

	sessionMiddleware, err := container.SessionMiddleware()
	if err != nil {
		return fmt.Errorf("failed to initialize session middleware: %w", err)
	}

	screenList := []controller.Screen{
		screens.NewLoginScreen(tokenUseCase, io.Reader, io.Writer),
		screens.NewHomeScreen(tokenUseCase, io.Reader, io.Writer),
		screens.NewClientsScreen(clientUseCase, io.Reader, io.Writer),
		screens.NewContractsScreen(contractUseCase, io.Reader, io.Writer),
		screens.NewEventsScreen(eventUseCase, io.Reader, io.Writer),
		screens.NewUsersScreen(userUseCase, io.Reader, io.Writer),
	}

	// Quit cleanly on Ctrl-C
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctrl := controller.NewController(screenList, sessionMiddleware, logger)
	if err := ctrl.Run(ctx); err != nil {
		return fmt.Errorf("screen loop failed: %w", err)
	}

	logger.Info("application stopped")
	return nil
}

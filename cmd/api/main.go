// Package main provides the main entry point for the Nutriplan API server
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/fx"

	"github.com/nutriplan/v2/internal/infrastructure/container"
)

func main() {
	app := fx.New(
		fx.NopLogger, // Use our own logger instead of Fx's

		container.Module,

		fx.Invoke(func() {
			fmt.Println("Nutriplan v2.0.0 - Nutrition Plan Generation Engine")
		}),
	)

	// Create context that cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start the application
	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	// Wait for interrupt signal
	<-ctx.Done()

	// Graceful shutdown
	fmt.Println("\nShutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := app.Stop(shutdownCtx); err != nil {
		log.Fatalf("Failed to stop application gracefully: %v", err)
	}

	fmt.Println("Application stopped successfully")
}

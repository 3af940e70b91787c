package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"predator-web/internal/bootstrap"
	"predator-web/internal/config"
	"predator-web/internal/server"
	"predator-web/internal/tracer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Infrastructure
	infra, err := bootstrap.NewInfrastructure(ctx, cfg)
	if err != nil {
		log.Panicf("Unable to initialize infrastructure: %v", err)
	}
	defer infra.Close()

	// 3. Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(ctx, infra.Logger)
	defer shutdownTracer(context.Background())

	// 4. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(ctx, cfg, infra)
	if err != nil {
		log.Panicf("Unable to build container: %v", err)
	}

	// 5. Start Background Services
	go func() {
		if err := container.ConsumerService.Consume(ctx); err != nil {
			infra.Logger.Error("MAIN", "Background consumer stopped", map[string]interface{}{"error": err.Error()})
		}
	}()

	// 6. Initialize Server
	srv := server.New(cfg, container, infra.Logger)

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			infra.Logger.Error("MAIN", "Server shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	// 7. Run Server
	if err := srv.Run(); err != nil {
		infra.Logger.Error("MAIN", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}

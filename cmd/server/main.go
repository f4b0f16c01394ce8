/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the maternity benefit engine server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load the rate schedule (file or built-in defaults)
  3. Build the engine and API handler
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -rates   Path to a JSON rate schedule file (default: built-in FY2024)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  # Run with built-in rates
  ./server

  # Run with a fiscal-year override
  ./server -rates=./rates-2025.json -port=3000

SEE ALSO:
  - api/server.go: router configuration
  - factory/rates.go: schedule file format
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/maternity-engine/api"
	"github.com/warp/maternity-engine/benefit"
	"github.com/warp/maternity-engine/factory"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	ratesPath := flag.String("rates", "", "JSON rate schedule path (empty = built-in defaults)")
	flag.Parse()

	// Load schedule
	schedule := benefit.DefaultSchedule()
	if *ratesPath != "" {
		data, err := os.ReadFile(*ratesPath)
		if err != nil {
			log.Fatalf("Failed to read rate schedule: %v", err)
		}
		schedule, err = factory.ParseSchedule(data)
		if err != nil {
			log.Fatalf("Failed to parse rate schedule: %v", err)
		}
		log.Printf("Loaded rate schedule from %s", *ratesPath)
	}

	// Initialize engine and handler
	engine, err := benefit.NewEngine(schedule)
	if err != nil {
		log.Fatalf("Invalid rate schedule: %v", err)
	}
	handler := api.NewHandler(engine)

	// Create router
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on http://localhost:%d", *port)
		log.Printf("📊 API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

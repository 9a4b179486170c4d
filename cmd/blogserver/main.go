// Command blogserver runs the development blog API the client talks to.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bloglist/internal/config"
	"bloglist/internal/database"
	"bloglist/internal/seed"
	"bloglist/internal/server"

	"github.com/gofiber/fiber/v2"
)

func main() {
	seedDemo := flag.Bool("seed", false, "seed demo users and blogs before serving")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if *seedDemo {
		if err := seed.Seed(context.Background(), db, 2, 3); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		log.Printf("Seeded demo data; log in as %s/%s", seed.DemoUsername, seed.DemoPassword)
	}

	srv := server.NewServer(cfg, db)

	app := fiber.New(fiber.Config{
		AppName: "Bloglist API",
	})
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Server starting on port %s...", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"perseverantia_backend/internals/configs"
	database "perseverantia_backend/internals/databases"
	"perseverantia_backend/internals/middlewares"
	"perseverantia_backend/internals/route"
	"perseverantia_backend/internals/seeds"
	"perseverantia_backend/internals/sheets"

	schoolsPkg "perseverantia_backend/internals/features/schools"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		AppName:      "Perseverantia Registration API",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	app.Use(compress.New())
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	if err := database.InitSchema(database.DB); err != nil {
		log.Fatalf("❌ Schema migration failed: %v", err)
	}
	database.WarmUp()

	seeds.Run(database.DB)

	directory, err := schoolsPkg.Load(configs.SchoolConfigPath)
	if err != nil {
		log.Fatalf("❌ Could not load school config: %v", err)
	}
	log.Printf("✅ Loaded %d school account(s)", directory.Count())

	var syncer *sheets.Syncer
	if configs.SpreadsheetID != "" {
		cli, err := sheets.NewClient(context.Background(),
			configs.GoogleServiceAccountJSON, configs.GoogleCredentialsFile, configs.SpreadsheetID)
		if err != nil {
			log.Printf("⚠️ Google Sheets disabled: %v", err)
		} else {
			syncer = sheets.NewSyncer(cli, database.DB)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := syncer.EnsureSheets(ctx); err != nil {
				log.Printf("⚠️ Could not prepare sheets: %v", err)
			}
			cancel()
			sheets.StartResyncScheduler(syncer)
		}
	} else {
		log.Println("⚠️ SPREADSHEET_ID not set, sheet sync disabled")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":       "ok",
			"configLoaded": directory.Count() > 0,
			"sheetsSync":   syncer.Enabled(),
		})
	})

	route.SetupRoutes(app, database.DB, directory, syncer)

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🔌 Shutting down...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	port := configs.GetEnv("PORT", "3000")
	log.Printf("✅ Server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}

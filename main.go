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
	"github.com/gofiber/fiber/v2/utils"

	"github.com/AlphaJr1/AlumniFund/internals/configs"
	database "github.com/AlphaJr1/AlumniFund/internals/databases"
	submissionScheduler "github.com/AlphaJr1/AlumniFund/internals/features/finance/submissions/scheduler"
	targetScheduler "github.com/AlphaJr1/AlumniFund/internals/features/finance/targets/scheduler"
	txService "github.com/AlphaJr1/AlumniFund/internals/features/finance/transactions/service"
	ossHelper "github.com/AlphaJr1/AlumniFund/internals/helpers/oss"
	"github.com/AlphaJr1/AlumniFund/internals/middlewares"
	routes "github.com/AlphaJr1/AlumniFund/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// HTTP timeout guard (selaras dengan statement_timeout di DB)
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUp()

	// 🖼 OSS untuk bukti transfer (opsional, nil kalau env kosong)
	oss, err := ossHelper.NewOSSServiceFromEnv("alumnifund/proofs")
	if err != nil {
		log.Printf("⚠️ OSS tidak dikonfigurasi, upload bukti dimatikan: %v", err)
		oss = nil
	}

	// ⏱ scheduler setelah DB siap
	lifecycleCron := targetScheduler.StartLifecycleScheduler(database.DB)
	cleanupCron := submissionScheduler.StartCleanupScheduler(database.DB, oss)

	// ✅ MIDTRANS
	txService.InitMidtrans(configs.MidtransServerKey)

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, oss)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: stop cron dulu biar sweep yang jalan selesai
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	<-lifecycleCron.Stop().Done()
	<-cleanupCron.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

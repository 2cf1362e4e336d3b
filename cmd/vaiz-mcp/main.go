// MCP сервер Vaiz. По умолчанию работает через stdio, при заданном MCP_HTTP_ADDR
// поднимает streamable HTTP транспорт на echo. Метрики отдаются на METRICS_ADDR.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aisa-it/vaiz.go/internal/vaiz/config"
	"github.com/aisa-it/vaiz.go/internal/vaiz/cronmanager"
	vaizmcp "github.com/aisa-it/vaiz.go/internal/vaiz/mcp"
	"github.com/aisa-it/vaiz.go/pkg/vaiz"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lmittmann/tint"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	trace := flag.Bool("trace", false, "Verbose logs")
	printVersion := flag.Bool("version", false, "Print version and exit")
	printEnv := flag.Bool("env", false, "Print environment variables and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(vaiz.Version())
		return
	}
	if *printEnv {
		for _, v := range config.Variables() {
			fmt.Printf("%-16s %-26s %s\n", v.Name, v.Default, v.Description)
		}
		return
	}

	setupLogger(*trace)

	if err := run(); err != nil {
		slog.Error("Vaiz MCP fail", "err", err)
		os.Exit(1)
	}
}

// setupLogger stdout занят stdio транспортом, поэтому логи всегда пишутся в stderr
func setupLogger(trace bool) {
	level := &slog.LevelVar{}
	if trace {
		level.Set(slog.LevelDebug)
	}

	if vaiz.Version() == "DEV" {
		slog.SetDefault(slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05.000",
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		})))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func run() error {
	cfg, err := config.ReadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := vaiz.NewClient(vaiz.Config{
		APIKey:             cfg.APIKey,
		SpaceID:            cfg.SpaceID,
		BaseURL:            cfg.BaseURL,
		InsecureSkipVerify: !cfg.VerifySSL,
		Verbose:            cfg.Verbose,
		CacheTTL:           cfg.CacheTTL(),
	}, vaiz.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return err
	}

	cron := cronmanager.NewCronManager(cronmanager.JobRegistry{
		"purge_tasks_cache": {
			Func: func() {
				if n := client.TasksCache().Purge(); n > 0 {
					slog.Debug("Tasks cache purged", "expired", n)
				}
			},
			Schedule: "@every 1m",
		},
	})
	if err := cron.LoadJobs(); err != nil {
		return err
	}
	cron.Start()
	defer cron.Stop()

	go serveMetrics(cfg.MetricsAddr)

	srv := vaizmcp.NewMCPServer(client)
	slog.Info("Vaiz MCP start", "version", vaiz.Version(), "space", cfg.SpaceID, "http", cfg.MCPHTTPAddr)

	if cfg.MCPHTTPAddr == "" {
		return server.ServeStdio(srv)
	}
	return serveHTTP(ctx, cfg.MCPHTTPAddr, srv)
}

func serveHTTP(ctx context.Context, addr string, srv *server.MCPServer) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(echoprometheus.NewMiddleware("vaiz_mcp"))

	handler := vaizmcp.NewHTTPHandler(srv)
	e.Any("/mcp", handler)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			slog.Error("MCP HTTP shutdown", "err", err)
		}
	}()

	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func serveMetrics(addr string) {
	if addr == "" {
		return
	}
	bootTimeGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "vaiz_mcp",
		Name:      "boot_time",
		Help:      "Server startup time",
	})
	bootTimeGauge.Set(float64(time.Now().UnixMilli()))
	if err := prometheus.Register(bootTimeGauge); err != nil {
		slog.Error("Register boot time gauge", "err", err)
		return
	}

	metrics := echo.New()
	metrics.HideBanner = true
	metrics.HidePort = true
	metrics.GET("/metrics", echoprometheus.NewHandler())
	if err := metrics.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Metrics server fail", "err", err)
	}
}

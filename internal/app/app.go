package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/NastyaGoryachaya/crypto-trends/internal/config"
	"github.com/NastyaGoryachaya/crypto-trends/internal/infra/cryptocompare"
	"github.com/NastyaGoryachaya/crypto-trends/internal/infra/db"
	"github.com/NastyaGoryachaya/crypto-trends/internal/infra/googletrends"
	repopg "github.com/NastyaGoryachaya/crypto-trends/internal/repository/postgres"
	"github.com/NastyaGoryachaya/crypto-trends/internal/scheduler"
	"github.com/NastyaGoryachaya/crypto-trends/internal/service/coins"
	"github.com/NastyaGoryachaya/crypto-trends/internal/service/history"
	"github.com/NastyaGoryachaya/crypto-trends/internal/service/pipeline"
	botpkg "github.com/NastyaGoryachaya/crypto-trends/internal/transport/bot"
	"github.com/NastyaGoryachaya/crypto-trends/internal/transport/httptransport"
	"github.com/NastyaGoryachaya/crypto-trends/web"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	db   *pgxpool.Pool
	e    *echo.Echo
	serv *http.Server

	catalog  *coins.Catalog
	pipeline *pipeline.Pipeline
	runner   httptransport.TrendRunner

	bot *botpkg.Bot

	pruneScheduler *scheduler.Scheduler
}

// NewPipeline — пайплайн с боевыми провайдерами (используется и сервером, и CLI)
func NewPipeline(cfg config.Config, log *slog.Logger) (*pipeline.Pipeline, *cryptocompare.Client) {
	prices := cryptocompare.NewClient(cfg.CryptoCompare, nil, log)
	trends := googletrends.NewClient(cfg.Trends, nil, log)
	return pipeline.New(trends, prices, log, pipeline.WithTimeout(cfg.Pipeline.Timeout)), prices
}

// LoadCatalog — одноразовая загрузка списка монет
func LoadCatalog(ctx context.Context, provider coins.CoinListProvider, timeout time.Duration, log *slog.Logger) *coins.Catalog {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return coins.NewCatalog(coins.NewLoader(provider, log).Load(ctx))
}

func NewApp(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	pipe, prices := NewPipeline(cfg, log)
	app.pipeline = pipe
	app.runner = pipe
	app.catalog = LoadCatalog(ctx, prices, cfg.CryptoCompare.Timeout+5*time.Second, log)

	var historySvc *history.Service
	if cfg.Postgres.Enabled {
		pool, err := db.NewPool(ctx, &cfg.Postgres)
		if err != nil {
			log.Error("postgres init failed", slog.String("error", err.Error()))
			return nil, err
		}
		app.db = pool

		queryLog := repopg.NewQueryLog(pool)
		if err := queryLog.EnsureSchema(ctx); err != nil {
			pool.Close()
			log.Error("postgres schema init failed", slog.String("error", err.Error()))
			return nil, err
		}
		app.runner = history.NewRecorder(pipe, queryLog, log)
		historySvc = history.NewService(queryLog, log)

		if cfg.Postgres.Retention > 0 {
			pruner := history.NewPruner(queryLog, cfg.Postgres.Retention, history.NewRealClock(), log)
			app.pruneScheduler = scheduler.NewScheduler("history-prune", pruner, cfg.Postgres.PruneInterval, log)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Server.Debug
	app.e = e

	h := httptransport.NewTrendsHandler(log, app.runner, app.catalog, web.Index(), cfg.Postgres.Timeout)
	if historySvc != nil {
		h.WithHistory(historySvc)
	}
	h.RegisterRoutes(e)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	if cfg.Telegram.Enabled {
		// Если бот включён, отсутствие токена — ошибка конфигурации
		token := strings.TrimSpace(cfg.Telegram.Token)
		if token == "" {
			log.Error("telegram enabled but TELEGRAM_BOT_TOKEN is empty")
			app.closeDB()
			return nil, errors.New("telegram token is empty")
		}
		cfg.Telegram.Token = token

		botApp, err := botpkg.New(cfg.Telegram, app.runner, app.catalog, cfg.Pipeline.Timeout+5*time.Second, log)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			app.closeDB()
			return nil, err
		}
		app.bot = botApp
	}

	log.Info("app initialized",
		slog.Int("coins", app.catalog.Len()),
		slog.Bool("history_enabled", historySvc != nil),
		slog.Bool("telegram_enabled", app.bot != nil),
		slog.Bool("debug", cfg.Server.Debug),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.bot != nil {
		a.log.Info("starting bot")
		a.bot.Start(ctx)
	}

	if a.pruneScheduler != nil {
		go a.pruneScheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}
	if err := a.Shutdown(context.Background()); err != nil {
		return err
	}
	return runErr
}

func (a *App) Shutdown(ctx context.Context) error {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}

	if a.bot != nil {
		a.bot.Stop()
	}

	a.closeDB()

	a.log.Info("application stopped")
	return nil
}

func (a *App) closeDB() {
	if a.db != nil {
		a.db.Close()
		a.db = nil
	}
}

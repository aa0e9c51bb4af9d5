package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/NastyaGoryachaya/crypto-trends/internal/app"
	"github.com/NastyaGoryachaya/crypto-trends/internal/config"
	"github.com/NastyaGoryachaya/crypto-trends/internal/domain"
	"github.com/NastyaGoryachaya/crypto-trends/internal/transport/httptransport"
	"github.com/NastyaGoryachaya/crypto-trends/pkg/logger"
)

var version = "dev"

type rootOptions struct {
	configPath string
	debug      bool
}

// newRootCmd — дерево команд. Без подкоманды запускается serve.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "crypto-trends",
		Short:         "Search popularity vs. coin price dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts, errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config.yaml (default: $CONFIG_PATH)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "debug logging and echo dev mode")

	root.AddCommand(
		newServeCmd(opts, errOut),
		newQueryCmd(opts, out, errOut),
		newCoinsCmd(opts, out, errOut),
		newVersionCmd(out),
	)
	return root
}

func newServeCmd(opts *rootOptions, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP dashboard (and telegram bot if enabled)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts, errOut)
		},
	}
}

func newQueryCmd(opts *rootOptions, out, errOut io.Writer) *cobra.Command {
	var (
		term   string
		coin   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run one popularity/price query and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup(opts, errOut)
			if err != nil {
				return err
			}
			pipe, _ := app.NewPipeline(*cfg, log)
			res := pipe.Execute(cmd.Context(), term, coin)
			if asJSON {
				return writeJSON(out, httptransport.MakeTrendResponse(res))
			}
			return writeSummary(out, res)
		},
	}
	cmd.Flags().StringVarP(&term, "term", "t", "", "search term")
	cmd.Flags().StringVar(&coin, "coin", "", "coin symbol, e.g. BTC")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the response as JSON (figure included)")
	return cmd
}

func newCoinsCmd(opts *rootOptions, out, errOut io.Writer) *cobra.Command {
	var (
		filter string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "List known coins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return errors.New("--limit must be >= 0")
			}
			cfg, log, err := setup(opts, errOut)
			if err != nil {
				return err
			}
			_, prices := app.NewPipeline(*cfg, log)
			catalog := app.LoadCatalog(cmd.Context(), prices, cfg.CryptoCompare.Timeout+5*time.Second, log)
			for _, e := range catalog.Search(filter, limit) {
				fmt.Fprintln(out, e.Label())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "case-insensitive substring of symbol or name")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "max entries (0 = all)")
	return cmd
}

func newVersionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(out, "crypto-trends", version)
		},
	}
}

func runServe(ctx context.Context, opts *rootOptions, errOut io.Writer) error {
	cfg, log, err := setup(opts, nil)
	if err != nil {
		fmt.Fprintln(errOut, "config load failed:", err)
		return err
	}

	application, err := app.NewApp(ctx, *cfg, log)
	if err != nil {
		log.Error("app init failed", slog.String("error", err.Error()))
		return err
	}

	if err := application.Run(ctx); err != nil {
		log.Error("application stopped with error", slog.String("error", err.Error()))
		return err
	}
	log.Info("crypto-trends stopped")
	return nil
}

// setup читает .env и конфиг. Если logOut не nil, логи пишутся туда, иначе в stdout.
func setup(opts *rootOptions, logOut io.Writer) (*config.Config, *slog.Logger, error) {
	// .env не обязателен
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	if opts.debug {
		cfg.Logger.Level = "debug"
		cfg.Server.Debug = true
	}

	if logOut != nil {
		return cfg, logger.NewWithWriter(&cfg.Logger, logOut), nil
	}
	return cfg, logger.New(&cfg.Logger), nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSummary(out io.Writer, res domain.QueryResult) error {
	resp := httptransport.MakeTrendResponse(res)
	switch res.Kind {
	case domain.ResultEmpty:
		_, err := fmt.Fprintln(out, "Empty: both a search term and a coin are required")
		return err
	case domain.ResultNoResults:
		_, err := fmt.Fprintf(out, "%s (%s)\n", resp.Message, resp.Code)
		return err
	}

	var bld strings.Builder
	fmt.Fprintf(&bld, "query %s\n", res.QueryID)
	for _, s := range res.Series {
		if len(s.Points) == 0 {
			fmt.Fprintf(&bld, "%-10s axis=%-2s no points\n", s.Name, s.Axis)
			continue
		}
		first, last := s.Points[0], s.Points[len(s.Points)-1]
		fmt.Fprintf(&bld, "%-10s axis=%-2s %d points %s..%s last=%.2f\n",
			s.Name, s.Axis, len(s.Points), first.Date, last.Date, last.Value)
	}
	_, err := io.WriteString(out, bld.String())
	return err
}

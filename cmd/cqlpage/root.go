package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/cqlpager/cqlpager"
	"github.com/cqlpager/cqlpager/cassandra"
	"github.com/cqlpager/cqlpager/internal/xerrors"
	"github.com/cqlpager/cqlpager/log"
	"github.com/cqlpager/cqlpager/metrics"
	"github.com/cqlpager/cqlpager/result"
	"github.com/cqlpager/cqlpager/trace"
)

type consumer func(ctx context.Context, rs result.Set, w io.Writer) error

type app struct {
	cassandra    cassandra.Config
	metricsAddr  string
	logLevel     string
	traceDetails string
	header       bool
	burst        int
	pause        time.Duration

	out io.Writer
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out}
	root := &cobra.Command{
		Use:           "cqlpage",
		Short:         "Run CQL query and read its result page by page.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	a.cassandra.RegisterFlags(flags)
	flags.StringVar(&a.metricsAddr, "metrics-addr", "", "Address to expose prometheus metrics on while query runs.")
	flags.StringVar(&a.logLevel, "log-level", "info", "Log level: debug, info, warn or error.")
	flags.StringVar(&a.traceDetails, "trace-details", `cqlpager\..*`, "Regexp of cursor and stream events to log.")
	flags.BoolVar(&a.header, "header", true, "Print column names before rows.")

	root.AddCommand(
		&cobra.Command{
			Use:   "one QUERY",
			Short: "Print the first row of result.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd.Context(), args[0], consumeOne)
			},
		},
		&cobra.Command{
			Use:   "several N QUERY",
			Short: "Print up to N rows of result.",
			Args:  cobra.ExactArgs(2), //nolint:gomnd
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return xerrors.WithStackTrace(err)
				}

				return a.run(cmd.Context(), args[1], consumeSeveral(n))
			},
		},
		&cobra.Command{
			Use:   "all QUERY",
			Short: "Print all rows of result.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd.Context(), args[0], consumeAll)
			},
		},
		a.streamCommand(),
	)

	return root
}

func (a *app) streamCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stream QUERY",
		Short: "Stream all rows of result pausing after every burst of rows.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), args[0], consumeStream(a.burst, a.pause))
		},
	}
	cmd.Flags().IntVar(&a.burst, "burst", 0, "Count of rows between pauses, zero disables pauses.")
	cmd.Flags().DurationVar(&a.pause, "pause", 100*time.Millisecond, "Duration of pause after every burst.")

	return cmd
}

func (a *app) zapLogger() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(a.logLevel)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return l, nil
}

func (a *app) run(ctx context.Context, statement string, consume consumer) error {
	zl, err := a.zapLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = zl.Sync()
	}()
	logger := log.Zap(zl)

	session, err := a.cassandra.Session(logger)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}
	defer session.Close()

	reg := prometheus.NewRegistry()
	opts := []cqlpager.Option{
		cqlpager.WithPageSize(a.cassandra.PageSize),
		cqlpager.WithLogger(logger, trace.MatchDetails(a.traceDetails)),
		cqlpager.WithMetrics(metrics.NewPrometheus(reg, "cqlpage"), trace.DetailsAll),
	}

	g, ctx := errgroup.WithContext(ctx)
	queryDone := make(chan struct{})
	if a.metricsAddr != "" {
		srv := &http.Server{
			Addr:              a.metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: time.Second,
		}
		g.Go(func() error {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return xerrors.WithStackTrace(err)
			}

			return nil
		})
		g.Go(func() error {
			select {
			case <-queryDone:
			case <-ctx.Done():
			}

			return srv.Shutdown(context.Background())
		})
	}
	g.Go(func() error {
		defer close(queryDone)

		rs, err := cqlpager.Execute(ctx, session.Query(statement), opts...)
		if err != nil {
			return xerrors.WithStackTrace(err)
		}
		if a.header {
			writeColumns(a.out, rs.Columns())
		}

		return consume(ctx, rs, a.out)
	})

	return g.Wait()
}

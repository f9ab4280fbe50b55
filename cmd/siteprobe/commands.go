package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/foomo/siteprobe"
	"github.com/foomo/siteprobe/config"
	"github.com/foomo/siteprobe/log"
	"github.com/foomo/siteprobe/reports"
	"github.com/morikuni/failure/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagConfig       string
	flagBaseURL      string
	flagIgnoreRobots bool
	flagDebug        bool
	flagMetrics      bool

	Version = "dev"

	rootCmd = &cobra.Command{
		Use:           "siteprobe",
		Short:         "Diagnose listing selectors and the load more nonce of a madara theme site",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	selectorsCmd = &cobra.Command{
		Use:   "selectors",
		Short: "Check whether the listing selectors still extract title, link, identifier and subtitle",
		Args:  cobra.NoArgs,
		RunE:  runSelectors,
	}

	nonceCmd = &cobra.Command{
		Use:   "nonce",
		Short: "Check whether the load more endpoint requires the homepage nonce",
		Args:  cobra.NoArgs,
		RunE:  runNonce,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "siteprobe version", Version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path/to/config.yaml, defaults are used without one")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "override the base url of the site")
	rootCmd.PersistentFlags().BoolVar(&flagIgnoreRobots, "ignore-robots", false, "do not look at robots.txt")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "d", false, "log requests and dump the config")
	rootCmd.PersistentFlags().BoolVar(&flagMetrics, "metrics", false, "print prometheus metrics after the report")
	rootCmd.AddCommand(selectorsCmd, nonceCmd, versionCmd)
}

type env struct {
	conf     *config.Config
	logger   zerolog.Logger
	client   *siteprobe.Client
	registry *prometheus.Registry
	metrics  *siteprobe.Metrics
}

func setup(cmd *cobra.Command) (e *env, err error) {
	conf := config.Default()
	if flagConfig != "" {
		conf, err = config.Get(flagConfig)
		if err != nil {
			return nil, invalidConfig(err)
		}
	}
	if flagBaseURL != "" {
		conf.BaseURL = strings.TrimRight(flagBaseURL, "/")
		if errValidate := conf.Validate(); errValidate != nil {
			return nil, invalidConfig(errValidate)
		}
	}
	if flagIgnoreRobots {
		conf.IgnoreRobots = true
	}
	logger := log.New(cmd.ErrOrStderr(), flagDebug)
	if flagDebug {
		spew.Fdump(cmd.ErrOrStderr(), conf)
	}
	registry := prometheus.NewRegistry()
	return &env{
		conf:     conf,
		logger:   logger,
		client:   siteprobe.NewClient(conf.Client, logger),
		registry: registry,
		metrics:  siteprobe.NewMetrics(registry),
	}, nil
}

func invalidConfig(err error) error {
	return failure.New(siteprobe.ErrInvalidConfig,
		failure.Message("config error: "+err.Error()),
		failure.Context{"config": flagConfig},
	)
}

func (e *env) printMetrics(cmd *cobra.Command) error {
	if !flagMetrics {
		return nil
	}
	return reports.PrintMetrics(cmd.OutOrStdout(), e.registry)
}

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt)
}

func runSelectors(cmd *cobra.Command, args []string) error {
	e, errSetup := setup(cmd)
	if errSetup != nil {
		return errSetup
	}
	ctx, cancel := signalContext(cmd)
	defer cancel()

	fmt.Fprintln(cmd.OutOrStdout(), "fetching homepage:", e.conf.Homepage())
	r, errRun := siteprobe.RunDiagnostic(ctx, e.client, e.conf, e.metrics)
	reports.PrintDiagnostic(cmd.OutOrStdout(), r, errRun)
	if errMetrics := e.printMetrics(cmd); errMetrics != nil {
		return errMetrics
	}
	// a selector miss is a finding, not a failure of the tool
	if errRun != nil && !failure.Is(errRun, siteprobe.ErrCriticalSelectorMiss) {
		return errRun
	}
	return nil
}

func runNonce(cmd *cobra.Command, args []string) error {
	e, errSetup := setup(cmd)
	if errSetup != nil {
		return errSetup
	}
	ctx, cancel := signalContext(cmd)
	defer cancel()

	fmt.Fprintln(cmd.OutOrStdout(), "probing:", e.conf.Endpoint())
	r := siteprobe.NewProber(e.conf, e.client, e.metrics, e.logger).Run(ctx)
	reports.PrintProbe(cmd.OutOrStdout(), r)
	return e.printMetrics(cmd)
}

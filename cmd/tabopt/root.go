package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/tabopt/config"
	"github.com/katalvlaran/tabopt/journal"
	"github.com/katalvlaran/tabopt/logging"
	"github.com/katalvlaran/tabopt/metrics"
	"github.com/katalvlaran/tabopt/runner"
)

// app is the state shared by subcommands once flags and config are resolved.
type app struct {
	v       *viper.Viper
	cfg     config.Config
	log     *zap.Logger
	metrics *metrics.Recorder
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}
	var cfgFile string

	root := &cobra.Command{
		Use:           "tabopt",
		Short:         "Solve optimization problems written as tables",
		Long:          `tabopt reads maximization, minimization, transportation and assignment problems from .xlsx workbooks, solves them and reports a uniform result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cfgFile)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "YAML configuration file")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: json or console")
	pf.String("journal", "", "append every solve to this CSV journal")
	pf.String("metrics-file", "", "write Prometheus metrics to this file on exit")
	_ = a.v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, pf.Lookup("log-format"))
	_ = a.v.BindPFlag(config.KeyJournalPath, pf.Lookup("journal"))
	_ = a.v.BindPFlag(config.KeyMetricsFile, pf.Lookup("metrics-file"))

	root.AddCommand(newSolveCmd(a), newTemplateCmd(), newExampleCmd())

	return root
}

func (a *app) init(cfgFile string) error {
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return usagef("config: read %s: %v", cfgFile, err)
		}
	}
	cfg, err := config.Decode(a.v)
	if err != nil {
		return &usageError{err: err}
	}
	a.cfg = cfg

	if a.log, err = logging.New(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	a.metrics = metrics.New()

	return nil
}

// runner builds the pipeline from the resolved configuration.
func (a *app) runner() (*runner.Runner, error) {
	opts := []runner.Option{
		runner.WithLogger(a.log),
		runner.WithMetrics(a.metrics),
		runner.WithSolverOptions(a.cfg.SolverOptions()),
	}
	if a.cfg.JournalPath != "" {
		j, err := journal.Open(a.cfg.JournalPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, runner.WithJournal(j))
	}

	return runner.New(opts...), nil
}

func (a *app) close() error {
	if a.log != nil {
		_ = a.log.Sync()
	}
	if a.metrics == nil || a.cfg.MetricsFile == "" {
		return nil
	}

	f, err := os.Create(a.cfg.MetricsFile)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if err = a.metrics.WriteText(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

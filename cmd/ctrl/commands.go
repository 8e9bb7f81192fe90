package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ctrl-app/ctrl-client/internal/app"
	"github.com/ctrl-app/ctrl-client/internal/config"
	"github.com/ctrl-app/ctrl-client/internal/domain"
	"github.com/ctrl-app/ctrl-client/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// cli holds state shared by every subcommand once flags are parsed.
type cli struct {
	// cfg is the loaded config; it is never written to.
	cfg *config.Config
	// effective is cfg with flag overrides applied, set by setup.
	effective *config.Config
	out       io.Writer
	app       *app.App

	logLevel    string
	output      string
	metricsFile string
}

// runCLI executes the command line and, when --metrics-file is set, writes the client
// metrics there whether or not the command succeeded.
func runCLI(ctx context.Context, cfg *config.Config, out io.Writer, args []string) error {
	c, root := newCLI(cfg, out)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if werr := c.writeMetrics(); werr != nil {
		err = errors.Join(err, werr)
	}
	return err
}

func newCLI(cfg *config.Config, out io.Writer) (*cli, *cobra.Command) {
	c := &cli{cfg: cfg, out: out}

	root := &cobra.Command{
		Use:           "ctrl",
		Short:         "CTRL: Create Time to Reflect & Listen",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return c.setup()
		},
	}

	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")
	root.PersistentFlags().StringVarP(&c.output, "output", "o", "", "output format (json or yaml); overrides OUTPUT_FORMAT")
	root.PersistentFlags().StringVar(&c.metricsFile, "metrics-file", "", "write request metrics in Prometheus text format to this file")

	root.AddCommand(c.newHomeCmd())
	root.AddCommand(c.newLoginCmd())
	root.AddCommand(c.newSignupCmd())
	root.AddCommand(c.newMeCmd())
	root.AddCommand(c.newMoodsCmd())

	return c, root
}

// setup applies flag overrides to a copy of the loaded config and builds the runtime.
func (c *cli) setup() error {
	if c.cfg == nil {
		return fmt.Errorf("config must not be nil")
	}
	cfg := *c.cfg
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	if c.output != "" {
		switch c.output {
		case formatJSON, formatYAML:
			cfg.OutputFormat = c.output
		default:
			return fmt.Errorf("invalid --output %q (expected json or yaml)", c.output)
		}
	}
	c.effective = &cfg

	log, err := logger.Init(c.effective)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.InfoObj("ctrl starting", "config", c.effective)

	a, err := app.New(c.effective, log)
	if err != nil {
		logger.ErrorObj("failed to initialize app", "error", err)
		return fmt.Errorf("init app: %w", err)
	}
	c.app = a
	return nil
}

func (c *cli) print(v any) error {
	return writeOutput(c.out, c.effective.OutputFormat, v)
}

func (c *cli) writeMetrics() error {
	if c.metricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(c.metricsFile, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics file: %w", err)
	}
	return nil
}

func (c *cli) newHomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the home screen",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return c.print(c.app.Home())
		},
	}
}

func (c *cli) newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.app.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			return c.print(res)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func (c *cli) newSignupCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := c.app.Signup(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("signup failed: %w", err)
			}
			return c.print(user)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func (c *cli) newMeCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "me",
		Short: "Show the account behind an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := c.app.Me(cmd.Context(), token)
			if err != nil {
				return err
			}
			return c.print(user)
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "access token (defaults to CTRL_TOKEN)")
	return cmd
}

func (c *cli) newMoodsCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "moods",
		Short: "Record and list mood check-ins",
	}
	cmd.PersistentFlags().StringVar(&token, "token", "", "access token (defaults to CTRL_TOKEN)")

	var in domain.MoodInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Record a check-in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := c.app.AddMood(cmd.Context(), token, in)
			if err != nil {
				return err
			}
			return c.print(created)
		},
	}
	add.Flags().IntVar(&in.MoodScore, "mood", 0, "mood score")
	add.Flags().IntVar(&in.EnergyLevel, "energy", 0, "energy level")
	add.Flags().IntVar(&in.StressLevel, "stress", 0, "stress level")
	_ = add.MarkFlagRequired("mood")

	list := &cobra.Command{
		Use:   "list",
		Short: "List recorded check-ins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := c.app.ListMoods(cmd.Context(), token)
			if err != nil {
				return err
			}
			return c.print(entries)
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

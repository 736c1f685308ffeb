package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fulfillment/cmd"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/policy"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var (
	flagEnvFile    string
	flagPolicyPath string
	flagDryRun     bool
	flagStoreIDs   []int64
)

func main() {
	root := newRootCmd()
	root.SilenceUsage = true
	root.SilenceErrors = true
	if err := root.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func newRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "triage",
		Short: "Order fulfillment triage for ShipStation",
		Long: "triage classifies awaiting-shipment orders, tags edge cases for people, and " +
			"rate-shops and tags routine orders so they can be shipped in batches.",
	}

	c.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "dotenv file to load before reading the environment")
	c.PersistentFlags().StringVar(&flagPolicyPath, "policy", "", "policy file merged over the built-in rules (overrides POLICY_PATH)")
	c.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "log tag changes instead of writing them (overrides DRY_RUN)")
	c.PersistentFlags().Int64SliceVar(&flagStoreIDs, "store", nil, "store ID to process, repeatable (overrides STORE_IDS)")

	c.AddCommand(runCmd())
	c.AddCommand(serveCmd())
	c.AddCommand(splitCmd())
	c.AddCommand(storesCmd())
	c.AddCommand(policyCmd())
	return c
}

func loadConfig(c *cobra.Command) (cmd.Config, policy.Policy, error) {
	if err := cmd.LoadDotEnv(flagEnvFile); err != nil {
		return cmd.Config{}, policy.Policy{}, err
	}
	cfg, err := cmd.LoadConfig(os.LookupEnv)
	if err != nil {
		return cmd.Config{}, policy.Policy{}, err
	}
	if flagPolicyPath != "" {
		cfg.PolicyPath = flagPolicyPath
	}
	if c.Flags().Changed("dry-run") {
		cfg.DryRun = flagDryRun
	}
	if len(flagStoreIDs) > 0 {
		cfg.StoreIDs = flagStoreIDs
	}

	pol, err := policy.Load(cfg.PolicyPath)
	if err != nil {
		return cmd.Config{}, policy.Policy{}, err
	}
	return cfg, pol, nil
}

// bootstrap loads configuration and checks the platform is reachable.
func bootstrap(c *cobra.Command) (cmd.Config, cmd.CompositionRoot, error) {
	cfg, pol, err := loadConfig(c)
	if err != nil {
		return cmd.Config{}, cmd.CompositionRoot{}, err
	}
	if err := cfg.Validate(); err != nil {
		return cmd.Config{}, cmd.CompositionRoot{}, err
	}

	app, err := cmd.NewCompositionRoot(cfg, pol, cmd.NewLogger(cfg.LogLevel))
	if err != nil {
		return cmd.Config{}, cmd.CompositionRoot{}, err
	}
	if err := app.Ping(c.Context()); err != nil {
		return cmd.Config{}, cmd.CompositionRoot{}, err
	}
	return cfg, app, nil
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Triage the configured stores once and print the report",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, app, err := bootstrap(c)
			if err != nil {
				return err
			}
			handler, err := app.CreateProcessOrdersCommandHandler(cfg.DryRun)
			if err != nil {
				return err
			}
			command, err := commands.NewProcessOrdersCommand(cfg.StoreIDs, cfg.DryRun)
			if err != nil {
				return err
			}

			run, err := handler.Handle(c.Context(), command)
			if printErr := printJSON(c.OutOrStdout(), run); printErr != nil {
				return errors.Join(err, printErr)
			}
			return err
		},
	}
}

func splitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split",
		Short: "Reconcile split-shipment tags across SPLIT_STORE_IDS",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, app, err := bootstrap(c)
			if err != nil {
				return err
			}
			handler, err := app.CreateReconcileSplitShipmentsCommandHandler(cfg.DryRun)
			if err != nil {
				return err
			}
			command, err := commands.NewReconcileSplitShipmentsCommand(cfg.SplitStoreIDs, cfg.DryRun)
			if err != nil {
				return err
			}

			rep, err := handler.Handle(c.Context(), command)
			if err != nil {
				return err
			}
			return printJSON(c.OutOrStdout(), rep)
		},
	}
}

func storesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stores",
		Short: "List the account's stores",
		RunE: func(c *cobra.Command, _ []string) error {
			_, app, err := bootstrap(c)
			if err != nil {
				return err
			}
			stores, err := app.CreateListStoresQueryHandler().Handle(c.Context(), queries.NewListStoresQuery(false))
			if err != nil {
				return err
			}
			for _, s := range stores {
				fmt.Fprintf(c.OutOrStdout(), "%d\t%s\t%s\tactive=%t\n", s.ID, s.Name, s.Marketplace, s.Active)
			}
			return nil
		},
	}
}

func policyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "policy",
		Short: "Inspect the business policy",
	}
	c.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective policy",
		RunE: func(c *cobra.Command, _ []string) error {
			_, pol, err := loadConfig(c)
			if err != nil {
				return err
			}
			out, err := pol.ToYAML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(c.OutOrStdout(), out)
			return err
		},
	})
	return c
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run triage on SCHEDULE and serve run reports over HTTP",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, app, err := bootstrap(c)
			if err != nil {
				return err
			}
			jobManager, err := app.CreateJobManager(cfg.DryRun)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()

			e := echo.New()
			e.HideBanner = true
			app.CreateHTTPServer(jobManager).Register(e)
			e.GET("/metrics", echo.WrapHandler(app.MetricsHandler()))

			errCh := make(chan error, 1)
			go func() {
				errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

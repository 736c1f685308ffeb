package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/dryrun"
	"fulfillment/internal/adapters/out/memory"
	"fulfillment/internal/adapters/out/metrics"
	"fulfillment/internal/adapters/out/shipstation"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/policy"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CompositionRoot wires adapters, services and handlers for one process.
type CompositionRoot struct {
	cfg      Config
	policy   policy.Policy
	logger   *slog.Logger
	client   *shipstation.Client
	history  ports.RunHistory
	registry *prometheus.Registry
}

func NewCompositionRoot(cfg Config, pol policy.Policy, logger *slog.Logger) (CompositionRoot, error) {
	client, err := shipstation.NewClient(shipstation.Config{
		BaseURL:   cfg.ShipStationBaseURL,
		APIKey:    cfg.ShipStationKey,
		APISecret: cfg.ShipStationSecret,
		Timeout:   cfg.HTTPTimeout,
		MaxTries:  cfg.RetryMaxTries,
	}, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	history, err := metrics.NewRunHistory(memory.NewRunHistory(), registry)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:      cfg,
		policy:   pol,
		logger:   logger,
		client:   client,
		history:  history,
		registry: registry,
	}, nil
}

// Ping checks credentials and connectivity by listing stores.
func (c *CompositionRoot) Ping(ctx context.Context) error {
	if _, err := shipstation.NewCatalog(c.client).ListStores(ctx); err != nil {
		return fmt.Errorf("shipstation unreachable: %w", err)
	}
	return nil
}

func (c *CompositionRoot) tagStore(dryRun bool) ports.TagStore {
	if dryRun {
		return dryrun.NewTagStore(c.logger)
	}
	return shipstation.NewTagStore(c.client)
}

func (c *CompositionRoot) CreateAssignBatchTagsCommandHandler(dryRun bool) *commands.AssignBatchTagsCommandHandler {
	return commands.NewAssignBatchTagsCommandHandler(
		shipstation.NewCatalog(c.client),
		c.tagStore(dryRun),
		services.NewBatchTagger(c.policy.BatchTaggerConfig()),
		c.policy.TriageTags(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateProcessOrdersCommandHandler(dryRun bool) (*commands.ProcessOrdersCommandHandler, error) {
	classifier, err := services.NewClassifier(c.policy.ClassifierConfig())
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	estimator, err := services.NewPackagingEstimator(c.policy.PackagingConfig())
	if err != nil {
		return nil, fmt.Errorf("packaging estimator: %w", err)
	}
	rateCfg, err := c.policy.RateConfig()
	if err != nil {
		return nil, fmt.Errorf("rate config: %w", err)
	}
	selector, err := services.NewRateSelector(shipstation.NewRateClient(c.client), rateCfg)
	if err != nil {
		return nil, fmt.Errorf("rate selector: %w", err)
	}

	return commands.NewProcessOrdersCommandHandler(commands.ProcessOrdersDeps{
		Orders:     shipstation.NewOrderRepository(c.client),
		Tags:       c.tagStore(dryRun),
		Classifier: classifier,
		Estimator:  estimator,
		Selector:   selector,
		Billing:    services.NewBillingAssigner(c.policy.BillingAccounts()),
		TriageTags: c.policy.TriageTags(),
		BatchTags:  c.CreateAssignBatchTagsCommandHandler(dryRun),
		History:    c.history,
		Logger:     c.logger,
	})
}

func (c *CompositionRoot) CreateReconcileSplitShipmentsCommandHandler(
	dryRun bool,
) (*commands.ReconcileSplitShipmentsCommandHandler, error) {
	return commands.NewReconcileSplitShipmentsCommandHandler(
		shipstation.NewOrderRepository(c.client),
		c.tagStore(dryRun),
		c.policy.SplitConfig(),
		c.policy.SplitTagName(),
		c.history,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetLatestRunQueryHandler() queries.GetLatestRunQueryHandler {
	return queries.NewGetLatestRunQueryHandler(c.history)
}

func (c *CompositionRoot) CreateGetLatestSplitReportQueryHandler() queries.GetLatestSplitReportQueryHandler {
	return queries.NewGetLatestSplitReportQueryHandler(c.history)
}

func (c *CompositionRoot) CreateListStoresQueryHandler() queries.ListStoresQueryHandler {
	return queries.NewListStoresQueryHandler(shipstation.NewCatalog(c.client))
}

// CreateJobManager schedules triage over cfg.StoreIDs and, when SplitSchedule is set,
// split reconciliation over cfg.SplitStoreIDs.
func (c *CompositionRoot) CreateJobManager(dryRun bool) (*jobs.JobManager, error) {
	handler, err := c.CreateProcessOrdersCommandHandler(dryRun)
	if err != nil {
		return nil, err
	}
	cmd, err := commands.NewProcessOrdersCommand(c.cfg.StoreIDs, dryRun)
	if err != nil {
		return nil, err
	}
	triage := jobs.NewTriageJob(handler, cmd, c.cfg.Schedule, c.logger)

	var split *jobs.SplitJob
	if c.cfg.SplitSchedule != "" {
		splitHandler, err := c.CreateReconcileSplitShipmentsCommandHandler(dryRun)
		if err != nil {
			return nil, err
		}
		splitCmd, err := commands.NewReconcileSplitShipmentsCommand(c.cfg.SplitStoreIDs, dryRun)
		if err != nil {
			return nil, err
		}
		split = jobs.NewSplitJob(splitHandler, splitCmd, c.cfg.SplitSchedule, c.logger)
	}
	return jobs.NewJobManager(triage, split), nil
}

// MetricsHandler serves the process registry in the Prometheus text format.
func (c *CompositionRoot) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *CompositionRoot) CreateHTTPServer(trigger httpin.RunTrigger) *httpin.Server {
	return httpin.NewServer(
		c.CreateGetLatestRunQueryHandler(),
		c.CreateGetLatestSplitReportQueryHandler(),
		c.CreateListStoresQueryHandler(),
		trigger,
	)
}

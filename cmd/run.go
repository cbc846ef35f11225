package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"state-reconciler/core/config"
	"state-reconciler/core/database"
	"state-reconciler/core/logger"
	"state-reconciler/core/reconcile"
	"state-reconciler/core/storage"
	"state-reconciler/feature/artifacts"
	"state-reconciler/feature/usergroups"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// Flags shared by the run subcommands
	runDryRun bool
	runYes    bool
)

// runCmd is the parent command for one-shot reconciliation runs.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single reconciliation for one integration",
	Long: `Run plans the difference between the live and the declared state for one
integration, prints the report, and applies the planned actions after
confirmation.

Examples:
  # Report only, never mutate
  run usergroups --dry-run

  # Apply with interactive confirmation
  run usergroups

  # Apply non-interactively
  run artifacts --yes`,
}

// runUsergroupsCmd reconciles provider usergroups against the database.
var runUsergroupsCmd = &cobra.Command{
	Use:   "usergroups",
	Short: "Reconcile provider usergroups against the declared definitions",
	RunE:  runUsergroups,
}

// runArtifactsCmd audits the bucket and purges orphaned objects.
var runArtifactsCmd = &cobra.Command{
	Use:   "artifacts",
	Short: "Audit the storage bucket and purge orphaned objects",
	RunE:  runArtifacts,
}

func init() {
	runCmd.AddCommand(runUsergroupsCmd)
	runCmd.AddCommand(runArtifactsCmd)

	runCmd.PersistentFlags().BoolVar(&runDryRun, "dry-run", false, "Report only, never mutate")
	runCmd.PersistentFlags().BoolVar(&runYes, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	RootCmd.AddCommand(runCmd)
}

func runUsergroups(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, db, err := setupRun()
	if err != nil {
		return err
	}

	provider := usergroupsProvider()
	if provider == nil {
		return fmt.Errorf("no usergroups provider is configured in this build")
	}

	service := usergroups.NewService(db, provider, l, cfg.Reconcile)

	l.Info("Planning usergroups reconciliation...")
	plan, err := service.Plan(ctx)
	if err != nil {
		return fmt.Errorf("failed to plan: %w", err)
	}

	printPlan(l, plan)

	if runDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(plan.Actions) == 0 {
		l.Info("Nothing to do, state is converged.")
		return nil
	}

	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	l.Info("Applying actions...")
	_, result, err := service.Apply(ctx, true)
	if err != nil {
		return fmt.Errorf("failed to apply: %w", err)
	}

	return reportApplyResult(l, result)
}

func runArtifacts(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, db, err := setupRun()
	if err != nil {
		return err
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	service := artifacts.NewService(client, cfg.Storage.Bucket, db, l)

	l.Info("Auditing artifacts bucket...")
	report, err := service.Audit(ctx)
	if err != nil {
		return fmt.Errorf("failed to audit: %w", err)
	}

	l.Info("Audit report",
		zap.String("bucket", report.Bucket),
		zap.Int("synced", report.Synced),
		zap.Int("missing", len(report.Missing)),
		zap.Int("orphans", len(report.Orphans)),
		zap.Int("drift", len(report.Drift)),
	)

	if runDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(report.Orphans) == 0 {
		l.Info("No orphaned objects to purge.")
		return nil
	}

	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	l.Info("Purging orphaned objects...")
	_, result, err := service.Purge(ctx, true)
	if err != nil {
		return fmt.Errorf("failed to purge: %w", err)
	}

	return reportApplyResult(l, result)
}

// setupRun loads configuration and opens the shared dependencies of every
// run subcommand.
func setupRun() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return cfg, l, db, nil
}

// printPlan prints a reconcile plan through the logger.
func printPlan(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary

	l.Info("Reconciliation plan",
		zap.String("integration", plan.Integration),
		zap.Int("total_keys", s.TotalKeys),
		zap.Int("creates", s.Creates),
		zap.Int("updates", s.Updates),
		zap.Int("deletes", s.Deletes),
		zap.Int("identical", s.Identical),
	)

	// Show sample of actions (max 5 for logger)
	maxShow := 5
	if len(plan.Actions) < maxShow {
		maxShow = len(plan.Actions)
	}
	for i := 0; i < maxShow; i++ {
		action := plan.Actions[i]
		l.Info("Planned action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// reportApplyResult logs the outcome and maps a failed run to a non-zero
// exit through the returned error.
func reportApplyResult(l *zap.Logger, result *reconcile.ApplyResult) error {
	l.Info("Apply finished",
		zap.String("status", string(result.Status)),
		zap.Int("executed", result.Executed),
		zap.Int("failed", result.Failed),
	)
	for _, itemErr := range result.Errors {
		l.Error("Action failed",
			zap.String("type", string(itemErr.Type)),
			zap.String("key", itemErr.Key),
			zap.String("error", itemErr.Error),
		)
	}

	if result.Status == reconcile.StatusFailed {
		return fmt.Errorf("%d of %d actions failed", result.Failed, result.Executed+result.Failed)
	}
	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if runYes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}

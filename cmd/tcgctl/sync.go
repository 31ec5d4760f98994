package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kamar-Folarin/tcg-tracker/internal/models"
)

var (
	syncQuery     string
	syncPageSize  int
	syncPageDelay time.Duration
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror the external card catalog",
	Long: `Runs a full catalog sync in the foreground, printing progress as pages
are processed. Interrupting the command stops the run after the current card.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncQuery, "query", "", "Catalog query to mirror (defaults to SYNC_QUERY)")
	syncCmd.Flags().IntVar(&syncPageSize, "page-size", 0, "Cards per page, at most 250 (defaults to SYNC_PAGE_SIZE)")
	syncCmd.Flags().DurationVar(&syncPageDelay, "page-delay", -1, "Delay between pages (defaults to SYNC_PAGE_DELAY_MS)")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if syncQuery != "" {
		cfg.Sync.Query = syncQuery
	}
	if syncPageSize > 0 {
		cfg.Sync.PageSize = syncPageSize
	}
	if syncPageDelay >= 0 {
		cfg.Sync.PageDelay = syncPageDelay
	}

	services, closeFn, err := openApp(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	type result struct {
		status models.SyncStatus
		err    error
	}
	done := make(chan result, 1)
	go func() {
		status, err := services.Engine.Run(ctx)
		done <- result{status: status, err: err}
	}()

	// Poll the register every 500ms
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	out := cmd.OutOrStdout()
	last := ""
	for {
		select {
		case r := <-done:
			printProgress(out, r.status, &last)
			fmt.Fprintf(out, "Inserted %d, updated %d, errors %d\n",
				r.status.CardsInserted, r.status.CardsUpdated, r.status.Errors)
			if r.err != nil {
				return fmt.Errorf("sync failed: %w", r.err)
			}
			return nil
		case <-ticker.C:
			printProgress(out, services.Engine.Status(), &last)
		}
	}
}

// printProgress writes the status line when it differs from the last one printed
func printProgress(out io.Writer, status models.SyncStatus, last *string) {
	line := fmt.Sprintf("[%3d%%] page %d/%d  %s", status.Progress, status.CurrentPage, status.TotalPages, status.Message)
	if line == *last {
		return
	}
	*last = line
	fmt.Fprintln(out, line)
}

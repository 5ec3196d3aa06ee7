package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docuchat/docuchat/internal/adapters/driving/watch"
)

var (
	ingestContentType string
	ingestWatchDir    string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [files...]",
	Short: "Ingest documents into the corpus",
	Long: `Extracts, embeds and stores the given files. The content type is
inferred from each file's extension unless --type is set.

With --watch, the command instead watches a directory and ingests every
supported file created or modified there until interrupted.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestContentType, "type", "t", "", "declared content type for all files")
	ingestCmd.Flags().StringVarP(&ingestWatchDir, "watch", "w", "", "watch a directory instead of ingesting files")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	if ingestWatchDir != "" {
		if len(args) > 0 {
			return errors.New("--watch cannot be combined with file arguments")
		}
		watcher := watch.NewWatcher(ingestService)
		return watcher.Watch(cmd.Context(), ingestWatchDir)
	}

	if len(args) == 0 {
		return errors.New("no files given")
	}

	var failed int
	for _, path := range args {
		doc, err := ingestService.IngestFile(cmd.Context(), path, ingestContentType)
		if err != nil {
			failed++
			cmd.PrintErrf("  %s: %v\n", path, err)
			continue
		}
		cmd.Printf("  %s -> %s (%s)\n", path, doc.ID, doc.Title)
	}

	cmd.Printf("Ingested %d of %d files.\n", len(args)-failed, len(args))
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/j-mracek/libcomps/pkg/comps"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <file>...",
	Short: "Merge comps documents into one",
	Long: `Merge documents in argument order and write the canonical result.

Groups, categories and environments are united by id. For entries present in
several files, scalar fields come from the earliest file, translations and
blacklist/whiteout values from the latest, package and group lists are
united, and a group reference is default if it is default anywhere.

Output goes to --output, else to "output" from comps.yaml or COMPS_OUTPUT,
else to stdout. Use "-o -" to force stdout.

Examples:
  # Merge two repositories' comps into merged.xml
  comps merge -o merged.xml fedora.xml updates.xml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

var mergeOutput string

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "Write the merged document to this path")
}

// runMerge folds all documents left to right
func runMerge(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	docs := make([]*comps.Comps, 0, len(args))
	for _, path := range args {
		doc, _, err := s.load(path, s.settings.Strict)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		s.logger.Verbose("Loaded %s: %d groups, %d categories, %d environments",
			path, doc.Groups.Len(), doc.Categories.Len(), doc.Environments.Len())
		docs = append(docs, doc)
	}

	merged := comps.Merge(docs...)
	s.logger.Verbose("Merged %d document(s): %d groups, %d categories, %d environments",
		len(docs), merged.Groups.Len(), merged.Categories.Len(), merged.Environments.Len())

	out := s.settings.Output
	if cmd.Flags().Changed("output") {
		out = mergeOutput
	}
	return s.write(merged, out)
}

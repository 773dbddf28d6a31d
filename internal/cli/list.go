package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/j-mracek/libcomps/internal/query"
	"github.com/j-mracek/libcomps/pkg/comps"
)

var listCmd = &cobra.Command{
	Use:   "list <groups|categories|environments> <file>",
	Short: "List the entities of a comps document",
	Long: `List groups, categories or environments, optionally filtered by an
expression evaluated per entity.

Expression fields:
  groups:       id, name, desc, name_by_lang, desc_by_lang, default,
                uservisible, display_order, langonly, packages, package_types
  categories:   id, name, desc, name_by_lang, desc_by_lang, display_order, group_ids
  environments: as categories, plus option_ids

Examples:
  # Visible groups shipping bash
  comps list groups comps.xml --where 'uservisible && "bash" in packages'

  # Environments as JSON
  comps list environments comps.xml --json`,
	Args: cobra.ExactArgs(2),
	RunE: runList,
}

var (
	listWhere string
	listJSON  bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listWhere, "where", "", "Only list entities matching this expression")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output entities as JSON")
}

type listEntry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	DisplayOrder int      `json:"display_order"`
	Members      []string `json:"members"`
	Options      []string `json:"options,omitempty"`
}

// runList prints the selected entity kind
func runList(cmd *cobra.Command, args []string) error {
	kind, err := query.ParseKind(args[0])
	if err != nil {
		return fmt.Errorf("invalid argument: %w", err)
	}
	filter, err := query.Compile(kind, listWhere)
	if err != nil {
		return fmt.Errorf("invalid argument: --where: %w", err)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	doc, _, err := s.load(args[1], s.settings.Strict)
	if err != nil {
		return err
	}

	entries, err := selectEntries(filter, doc)
	if err != nil {
		return err
	}
	s.logger.Verbose("%d %s matched", len(entries), kind)

	out := cmd.OutOrStdout()
	if listJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(entries); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, e.Name, strings.Join(e.Members, ","))
	}
	return w.Flush()
}

func selectEntries(filter *query.Filter, doc *comps.Comps) ([]listEntry, error) {
	entries := []listEntry{}

	switch filter.Kind() {
	case query.KindGroup:
		groups, err := filter.Groups(&doc.Groups)
		if err != nil {
			return nil, err
		}
		for _, g := range groups {
			entries = append(entries, listEntry{ID: g.ID, Name: g.Name, DisplayOrder: g.DisplayOrder, Members: g.Packages.IDs()})
		}
	case query.KindCategory:
		cats, err := filter.Categories(&doc.Categories)
		if err != nil {
			return nil, err
		}
		for _, c := range cats {
			entries = append(entries, listEntry{ID: c.ID, Name: c.Name, DisplayOrder: c.DisplayOrder, Members: c.GroupIDs.IDs()})
		}
	case query.KindEnvironment:
		envs, err := filter.Environments(&doc.Environments)
		if err != nil {
			return nil, err
		}
		for _, e := range envs {
			entries = append(entries, listEntry{ID: e.ID, Name: e.Name, DisplayOrder: e.DisplayOrder, Members: e.GroupIDs.IDs(), Options: e.OptionIDs.IDs()})
		}
	}
	return entries, nil
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/j-mracek/libcomps/internal/files/scanner"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|dir>...",
	Short: "Parse comps documents and report diagnostics",
	Long: `Parse each file and report warnings and errors.

A file fails when it is not well-formed XML, has no <comps> root or cannot be
read. Directories are searched recursively for *.xml files. With --strict (or strict: true in comps.yaml) error diagnostics, such as
unparsable booleans, fail the file too.

Examples:
  # Validate one document
  comps validate comps.xml

  # Fail on error diagnostics as well
  comps validate --strict comps-f*.xml

  # Every document in a tree
  comps validate repos/

  # Machine-readable report
  comps validate --json comps.xml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

var (
	validateStrict bool
	validateJSON   bool
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat error diagnostics as failures")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output validation results as JSON")
}

type validationReport struct {
	File        string   `json:"file"`
	Valid       bool     `json:"valid"`
	Error       string   `json:"error,omitempty"`
	Errors      int      `json:"errors"`
	Warnings    int      `json:"warnings"`
	Diagnostics []string `json:"diagnostics"`
}

// runValidate parses every argument and reports per file
func runValidate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	strict := s.settings.Strict
	if cmd.Flags().Changed("strict") {
		strict = validateStrict
	}
	paths, err := scanner.Expand(args)
	if err != nil {
		return err
	}
	s.logger.Verbose("Validating %d file(s), strict=%v", len(paths), strict)

	reports := make([]validationReport, 0, len(paths))
	var failures []error
	for _, path := range paths {
		_, diags, err := s.load(path, strict)

		r := validationReport{
			File:        path,
			Valid:       err == nil,
			Errors:      len(diags.Errors()),
			Warnings:    len(diags.Warnings()),
			Diagnostics: []string{},
		}
		for _, d := range diags {
			r.Diagnostics = append(r.Diagnostics, d.String())
		}
		if err != nil {
			r.Error = err.Error()
			failures = append(failures, err)
		}
		reports = append(reports, r)

		if !validateJSON {
			printValidation(s, r)
		}
	}

	if validateJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(reports); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation: %w", len(failures), len(paths), errors.Join(failures...))
	}
	return nil
}

func printValidation(s *session, r validationReport) {
	errOut := s.cmd.ErrOrStderr()
	switch {
	case !r.Valid:
		fmt.Fprintln(errOut, s.painter.Error(r.File))
	case r.Errors+r.Warnings > 0:
		fmt.Fprintln(errOut, s.painter.Warning(fmt.Sprintf("%s (%d error(s), %d warning(s))", r.File, r.Errors, r.Warnings)))
	default:
		fmt.Fprintln(errOut, s.painter.Success(r.File))
	}
}


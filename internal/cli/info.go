package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/j-mracek/libcomps/internal/checksum"
	"github.com/j-mracek/libcomps/internal/files/storage"
	"github.com/j-mracek/libcomps/internal/tui"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show counts and content identity of a comps document",
	Long: `Show how many entities a document holds and how it is identified.

The raw digest is the SHA-256 of the file bytes. The fingerprint and document
id are computed over the canonical form, so two files that only differ in
formatting share them.

Examples:
  comps info comps.xml
  comps info --json comps.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

var infoJSON bool

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Output information as JSON")
}

type documentInfo struct {
	File          string `json:"file"`
	Groups        int    `json:"groups"`
	Categories    int    `json:"categories"`
	Environments  int    `json:"environments"`
	Blacklist     int    `json:"blacklist"`
	Whiteout      int    `json:"whiteout"`
	Warnings      int    `json:"warnings"`
	Errors        int    `json:"errors"`
	RawSHA256     string `json:"raw_sha256"`
	CanonicalSize int    `json:"canonical_size"`
	Fingerprint   string `json:"fingerprint"`
	DocumentID    string `json:"document_id"`
}

// runInfo prints entity counts and checksums
func runInfo(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	raw, err := storage.New().Read(s.ctx, path)
	if err != nil {
		return err
	}
	doc, diags, err := s.parse(path, raw, s.settings.Strict)
	if err != nil {
		return err
	}
	id, err := checksum.Identify(doc)
	if err != nil {
		return err
	}

	info := documentInfo{
		File:          path,
		Groups:        doc.Groups.Len(),
		Categories:    doc.Categories.Len(),
		Environments:  doc.Environments.Len(),
		Blacklist:     doc.Blacklist.Len(),
		Whiteout:      doc.Whiteout.Len(),
		Warnings:      len(diags.Warnings()),
		Errors:        len(diags.Errors()),
		RawSHA256:     checksum.Raw(raw),
		CanonicalSize: id.Size,
		Fingerprint:   id.String(),
		DocumentID:    id.ID.String(),
	}

	out := cmd.OutOrStdout()
	if infoJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(info); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}

	p := tui.NewPainter(tui.DetectMode(out))
	fmt.Fprintln(out, p.Title(info.File))
	line := func(label string, value any) {
		fmt.Fprintf(out, "  %s %s %v\n", tui.SymbolBullet, p.Muted(fmt.Sprintf("%-15s", label+":")), value)
	}
	line("Groups", info.Groups)
	line("Categories", info.Categories)
	line("Environments", info.Environments)
	line("Blacklist", info.Blacklist)
	line("Whiteout", info.Whiteout)
	line("Diagnostics", fmt.Sprintf("%d warning(s), %d error(s)", info.Warnings, info.Errors))
	line("Raw SHA-256", info.RawSHA256)
	line("Canonical size", fmt.Sprintf("%d bytes", info.CanonicalSize))
	line("Fingerprint", info.Fingerprint)
	line("Document ID", info.DocumentID)
	return nil
}

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
)

var (
	siteSetData  string
	siteResetYes bool
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Manage the content document of the active site",
	Long: `Read and edit the page sections of the active site: ` + strings.Join(domain.SectionNames(), ", ") + `.

A site that has never been edited shows the built-in default content.`,
	RunE: runSiteShow,
}

var siteShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the whole site document",
	RunE:  runSiteShow,
}

var siteGetCmd = &cobra.Command{
	Use:   "get [section]",
	Short: "Show one section as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runSiteGet,
}

var siteSetCmd = &cobra.Command{
	Use:   "set [section]",
	Short: "Replace one section",
	Long: `Replace one section with the JSON given via --data. The other
sections keep their current content.`,
	Args: cobra.ExactArgs(1),
	RunE: runSiteSet,
}

var siteResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the site to default content",
	Long: `Discard the site document and the services catalog, restoring the
built-in defaults. The catalog is left empty, not reseeded.`,
	RunE: runSiteReset,
}

func init() {
	siteSetCmd.Flags().StringVar(&siteSetData, "data", "", "section content as JSON (required)")
	_ = siteSetCmd.MarkFlagRequired("data") //nolint:errcheck // flag exists

	siteResetCmd.Flags().BoolVarP(&siteResetYes, "yes", "y", false, "confirm the reset")

	siteCmd.AddCommand(siteShowCmd)
	siteCmd.AddCommand(siteGetCmd)
	siteCmd.AddCommand(siteSetCmd)
	siteCmd.AddCommand(siteResetCmd)
	rootCmd.AddCommand(siteCmd)
}

func runSiteShow(cmd *cobra.Command, _ []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}

	doc, err := contentService.SiteData(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load site data: %w", err)
	}

	return outputJSON(cmd, doc)
}

func runSiteGet(cmd *cobra.Command, args []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}

	section, err := contentService.Section(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to load section: %w", err)
	}

	return outputJSON(cmd, section)
}

func runSiteSet(cmd *cobra.Command, args []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}

	doc, err := contentService.UpdateSection(cmd.Context(), args[0], []byte(siteSetData))
	if err != nil {
		return fmt.Errorf("failed to update section: %w", err)
	}

	cmd.Printf("Updated section %q\n", args[0])
	section, secErr := doc.Section(args[0])
	if secErr != nil {
		return nil
	}
	return outputJSON(cmd, section)
}

func runSiteReset(cmd *cobra.Command, _ []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}

	if !siteResetYes {
		return errors.New("resetting discards the site document and all services; pass --yes to confirm")
	}

	if _, err := contentService.ResetToDefault(cmd.Context()); err != nil {
		return fmt.Errorf("failed to reset site: %w", err)
	}

	cmd.Println("Site content reset to defaults.")
	return nil
}

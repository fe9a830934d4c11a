package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Manage sites and the active-site selection",
	Long: `List the sites this installation manages and switch between them.
The 'services' and 'site' commands always target the active site.`,
	RunE: runSitesList,
}

var sitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sites",
	RunE:  runSitesList,
}

var sitesCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a site",
	Long: `Create a site with the given name. The first site you create
becomes active automatically; later ones need 'sitewright sites use'.`,
	Args: cobra.ExactArgs(1),
	RunE: runSitesCreate,
}

var sitesUseCmd = &cobra.Command{
	Use:   "use [id]",
	Short: "Switch the active site",
	Args:  cobra.ExactArgs(1),
	RunE:  runSitesUse,
}

var sitesRenameCmd = &cobra.Command{
	Use:   "rename [id] [name]",
	Short: "Rename a site",
	Args:  cobra.ExactArgs(2),
	RunE:  runSitesRename,
}

func init() {
	sitesCmd.AddCommand(sitesListCmd)
	sitesCmd.AddCommand(sitesCreateCmd)
	sitesCmd.AddCommand(sitesUseCmd)
	sitesCmd.AddCommand(sitesRenameCmd)
	rootCmd.AddCommand(sitesCmd)
}

func runSitesList(cmd *cobra.Command, _ []string) error {
	if siteService == nil {
		return errors.New("site service not configured")
	}

	sites, err := siteService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list sites: %w", err)
	}

	if len(sites) == 0 {
		cmd.Println("No sites yet. Run 'sitewright wizard' to onboard one.")
		return nil
	}

	activeID := ""
	if active, err := siteService.Active(cmd.Context()); err == nil {
		activeID = active.ID
	}

	cmd.Println(headerStyle.Render("Sites"))
	cmd.Println()
	for _, site := range sites {
		marker := " "
		if site.ID == activeID {
			marker = activeStyle.Render("*")
		}
		cmd.Printf("  %s %s\n", marker, site.Name)
		cmd.Printf("    %s\n", dimStyle.Render("id: "+site.ID))
	}
	return nil
}

func runSitesCreate(cmd *cobra.Command, args []string) error {
	if siteService == nil {
		return errors.New("site service not configured")
	}

	site, err := siteService.Create(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to create site: %w", err)
	}

	cmd.Printf("Created site %q with id %s\n", site.Name, site.ID)
	return nil
}

func runSitesUse(cmd *cobra.Command, args []string) error {
	if siteService == nil {
		return errors.New("site service not configured")
	}

	if err := siteService.SetActive(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to switch site: %w", err)
	}

	site, err := siteService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to load site: %w", err)
	}
	cmd.Printf("Now working on %q\n", site.Name)
	return nil
}

func runSitesRename(cmd *cobra.Command, args []string) error {
	if siteService == nil {
		return errors.New("site service not configured")
	}

	name := args[1]
	site, err := siteService.Update(cmd.Context(), args[0], domain.SitePatch{Name: &name})
	if err != nil {
		return fmt.Errorf("failed to rename site: %w", err)
	}

	cmd.Printf("Renamed site to %q\n", site.Name)
	return nil
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
	"github.com/sitewright-labs/sitewright-cli/internal/core/ports/driven"
)

var (
	servicesJSON bool

	addTitle          string
	addDescription    string
	addCategory       string
	addCustomCategory string
	addInactive       bool

	updateTitle       string
	updateDescription string
	updateCategory    string
	updateActive      bool

	deleteYes bool

	searchCategory string
	searchStatus   string
	searchPage     int
	searchPageSize int
	searchJSON     bool
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Manage the services catalog of the active site",
	Long: `List, add, update, delete and search the services offered on the
active site. Changes persist immediately.`,
	RunE: runServicesList,
}

var servicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all services",
	RunE:  runServicesList,
}

var servicesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a service",
	Long: `Add a service to the end of the catalog.

Pick a category from 'sitewright services categories', or choose "Other"
together with --custom-category to record your own label.`,
	RunE: runServicesAdd,
}

var servicesUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a service",
	Long: `Update fields of an existing service. Only the flags you pass
change; everything else is retained.`,
	Args: cobra.ExactArgs(1),
	RunE: runServicesUpdate,
}

var servicesDeleteCmd = &cobra.Command{
	Use:   "delete [id...]",
	Short: "Delete one or more services",
	Long: `Delete services permanently. Deleting more than one service at a
time requires --yes to confirm.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runServicesDelete,
}

var servicesToggleCmd = &cobra.Command{
	Use:   "toggle [id]",
	Short: "Toggle a service's active flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runServicesToggle,
}

var servicesSearchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search and filter services",
	Long: `Search services by text and filter by category and status. Text
matches anywhere in the title, description or category, ignoring case.
Filters combine; results page at --page-size entries per page.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServicesSearch,
}

var servicesCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the available categories",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, c := range domain.Categories() {
			cmd.Println(c)
		}
	},
}

func init() {
	servicesListCmd.Flags().BoolVar(&servicesJSON, "json", false, "output as JSON")

	servicesAddCmd.Flags().StringVarP(&addTitle, "title", "t", "", "service title (required)")
	servicesAddCmd.Flags().StringVarP(&addDescription, "description", "d", "", "service description (required)")
	servicesAddCmd.Flags().StringVarP(&addCategory, "category", "c", domain.CategoryOther, "service category")
	servicesAddCmd.Flags().StringVar(&addCustomCategory, "custom-category", "", "custom label when category is Other")
	servicesAddCmd.Flags().BoolVar(&addInactive, "inactive", false, "create the service hidden from the site")

	servicesUpdateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "new title")
	servicesUpdateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "new description")
	servicesUpdateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "new category")
	servicesUpdateCmd.Flags().BoolVar(&updateActive, "active", false, "new active state")

	servicesDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "confirm bulk deletion")

	servicesSearchCmd.Flags().StringVarP(&searchCategory, "category", "c", domain.FilterAll, "category filter (exact match)")
	servicesSearchCmd.Flags().StringVarP(&searchStatus, "status", "s", domain.FilterAll, "status filter: all, active or inactive")
	servicesSearchCmd.Flags().IntVarP(&searchPage, "page", "p", 1, "page number")
	servicesSearchCmd.Flags().IntVar(&searchPageSize, "page-size", domain.DefaultPageSize, "entries per page")
	servicesSearchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")

	servicesCmd.AddCommand(servicesListCmd)
	servicesCmd.AddCommand(servicesAddCmd)
	servicesCmd.AddCommand(servicesUpdateCmd)
	servicesCmd.AddCommand(servicesDeleteCmd)
	servicesCmd.AddCommand(servicesToggleCmd)
	servicesCmd.AddCommand(servicesSearchCmd)
	servicesCmd.AddCommand(servicesCategoriesCmd)
	rootCmd.AddCommand(servicesCmd)
}

func runServicesList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	records, err := catalogService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list services: %w", err)
	}

	if servicesJSON {
		return outputJSON(cmd, records)
	}

	if len(records) == 0 {
		cmd.Println("No services yet. Add one with 'sitewright services add'.")
		return nil
	}

	cmd.Println(headerStyle.Render("Services"))
	cmd.Println()
	printServiceRecords(cmd, records)
	return nil
}

func runServicesAdd(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	input := domain.ServiceInput{
		Title:          addTitle,
		Description:    addDescription,
		Category:       addCategory,
		CustomCategory: addCustomCategory,
		Active:         !addInactive,
	}

	rec, err := catalogService.Add(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("failed to add service: %w", err)
	}

	cmd.Printf("Added %q (%s) with id %s\n", rec.Title, rec.Category, rec.ID)
	return nil
}

func runServicesUpdate(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	var patch domain.ServicePatch
	if cmd.Flags().Changed("title") {
		patch.Title = &updateTitle
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &updateDescription
	}
	if cmd.Flags().Changed("category") {
		patch.Category = &updateCategory
	}
	if cmd.Flags().Changed("active") {
		patch.Active = &updateActive
	}

	rec, err := catalogService.Update(cmd.Context(), args[0], patch)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}

	cmd.Printf("Updated %q\n", rec.Title)
	return nil
}

func runServicesDelete(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	if len(args) == 1 {
		if err := catalogService.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete service: %w", err)
		}
		cmd.Printf("Deleted service %s\n", args[0])
		return nil
	}

	if !deleteYes {
		return fmt.Errorf("deleting %d services needs --yes to confirm", len(args))
	}

	removed, err := catalogService.DeleteBatch(cmd.Context(), args, deleteYes)
	if err != nil {
		return fmt.Errorf("failed to delete services: %w", err)
	}

	cmd.Printf("Deleted %d of %d services\n", removed, len(args))
	return nil
}

func runServicesToggle(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	rec, err := catalogService.ToggleActive(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to toggle service: %w", err)
	}

	state := "inactive"
	if rec.Active {
		state = "active"
	}
	cmd.Printf("%q is now %s\n", rec.Title, state)
	return nil
}

func runServicesSearch(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	status := domain.StatusFilter(searchStatus)
	if !status.IsValid() {
		return fmt.Errorf("invalid status filter %q (use all, active or inactive)", searchStatus)
	}

	// The configured page_size applies unless the flag overrides it.
	if !cmd.Flags().Changed("page-size") && configStore != nil {
		if size := configStore.GetInt(driven.ConfigKeyPageSize); size > 0 {
			searchPageSize = size
		}
	}

	spec := domain.QuerySpec{
		CategoryFilter: searchCategory,
		StatusFilter:   status,
		Page:           searchPage,
		PageSize:       searchPageSize,
	}
	if len(args) == 1 {
		spec.SearchText = args[0]
	}

	result, err := catalogService.Query(cmd.Context(), spec)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, result)
	}

	if result.TotalMatched == 0 {
		cmd.Println("No services match.")
		return nil
	}

	page := spec.Page
	if page < 1 {
		page = 1
	}
	cmd.Println(headerStyle.Render(fmt.Sprintf("Matched %d (page %d/%d)", result.TotalMatched, page, result.TotalPages)))
	cmd.Println()
	printServiceRecords(cmd, result.Items)
	return nil
}

func printServiceRecords(cmd *cobra.Command, records []domain.ServiceRecord) {
	for _, rec := range records {
		cmd.Printf("  [%s] %s  %s\n", statusMarker(rec.Active), rec.Title, dimStyle.Render(rec.Category))
		if desc := strings.TrimSpace(rec.Description); desc != "" {
			cmd.Printf("        %s\n", desc)
		}
		cmd.Printf("        %s\n", dimStyle.Render("id: "+rec.ID))
	}
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

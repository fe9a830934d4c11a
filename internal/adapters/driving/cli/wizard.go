package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
	"github.com/sitewright-labs/sitewright-cli/internal/core/ports/driving"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Onboard a new site step by step",
	Long: `Run the onboarding wizard: tell us about your business, list the
services you offer, and create your account. At the end the site is
created, filled in and made active.`,
	RunE: runWizard,
}

func init() {
	rootCmd.AddCommand(wizardCmd)
}

func runWizard(cmd *cobra.Command, _ []string) error {
	if onboardingService == nil {
		return errors.New("onboarding service not configured")
	}

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println(headerStyle.Render("Sitewright Onboarding"))
	cmd.Println()

	// Step 1: Business info
	cmd.Println("Step 1: Your Business")
	cmd.Println("---------------------")
	info, err := promptBusinessInfo(cmd, reader)
	if err != nil {
		return err
	}
	cmd.Println()

	// Step 2: Services
	cmd.Println("Step 2: Your Services")
	cmd.Println("---------------------")
	cmd.Println("List the services you offer. Leave empty to start with a sample set.")
	services := promptServices(cmd, reader)
	cmd.Println()

	// Step 3: Account
	cmd.Println("Step 3: Your Account")
	cmd.Println("--------------------")
	req := promptSignup(cmd, reader)
	cmd.Println()

	site, err := onboardingService.Complete(cmd.Context(), info, services, req)
	if err != nil {
		return fmt.Errorf("onboarding failed: %w", err)
	}

	cmd.Println(headerStyle.Render("All set!"))
	cmd.Printf("Site %q is ready and active.\n", site.Name)
	if len(services) == 0 {
		cmd.Println("We added a few sample services; edit them with 'sitewright services'.")
	}
	return nil
}

func promptBusinessInfo(cmd *cobra.Command, reader *bufio.Reader) (driving.BusinessInfo, error) {
	cmd.Print("Company name: ")
	name := readLine(reader)
	if name == "" {
		return driving.BusinessInfo{}, errors.New("company name is required")
	}

	cmd.Print("Tagline: ")
	tagline := readLine(reader)
	cmd.Print("Short description: ")
	description := readLine(reader)
	cmd.Print("Phone: ")
	phone := readLine(reader)
	cmd.Print("Email: ")
	email := readLine(reader)
	cmd.Print("Address: ")
	address := readLine(reader)
	cmd.Print("Website: ")
	website := readLine(reader)

	return driving.BusinessInfo{
		CompanyName: name,
		Tagline:     tagline,
		Description: description,
		Phone:       phone,
		Email:       email,
		Address:     address,
		Website:     website,
	}, nil
}

func promptServices(cmd *cobra.Command, reader *bufio.Reader) []domain.ServiceInput {
	var services []domain.ServiceInput
	for {
		cmd.Print("\nAdd a service? [y/N]: ")
		answer := strings.ToLower(readLine(reader))
		if answer != "y" && answer != "yes" {
			return services
		}

		cmd.Print("Title: ")
		title := readLine(reader)
		cmd.Print("Description: ")
		description := readLine(reader)

		categories := domain.Categories()
		cmd.Println("Category:")
		for i, c := range categories {
			cmd.Printf("  %d. %s\n", i+1, c)
		}
		cmd.Printf("Enter choice [%d]: ", len(categories))
		choice := parseChoice(readLine(reader), len(categories), len(categories))
		category := categories[choice-1]

		custom := ""
		if category == domain.CategoryOther {
			cmd.Print("Custom category label (optional): ")
			custom = readLine(reader)
		}

		services = append(services, domain.ServiceInput{
			Title:          title,
			Description:    description,
			Category:       category,
			CustomCategory: custom,
			Active:         true,
		})
	}
}

func promptSignup(cmd *cobra.Command, reader *bufio.Reader) driving.SignupRequest {
	cmd.Print("Email: ")
	email := readLine(reader)
	cmd.Print("Password: ")
	password := readLine(reader)
	return driving.SignupRequest{Email: email, Password: password}
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

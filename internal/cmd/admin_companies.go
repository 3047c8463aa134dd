package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Joaofg09/nextlevel-cli/internal/derive"
	"github.com/Joaofg09/nextlevel-cli/internal/forms"
	"github.com/Joaofg09/nextlevel-cli/internal/models"
)

var adminCompaniesCmd = &cobra.Command{
	Use:   "companies",
	Short: "Manage publishers",
}

var (
	companySearch string
	companySort   string
)

var adminCompaniesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List publishers",
	RunE:  runAdminCompaniesList,
}

var companyFormName string

var adminCompaniesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a publisher",
	RunE:  runAdminCompaniesCreate,
}

var adminCompaniesUpdateCmd = &cobra.Command{
	Use:   "update <company-id>",
	Short: "Rename a publisher",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminCompaniesUpdate,
}

var adminCompaniesDeleteCmd = &cobra.Command{
	Use:   "delete <company-id>",
	Short: "Remove a publisher",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminCompaniesDelete,
}

func init() {
	adminCmd.AddCommand(adminCompaniesCmd)
	adminCompaniesCmd.AddCommand(adminCompaniesListCmd)
	adminCompaniesCmd.AddCommand(adminCompaniesCreateCmd)
	adminCompaniesCmd.AddCommand(adminCompaniesUpdateCmd)
	adminCompaniesCmd.AddCommand(adminCompaniesDeleteCmd)

	adminCompaniesListCmd.Flags().StringVar(&companySearch, "search", "", "Filter by name substring")
	adminCompaniesListCmd.Flags().StringVar(&companySort, "sort", string(derive.SortIDAsc),
		"Sort key: id-asc or name-asc")

	adminCompaniesCreateCmd.Flags().StringVar(&companyFormName, "name", "", "Publisher name")
	adminCompaniesUpdateCmd.Flags().StringVar(&companyFormName, "name", "", "Publisher name")
	_ = adminCompaniesCreateCmd.MarkFlagRequired("name")
	_ = adminCompaniesUpdateCmd.MarkFlagRequired("name")
}

func runAdminCompaniesList(cmd *cobra.Command, args []string) error {
	// Companies carry no price, so price-desc is rejected along with typos.
	sortKey := derive.Sort(companySort)
	switch sortKey {
	case derive.SortIDAsc, derive.SortNameAsc:
	default:
		return fmt.Errorf("unknown sort key %q, use id-asc or name-asc", companySort)
	}

	e, err := adminEnv()
	if err != nil {
		return err
	}

	companies, err := e.client.ListCompanies(cmd.Context())
	if err != nil {
		return e.notice(err)
	}

	params := derive.Params{Search: companySearch, Sort: sortKey}
	view := derive.Companies(companies, params)
	if len(view) == 0 {
		fmt.Println("📭 No publishers match")
		return nil
	}

	fmt.Printf("🏢 %d publisher(s):\n", len(view))
	for _, c := range view {
		fmt.Printf("  #%-4d %s\n", c.ID, c.Name)
	}
	return nil
}

func runAdminCompaniesCreate(cmd *cobra.Command, args []string) error {
	if err := forms.Check(forms.CompanyForm{Name: companyFormName}); err != nil {
		return err
	}

	e, err := adminEnv()
	if err != nil {
		return err
	}

	if err := e.client.CreateCompany(cmd.Context(), models.Company{Name: companyFormName}); err != nil {
		return e.notice(err)
	}
	fmt.Printf("✅ Publisher %q registered\n", companyFormName)
	return nil
}

func runAdminCompaniesUpdate(cmd *cobra.Command, args []string) error {
	id, err := gameIDArg(args[0])
	if err != nil {
		return err
	}
	if err := forms.Check(forms.CompanyForm{Name: companyFormName}); err != nil {
		return err
	}

	e, err := adminEnv()
	if err != nil {
		return err
	}

	if err := e.client.UpdateCompany(cmd.Context(), models.Company{ID: id, Name: companyFormName}); err != nil {
		return e.notice(err)
	}
	fmt.Printf("✅ Publisher #%d updated\n", id)
	return nil
}

func runAdminCompaniesDelete(cmd *cobra.Command, args []string) error {
	id, err := gameIDArg(args[0])
	if err != nil {
		return err
	}

	e, err := adminEnv()
	if err != nil {
		return err
	}

	if err := e.client.DeleteCompany(cmd.Context(), id); err != nil {
		return e.notice(err)
	}
	fmt.Printf("🗑  Publisher #%d deleted\n", id)
	return nil
}

package users

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-backoffice"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// listPageSize matches the admin table's compact rows
const listPageSize = 5

var (
	listPage   int
	listSize   int
	listRole   string
	listSearch string
	listSort   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
	Long: `Lists user accounts one page at a time. Pages are zero indexed.

Filter by role with --role, or across name, email, and role with --search.
Sort with --sort "field" or --sort "field,desc".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, principal, err := requireSession(cmd)
		if err != nil {
			return err
		}

		query := backoffice.NewQuery()
		query.Page = listPage
		query.Size = listSize

		if listRole != "" {
			if !backoffice.IsValidRole(listRole) {
				return fmt.Errorf("invalid role %q, valid roles: %s", listRole, strings.Join(backoffice.AllRoles(), ", "))
			}
			query.Filters[backoffice.FilterRole] = listRole
		}
		if listSearch != "" {
			query.Filters[backoffice.FilterGeneral] = listSearch
		}

		if listSort != "" {
			sort, err := parseSort(listSort)
			if err != nil {
				return err
			}
			query.Sort = sort
		}

		page, err := cfg.Client.ListUsers(cmd.Context(), query)
		if err != nil {
			return err
		}

		rows := pterm.TableData{{"ID", "NAME", "EMAIL", "TELEPHONE", "ROLE"}}
		for _, user := range page.Content {
			name := strings.TrimSpace(user.Name + " " + user.Surnames)
			role := string(user.Role)
			if user.ID == principal.ID() {
				role += " (you)"
			}
			rows = append(rows, []string{user.ID, name, user.Email, user.Telephone, role})
		}

		if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
			return err
		}

		pterm.Info.Printf("page %d of %d, %d users total\n", page.Query.Page+1, page.TotalPages, page.TotalElements)
		return nil
	},
}

func parseSort(value string) (*backoffice.OrderBy, error) {
	parts := strings.SplitN(value, ",", 2)
	sort := &backoffice.OrderBy{
		Field:     strings.TrimSpace(parts[0]),
		Direction: backoffice.DirectionAsc,
	}

	if sort.Field == "" {
		return nil, fmt.Errorf("invalid sort %q, expected \"field\" or \"field,desc\"", value)
	}

	if len(parts) == 2 {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case backoffice.DirectionAsc:
			sort.Direction = backoffice.DirectionAsc
		case backoffice.DirectionDesc:
			sort.Direction = backoffice.DirectionDesc
		default:
			return nil, fmt.Errorf("invalid sort direction %q", parts[1])
		}
	}

	return sort, nil
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 0, "Page number, zero indexed")
	listCmd.Flags().IntVar(&listSize, "size", listPageSize, "Rows per page")
	listCmd.Flags().StringVar(&listRole, "role", "", "Filter by role")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Free-text filter over name, email, and role")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort order, e.g. \"creationDate,desc\"")
}

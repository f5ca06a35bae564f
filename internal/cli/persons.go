package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/callibrity/person-workshop/internal/service"
)

var createCmd = &cobra.Command{
	Use:   "create <first-name> <last-name>",
	Short: "Create a person",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		appLogger.Debug("Create command",
			slog.String("first_name", args[0]),
			slog.String("last_name", args[1]),
		)
		dto, err := client.CreatePerson(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), dto)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Retrieve a person",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dto, err := client.RetrievePerson(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), dto)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id> <first-name> <last-name>",
	Short: "Replace the names of a person",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		dto, err := client.UpdatePerson(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), dto)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a person",
	Long:  `Delete a person. Deleting an id that does not exist is not an error`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.DeletePerson(cmd.Context(), args[0]); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return err
	},
}

var listSpec service.PageSpec

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List persons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appLogger.Debug("List command", slog.String("spec", listSpec.String()))
		page, err := client.ListPersons(cmd.Context(), listSpec)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), page)
	},
}

func init() {
	listCmd.Flags().IntVar(&listSpec.Page, "page", 0, "zero based page number")
	listCmd.Flags().IntVar(&listSpec.Size, "size", 0, "page size (server default when 0)")
	listCmd.Flags().StringVar(&listSpec.SortBy, "sort-by", "", "sort key: firstName or lastName")
	listCmd.Flags().StringVar(&listSpec.SortDir, "sort-dir", "", "sort direction: asc or desc")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

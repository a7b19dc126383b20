package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"travel-explorer-service/internal/infrastructure/persistence"
	"travel-explorer-service/internal/usecase"

	"github.com/spf13/cobra"
)

// Deps are the services the commands operate on
type Deps struct {
	Connector *persistence.Connector
	Searches  *usecase.SearchService
	Timeout   time.Duration
}

// New creates the root travelctl command
func New(deps Deps, version string) *cobra.Command {
	if deps.Timeout <= 0 {
		deps.Timeout = 10 * time.Second
	}

	root := &cobra.Command{
		Use:           "travelctl",
		Short:         "Inspect the Travel Explorer search log",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(newVersionCmd(version))
	root.AddCommand(newStatusCmd(deps))
	root.AddCommand(newSearchesCmd(deps))

	return root
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", version)
		},
	}
}

func newStatusCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show document store connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), deps.Timeout)
			defer cancel()

			return encode(cmd, deps.Connector.Describe(ctx))
		},
	}
}

func newSearchesCmd(deps Deps) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "searches",
		Short: "List recent searches, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 || limit > 50 {
				return fmt.Errorf("--limit must be between 1 and 50, got %d", limit)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), deps.Timeout)
			defer cancel()

			items, err := deps.Searches.RecentSearches(ctx, limit)
			if err != nil {
				return err
			}
			return encode(cmd, map[string]interface{}{"items": items})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", usecase.DefaultLimit, "number of searches to list (1-50)")

	return cmd
}

func encode(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

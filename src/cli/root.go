package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/BielosX/wombat/pokedex/src/export"
	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/spf13/cobra"
)

type PokemonFetcher interface {
	FetchList(ctx context.Context, limit int) ([]pokeapi.Pokemon, error)
	FetchByID(ctx context.Context, id int) (*pokeapi.Pokemon, error)
}

type ExportRunner interface {
	Export(ctx context.Context, limit int) (*export.Result, error)
}

// ExporterFactory defers AWS setup until an export is actually requested.
type ExporterFactory func(ctx context.Context) (ExportRunner, error)

// RootCommand creates the pokedex command tree. defaultLimit is used when --limit is not given.
func RootCommand(fetcher PokemonFetcher, newExporter ExporterFactory, defaultLimit int) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pokedex",
		Short:         "Browse and export Pokemon from PokeAPI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		listCommand(fetcher, defaultLimit),
		getCommand(fetcher),
		exportCommand(newExporter, defaultLimit),
	)
	return rootCmd
}

func listCommand(fetcher PokemonFetcher, defaultLimit int) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch one page of Pokemon with their details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pokemons, err := fetcher.FetchList(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printJSON(cmd, pokemons)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", defaultLimit, "number of Pokemon to fetch")
	return cmd
}

func getCommand(fetcher PokemonFetcher) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a single Pokemon by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid pokemon id %q: %w", args[0], err)
			}
			pokemon, err := fetcher.FetchByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, pokemon)
		},
	}
}

func exportCommand(newExporter ExporterFactory, defaultLimit int) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export one page of Pokemon to S3 as Parquet and CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exporter, err := newExporter(cmd.Context())
			if err != nil {
				return fmt.Errorf("init exporter: %w", err)
			}
			result, err := exporter.Export(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if result == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to export")
				return nil
			}
			return printJSON(cmd, result)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", defaultLimit, "number of Pokemon to export")
	return cmd
}

func printJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

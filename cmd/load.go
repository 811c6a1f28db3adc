package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/chrisdamba/dispatchlens/internal/ingest"
	"github.com/chrisdamba/dispatchlens/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load [export.csv]",
	Short: "Load an order export CSV into the Postgres order table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		truncate, _ := cmd.Flags().GetBool("truncate")

		data, err := ingest.LoadCSV(args[0])
		if err != nil {
			return err
		}

		ctx := context.Background()
		pool, err := pgxpool.New(ctx, ingest.ConnString(cfg.Database))
		if err != nil {
			return fmt.Errorf("connecting to order database: %w", err)
		}
		defer pool.Close()

		repo := ingest.NewOrderRepository(pool)
		if truncate {
			if err := repo.DeleteAll(ctx); err != nil {
				return fmt.Errorf("truncating order table: %w", err)
			}
		}
		if err := repo.BulkCreate(ctx, data.Orders); err != nil {
			return fmt.Errorf("inserting order rows: %w", err)
		}

		count, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Loaded %d rows; order table now holds %d\n", len(data.Orders), count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().Bool("truncate", false, "Empty the order table before loading")
}

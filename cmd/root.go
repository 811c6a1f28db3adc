package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/chrisdamba/dispatchlens/internal/analysis"
	"github.com/chrisdamba/dispatchlens/internal/ingest"
	"github.com/chrisdamba/dispatchlens/internal/models"
	"github.com/chrisdamba/dispatchlens/internal/output"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const dateLayout = "2006-01-02"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dispatchlens",
	Short: "Same-day vs next-day delivery performance from raw order exports",
	Long: `dispatchlens classifies logistics orders into same-day and next-day delivery
cohorts and reports attempted, delivered and un-attempted counts overall, per
delivery hub and per customer, for a selected pickup date range.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := runAnalysis(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().String("input", "", "Path to the raw order export CSV")
	rootCmd.Flags().String("start-date", "", "Range start date, YYYY-MM-DD (default: earliest pickup in the export)")
	rootCmd.Flags().String("end-date", "", "Range end date, YYYY-MM-DD (default: latest pickup in the export)")
	rootCmd.Flags().String("output-format", "csv", "Report format: csv, json, parquet or postgres")
	rootCmd.Flags().String("output-path", "", "Directory for report files (console only when empty)")
	rootCmd.Flags().String("output-folder", "reports", "Folder created under the output path")
	rootCmd.Flags().Bool("kafka-enabled", false, "Publish report rows to Kafka instead of files")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("kafka-topic-prefix", "dispatchlens_", "Prefix for report topics")
	rootCmd.Flags().Bool("database-enabled", false, "Load order rows from Postgres instead of CSV")

	viper.BindPFlag("input_file", rootCmd.Flags().Lookup("input"))
	viper.BindPFlag("start_date", rootCmd.Flags().Lookup("start-date"))
	viper.BindPFlag("end_date", rootCmd.Flags().Lookup("end-date"))
	viper.BindPFlag("output_format", rootCmd.Flags().Lookup("output-format"))
	viper.BindPFlag("output_path", rootCmd.Flags().Lookup("output-path"))
	viper.BindPFlag("output_folder", rootCmd.Flags().Lookup("output-folder"))
	viper.BindPFlag("kafka_enabled", rootCmd.Flags().Lookup("kafka-enabled"))
	viper.BindPFlag("kafka_broker_list", rootCmd.Flags().Lookup("kafka-broker-list"))
	viper.BindPFlag("kafka_topic_prefix", rootCmd.Flags().Lookup("kafka-topic-prefix"))
	viper.BindPFlag("database_enabled", rootCmd.Flags().Lookup("database-enabled"))
}

func runAnalysis(cfg *models.Config) error {
	data, err := loadOrders(cfg)
	if err != nil {
		return err
	}

	start, end, err := resolveRange(cfg, data)
	if err != nil {
		return err
	}

	report, err := analysis.Analyze(data.Orders, start, end, cfg.Report)
	if errors.Is(err, analysis.ErrNoDataInRange) {
		fmt.Println("No data available for the selected date range.")
		return nil
	}
	if err != nil {
		return err
	}

	output.RenderText(os.Stdout, report)

	dest, err := output.ForConfig(cfg)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	if err := output.WriteReport(dest, report); err != nil {
		dest.Close()
		return err
	}
	return dest.Close()
}

func loadOrders(cfg *models.Config) (*ingest.LoadResult, error) {
	if cfg.DatabaseEnabled {
		ctx := context.Background()
		pool, err := pgxpool.New(ctx, ingest.ConnString(cfg.Database))
		if err != nil {
			return nil, fmt.Errorf("connecting to order database: %w", err)
		}
		defer pool.Close()

		repo := ingest.NewOrderRepository(pool)
		if cfg.StartDate != "" && cfg.EndDate != "" {
			from, err := time.Parse(dateLayout, cfg.StartDate)
			if err != nil {
				return nil, fmt.Errorf("invalid start date %q: %w", cfg.StartDate, err)
			}
			to, err := time.Parse(dateLayout, cfg.EndDate)
			if err != nil {
				return nil, fmt.Errorf("invalid end date %q: %w", cfg.EndDate, err)
			}
			// One day earlier than the selected range: next-day orders are
			// picked up the evening before it starts.
			return repo.GetByPickupRange(ctx, from.AddDate(0, 0, -1), to)
		}
		return repo.GetAll(ctx)
	}

	if cfg.InputFile == "" {
		return nil, errors.New("no order export given; pass --input or set input_file")
	}
	return ingest.LoadCSV(cfg.InputFile)
}

// resolveRange parses the configured dates, defaulting either end to the
// observed pickup bounds of the export.
func resolveRange(cfg *models.Config, data *ingest.LoadResult) (time.Time, time.Time, error) {
	if data.MinPickedOn == nil {
		return time.Time{}, time.Time{}, errors.New("export contains no parsable pickup timestamps")
	}

	start, end := *data.MinPickedOn, *data.MaxPickedOn
	if cfg.StartDate != "" {
		parsed, err := time.Parse(dateLayout, cfg.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", cfg.StartDate, err)
		}
		start = parsed
	}
	if cfg.EndDate != "" {
		parsed, err := time.Parse(dateLayout, cfg.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", cfg.EndDate, err)
		}
		end = parsed
	}
	return start, end, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package models

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ReportConfig carries the classification rule inputs and the curated entity
// lists the breakdown tables are built from. The roll-up layer takes this as
// an argument so the lists can be varied without touching any counting logic.
type ReportConfig struct {
	NextDayCustomers  []string `mapstructure:"next_day_customers"`
	NextDayCutoffHour int      `mapstructure:"next_day_cutoff_hour"`
	Hubs              []string `mapstructure:"hubs"`
	Customers         []string `mapstructure:"customers"`
}

// DefaultReportConfig returns the curated business lists shipped with the
// tool. Empty fields in a loaded config fall back to these.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		NextDayCustomers:  DefaultNextDayCustomers,
		NextDayCutoffHour: NextDayCutoffHour,
		Hubs:              DefaultHubs,
		Customers:         DefaultCustomers,
	}
}

type Config struct {
	InputFile         string             `mapstructure:"input_file"`
	StartDate         string             `mapstructure:"start_date"`
	EndDate           string             `mapstructure:"end_date"`
	OutputFormat      string             `mapstructure:"output_format"`
	OutputPath        string             `mapstructure:"output_path"`
	OutputFolder      string             `mapstructure:"output_folder"`
	OutputDestination string             `mapstructure:"output_destination"`
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`
	KafkaEnabled      bool               `mapstructure:"kafka_enabled"`
	KafkaBrokerList   string             `mapstructure:"kafka_broker_list"`
	KafkaTopicPrefix  string             `mapstructure:"kafka_topic_prefix"`
	DatabaseEnabled   bool               `mapstructure:"database_enabled"`
	Database          DatabaseConfig     `mapstructure:"database"`
	Report            ReportConfig       `mapstructure:"report"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config is fine; flags and defaults cover it.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			dc.DecodeHook,
			// Lets list-valued settings arrive as comma-separated strings
			// from flags or environment variables.
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	config.applyReportDefaults()

	return &config, nil
}

func (cfg *Config) applyReportDefaults() {
	defaults := DefaultReportConfig()
	if len(cfg.Report.NextDayCustomers) == 0 {
		cfg.Report.NextDayCustomers = defaults.NextDayCustomers
	}
	if cfg.Report.NextDayCutoffHour == 0 {
		cfg.Report.NextDayCutoffHour = defaults.NextDayCutoffHour
	}
	if len(cfg.Report.Hubs) == 0 {
		cfg.Report.Hubs = defaults.Hubs
	}
	if len(cfg.Report.Customers) == 0 {
		cfg.Report.Customers = defaults.Customers
	}
}

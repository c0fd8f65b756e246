package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	RateLimit     RateLimit     `mapstructure:",squash"`
	ScoreWeights  ScoreWeights  `mapstructure:",squash"`
	TrendSnapshot TrendSnapshot `mapstructure:",squash"`
	RatesRefresh  RatesRefresh  `mapstructure:",squash"`
	Events        Events        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	// Secret is the shared HS256 secret of the identity provider used
	// to validate incoming bearer tokens.
	Secret string `mapstructure:"auth_secret"`
}

type RateLimit struct {
	Requests      int `mapstructure:"rate_limit_requests"`
	WindowSeconds int `mapstructure:"rate_limit_window_seconds"`
}

// ScoreWeights is the named configuration of the overall-score formula.
// The five weights should sum to 1.0; Normalize rescales them when an
// operator sets values that do not.
type ScoreWeights struct {
	Conditions float64 `mapstructure:"score_weight_conditions"`
	Payouts    float64 `mapstructure:"score_weight_payouts"`
	Community  float64 `mapstructure:"score_weight_community"`
	Cashback   float64 `mapstructure:"score_weight_cashback"`
	Growth     float64 `mapstructure:"score_weight_growth"`
}

// Normalize rescales the weights so they sum to 1.0. Weights that sum
// to zero or less fall back to the defaults.
func (w ScoreWeights) Normalize() ScoreWeights {
	sum := w.Conditions + w.Payouts + w.Community + w.Cashback + w.Growth
	if sum <= 0 {
		return DefaultScoreWeights()
	}
	return ScoreWeights{
		Conditions: w.Conditions / sum,
		Payouts:    w.Payouts / sum,
		Community:  w.Community / sum,
		Cashback:   w.Cashback / sum,
		Growth:     w.Growth / sum,
	}
}

func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Conditions: 0.25,
		Payouts:    0.20,
		Community:  0.20,
		Cashback:   0.20,
		Growth:     0.15,
	}
}

type TrendSnapshot struct {
	CronSchedule string `mapstructure:"trend_snapshot_cron"`
	Enabled      bool   `mapstructure:"trend_snapshot_enabled"`
}

type RatesRefresh struct {
	CronSchedule string `mapstructure:"rates_refresh_cron"`
	Enabled      bool   `mapstructure:"rates_refresh_enabled"`
	TTLMinutes   int    `mapstructure:"rates_refresh_ttl_minutes"`
	SourceURL    string `mapstructure:"rates_source_url"`
	BaseCurrency string `mapstructure:"rates_base_currency"`
}

type Events struct {
	// Brokers is a comma-separated Kafka broker list. Empty disables
	// event publishing entirely.
	Brokers []string `mapstructure:"events_brokers"`
	Topic   string   `mapstructure:"events_topic"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/fundedrank")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("RATE_LIMIT_REQUESTS", 120)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)

	viper.SetDefault("SCORE_WEIGHT_CONDITIONS", 0.25)
	viper.SetDefault("SCORE_WEIGHT_PAYOUTS", 0.20)
	viper.SetDefault("SCORE_WEIGHT_COMMUNITY", 0.20)
	viper.SetDefault("SCORE_WEIGHT_CASHBACK", 0.20)
	viper.SetDefault("SCORE_WEIGHT_GROWTH", 0.15)

	viper.SetDefault("TREND_SNAPSHOT_CRON", "0 4 * * *") // every day at 4am
	viper.SetDefault("TREND_SNAPSHOT_ENABLED", false)

	viper.SetDefault("RATES_REFRESH_CRON", "0 */6 * * *") // every 6 hours
	viper.SetDefault("RATES_REFRESH_ENABLED", false)
	viper.SetDefault("RATES_REFRESH_TTL_MINUTES", 360)
	viper.SetDefault("RATES_SOURCE_URL", "https://open.er-api.com/v6/latest/USD")
	viper.SetDefault("RATES_BASE_CURRENCY", "USD")

	viper.SetDefault("EVENTS_BROKERS", "")
	viper.SetDefault("EVENTS_TOPIC", "fundedrank.engagement")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.ScoreWeights = config.ScoreWeights.Normalize()

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads the .env file with godotenv before viper runs.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not determine the working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Debug("No .env file found, relying on process environment")
}

package config

import (
	"flag"
	"fmt"
	"math"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/ozzus/hotel-booking/internal/application/pricing"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"local"`
	Jaeger  string        `yaml:"jaeger" env:"JAEGER"`
	Log     LogConfig     `yaml:"log"`
	HTTP    HTTPConfig    `yaml:"http"`
	GRPC    GRPCConfig    `yaml:"grpc"`
	Metrics MetricsConfig `yaml:"metrics"`
	Storage StorageConfig `yaml:"storage"`
	DB      DBConfig      `yaml:"db"`
	Redis   RedisConfig   `yaml:"redis"`
	Pricing PricingConfig `yaml:"pricing"`
	Admin   AdminConfig   `yaml:"admin"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"5s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

func (c HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type GRPCConfig struct {
	Enabled bool          `yaml:"enabled" env:"GRPC_ENABLED" env-default:"true"`
	Host    string        `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port    int           `yaml:"port" env:"GRPC_PORT" env-default:"44046"`
	Timeout time.Duration `yaml:"timeout" env:"GRPC_TIMEOUT" env-default:"5s"`
}

func (c GRPCConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path" env:"METRICS_PATH" env-default:"/metrics"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
}

type DBConfig struct {
	DSN      string `yaml:"dsn" env:"DB_DSN"`
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Name     string `yaml:"name" env:"DB_NAME"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

func (c DBConfig) DatabaseURL() string {
	if c.DSN != "" {
		return c.DSN
	}

	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Name,
	}

	q := u.Query()
	q.Set("sslmode", sslMode)
	u.RawQuery = q.Encode()

	return u.String()
}

type RedisConfig struct {
	Addr      string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password  string `yaml:"password" env:"REDIS_PASSWORD"`
	DB        int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"booking"`
}

// PricingConfig amounts have no env-default: cleanenv would apply it to an
// explicit 0 from YAML. MustLoadByPath seeds them from DefaultPricing instead.
type PricingConfig struct {
	SingleRate           float64 `yaml:"single_rate" env:"PRICING_SINGLE_RATE"`
	DoubleRate           float64 `yaml:"double_rate" env:"PRICING_DOUBLE_RATE"`
	SuiteRate            float64 `yaml:"suite_rate" env:"PRICING_SUITE_RATE"`
	WeekendSurcharge     float64 `yaml:"weekend_surcharge" env:"PRICING_WEEKEND_SURCHARGE"`
	LongStayNights       int     `yaml:"long_stay_nights" env:"PRICING_LONG_STAY_NIGHTS"`
	LongStayDiscountRate float64 `yaml:"long_stay_discount_rate" env:"PRICING_LONG_STAY_DISCOUNT_RATE"`
	ViewSurcharge        float64 `yaml:"view_surcharge" env:"PRICING_VIEW_SURCHARGE"`
	ViewKeyword          string  `yaml:"view_keyword" env:"PRICING_VIEW_KEYWORD" env-default:"view"`
	TimeZone             string  `yaml:"time_zone" env:"PRICING_TIME_ZONE" env-default:"UTC"`
}

func DefaultPricing() PricingConfig {
	return PricingConfig{
		SingleRate:           pricing.DefaultSingleRate,
		DoubleRate:           pricing.DefaultDoubleRate,
		SuiteRate:            pricing.DefaultSuiteRate,
		WeekendSurcharge:     pricing.DefaultWeekendSurcharge,
		LongStayNights:       pricing.DefaultLongStayNights,
		LongStayDiscountRate: pricing.DefaultLongStayDiscountRate,
		ViewSurcharge:        pricing.DefaultViewSurcharge,
		ViewKeyword:          pricing.DefaultViewKeyword,
		TimeZone:             "UTC",
	}
}

// Location resolves TimeZone. An empty value means UTC.
func (c PricingConfig) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.TimeZone)
	if name == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load pricing time zone %q: %w", name, err)
	}
	return loc, nil
}

type AdminConfig struct {
	Username string `yaml:"username" env:"ADMIN_USERNAME" env-default:"admin"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD" env-default:"password123"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}
	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exists: " + configPath)
	}

	cfg := Config{Pricing: DefaultPricing()}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read the config: " + err.Error())
	}

	if err := cfg.validate(); err != nil {
		panic("invalid config: " + err.Error())
	}

	return &cfg
}

func (c *Config) validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	return c.Pricing.validate()
}

func (c PricingConfig) validate() error {
	amounts := []struct {
		name  string
		value float64
	}{
		{"single_rate", c.SingleRate},
		{"double_rate", c.DoubleRate},
		{"suite_rate", c.SuiteRate},
		{"weekend_surcharge", c.WeekendSurcharge},
		{"view_surcharge", c.ViewSurcharge},
	}
	for _, a := range amounts {
		if a.value < 0 || math.IsNaN(a.value) || math.IsInf(a.value, 0) {
			return fmt.Errorf("pricing.%s must be a non-negative amount, got %v", a.name, a.value)
		}
	}

	if c.LongStayNights < 0 {
		return fmt.Errorf("pricing.long_stay_nights must not be negative, got %d", c.LongStayNights)
	}
	if !(c.LongStayDiscountRate >= 0 && c.LongStayDiscountRate <= 1) {
		return fmt.Errorf("pricing.long_stay_discount_rate must be within [0, 1], got %v", c.LongStayDiscountRate)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	if res == "" {
		res = "config/local.yaml"
	}

	return res
}

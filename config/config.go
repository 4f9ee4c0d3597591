package config

import (
	"fmt"
	"net"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const envFile = ".env"

type Config struct {
	Server       Server       `envconfig:"SERVER"`
	App          App          `envconfig:"APP"`
	Hotel        Hotel        `envconfig:"HOTEL"`
	Housekeeping Housekeeping `envconfig:"HOUSEKEEPING"`
	Cache        Cache        `envconfig:"CACHE"`
	JWT          JWT          `envconfig:"JWT"`
	DB           DB           `envconfig:"DB"`
	Kafka        Kafka        `envconfig:"KAFKA"`
	External     External     `envconfig:"EXTERNAL"`
}

type Server struct {
	Env      string   `envconfig:"ENV"`
	LogLevel string   `envconfig:"LOG_LEVEL"`
	Port     string   `envconfig:"PORT"`
	Host     string   `envconfig:"HOST"`
	Shutdown Shutdown `envconfig:"SHUTDOWN"`
}

// Shutdown splits SIGTERM handling into a grace period, where requests are still served,
// and a cleanup period, where new requests get 503.
type Shutdown struct {
	CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
	GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
}

type App struct {
	Name        string      `envconfig:"APP_NAME"`
	Timezone    string      `envconfig:"TIMEZONE"`
	CORS        CORS        `envconfig:"CORS"`
	RateLimiter RateLimiter `envconfig:"RATE_LIMITER"`
	APIKey      string      `envconfig:"API_KEY"`
}

type CORS struct {
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
	Enable           bool     `envconfig:"ENABLE"`
	MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
}

type RateLimiter struct {
	Enable        bool `envconfig:"ENABLE"`
	MaxRequests   int  `envconfig:"MAX_REQUESTS"`
	WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
}

// Hotel holds the letterhead printed on receipts plus provisioning inputs.
type Hotel struct {
	NameTh      string `envconfig:"NAME_TH"`
	NameEn      string `envconfig:"NAME_EN"`
	AddressTh   string `envconfig:"ADDRESS_TH"`
	AddressEn   string `envconfig:"ADDRESS_EN"`
	Phone       string `envconfig:"PHONE"`
	TaxID       string `envconfig:"TAX_ID"`
	PhoneRegion string `envconfig:"PHONE_REGION"    default:"TH"`
	RoomsFile   string `envconfig:"ROOMS_FILE"      default:"rooms.yaml"`
	StaffEmail  string `envconfig:"STAFF_EMAIL"`
	StaffPass   string `envconfig:"STAFF_PASSWORD"`
	TopRooms    int    `envconfig:"TOP_ROOMS_LIMIT" default:"10"`
}

type Housekeeping struct {
	RolloverEnable         bool `envconfig:"ROLLOVER_ENABLE"          default:"true"`
	RolloverHour           int  `envconfig:"ROLLOVER_HOUR"            default:"0"`
	RolloverMinute         int  `envconfig:"ROLLOVER_MINUTE"          default:"0"`
	CheckIntervalSeconds   int  `envconfig:"CHECK_INTERVAL_SECONDS"   default:"60"`
	ConfirmationTTLSeconds int  `envconfig:"CONFIRMATION_TTL_SECONDS" default:"120"`
}

type Cache struct {
	Redis struct {
		Primary RedisNode `envconfig:"PRIMARY"`
	} `envconfig:"REDIS"`
	TTL int `envconfig:"TTL"`
}

type RedisNode struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB"`
}

func (n RedisNode) Addr() string {
	return net.JoinHostPort(n.Host, n.Port)
}

type JWT struct {
	AccessSecret     string `envconfig:"ACCESS_SECRET"`
	RefreshSecret    string `envconfig:"REFRESH_SECRET"`
	AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"`
	RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN"`
}

type DB struct {
	Postgres Postgres `envconfig:"POSTGRES"`
}

type Postgres struct {
	MaxRetry       int          `envconfig:"MAX_RETRY"`
	RetryWaitTime  int          `envconfig:"RETRY_WAIT_TIME"`
	MigrationTable string       `envconfig:"MIGRATION_TABLE"`
	AutoMigrate    bool         `envconfig:"AUTO_MIGRATE"`
	Prefix         string       `envconfig:"PREFIX"`
	Read           PostgresNode `envconfig:"READ"`
	Write          PostgresNode `envconfig:"WRITE"`
}

type PostgresNode struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

type Kafka struct {
	Enable        bool     `envconfig:"ENABLE"`
	Brokers       []string `envconfig:"BROKERS"`
	ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
	SASL          struct {
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
	} `envconfig:"SASL"`
	Topics struct {
		Booking      string `envconfig:"BOOKING"      default:"frontdesk.booking"`
		Housekeeping string `envconfig:"HOUSEKEEPING" default:"frontdesk.housekeeping"`
	} `envconfig:"TOPICS"`
}

type External struct {
	Otel struct {
		Endpoint string `envconfig:"ENDPOINT"`
	} `envconfig:"OTEL"`
	S3 S3 `envconfig:"S3"`
}

type S3 struct {
	APIEndpoint     string `envconfig:"API_ENDPOINT"`
	AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
	BucketName      string `envconfig:"BUCKET_NAME"`
	PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
}

var (
	conf Config
	once sync.Once
)

// Load reads the given dotenv files into the environment, then decodes the environment.
// A missing dotenv file is not an error; variables already set win over the file.
func Load(files ...string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(files...); err != nil {
		log.Warn().Err(err).Strs("files", files).Msg("Could not load dotenv file, continuing with existing environment variables")
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("processing environment variables: %w", err)
	}

	return cfg, nil
}

// Get returns the process-wide configuration, loading it from .env on first use.
func Get() *Config {
	once.Do(func() {
		loaded, err := Load(envFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}

		conf = loaded

		log.Info().Msg("Service configuration initialized successfully")
	})

	return &conf
}

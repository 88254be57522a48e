package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ChangeFeedPostgres = "postgres"
	ChangeFeedKafka    = "kafka"

	defaultLocale   = "pt-BR"
	defaultTimezone = "America/Sao_Paulo"
)

type (
	Tasks struct {
		LiveQueryResyncInterval time.Duration
	}

	HTTPServer struct {
		Port               string
		RequestTimeout     time.Duration // middleware timeout
		RateLimiterQPS     int           // middleware rate limiter capacity
		RateLimiterBurst   int           // middleware rate limiter refill
		PprofEnabled       bool
		PprofPort          string
		CORSAllowedOrigins []string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		// накатывать миграции при старте
		Migrate bool
	}

	Kafka struct {
		Brokers        string
		Topic          string
		ConsumerGroup  string
		PublishTimeout time.Duration
		Sarama         Sarama
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	LiveQuery struct {
		// источник уведомлений об изменениях: postgres | kafka
		ChangeFeed   string
		QueryTimeout time.Duration
	}

	Display struct {
		Locale   string
		Timezone string
		Location *time.Location
	}

	Config struct {
		Tasks     Tasks
		Server    HTTPServer
		Database  Database
		Kafka     Kafka
		LiveQuery LiveQuery
		Display   Display
	}
)

// Load читает и проверяет полную конфигурацию сервиса.
func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadForWatch проверяет только то, что нужно терминальному клиенту:
// БД, отображение и live query.
func LoadForWatch() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	for _, validate := range []func(*Config) error{validateDatabase, validateDisplay, validateLiveQuery} {
		if err := validate(cfg); err != nil {
			return nil, fmt.Errorf("validation: %w", err)
		}
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	resyncInterval, err := osGetEnvDuration("BACKGROUND_LIVEQUERY_RESYNC_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	publishTimeout, err := osGetEnvDuration("KAFKA_PUBLISH_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrate, err := osGetBool("POSTGRES_MIGRATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	queryTimeout, err := osGetEnvDuration("LIVEQUERY_QUERY_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	display, err := loadDisplay()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			LiveQueryResyncInterval: resyncInterval,
		},
		Server: HTTPServer{
			Port:               os.Getenv("PORT"),
			RequestTimeout:     requestTimeout,
			RateLimiterQPS:     rateLimiterQPS,
			RateLimiterBurst:   rateLimiterBurst,
			PprofEnabled:       pprofEnabled,
			PprofPort:          os.Getenv("PPROF_PORT"),
			CORSAllowedOrigins: osGetList("CORS_ALLOWED_ORIGINS"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
			Migrate:  migrate,
		},
		Kafka: Kafka{
			Brokers:        os.Getenv("KAFKA_BROKERS"),
			Topic:          os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:  os.Getenv("KAFKA_CONSUMER_GROUP"),
			PublishTimeout: publishTimeout,
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
		},
		LiveQuery: LiveQuery{
			ChangeFeed:   strings.ToLower(os.Getenv("LIVEQUERY_CHANGE_FEED")),
			QueryTimeout: queryTimeout,
		},
		Display: display,
	}, nil
}

func loadDisplay() (Display, error) {
	d := Display{
		Locale:   os.Getenv("DISPLAY_LOCALE"),
		Timezone: os.Getenv("DISPLAY_TIMEZONE"),
	}
	if d.Locale == "" {
		d.Locale = defaultLocale
	}
	if d.Timezone == "" {
		d.Timezone = defaultTimezone
	}

	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return Display{}, fmt.Errorf("invalid DISPLAY_TIMEZONE=%q: %w", d.Timezone, err)
	}
	d.Location = loc
	return d, nil
}

func validateConfig(cfg *Config) error {
	validators := []func(*Config) error{
		validateServer,
		validateDatabase,
		validateTasks,
		validateKafka,
		validateLiveQuery,
		validateDisplay,
	}
	for _, validate := range validators {
		if err := validate(cfg); err != nil {
			return err
		}
	}
	return nil
}

func validateServer(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	return nil
}

func validateDatabase(cfg *Config) error {
	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validateTasks(cfg *Config) error {
	if cfg.Tasks.LiveQueryResyncInterval == time.Duration(0) {
		return errors.New("BACKGROUND_LIVEQUERY_RESYNC_INTERVAL is required")
	}
	return nil
}

func validateKafka(cfg *Config) error {
	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PublishTimeout == time.Duration(0) {
		return errors.New("KAFKA_PUBLISH_TIMEOUT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	return nil
}

func validateLiveQuery(cfg *Config) error {
	switch cfg.LiveQuery.ChangeFeed {
	case ChangeFeedPostgres, ChangeFeedKafka:
	case "":
		return errors.New("LIVEQUERY_CHANGE_FEED is required")
	default:
		return fmt.Errorf("LIVEQUERY_CHANGE_FEED=%q must be %q or %q",
			cfg.LiveQuery.ChangeFeed, ChangeFeedPostgres, ChangeFeedKafka)
	}
	if cfg.LiveQuery.QueryTimeout == time.Duration(0) {
		return errors.New("LIVEQUERY_QUERY_TIMEOUT is required")
	}
	return nil
}

func validateDisplay(cfg *Config) error {
	if cfg.Display.Location == nil {
		return errors.New("DISPLAY_TIMEZONE is not loaded")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

// osGetList разбирает значения через запятую, пустые элементы отбрасываются.
func osGetList(s string) []string {
	val := os.Getenv(s)
	if val == "" {
		return nil
	}

	var res []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Orders struct {
		PreparingAfter time.Duration // PLACED -> PREPARING
		DeliveredAfter time.Duration // PREPARING -> DELIVERED, отсчет от PREPARING
		SweepInterval  time.Duration // фоновая дожимка переходов, потерянных при рестарте
		SweepLimit     int64
		RecomputeTotal bool // сверять total_amount с суммой позиций
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Enabled bool
		Host    string
		Port    string
	}

	Cache struct {
		TTL time.Duration
	}

	Auth struct {
		Secret        string
		InternalToken string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		ProducerEnabled bool
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Orders   Orders
		Server   HTTPServer
		Database Database
		Redis    Redis
		Cache    Cache
		Auth     Auth
		Kafka    Kafka
	}
)

const (
	defaultPreparingAfter = 5 * time.Minute
	defaultDeliveredAfter = 20 * time.Minute
	defaultSweepLimit     = 100
)

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

func loadFromEnv() (*Config, error) {
	preparingAfter, err := osGetEnvDuration("ORDER_PREPARING_AFTER")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if preparingAfter == time.Duration(0) {
		preparingAfter = defaultPreparingAfter
	}

	deliveredAfter, err := osGetEnvDuration("ORDER_DELIVERED_AFTER")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if deliveredAfter == time.Duration(0) {
		deliveredAfter = defaultDeliveredAfter
	}

	sweepInterval, err := osGetEnvDuration("BACKGROUND_ORDER_SWEEP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sweepLimit, err := osGetInt("BACKGROUND_ORDER_SWEEP_LIMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if sweepLimit == 0 {
		sweepLimit = defaultSweepLimit
	}

	recomputeTotal, err := osGetBool("CHECKOUT_RECOMPUTE_TOTAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisEnabled, err := osGetBool("REDIS_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cacheTTL, err := osGetEnvDuration("CACHE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	producerEnabled, err := osGetBool("KAFKA_PRODUCER_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
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

	return &Config{
		Orders: Orders{
			PreparingAfter: preparingAfter,
			DeliveredAfter: deliveredAfter,
			SweepInterval:  sweepInterval,
			SweepLimit:     int64(sweepLimit),
			RecomputeTotal: recomputeTotal,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Redis: Redis{
			Enabled: redisEnabled,
			Host:    os.Getenv("REDIS_HOST"),
			Port:    os.Getenv("REDIS_PORT"),
		},
		Cache: Cache{
			TTL: cacheTTL,
		},
		Auth: Auth{
			Secret:        os.Getenv("AUTH_SECRET"),
			InternalToken: os.Getenv("INTERNAL_API_TOKEN"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			ProducerEnabled: producerEnabled,
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
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

	if cfg.Redis.Enabled {
		if cfg.Redis.Host == "" {
			return errors.New("REDIS_HOST is required when REDIS_ENABLED=true")
		}
		if cfg.Redis.Port == "" {
			return errors.New("REDIS_PORT is required when REDIS_ENABLED=true")
		}
		if cfg.Cache.TTL == time.Duration(0) {
			return errors.New("CACHE_TTL is required when REDIS_ENABLED=true")
		}
	}

	if cfg.Auth.Secret == "" {
		return errors.New("AUTH_SECRET is required")
	}
	if cfg.Auth.InternalToken == "" {
		return errors.New("INTERNAL_API_TOKEN is required")
	}

	if cfg.Orders.SweepInterval == time.Duration(0) {
		return errors.New("BACKGROUND_ORDER_SWEEP_INTERVAL is required")
	}

	if cfg.Kafka.ProducerEnabled && cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required when KAFKA_PRODUCER_ENABLED=true")
	}

	return nil
}

// ValidateConsumer дополнительные требования воркера: консьюмер, в отличие
// от сервиса, не может жить без Kafka.
func ValidateConsumer(cfg *Config) error {
	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
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

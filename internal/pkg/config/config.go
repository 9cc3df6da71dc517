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
	defaultRankingTopN   = 3
	defaultUsersPageSize = 5

	defaultEventRetryInterval    = time.Second
	defaultEventRetryMaxInterval = 30 * time.Second
)

type (
	Tasks struct {
		RankingRefreshInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // пополнение токенов в секунду
		RateLimiterBurst int           // емкость bucket на одного клиента
		RateLimiterIdle  time.Duration // через сколько забываем неактивного клиента
		PprofEnabled     bool
		PprofPort        string
	}

	GRPC struct {
		HealthPort string
	}

	Database struct {
		Host              string
		Port              string
		User              string
		Password          string
		DBName            string
		SSLMode           string
		StatementTimeout  time.Duration
		MigrationsEnabled bool
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Ranking struct {
		TopN     int
		CacheTTL time.Duration
	}

	Users struct {
		PageSize int
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		ParcelStatusChanged ParcelStatusChanged
	}

	ParcelStatusChanged struct {
		ProcessTimeout time.Duration
		// паузы между повторами события при недоступном хранилище
		RetryInterval    time.Duration
		RetryMaxInterval time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		GRPC     GRPC
		Database Database
		Redis    Redis
		Ranking  Ranking
		Users    Users
		Kafka    Kafka
	}
)

// BrokerList разбирает KAFKA_BROKERS вида "host1:9092,host2:9092".
func (k Kafka) BrokerList() []string {
	brokers := make([]string, 0, 1)
	for _, b := range strings.Split(k.Brokers, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	applyDefaults(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	rankingRefreshInterval, err := osGetEnvDuration("BACKGROUND_RANKING_REFRESH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	parcelStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PARCEL_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	parcelStatusChangedRetryInterval, err := osGetEnvDuration("KAFKA_HANDLER_PARCEL_STATUS_CHANGED_RETRY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	parcelStatusChangedRetryMaxInterval, err := osGetEnvDuration("KAFKA_HANDLER_PARCEL_STATUS_CHANGED_RETRY_MAX_INTERVAL")
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

	rateLimiterIdle, err := osGetEnvDuration("MIDDLEWARE_RATE_LIMIT_CLIENT_IDLE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	statementTimeout, err := osGetEnvDuration("POSTGRES_STATEMENT_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrationsEnabled, err := osGetBool("POSTGRES_MIGRATIONS_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rankingTopN, err := osGetInt("RANKING_TOP_N")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rankingCacheTTL, err := osGetEnvDuration("RANKING_CACHE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	usersPageSize, err := osGetInt("USERS_PAGE_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			RankingRefreshInterval: rankingRefreshInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			RateLimiterIdle:  rateLimiterIdle,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		GRPC: GRPC{
			HealthPort: os.Getenv("GRPC_HEALTH_PORT"),
		},
		Database: Database{
			Host:              os.Getenv("POSTGRES_HOST"),
			Port:              os.Getenv("POSTGRES_PORT"),
			User:              os.Getenv("POSTGRES_USER"),
			Password:          os.Getenv("POSTGRES_PASSWORD"),
			DBName:            os.Getenv("POSTGRES_DB"),
			SSLMode:           os.Getenv("POSTGRES_SSLMODE"),
			StatementTimeout:  statementTimeout,
			MigrationsEnabled: migrationsEnabled,
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Ranking: Ranking{
			TopN:     rankingTopN,
			CacheTTL: rankingCacheTTL,
		},
		Users: Users{
			PageSize: usersPageSize,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				ParcelStatusChanged: ParcelStatusChanged{
					ProcessTimeout:   parcelStatusChangedTimeout,
					RetryInterval:    parcelStatusChangedRetryInterval,
					RetryMaxInterval: parcelStatusChangedRetryMaxInterval,
				},
			},
		},
	}, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Ranking.TopN == 0 {
		cfg.Ranking.TopN = defaultRankingTopN
	}
	if cfg.Users.PageSize == 0 {
		cfg.Users.PageSize = defaultUsersPageSize
	}

	statusChanged := &cfg.Kafka.Handlers.ParcelStatusChanged
	if statusChanged.RetryInterval == 0 {
		statusChanged.RetryInterval = defaultEventRetryInterval
	}
	if statusChanged.RetryMaxInterval == 0 {
		statusChanged.RetryMaxInterval = defaultEventRetryMaxInterval
	}
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
	if cfg.Server.RateLimiterIdle == time.Duration(0) {
		return errors.New("MIDDLEWARE_RATE_LIMIT_CLIENT_IDLE is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.GRPC.HealthPort == "" {
		return errors.New("GRPC_HEALTH_PORT is required")
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
	if cfg.Database.StatementTimeout == time.Duration(0) {
		return errors.New("POSTGRES_STATEMENT_TIMEOUT is required")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Ranking.TopN < 0 {
		return errors.New("RANKING_TOP_N must be positive")
	}
	if cfg.Ranking.CacheTTL == time.Duration(0) {
		return errors.New("RANKING_CACHE_TTL is required")
	}
	if cfg.Users.PageSize < 0 {
		return errors.New("USERS_PAGE_SIZE must be positive")
	}

	if cfg.Tasks.RankingRefreshInterval == time.Duration(0) {
		return errors.New("BACKGROUND_RANKING_REFRESH_INTERVAL is required")
	}

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

	if cfg.Kafka.Handlers.ParcelStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PARCEL_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}
	if cfg.Kafka.Handlers.ParcelStatusChanged.RetryInterval > cfg.Kafka.Handlers.ParcelStatusChanged.RetryMaxInterval {
		return errors.New("KAFKA_HANDLER_PARCEL_STATUS_CHANGED_RETRY_INTERVAL must not exceed RETRY_MAX_INTERVAL")
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

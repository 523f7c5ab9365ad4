package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config for the whole service
type Config struct {
	Env string `mapstructure:"env"`

	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Memcache MemcacheConfig `mapstructure:"memcache"`
	Jaeger   JaegerConfig   `mapstructure:"jaeger"`
	Stripe   StripeConfig   `mapstructure:"stripe"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Archive  ArchiveConfig  `mapstructure:"archive"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

// ListenConfig ...
type ListenConfig struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// ListenString returns the address for net.Listen
func (c ListenConfig) ListenString() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c ListenConfig) String() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ServerConfig ...
type ServerConfig struct {
	GRPC ListenConfig `mapstructure:"grpc"`
	HTTP ListenConfig `mapstructure:"http"`
}

// LogConfig ...
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// JaegerConfig ...
type JaegerConfig struct {
	URL string `mapstructure:"url"`
}

// AuthConfig for operator bearer tokens
type AuthConfig struct {
	Secret     string `mapstructure:"secret"`
	Issuer     string `mapstructure:"issuer"`
	TTLSeconds int64  `mapstructure:"ttl_seconds"`
}

// ArchiveConfig for archiving webhook payloads to S3, disabled when Bucket is empty
type ArchiveConfig struct {
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
	Region string `mapstructure:"region"`

	TimeoutMillis int64 `mapstructure:"timeout_millis"`
}

// CacheConfig for the campaign progress cache
type CacheConfig struct {
	LocalSizeBytes  int    `mapstructure:"local_size_bytes"`
	LocalTTLSeconds int    `mapstructure:"local_ttl_seconds"`
	RemoteTTL       uint32 `mapstructure:"remote_ttl_seconds"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")

	v.SetDefault("server.grpc.host", "localhost")
	v.SetDefault("server.grpc.port", 5090)
	v.SetDefault("server.http.host", "localhost")
	v.SetDefault("server.http.port", 5080)

	v.SetDefault("log.level", "info")

	v.SetDefault("stripe.currency", "myr")
	v.SetDefault("stripe.campaign_fee", "50.00")

	v.SetDefault("auth.issuer", "donation-ledger")
	v.SetDefault("auth.ttl_seconds", 3600)

	v.SetDefault("archive.prefix", "webhooks")
	v.SetDefault("archive.timeout_millis", 2000)

	v.SetDefault("cache.local_size_bytes", 8*1024*1024)
	v.SetDefault("cache.local_ttl_seconds", 2)
	v.SetDefault("cache.remote_ttl_seconds", 300)
}

func loadFrom(dir string, name string) Config {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(name)
	v.SetConfigType("yml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var result Config
	err = v.Unmarshal(&result)
	if err != nil {
		panic(err)
	}
	return result
}

// Load config from config.yml in the working directory
func Load() Config {
	return loadFrom(".", "config")
}

// LoadTestConfig loads config.test.yml in the root directory
func LoadTestConfig(rootDir string) Config {
	return loadFrom(path.Clean(rootDir), "config.test")
}

// NewLogger creates a zap logger from config
func NewLogger(conf LogConfig) *zap.Logger {
	var zapConf zap.Config
	if conf.Development {
		zapConf = zap.NewDevelopmentConfig()
	} else {
		zapConf = zap.NewProductionConfig()
	}

	level := zapcore.InfoLevel
	if conf.Level != "" {
		err := level.UnmarshalText([]byte(conf.Level))
		if err != nil {
			panic(err)
		}
	}
	zapConf.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.max_open", 100)
	v.SetDefault("database.max_lifetime", 60)
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.post_ttl", 600)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.post_topic", "blog-post-updated")
	v.SetDefault("kafka.cache_group_id", "blog-post-cache")
	v.SetDefault("kafka.sasl.enable", false)
	v.SetDefault("kafka.sasl.username", "")
	v.SetDefault("kafka.sasl.password", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.admin_role", "ADMIN")
	v.SetDefault("admin.simulated_delay_ms", 0)
	v.SetDefault("admin.mask_persist_errors", false)
	v.SetDefault("logger.level", "info")
}

// SimulatedDelay 更新前的人为延迟, 0 表示关闭
func (c AdminConfig) SimulatedDelay() time.Duration {
	if c.SimulatedDelayMs <= 0 {
		return 0
	}
	return time.Duration(c.SimulatedDelayMs) * time.Millisecond
}

// PostCacheTTL 文章缓存过期时间
func (c RedisConfig) PostCacheTTL() time.Duration {
	if c.PostTTL <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(c.PostTTL) * time.Second
}

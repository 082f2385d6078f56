package config

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Kafka  KafkaConfig  `mapstructure:"kafka"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Admin  AdminConfig  `mapstructure:"admin"`
	Logger LoggerConfig `mapstructure:"logger"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// RedisConfig Redis配置, Addr 为空时不启用文章缓存
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
	PostTTL  int    `mapstructure:"post_ttl"`
}

// KafkaConfig Brokers 为空时不发布文章事件, 也不启动消费者
type KafkaConfig struct {
	Brokers      []string   `mapstructure:"brokers"`
	PostTopic    string     `mapstructure:"post_topic"`
	CacheGroupID string     `mapstructure:"cache_group_id"`
	Sasl         SaslConfig `mapstructure:"sasl"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// AuthConfig JWTSecret 为空时后台不做鉴权
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	AdminRole string `mapstructure:"admin_role"`
}

// AdminConfig 后台编辑页配置
type AdminConfig struct {
	SimulatedDelayMs  int  `mapstructure:"simulated_delay_ms"`
	MaskPersistErrors bool `mapstructure:"mask_persist_errors"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

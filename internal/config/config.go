package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 全局配置结构体（完全匹配config.yaml）
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`    // 服务器配置
	Postgres  PostgresConfig  `mapstructure:"postgres"`  // PostgreSQL配置（tourist_spots 集合）
	Redis     RedisConfig     `mapstructure:"redis"`     // Redis配置（缓存/计数器/AB分桶）
	Auth      AuthConfig      `mapstructure:"auth"`      // 登录态校验
	Spots     SpotsConfig     `mapstructure:"spots"`     // 景点目录管线配置
	Recommend RecommendConfig `mapstructure:"recommend"` // AI推荐上游配置
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port int    `mapstructure:"port"` // 服务端口
	Mode string `mapstructure:"mode"` // Gin运行模式：debug/release/test
}

// PostgresConfig PostgreSQL数据库配置
type PostgresConfig struct {
	DSN             string        `mapstructure:"dsn"`               // 连接DSN
	MaxOpenConns    int           `mapstructure:"max_open_conns"`    // 最大打开连接数
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`    // 最大空闲连接数
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"` // 连接最大存活时间
}

// RedisConfig Redis配置；Enabled=false 时使用进程内存储
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig JWT 配置
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	JWTIssuer string `mapstructure:"jwt_issuer"`
}

// SpotsConfig 景点目录配置
type SpotsConfig struct {
	CacheTTL         time.Duration `mapstructure:"cache_ttl"`         // 缓存新鲜期（默认5分钟）
	RefreshDelay     time.Duration `mapstructure:"refresh_delay"`     // 命中新鲜缓存后，后台刷新的延迟
	RefreshInterval  time.Duration `mapstructure:"refresh_interval"`  // 周期刷新间隔，0 表示不周期刷新
	FetchLimit       int           `mapstructure:"fetch_limit"`       // 远端集合单次拉取上限
	FreeQuota        int           `mapstructure:"free_quota"`        // 未登录可见卡片数量
	Timezone         string        `mapstructure:"timezone"`          // 拥挤度估算使用的时区
	PlaceholderImage string        `mapstructure:"placeholder_image"` // 无图片时的占位图
	Currency         string        `mapstructure:"currency"`          // 价格兜底文案使用的币种
}

// RecommendConfig AI推荐上游接口配置
type RecommendConfig struct {
	BaseURL   string `mapstructure:"base_url"`   // 上游基础地址
	Path      string `mapstructure:"path"`       // 接口路径
	Timeout   int    `mapstructure:"timeout"`    // 请求超时（秒）
	Proxy     string `mapstructure:"proxy"`      // 代理地址
	APIKey    string `mapstructure:"api_key"`    // 上游鉴权
	FreeLimit int    `mapstructure:"free_limit"` // 未登录可提交次数
	SignupURL string `mapstructure:"signup_url"` // 超额后引导注册的地址
}

// LoadConfig 加载配置文件（config/config.yaml），敏感项从 .env 覆盖（不提交 git）
func LoadConfig() (*Config, error) {
	// .env 可不存在
	_ = godotenv.Load()
	return LoadConfigFrom("./config")
}

// LoadConfigFrom 从指定目录读取 config.yaml
func LoadConfigFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	setDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	v.SetTypeByDefaultValue(true)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 敏感字段：用 env 覆盖（优先级 env > yaml）
	overrideFromEnv(&cfg)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("postgres.max_open_conns", 20)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.conn_max_lifetime", time.Hour)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("auth.jwt_issuer", "trip-app")
	v.SetDefault("spots.cache_ttl", 5*time.Minute)
	v.SetDefault("spots.refresh_delay", 2*time.Second)
	v.SetDefault("spots.refresh_interval", time.Duration(0))
	v.SetDefault("spots.fetch_limit", 200)
	v.SetDefault("spots.free_quota", 9)
	v.SetDefault("spots.timezone", "Asia/Tokyo")
	v.SetDefault("spots.placeholder_image", "/images/spot-placeholder.jpg")
	v.SetDefault("spots.currency", "JPY")
	v.SetDefault("recommend.path", "/api/ai-recommendations")
	v.SetDefault("recommend.timeout", 30)
	v.SetDefault("recommend.free_limit", 5)
	v.SetDefault("recommend.signup_url", "/signup")
}

// overrideFromEnv 用环境变量覆盖敏感配置
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("RECOMMEND_API_KEY"); v != "" {
		cfg.Recommend.APIKey = v
	}
	if v := os.Getenv("RECOMMEND_PROXY"); v != "" {
		cfg.Recommend.Proxy = v
	}
}

// Location 返回估算拥挤度用的时区；系统缺少 tzdata 时退回固定 JST
func (s *SpotsConfig) Location() *time.Location {
	if s.Timezone != "" {
		if loc, err := time.LoadLocation(s.Timezone); err == nil {
			return loc
		}
	}
	return time.FixedZone("JST", 9*60*60)
}

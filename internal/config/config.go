package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/leon37/GolfFortune/internal/prompt"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Generation GenerationConfig `mapstructure:"generation"`
	Ollama     OllamaConfig     `mapstructure:"ollama"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Storage    StorageConfig    `mapstructure:"storage"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Admin      AdminConfig      `mapstructure:"admin"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin 的 debug / release / test
}

// GenerationConfig 选择生成后端。缓冲接口和流式接口可以用不同的后端
type GenerationConfig struct {
	Backend       string        `mapstructure:"backend"`        // ollama | openai
	StreamBackend string        `mapstructure:"stream_backend"` // 为空时同 Backend
	Template      string        `mapstructure:"template"`       // golsin | classic
	Timeout       time.Duration `mapstructure:"timeout"`
	StreamTimeout time.Duration `mapstructure:"stream_timeout"`
}

type OllamaConfig struct {
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	Temperature float32 `mapstructure:"temperature"`
	TopP        float32 `mapstructure:"top_p"`
	NumPredict  int     `mapstructure:"num_predict"`
}

type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	Temperature float32 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// StorageConfig 决定运势保存到哪里
type StorageConfig struct {
	Driver  string `mapstructure:"driver"` // file | mysql | none
	DataDir string `mapstructure:"data_dir"`
	DSN     string `mapstructure:"dsn"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// AdminConfig 管理员账号，密码只保存 bcrypt 哈希
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.mode", "release")

	v.SetDefault("generation.backend", "ollama")
	v.SetDefault("generation.stream_backend", "")
	v.SetDefault("generation.template", "golsin")
	v.SetDefault("generation.timeout", 60*time.Second)
	v.SetDefault("generation.stream_timeout", 5*time.Minute)

	v.SetDefault("ollama.base_url", "http://localhost:11434")
	v.SetDefault("ollama.model", "gemma3:1b")
	v.SetDefault("ollama.temperature", 0.8)
	v.SetDefault("ollama.top_p", 0.9)
	v.SetDefault("ollama.num_predict", 700)

	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.temperature", 0.7)
	v.SetDefault("openai.max_tokens", 2000)

	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.data_dir", "data/users")
	v.SetDefault("storage.dsn", "")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expire_hours", 24)

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password_hash", "")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// LoadConfig 读取工作目录下的 config.yaml，文件不存在时只用默认值和环境变量
func LoadConfig() (*Config, error) {
	return Load(".")
}

// Load 从指定目录读取配置
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// 环境变量覆盖，例如 GOLFFORTUNE_OPENAI_API_KEY
	v.SetEnvPrefix("GOLFFORTUNE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 检查枚举类配置
func (c *Config) Validate() error {
	switch c.Generation.Backend {
	case "ollama", "openai":
	default:
		return fmt.Errorf("未知的生成后端: %q", c.Generation.Backend)
	}
	switch c.Generation.StreamBackend {
	case "", "ollama", "openai":
	default:
		return fmt.Errorf("未知的流式生成后端: %q", c.Generation.StreamBackend)
	}
	if (c.Generation.Backend == "openai" || c.StreamBackendName() == "openai") && c.OpenAI.APIKey == "" {
		return errors.New("openai 后端需要 openai.api_key (或环境变量 GOLFFORTUNE_OPENAI_API_KEY)")
	}
	if _, err := prompt.Lookup(c.Generation.Template); err != nil {
		return fmt.Errorf("generation.template 可选 %v: %w", prompt.Versions(), err)
	}
	switch c.Storage.Driver {
	case "file", "none":
	case "mysql":
		if c.Storage.DSN == "" {
			return errors.New("storage.driver=mysql 需要 storage.dsn")
		}
	default:
		return fmt.Errorf("未知的存储驱动: %q", c.Storage.Driver)
	}
	return nil
}

// StreamBackendName 流式接口实际使用的后端
func (c *Config) StreamBackendName() string {
	if c.Generation.StreamBackend == "" {
		return c.Generation.Backend
	}
	return c.Generation.StreamBackend
}

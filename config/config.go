package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"tgimg/internal/application/usecase"
	"tgimg/internal/infrastructure/broker"
	"tgimg/internal/infrastructure/cloudinary"
	"tgimg/internal/infrastructure/database"
	"tgimg/internal/infrastructure/kvstore"
	"tgimg/internal/infrastructure/minio"
	"tgimg/internal/infrastructure/telegram"
	"tgimg/internal/infrastructure/wallhaven"
)

const (
	KVRedis = "redis"
	KVMongo = "mongo"

	StoreTelegram = "telegram"
	StoreMinIO    = "minio"

	AuditTelegram = "telegram"
	AuditBroker   = "broker"
	AuditNone     = "none"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	HTTPServer      HTTPServerConfig       `yaml:"http_server"`
	Backends        BackendConfig          `yaml:"backends"`
	Upload          usecase.UploaderConfig `yaml:"upload"`
	Telegram        telegram.Config        `yaml:"telegram"`
	Cloudinary      cloudinary.Config      `yaml:"cloudinary"`
	Wallhaven       wallhaven.Config       `yaml:"wallhaven"`
	KVStore         kvstore.Config         `yaml:"redis_kv"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOStorer     minio.StorerConfig     `yaml:"minio_storer"`
	Logger          logger.Config          `yaml:"logger"`
}

type HTTPServerConfig struct {
	Bind        string   `yaml:"bind"`
	Port        uint16   `yaml:"port"`
	AdminPrefix string   `yaml:"admin_prefix"`
	BodyLimit   string   `yaml:"body_limit"`
	RateLimit   float64  `yaml:"rate_limit"`
	CORSOrigins []string `yaml:"cors_origins"`
}

func (c HTTPServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.Port)
}

type BackendConfig struct {
	KV    string `yaml:"kv"`
	Store string `yaml:"store"`
	Audit string `yaml:"audit"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.Telegram.BotToken = os.Getenv("TG_BOT_TOKEN")
	config.Telegram.ChatID = os.Getenv("TG_CHAT_ID")
	config.Cloudinary.CloudName = os.Getenv("CLOUDINARY_CLOUD_NAME")
	config.Cloudinary.UploadPreset = os.Getenv("CLOUDINARY_UPLOAD_PRESET")
	config.Wallhaven.APIKey = os.Getenv("WALLHAVEN_API_KEY")
	config.KVStore.URI = os.Getenv("REDIS_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")

	config.applyDefaults()

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Backends.KV == "" {
		c.Backends.KV = KVRedis
	}
	if c.Backends.Store == "" {
		c.Backends.Store = StoreTelegram
	}
	if c.Backends.Audit == "" {
		c.Backends.Audit = AuditNone
	}
	if c.Upload.MaxUploadSizeMB == 0 {
		c.Upload.MaxUploadSizeMB = 30
	}
	if c.Upload.CompressionThresholdMB == 0 {
		c.Upload.CompressionThresholdMB = 20
	}
	if c.Upload.LevelThresholdMB == 0 {
		c.Upload.LevelThresholdMB = 25
	}
	if c.HTTPServer.Port == 0 {
		c.HTTPServer.Port = 8080
	}
	if c.HTTPServer.BodyLimit == "" {
		c.HTTPServer.BodyLimit = "50M"
	}
	if c.HTTPServer.RateLimit == 0 {
		c.HTTPServer.RateLimit = 20
	}
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	switch c.Backends.KV {
	case KVRedis, KVMongo:
	default:
		return fmt.Errorf("unknown kv backend %q", c.Backends.KV)
	}

	switch c.Backends.Store {
	case StoreTelegram, StoreMinIO:
	default:
		return fmt.Errorf("unknown store backend %q", c.Backends.Store)
	}

	switch c.Backends.Audit {
	case AuditTelegram, AuditBroker, AuditNone:
	default:
		return fmt.Errorf("unknown audit sink %q", c.Backends.Audit)
	}

	u := c.Upload
	if u.CompressionThresholdMB >= u.MaxUploadSizeMB {
		return errors.New("compression threshold must be below the maximum upload size")
	}
	if u.LevelThresholdMB >= u.MaxUploadSizeMB {
		return errors.New("level threshold must be below the maximum upload size")
	}
	if u.LevelThresholdMB < u.CompressionThresholdMB {
		return errors.New("level threshold must not be below the compression threshold")
	}

	return nil
}

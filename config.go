package signup

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the process needs wired in at startup. Components
// receive the piece they need through their constructors; nothing reads
// configuration ambiently.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	SMTP    SMTPConfig    `mapstructure:"smtp"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type StorageConfig struct {
	Backend    string `mapstructure:"backend"` // "memory", "mongo" or "sqlite"
	MongoURI   string `mapstructure:"mongo_uri"`
	Database   string `mapstructure:"database"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// LoadConfig reads configuration from path if given, otherwise from an
// optional signup.yaml in the working directory, with SIGNUP_* environment
// variables and defaults filling the gaps.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8090")
	v.SetDefault("storage.backend", "memory")
	v.SetDefault("storage.mongo_uri", "mongodb://127.0.0.1:27017")
	v.SetDefault("storage.database", "signup")
	v.SetDefault("storage.sqlite_path", "signup.db")
	v.SetDefault("smtp.host", "localhost")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.from", "My App <info@my-app.com>")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("signup")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SIGNUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type DB struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type HTTP struct {
	Host string
	Port int
}

type Storage struct {
	Path string
}

type Config struct {
	HTTP HTTP
	DB   DB
	JWT  struct {
		Secret string
		Issuer string
		ExpMin int
	}
	Storage Storage
	Ranking struct {
		DefaultLimit int
	}
	Admin struct {
		LoginID  string
		Password string
	}
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 8080)
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "facebeat")
	v.SetDefault("storage.path", "static")
	v.SetDefault("ranking.default_limit", 10)
	v.SetDefault("admin.login_id", "admin123")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP:    HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port")},
		DB:      DB{Host: v.GetString("db.host"), Port: v.GetInt("db.port"), User: v.GetString("db.user"), Pass: v.GetString("db.pass"), Name: v.GetString("db.name")},
		Storage: Storage{Path: v.GetString("storage.path")},
	}
	cfg.Ranking.DefaultLimit = v.GetInt("ranking.default_limit")
	if cfg.Ranking.DefaultLimit <= 0 {
		cfg.Ranking.DefaultLimit = 10
	}
	cfg.JWT.Secret = v.GetString("jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "facebeat"
	}
	cfg.JWT.ExpMin = v.GetInt("jwt.exp_min")
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	cfg.Admin.LoginID = v.GetString("admin.login_id")
	cfg.Admin.Password = v.GetString("admin.password")
	return cfg, nil
}

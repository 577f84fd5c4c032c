package config

import (
	"os"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Server Server `yaml:"server"`
	Auth   Auth   `yaml:"auth"`
	Media  Media  `yaml:"media"`
}

type Server struct {
	ListenAddr    string `yaml:"listenAddr"`
	APIPrefix     string `yaml:"apiPrefix"`
	PostgresDsn   string `yaml:"postgresDsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Auth struct {
	JwtSecret string `yaml:"jwtSecret"`
	Issuer    string `yaml:"issuer"`
}

type Media struct {
	Dir               string   `yaml:"dir"`
	AllowedExtensions []string `yaml:"allowedExtensions"`
}

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	if config.Server.ListenAddr == "" {
		config.Server.ListenAddr = ":8000"
	}
	if config.Server.APIPrefix == "" {
		config.Server.APIPrefix = "/sites"
	}
	if len(config.Media.AllowedExtensions) == 0 {
		config.Media.AllowedExtensions = []string{"jpg", "jpeg", "png", "gif"}
	}

	return config, nil
}

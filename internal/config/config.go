package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Storage  Storage  `mapstructure:",squash"`
	Ranking  Ranking  `mapstructure:",squash"`
	Cors     Cors     `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
}

// Storage aponta para o bucket onde ficam as imagens de campanhas e criadores
type Storage struct {
	Bucket  string `mapstructure:"s3_bucket_name"`
	Region  string `mapstructure:"aws_region"`
	BaseURL string `mapstructure:"storage_base_url"`
}

type Ranking struct {
	TopCreatorsLimit int `mapstructure:"top_creators_limit"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3002)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/kliq?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	viper.SetDefault("S3_BUCKET_NAME", "kliq-assets")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("STORAGE_BASE_URL", "") // Sobrescreve a URL montada a partir do bucket

	viper.SetDefault("TOP_CREATORS_LIMIT", 10)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Ranking.TopCreatorsLimit <= 0 {
		return nil, fmt.Errorf("config: TOP_CREATORS_LIMIT deve ser positivo, recebido %d", config.Ranking.TopCreatorsLimit)
	}

	config.Storage.BaseURL = StorageBaseURL(config.Storage)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// StorageBaseURL monta a origem pública do bucket S3, sempre terminando em "/".
// Quando STORAGE_BASE_URL é informado (CDN, bucket local), ele tem prioridade.
func StorageBaseURL(storage Storage) string {
	baseURL := strings.TrimSpace(storage.BaseURL)
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", storage.Bucket, storage.Region)
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return baseURL
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

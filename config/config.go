package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/wb-go/wbf/logger"
)

const AppName = "travel-cms"

type Config struct {
	Server     ServerConfig
	Mongo      MongoConfig
	SMTP       SMTPConfig
	Cloudinary CloudinaryConfig
	Admin      AdminConfig
	Logger     LoggerConfig
}

type ServerConfig struct {
	Port        string `env:"PORT"         env-default:"5000" validate:"required,numeric"`
	AdminOrigin string `env:"ADMIN_ORIGIN" env-default:"http://localhost:5173"`
	MainOrigin  string `env:"MAIN_ORIGIN"  env-default:"http://localhost:3000"`
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URI"      env-default:"mongodb://localhost:27017/travel-agency" validate:"required"`
	Database string `env:"MONGODB_DATABASE" env-default:"travel-agency"                           validate:"required"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"  env-default:"smtp.gmail.com" validate:"required"`
	Port     int    `env:"SMTP_PORT"  env-default:"587"            validate:"min=1,max=65535"`
	User     string `env:"EMAIL_USER"`
	Password string `env:"EMAIL_PASS"`
}

type CloudinaryConfig struct {
	CloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `env:"CLOUDINARY_API_KEY"`
	APISecret string `env:"CLOUDINARY_API_SECRET"`
}

type AdminConfig struct {
	Username     string `env:"ADMIN_USERNAME"      env-default:"admin"`
	PasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	Sign         string `env:"SIGN"`
}

type LoggerConfig struct {
	Engine string `env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

// AllowedOrigins lists the CORS origins: the configured panels plus the
// production storefronts.
func (c ServerConfig) AllowedOrigins() []string {
	origins := []string{}
	for _, o := range []string{c.AdminOrigin, c.MainOrigin} {
		if o != "" {
			origins = append(origins, o)
		}
	}
	return append(origins,
		"https://hauntingvoyagers-9zwz.vercel.app",
		"https://hauntingvoyagers.vercel.app",
	)
}

func (c Config) Environment() string {
	if Serverless() {
		return "serverless"
	}
	return "server"
}

// Serverless reports whether the process runs on a function platform.
func Serverless() bool {
	return os.Getenv("VERCEL") != "" || os.Getenv("AWS_LAMBDA_FUNCTION_VERSION") != ""
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

package config

import (
	"encoding/hex"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = ":3001"
	defaultUploadsDir = "uploads"
	cipherKeyLen      = 32
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Auth   Auth
	Logger Logger
}

type DB struct {
	DatabaseURI string
	Migrations  string
}

type Server struct {
	RunAddress string
	UploadsDir string
}

// Auth holds the single administrator account and the two process-wide
// secrets: the JWT signing key and the 32-byte credential cipher key.
// Loaded once at startup, never mutated afterwards.
type Auth struct {
	AdminUser         string
	AdminPasswordHash string
	JWTSecret         string
	CipherKey         []byte
}

type Logger struct {
	LogLevel string
}

func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	runAddress := viper.GetString("run_address")
	if runAddress == "" {
		runAddress = defaultRunAddress
	}
	uploadsDir := viper.GetString("uploads_dir")
	if uploadsDir == "" {
		uploadsDir = defaultUploadsDir
	}

	keyHex := viper.GetString("encryption_key")
	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != cipherKeyLen {
		log.Fatalf("ENCRYPTION_KEY must be %d hex characters (%d bytes)", cipherKeyLen*2, cipherKeyLen)
	}

	cfg := Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{
			RunAddress: runAddress,
			UploadsDir: uploadsDir,
		},
		Auth: Auth{
			AdminUser:         viper.GetString("admin_user"),
			AdminPasswordHash: viper.GetString("admin_password_hash"),
			JWTSecret:         viper.GetString("jwt_secret"),
			CipherKey:         key,
		},
		Logger: Logger{LogLevel: viper.GetString("log_level")},
	}

	if cfg.Auth.AdminUser == "" || cfg.Auth.AdminPasswordHash == "" {
		log.Fatalln("ADMIN_USER and ADMIN_PASSWORD_HASH must be set")
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatalln("JWT_SECRET must be set")
	}

	return &cfg
}

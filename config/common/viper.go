package common

import (
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

type Config struct {
	Viper *viper.Viper
}

func NewViper() *Config {
	config := viper.New()
	config.SetConfigFile(".env")
	config.AddConfigPath("../")
	config.AutomaticEnv()

	config.SetDefault("APP_NAME", "realtime-chat-backend")
	config.SetDefault("APP_PORT", "7720")
	config.SetDefault("REDIS_ADDR", "localhost:6379")
	config.SetDefault("PRESENCE_TTL_SECONDS", 5)
	config.SetDefault("UPLOAD_DIR", "uploads")

	log.Trace("Checking file .env ....")
	if err := config.ReadInConfig(); err != nil {
		log.Warnf("No .env file found, relying on environment: %v", err)
	}
	return &Config{Viper: config}
}

func (c *Config) GetAppConfig() (appName string) {
	return c.Viper.GetString("APP_NAME")
}

func (c *Config) GetAppPort() string {
	return c.Viper.GetString("APP_PORT")
}

func (c *Config) GetDatabaseConfig() (dbHost, dbUser, dbPassword, dbName, dbPort string) {
	dbHost = c.Viper.GetString("DB_HOSTNAME")
	dbUser = c.Viper.GetString("DB_USER")
	dbPassword = c.Viper.GetString("DB_PASSWORD")
	dbName = c.Viper.GetString("DB_NAME")
	dbPort = c.Viper.GetString("DB_PORT")

	return dbHost, dbUser, dbPassword, dbName, dbPort
}

func (c *Config) GetRedisConfig() (addr, password string, db int) {
	return c.Viper.GetString("REDIS_ADDR"),
		c.Viper.GetString("REDIS_PASSWORD"),
		c.Viper.GetInt("REDIS_DB")
}

func (c *Config) GetPresenceTTL() time.Duration {
	return time.Duration(c.Viper.GetInt("PRESENCE_TTL_SECONDS")) * time.Second
}

func (c *Config) GetUploadDir() string {
	return c.Viper.GetString("UPLOAD_DIR")
}

func (c *Config) GetJwtConfig() []byte {
	jwtSecret := c.Viper.GetString("JWT_SECRET")
	return []byte(jwtSecret)
}

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	DBDriver   string
	DBUrl      string
	RedisAddr  string
	RedisDB    int
	JWTSecret  string
	ServerPort string
	Timezone   string
	GinMode    string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_URL", "data/salon.db")
	viper.SetDefault("JWT_SECRET", "changeme")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SALON_TIMEZONE", "Africa/Algiers")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("REDIS_DB", 0)

	// .env facultatif, les variables d'environnement suffisent
	_ = viper.ReadInConfig()

	return &Config{
		DBDriver:   viper.GetString("DB_DRIVER"),
		DBUrl:      viper.GetString("DATABASE_URL"),
		RedisAddr:  viper.GetString("REDIS_ADDR"),
		RedisDB:    viper.GetInt("REDIS_DB"),
		JWTSecret:  viper.GetString("JWT_SECRET"),
		ServerPort: viper.GetString("SERVER_PORT"),
		Timezone:   viper.GetString("SALON_TIMEZONE"),
		GinMode:    viper.GetString("GIN_MODE"),
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

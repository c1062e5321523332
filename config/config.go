package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	Selection Selection
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Selection holds the per-part question counts for a generated test set.
// Operational settings, not business constants baked into code.
type Selection struct {
	Part1Count     int
	Part2Count     int
	Part3Count     int
	TopicDiversity bool
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("PART1_QUESTION_COUNT", 4)
	viper.SetDefault("PART2_QUESTION_COUNT", 1)
	viper.SetDefault("PART3_QUESTION_COUNT", 4)
	viper.SetDefault("SELECTION_TOPIC_DIVERSITY", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Selection.Part1Count = viper.GetInt("PART1_QUESTION_COUNT")
	config.Selection.Part2Count = viper.GetInt("PART2_QUESTION_COUNT")
	config.Selection.Part3Count = viper.GetInt("PART3_QUESTION_COUNT")
	config.Selection.TopicDiversity = viper.GetBool("SELECTION_TOPIC_DIVERSITY")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

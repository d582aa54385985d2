package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DataDir                string `mapstructure:"DATA_DIR"`
	ProgressFile           string `mapstructure:"PROGRESS_FILE"`
	NotesFile              string `mapstructure:"NOTES_FILE"`
	BackupFile             string `mapstructure:"BACKUP_FILE"`
	StoreDriver            string `mapstructure:"STORE_DRIVER"`
	DBDSN                  string `mapstructure:"DB_DSN"`
	RedisAddr              string `mapstructure:"REDIS_ADDR"`
	ProfileID              string `mapstructure:"PROFILE_ID"`
	InstructorPassword     string `mapstructure:"INSTRUCTOR_PASSWORD"`
	InstructorPasswordHash string `mapstructure:"INSTRUCTOR_PASSWORD_HASH"`
	TypingDelayMS          int    `mapstructure:"TYPING_DELAY_MS"`
	ContentDir             string `mapstructure:"CONTENT_DIR"`
	LogFile                string `mapstructure:"LOG_FILE"`
	LogMaxSizeMB           int    `mapstructure:"LOG_MAX_SIZE_MB"`
}

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var keys = []string{
	"DATA_DIR",
	"PROGRESS_FILE",
	"NOTES_FILE",
	"BACKUP_FILE",
	"STORE_DRIVER",
	"DB_DSN",
	"REDIS_ADDR",
	"PROFILE_ID",
	"INSTRUCTOR_PASSWORD",
	"INSTRUCTOR_PASSWORD_HASH",
	"TYPING_DELAY_MS",
	"CONTENT_DIR",
	"LOG_FILE",
	"LOG_MAX_SIZE_MB",
}

// LoadConfig reads path/app.env and the environment. Both are optional; a
// missing file falls back to defaults and env vars.
func LoadConfig(path string) (config Config, err error) {
	// .env only fills variables that are not already set
	_ = godotenv.Load(filepath.Join(path, ".env"))

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for _, k := range keys {
		if err = v.BindEnv(k); err != nil {
			return
		}
	}

	v.SetDefault("DATA_DIR", ".")
	v.SetDefault("PROGRESS_FILE", "progress.json")
	v.SetDefault("NOTES_FILE", "notes.txt")
	v.SetDefault("BACKUP_FILE", "progress_backup.json")
	v.SetDefault("STORE_DRIVER", DriverFile)
	v.SetDefault("INSTRUCTOR_PASSWORD", "instructor123")
	v.SetDefault("TYPING_DELAY_MS", 25)
	v.SetDefault("LOG_FILE", "cpptutor.log")
	v.SetDefault("LOG_MAX_SIZE_MB", 5)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}
	err = config.normalize()
	return
}

func (c *Config) normalize() error {
	switch c.StoreDriver {
	case DriverFile, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.StoreDriver == DriverPostgres && c.DBDSN == "" {
		return errors.New("STORE_DRIVER=postgres requires DB_DSN")
	}
	if c.StoreDriver == DriverSQLite && c.DBDSN == "" {
		c.DBDSN = filepath.Join(c.DataDir, "cpptutor.db")
	}
	if c.ProfileID == "" {
		abs, err := filepath.Abs(c.DataDir)
		if err != nil {
			abs = c.DataDir
		}
		// stable per data directory so restarts find the same SQL row
		c.ProfileID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("cpptutor:"+abs)).String()
	} else if _, err := uuid.Parse(c.ProfileID); err != nil {
		return fmt.Errorf("invalid PROFILE_ID: %w", err)
	}
	if c.TypingDelayMS < 0 {
		c.TypingDelayMS = 0
	}
	return nil
}

func (c Config) ProgressPath() string { return c.resolve(c.ProgressFile) }

func (c Config) NotesPath() string { return c.resolve(c.NotesFile) }

func (c Config) BackupPath() string { return c.resolve(c.BackupFile) }

func (c Config) LogPath() string {
	if c.LogFile == "" {
		return ""
	}
	return c.resolve(c.LogFile)
}

func (c Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	Theater     TheaterConfig
	Reservation ReservationConfig
}

type AppConfig struct {
	Name    string
	Port    string `validate:"required,numeric"`
	Debug   bool
	LogPath string
}

type TheaterConfig struct {
	Name           string `validate:"required"`
	Rows           int    `validate:"min=1"`
	SeatsPerRow    int
	AccessibleRows []int
}

type ReservationConfig struct {
	Contiguous bool
}

// LoadConfig reads path (a .env file, optional) and the process environment.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "theater-reservation")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("THEATER_NAME", "Roxy")
	v.SetDefault("THEATER_ROWS", 15)
	v.SetDefault("THEATER_SEATS_PER_ROW", 10)
	v.SetDefault("THEATER_ACCESSIBLE_ROWS", "6,10")
	v.SetDefault("RESERVATION_CONTIGUOUS", true)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.AutomaticEnv()

	accessibleRows, err := ParseRowList(v.GetString("THEATER_ACCESSIBLE_ROWS"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Theater: TheaterConfig{
			Name:           v.GetString("THEATER_NAME"),
			Rows:           v.GetInt("THEATER_ROWS"),
			SeatsPerRow:    v.GetInt("THEATER_SEATS_PER_ROW"),
			AccessibleRows: accessibleRows,
		},
		Reservation: ReservationConfig{
			Contiguous: v.GetBool("RESERVATION_CONTIGUOUS"),
		},
	}

	if errs := ValidateStruct(config); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", FormatValidationErrors(errs))
	}

	return config, nil
}

// ParseRowList parses a comma-separated list of decimal row numbers such as
// "6, 10". Blank entries are skipped.
func ParseRowList(value string) ([]int, error) {
	var rows []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// cast parses with base 0, so "010" would be octal.
		digits := strings.TrimLeft(part, "0")
		if digits == "" {
			digits = "0"
		}

		n, err := cast.ToIntE(digits)
		if err != nil {
			return nil, fmt.Errorf("invalid row number %q: %w", part, err)
		}
		rows = append(rows, n)
	}
	return rows, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string
	Log         LogConfig
	Departments []DepartmentConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// DepartmentConfig is a department registered at startup.
type DepartmentConfig struct {
	Name     string
	Capacity int
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	departments, err := parseDepartments(getEnv("ER_DEPARTMENTS", ""))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServiceName: getEnv("SERVICE_NAME", "emergency-room"),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Departments: departments,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDepartments reads "name:capacity" pairs separated by commas.
func parseDepartments(s string) ([]DepartmentConfig, error) {
	var result []DepartmentConfig
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, capStr, ok := strings.Cut(item, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid ER_DEPARTMENTS entry %q: want name:capacity", item)
		}
		capacity, err := strconv.Atoi(strings.TrimSpace(capStr))
		if err != nil || capacity < 0 {
			return nil, fmt.Errorf("invalid capacity in ER_DEPARTMENTS entry %q", item)
		}
		result = append(result, DepartmentConfig{Name: name, Capacity: capacity})
	}
	return result, nil
}

package pkgconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envAliases lists the variables read for a key, first match wins. The short
// AMADEUS_* names are what .env.example documents.
var envAliases = map[string][]string{
	"modules.flight-search.amadeus.client_id":     {"MODULES_FLIGHT_SEARCH_AMADEUS_CLIENT_ID", "AMADEUS_CLIENT_ID"},
	"modules.flight-search.amadeus.client_secret": {"MODULES_FLIGHT_SEARCH_AMADEUS_CLIENT_SECRET", "AMADEUS_CLIENT_SECRET"},
}

type Viper struct {
	v *viper.Viper
}

// NewViper reads the yaml file at path and lets environment variables override
// any key, with dots and dashes mapped to underscores (app.tz -> APP_TZ).
// A .env file next to the working directory is loaded first when present.
func NewViper(path string) (*Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, envs := range envAliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return &Viper{v: v}, nil
}

func (c *Viper) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Viper) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Viper) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Viper) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

func (c *Viper) Close() error {
	return nil
}

package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const DefaultInChunkSize = 500

// QueryConfig tunes how repositories shape batch lookups.
type QueryConfig struct {
	// InChunkSize caps the number of values bound to a single IN (...) clause.
	InChunkSize int `mapstructure:"inChunkSize"`
}

func DefaultQueryConfig() QueryConfig {
	return QueryConfig{InChunkSize: DefaultInChunkSize}
}

type QueryConfigHolder struct {
	current atomic.Value // holds QueryConfig
}

// NewQueryConfigHolder reads query.yml from the standard config locations.
func NewQueryConfigHolder() (*QueryConfigHolder, error) {
	return LoadQueryConfig("/etc/quickstep", ".")
}

// LoadQueryConfig reads query.yml from the first matching path and keeps it
// in sync with the file on disk. Missing files fall back to defaults.
func LoadQueryConfig(paths ...string) (*QueryConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("query")
	v.SetConfigType("yml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("QUICKSTEP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultQueryConfig()
	v.SetDefault("query.inChunkSize", defaults.InChunkSize)

	fileLoaded := true
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		fileLoaded = false
	}

	var cfg QueryConfig
	if err := v.UnmarshalKey("query", &cfg); err != nil {
		return nil, err
	}
	if err := validateQueryConfig(cfg); err != nil {
		return nil, err
	}

	holder := &QueryConfigHolder{}
	holder.current.Store(cfg)

	if !fileLoaded {
		return holder, nil
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		var updated QueryConfig
		if err := v.UnmarshalKey("query", &updated); err != nil {
			log.Printf("[query-config] reload failed: %v", err)
			return
		}
		if err := validateQueryConfig(updated); err != nil {
			log.Printf("[query-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[query-config] reloaded from %s", e.Name)
	})
	v.WatchConfig()

	return holder, nil
}

// StaticQueryConfig returns a holder that never reloads.
func StaticQueryConfig(cfg QueryConfig) *QueryConfigHolder {
	holder := &QueryConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *QueryConfigHolder) Get() QueryConfig {
	if h == nil {
		return DefaultQueryConfig()
	}
	return h.current.Load().(QueryConfig)
}

func validateQueryConfig(cfg QueryConfig) error {
	if cfg.InChunkSize <= 0 {
		return errors.New("query.inChunkSize must be positive")
	}
	return nil
}

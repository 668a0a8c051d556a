package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type Identity struct {
	// Address is where the gRPC server listens
	Address string
}

type Http struct {
	Address string
}

type Log struct {
	Level string
	File  string
}

type Participant struct {
	Name   string
	Weight int64
}

type Ledger struct {
	// Participants are seeded in this order. The last one absorbs
	// emission rounding remainders.
	Participants []Participant
}

type Config struct {
	Identity    Identity
	Http        Http
	Environment string
	Log         Log
	Ledger      Ledger
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

func defaultConfig() *Config {
	return &Config{
		Identity: Identity{
			Address: "127.0.0.1:5000",
		},
		Http: Http{
			Address: "127.0.0.1:5555",
		},
		Environment: "development",
		Log: Log{
			Level: "info",
			File:  "",
		},
		Ledger: Ledger{
			Participants: []Participant{
				{Name: "boris", Weight: 5000},
				{Name: "maria", Weight: 1000},
				{Name: "oleg", Weight: 800},
			},
		},
	}
}

var (
	once       sync.Once
	loaded     *Config
	configPath = os.Getenv("HOME") + "/.billing/config.yml"
)

func Path() string {
	return configPath
}

// SetPath changes the file read by Get. It has no effect once Get was called.
func SetPath(path string) {
	if path != "" {
		configPath = path
	}
}

func Get() *Config {
	once.Do(func() {
		conf, err := Load(configPath)
		if err != nil {
			panic(fmt.Sprintf("error in read config, err: %s", err))
		}
		loaded = conf
	})
	return loaded
}

// Load reads the yaml file at path on top of the defaults. Every key can be
// overridden by environment, e.g. BILLING_IDENTITY_ADDRESS.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("billing")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("cannot read config %s: %s", path, err)
	}

	conf := defaultConfig()
	// a configured seed replaces the default one instead of merging into it
	if v.IsSet("ledger.participants") {
		conf.Ledger.Participants = nil
	}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("cannot decode config %s: %s", path, err)
	}
	return conf, nil
}

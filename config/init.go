package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Init writes the config file read by Get. When configPath is given its
// content is copied, otherwise the defaults are written.
func Init(configPath string) error {
	if configPath != "" {
		conf, err := readConfigFile(configPath)
		if err != nil {
			return err
		}
		return writeConfigFile(Path(), conf)
	}

	return writeConfigFile(Path(), defaultConfig())
}

func readConfigFile(filename string) (*Config, error) {
	conf := &Config{}

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(conf); err != nil {
		return nil, fmt.Errorf("failure to decode config: %s", err)
	}
	return conf, nil
}

// writeConfigFile replaces filename through a rename so readers never see
// a partially written file.
func writeConfigFile(filename string, cfg *Config) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0775); err != nil {
		return err
	}

	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	f, err := ioutil.TempFile(dir, ".config-*.yml")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(buf); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(0660); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), filename)
}

func fileExists(filename string) bool {
	_, err := os.Lstat(filename)
	return err == nil
}

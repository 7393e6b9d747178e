package main

import (
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

/* Environment utility */

func loadEnvStr(key string, result *string) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return
	}

	*result = s
}

func loadEnvUint(key string, result *uint) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return
	}

	n, err := strconv.Atoi(s)

	if err != nil {
		return
	}

	*result = uint(n) // will clamp the negative value
}

/* Configuration */

type clientConfig struct {
	SaveFolder string `yaml:"save_folder" json:"save_folder"`
	Keep       uint   `yaml:"keep" json:"keep"`
}

func defaultClientConfig() clientConfig {
	return clientConfig{
		SaveFolder: "", // empty means the working directory
		Keep:       10,
	}
}

func (c *clientConfig) loadFromEnv() {
	loadEnvStr("SVS_CLIENT_SAVE_FOLDER", &c.SaveFolder)
	loadEnvUint("SVS_CLIENT_KEEP", &c.Keep)
}

type config struct {
	ClientCfg clientConfig `yaml:"client" json:"client"`
}

func (c *config) loadFromEnv() {
	c.ClientCfg.loadFromEnv()
}

func defaultConfig() config {
	return config{
		ClientCfg: defaultClientConfig(),
	}
}

func loadConfigFromReader(r io.Reader, c *config) error {
	return yaml.NewDecoder(r).Decode(c)
}

func loadConfigFromFile(fn string, c *config) error {
	_, err := os.Stat(fn)

	if err != nil {
		return err
	}

	f, err := os.Open(fn)

	if err != nil {
		return err
	}

	defer f.Close()

	return loadConfigFromReader(f, c)
}

/* How to load the configuration, the highest priority loaded last
 * First: Initialise to default config
 * Second: Replace with environment variables
 * Third: Replace with configuration file
 */

func loadConfig(fn string) config {
	cfg := defaultConfig()
	cfg.loadFromEnv()

	loadConfigFromFile(fn, &cfg)

	return cfg
}

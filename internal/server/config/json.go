package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/bloglist/internal/flagx"
	"github.com/dmitrijs2005/bloglist/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration file. Pointer
// fields distinguish "absent" from "zero" so that only the keys present in the
// file override the defaults.
type JsonConfig struct {
	EndpointAddrHTTP            *string         `json:"endpoint_addr_http"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	PasswordHashCost            *int            `json:"password_hash_cost"`
	LogLevel                    *string         `json:"log_level"`
}

// parseJson overlays values from the JSON file named by -c / -config onto
// config. Without either flag nothing is loaded. An unreadable file or
// invalid JSON panics, like a bad flag does.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	if c.EndpointAddrHTTP != nil {
		config.EndpointAddrHTTP = *c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.PasswordHashCost != nil {
		config.PasswordHashCost = *c.PasswordHashCost
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
}

package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/tunedeck/internal/flagx"
	"github.com/dmitrijs2005/tunedeck/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "30m" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddr                string         `json:"endpoint_addr"`
	DatabaseDSN                 string         `json:"database_dsn"`
	RedisAddr                   string         `json:"redis_addr"`
	AMQPURL                     string         `json:"amqp_url"`
	ExportQueueName             string         `json:"export_queue_name"`
	SigningKeys                 []string       `json:"signing_keys"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	CacheTTL                    timex.Duration `json:"cache_ttl"`
	PublishTimeout              timex.Duration `json:"publish_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path comes from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
//
// The caller is expected to merge these values with defaults and
// command-line flags as part of the full configuration process.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.RedisAddr = c.RedisAddr
	config.AMQPURL = c.AMQPURL
	config.ExportQueueName = c.ExportQueueName
	config.SigningKeys = c.SigningKeys
	config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	config.CacheTTL = time.Duration(c.CacheTTL.Duration)
	config.PublishTimeout = time.Duration(c.PublishTimeout.Duration)
}

package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/tunedeck/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   PostgreSQL DSN
//	-r string   Redis address
//	-m string   AMQP URL
//	-q string   export queue name
//	-s string   comma-separated JWT HMAC keys, active key first
//	-t int      access token validity, minutes
//	-l int      cache TTL, minutes
//	-p int      publish timeout, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Duration
// flags are accepted as integers and converted to time.Duration values.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-r", "-m", "-q", "-s", "-t", "-l", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.StringVar(&config.AMQPURL, "m", config.AMQPURL, "AMQP URL")
	fs.StringVar(&config.ExportQueueName, "q", config.ExportQueueName, "export queue name")

	signingKeys := fs.String("s", strings.Join(config.SigningKeys, ","), "signing keys, comma-separated, active first")
	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	cacheTTL := fs.Int("l", int(config.CacheTTL.Minutes()), "cache TTL (in minutes)")
	publishTimeout := fs.Int("p", int(config.PublishTimeout.Seconds()), "queue publish timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SigningKeys = strings.Split(*signingKeys, ",")
	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.CacheTTL = time.Duration(*cacheTTL) * time.Minute
	config.PublishTimeout = time.Duration(*publishTimeout) * time.Second
}

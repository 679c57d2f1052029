package config

import (
	"flag"
	"os"
	"time"

	"github.com/guptaRishi00/waflow/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend (e.g., "http://127.0.0.1:8080")
//	-n int      notification poll interval, seconds
//	-t int      per-request timeout, seconds
//
// The function filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "server base URL")

	pollInterval := fs.Int("n", int(config.NotificationPollInterval.Seconds()), "notification poll interval (in seconds)")
	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.NotificationPollInterval = time.Duration(*pollInterval) * time.Second
	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}

package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/guptaRishi00/waflow/internal/flagx"
	"github.com/guptaRishi00/waflow/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30s"
// or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr       string         `json:"server_endpoint_addr"`
	NotificationPollInterval timex.Duration `json:"notification_poll_interval"`
	RequestTimeout           timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file selected
// via the -c or -config flags. If no file is given, nothing is loaded.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.ServerEndpointAddr = c.ServerEndpointAddr
	config.NotificationPollInterval = time.Duration(c.NotificationPollInterval.Duration)
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
}

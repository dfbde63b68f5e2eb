package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONConfig mirrors [Config] with JSON tags and string-friendly durations
// for file-based configuration.
type JSONConfig struct {
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Remote struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		ProbePath      string   `json:"probe_path"`
		Login          string   `json:"login"`
		Password       string   `json:"password"`
	} `json:"remote,omitempty"`

	Monitor struct {
		ProbeInterval Duration `json:"probe_interval"`
		ProbeDebounce Duration `json:"probe_debounce"`
	} `json:"monitor,omitempty"`

	Engine struct {
		BatchSize      int      `json:"batch_size"`
		MaxRetries     int      `json:"max_retries"`
		BaseRetryDelay Duration `json:"base_retry_delay"`
		ItemTimeout    Duration `json:"item_timeout"`
		BatchDelay     Duration `json:"batch_delay"`
		PausePoll      Duration `json:"pause_poll"`
	} `json:"engine,omitempty"`

	Lock struct {
		TTL Duration `json:"ttl"`
	} `json:"lock,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`

	Identity struct {
		TenantID  string `json:"tenant_id"`
		UserID    string `json:"user_id"`
		UserLabel string `json:"user_label"`
	} `json:"identity,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Remote: Remote{
			BaseURL:        jsonCfg.Remote.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
			ProbePath:      jsonCfg.Remote.ProbePath,
			Login:          jsonCfg.Remote.Login,
			Password:       jsonCfg.Remote.Password,
		},
		Monitor: Monitor{
			ProbeInterval: time.Duration(jsonCfg.Monitor.ProbeInterval),
			ProbeDebounce: time.Duration(jsonCfg.Monitor.ProbeDebounce),
		},
		Engine: Engine{
			BatchSize:      jsonCfg.Engine.BatchSize,
			MaxRetries:     jsonCfg.Engine.MaxRetries,
			BaseRetryDelay: time.Duration(jsonCfg.Engine.BaseRetryDelay),
			ItemTimeout:    time.Duration(jsonCfg.Engine.ItemTimeout),
			BatchDelay:     time.Duration(jsonCfg.Engine.BatchDelay),
			PausePoll:      time.Duration(jsonCfg.Engine.PausePoll),
		},
		Lock: Lock{
			TTL: time.Duration(jsonCfg.Lock.TTL),
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
		Identity: Identity{
			TenantID:  jsonCfg.Identity.TenantID,
			UserID:    jsonCfg.Identity.UserID,
			UserLabel: jsonCfg.Identity.UserLabel,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

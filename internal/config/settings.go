package config

var (
	ServiceVersion string
	CommitSHA      string
)

const (
	Development = 1 << iota
	Sandbox
	Staging
	Production
)

const (
	StorageBackendFile = "file"
	StorageBackendBolt = "bolt"
)

type (
	ServiceConfig struct {
		App       App       `json:"app"`
		Storage   Storage   `json:"storage"`
		Logging   Logging   `json:"logging"`
		Telemetry Telemetry `json:"telemetry"`
	}

	App struct {
		ServiceName    string      `envconfig:"APP_SERVICE_NAME" default:"device-registry" json:"service_name"`
		ServiceVersion string      `json:"service_version"`
		CommitSHA      string      `json:"commit_sha,omitempty"`
		Env            Environment `json:"environment"`
	}

	Environment struct {
		Name string `envconfig:"APP_ENVIRONMENT" default:"development" json:"env"`
	}

	Storage struct {
		// Backend selects the capability store implementation: "file" for
		// one JSON file per device, "bolt" for a single embedded database.
		Backend  string `envconfig:"STORAGE_BACKEND" default:"file" json:"backend"`
		DataPath string `envconfig:"STORAGE_DATA_PATH" default:"/var/lib/device-registry" json:"data_path"`
		BoltPath string `envconfig:"STORAGE_BOLT_PATH" default:"" json:"bolt_path,omitempty"`
	}

	Logging struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info" json:"level"`
		Format string `envconfig:"LOG_FORMAT" default:"json" json:"format"`
	}

	Telemetry struct {
		Enabled      bool    `envconfig:"OTEL_ENABLED" default:"false" json:"enabled"`
		ExporterType string  `envconfig:"OTEL_EXPORTER" default:"stdout" json:"exporter_type"`
		OTLPEndpoint string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"" json:"otlp_endpoint"`
		ServiceName  string  `envconfig:"OTEL_SERVICE_NAME" default:"device-registry" json:"service_name"`
		Metrics      Metrics `json:"metrics"`
		Traces       Traces  `json:"traces"`
	}

	Metrics struct {
		Enabled bool `envconfig:"METRICS_ENABLED" default:"false" json:"enabled"`
	}

	Traces struct {
		SamplerRatio float64 `envconfig:"TRACES_SAMPLER_RATIO" default:"1.0" json:"sampler_ratio"`
	}
)

func (c *ServiceConfig) GetEnvironment() int {
	switch c.App.Env.Name {
	case "production", "prod":
		return Production
	case "staging", "stg":
		return Staging
	case "sandbox", "sbx":
		return Sandbox
	default:
		return Development
	}
}

func (c *ServiceConfig) IsProduction() bool {
	return c.GetEnvironment() == Production
}

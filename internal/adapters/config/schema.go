package config

// Ladefile represents the structure of the lade.yaml configuration file.
type Ladefile struct {
	Version string    `yaml:"version"`
	Project string    `yaml:"project"`
	Output  string    `yaml:"output"`
	Staging string    `yaml:"staging"`
	Catalog string    `yaml:"catalog"`
	Remote  RemoteDTO `yaml:"remote"`
}

// RemoteDTO represents the remote store section of the configuration.
type RemoteDTO struct {
	URL         string `yaml:"url"`
	Concurrency int    `yaml:"concurrency"`
	MaxRetries  int    `yaml:"maxRetries"`
	RetryDelay  string `yaml:"retryDelay"`
}

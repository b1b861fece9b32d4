package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		OpsManager: OpsManagerConfig{
			URL:      "http://opsmanager.example.com:8080",
			Username: "joe@example.com",
			APIKey:   "valid-api-key",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidateVariant(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		wantErr bool
	}{
		{
			name:    "Valid variant - opsmanager",
			variant: "opsmanager",
			wantErr: false,
		},
		{
			name:    "Valid variant - cloudmanager",
			variant: "cloudmanager",
			wantErr: false,
		},
		{
			name:    "Valid variant - dashed form",
			variant: "cloud-manager",
			wantErr: false,
		},
		{
			name:    "Empty variant (uses default)",
			variant: "",
			wantErr: false,
		},
		{
			name:    "Invalid variant",
			variant: "atlas",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.OpsManager.Variant = tt.variant

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && tt.wantErr {
				want := "invalid opsmanager.variant: " + tt.variant + " (must be 'opsmanager' or 'cloudmanager')"
				if err.Error() != want {
					t.Errorf("validate() error message = %v, want %v", err.Error(), want)
				}
			}
		})
	}
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "missing url",
			mutate: func(c *Config) { c.OpsManager.URL = "" },
		},
		{
			name:   "missing username",
			mutate: func(c *Config) { c.OpsManager.Username = "" },
		},
		{
			name:   "missing api key",
			mutate: func(c *Config) { c.OpsManager.APIKey = "" },
		},
		{
			name:   "placeholder api key",
			mutate: func(c *Config) { c.OpsManager.APIKey = "your-api-key-here" },
		},
		{
			name:   "bad logging level",
			mutate: func(c *Config) { c.Logging.Level = "verbose" },
		},
		{
			name:   "bad logging format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			if err := validate(cfg); err == nil {
				t.Errorf("validate() expected error for %s, got nil", tt.name)
			}
		})
	}

	if err := validate(validConfig()); err != nil {
		t.Errorf("validate() unexpected error for valid config: %v", err)
	}
}

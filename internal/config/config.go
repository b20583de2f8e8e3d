package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Root struct {
	Env   string `yaml:"env"`
	Local Config `yaml:"local"`
	Dev   Config `yaml:"dev"`
	Prod  Config `yaml:"prod"`
}

type Config struct {
	Env string `yaml:"-"`

	Log struct {
		Level     string `yaml:"level"`
		Format    string `yaml:"format"`
		AddSource bool   `yaml:"add_source"`
	} `yaml:"log"`

	Cart struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"` // empty = library default
	} `yaml:"cart"`

	CLI struct {
		Keyword    string `yaml:"keyword"`
		Domain     string `yaml:"domain"`
		PerPage    int    `yaml:"per_page"`
		OutputFile string `yaml:"output_file"`
	} `yaml:"cli"`

	HTTP struct {
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		ProxyURL       string `yaml:"proxy_url"`
	} `yaml:"http"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var root Root
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, err
	}

	env := strings.TrimSpace(strings.ToLower(root.Env))
	if env == "" {
		env = "local"
	}

	var p Config
	switch env {
	case "local":
		p = root.Local
	case "dev":
		p = root.Dev
	case "prod":
		p = root.Prod
	default:
		return nil, fmt.Errorf("unknown env=%q (expected local|dev|prod)", env)
	}
	p.Env = env

	applyDefaults(&p)
	return &p, nil
}

func applyDefaults(p *Config) {
	if p.CLI.PerPage <= 0 {
		p.CLI.PerPage = 25
	}
	if p.CLI.PerPage > 100 {
		p.CLI.PerPage = 100
	}
	if p.CLI.OutputFile == "" {
		p.CLI.OutputFile = "./out/result.json"
	}

	if p.HTTP.TimeoutSeconds <= 0 {
		p.HTTP.TimeoutSeconds = 30
	}

	if p.Log.Level == "" {
		if p.Env == "prod" {
			p.Log.Level = "info"
		} else {
			p.Log.Level = "debug"
		}
	}
	if p.Log.Format == "" {
		if p.Env == "prod" {
			p.Log.Format = "json"
		} else {
			p.Log.Format = "text"
		}
	}
}

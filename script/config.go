package script

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Step struct {
	Op      string      `yaml:"op" json:"op"`
	Operand interface{} `yaml:"operand,omitempty" json:"operand,omitempty"`
}

type Config struct {
	HistoryCapacity int    `yaml:"historyCapacity" json:"historyCapacity"`
	StopOnError     bool   `yaml:"stopOnError" json:"stopOnError"`
	Steps           []Step `yaml:"steps" json:"steps"`
}

func LoadConfig(file string) (*Config, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	return ParseConfig(d)
}

func ParseConfig(d []byte) (cfg *Config, err error) {
	cfg = &Config{}

	err = yaml.Unmarshal(d, cfg)
	if err != nil {
		cfg = nil
	}

	return
}

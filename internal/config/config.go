package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "wqclean/internal/errors"
	"wqclean/pkg/contracts/domain"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Cleaning CleaningConfig `yaml:"cleaning" envconfig:"CLEANING"`
	Schema   SchemaConfig   `yaml:"schema" envconfig:"SCHEMA"`
}

// LoggingConfig contains logging-related configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"notblank"`
}

// CleaningConfig controls the behavior of the cleaning pipeline
type CleaningConfig struct {
	MissingCommentTerms []string `yaml:"missing_comment_terms" envconfig:"MISSING_COMMENT_TERMS" validate:"dive,notblank"`
	// RemoveExactDuplicates is a pointer so an explicit false in the
	// file or environment survives the default of true.
	RemoveExactDuplicates *bool `yaml:"remove_exact_duplicates" envconfig:"REMOVE_EXACT_DUPLICATES"`
	SortWorkers           int   `yaml:"sort_workers" envconfig:"SORT_WORKERS" validate:"min=1,max=32"`
}

// RemoveDuplicates reports whether exact-duplicate removal is enabled,
// defaulting to true when unset.
func (c CleaningConfig) RemoveDuplicates() bool {
	if c.RemoveExactDuplicates == nil {
		return true
	}
	return *c.RemoveExactDuplicates
}

// SchemaConfig names the dataset columns the pipeline reads and writes
type SchemaConfig struct {
	CharacteristicName string `yaml:"characteristic_name" envconfig:"CHARACTERISTIC_NAME" validate:"notblank"`
	ResultValue        string `yaml:"result_value" envconfig:"RESULT_VALUE" validate:"notblank"`
	DetectionLimit     string `yaml:"detection_limit" envconfig:"DETECTION_LIMIT" validate:"notblank"`
	DetectionCondition string `yaml:"detection_condition" envconfig:"DETECTION_CONDITION" validate:"notblank"`
	Comment            string `yaml:"comment" envconfig:"COMMENT" validate:"notblank"`
	Parameter          string `yaml:"parameter" envconfig:"PARAMETER" validate:"notblank"`
	MissingResult      string `yaml:"missing_result" envconfig:"MISSING_RESULT" validate:"notblank"`
	GroupSize          string `yaml:"group_size" envconfig:"GROUP_SIZE" validate:"notblank"`
	IsDuplicate        string `yaml:"is_duplicate" envconfig:"IS_DUPLICATE" validate:"notblank"`
}

// ToSchema converts the column configuration to a domain schema.
func (s SchemaConfig) ToSchema() domain.Schema {
	return domain.Schema{
		CharacteristicName: s.CharacteristicName,
		ResultValue:        s.ResultValue,
		DetectionLimit:     s.DetectionLimit,
		DetectionCondition: s.DetectionCondition,
		Comment:            s.Comment,
		Parameter:          s.Parameter,
		MissingResult:      s.MissingResult,
		GroupSize:          s.GroupSize,
		IsDuplicate:        s.IsDuplicate,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// notblank rejects values that are empty after trimming whitespace
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Load loads configuration from environment variables and an optional
// YAML file found in the standard locations.
func Load() (*Config, error) {
	return LoadFrom(findConfigFile())
}

// LoadFrom loads configuration using the given YAML file. An empty or
// nonexistent path means environment variables and defaults only.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("WQ", &cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			fileConfig, err := loadFromFile(path)
			if err != nil {
				return nil, apperrors.NewConfigError(fmt.Sprintf("failed to load config file %s", path), err)
			}
			cfg = mergeConfigs(*fileConfig, cfg)
		}
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	// Logging config
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Format == "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if envConfig.Logging.Output == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}

	// Cleaning config
	if len(envConfig.Cleaning.MissingCommentTerms) == 0 {
		envConfig.Cleaning.MissingCommentTerms = fileConfig.Cleaning.MissingCommentTerms
	}
	if envConfig.Cleaning.RemoveExactDuplicates == nil {
		envConfig.Cleaning.RemoveExactDuplicates = fileConfig.Cleaning.RemoveExactDuplicates
	}
	if envConfig.Cleaning.SortWorkers == 0 {
		envConfig.Cleaning.SortWorkers = fileConfig.Cleaning.SortWorkers
	}

	// Schema config
	if envConfig.Schema.CharacteristicName == "" {
		envConfig.Schema.CharacteristicName = fileConfig.Schema.CharacteristicName
	}
	if envConfig.Schema.ResultValue == "" {
		envConfig.Schema.ResultValue = fileConfig.Schema.ResultValue
	}
	if envConfig.Schema.DetectionLimit == "" {
		envConfig.Schema.DetectionLimit = fileConfig.Schema.DetectionLimit
	}
	if envConfig.Schema.DetectionCondition == "" {
		envConfig.Schema.DetectionCondition = fileConfig.Schema.DetectionCondition
	}
	if envConfig.Schema.Comment == "" {
		envConfig.Schema.Comment = fileConfig.Schema.Comment
	}
	if envConfig.Schema.Parameter == "" {
		envConfig.Schema.Parameter = fileConfig.Schema.Parameter
	}
	if envConfig.Schema.MissingResult == "" {
		envConfig.Schema.MissingResult = fileConfig.Schema.MissingResult
	}
	if envConfig.Schema.GroupSize == "" {
		envConfig.Schema.GroupSize = fileConfig.Schema.GroupSize
	}
	if envConfig.Schema.IsDuplicate == "" {
		envConfig.Schema.IsDuplicate = fileConfig.Schema.IsDuplicate
	}

	return envConfig
}

// applyDefaults fills any field still at its zero value
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "console"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/wqclean.log"
	}

	if len(c.Cleaning.MissingCommentTerms) == 0 {
		c.Cleaning.MissingCommentTerms = domain.DefaultMissingCommentTerms()
	}
	if c.Cleaning.RemoveExactDuplicates == nil {
		enabled := true
		c.Cleaning.RemoveExactDuplicates = &enabled
	}
	if c.Cleaning.SortWorkers == 0 {
		c.Cleaning.SortWorkers = 1
	}

	def := domain.DefaultSchema()
	if c.Schema.CharacteristicName == "" {
		c.Schema.CharacteristicName = def.CharacteristicName
	}
	if c.Schema.ResultValue == "" {
		c.Schema.ResultValue = def.ResultValue
	}
	if c.Schema.DetectionLimit == "" {
		c.Schema.DetectionLimit = def.DetectionLimit
	}
	if c.Schema.DetectionCondition == "" {
		c.Schema.DetectionCondition = def.DetectionCondition
	}
	if c.Schema.Comment == "" {
		c.Schema.Comment = def.Comment
	}
	if c.Schema.Parameter == "" {
		c.Schema.Parameter = def.Parameter
	}
	if c.Schema.MissingResult == "" {
		c.Schema.MissingResult = def.MissingResult
	}
	if c.Schema.GroupSize == "" {
		c.Schema.GroupSize = def.GroupSize
	}
	if c.Schema.IsDuplicate == "" {
		c.Schema.IsDuplicate = def.IsDuplicate
	}
}

// validate validates the configuration
func (c *Config) validate() error {
	if err := validate.Struct(c); err != nil {
		return apperrors.NewConfigError("config validation failed", err)
	}

	// Column names must also be distinct across roles.
	if err := c.Schema.ToSchema().Validate(); err != nil {
		return apperrors.NewSchemaError("invalid schema configuration", err)
	}

	return nil
}

// findConfigFile returns the path to the config file
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
		"../configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns the default configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "models[0].name")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidProviders returns the list of supported model provider tags
func ValidProviders() []string {
	return []string{"openai-chatgpt", "anthropic-claude"}
}

// Validate checks the Config for invalid values and returns all validation
// errors found. A non-empty result is fatal: no discussion runs and no
// session folder is created.
func (c *Config) Validate() ValidationErrors {
	var errors ValidationErrors

	errors = append(errors, c.validateDiscussion()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateModels()...)

	return errors
}

func (c *Config) validateDiscussion() ValidationErrors {
	var errors ValidationErrors

	if c.Discussion.ResponsesFolder == "" {
		errors = append(errors, ValidationError{
			Field:   "discussion.responses_folder_path",
			Value:   c.Discussion.ResponsesFolder,
			Message: "must not be empty",
		})
	}

	if c.Discussion.ConvergenceThreshold < 0 || c.Discussion.ConvergenceThreshold > 100 {
		errors = append(errors, ValidationError{
			Field:   "discussion.convergence_threshold",
			Value:   c.Discussion.ConvergenceThreshold,
			Message: "must be between 0 and 100",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateModels() ValidationErrors {
	var errors ValidationErrors

	if len(c.Models) == 0 {
		errors = append(errors, ValidationError{
			Field:   "models",
			Value:   len(c.Models),
			Message: "at least one model must be configured",
		})
		return errors
	}

	seen := make(map[string]bool, len(c.Models))
	for i, m := range c.Models {
		field := fmt.Sprintf("models[%d]", i)

		if m.Name == "" {
			errors = append(errors, ValidationError{
				Field:   field + ".name",
				Value:   m.Name,
				Message: "must not be empty",
			})
		} else if seen[m.Name] {
			errors = append(errors, ValidationError{
				Field:   field + ".name",
				Value:   m.Name,
				Message: "duplicate model name",
			})
		}
		seen[m.Name] = true

		if !slices.Contains(ValidProviders(), m.Provider) {
			errors = append(errors, ValidationError{
				Field:   field + ".model_provider",
				Value:   m.Provider,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidProviders(), ", ")),
			})
		}

		if m.Version == "" {
			errors = append(errors, ValidationError{
				Field:   field + ".version",
				Value:   m.Version,
				Message: "must not be empty",
			})
		}

		if m.APIKey == "" {
			errors = append(errors, ValidationError{
				Field:   field + ".api_key",
				Value:   "",
				Message: "must not be empty",
			})
		}
	}

	return errors
}

package config

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/bnema/floaty/internal/domain/entity"
)

var (
	validGravities = []string{
		string(entity.GravityTopStart),
		string(entity.GravityTopEnd),
		string(entity.GravityBottomStart),
		string(entity.GravityBottomEnd),
		string(entity.GravityCenter),
	}
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error", "disabled"}
	validLogFormats = []string{"console", "json"}
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateOverlay(config)...)
	validationErrors = append(validationErrors, validateAnimation(config)...)
	validationErrors = append(validationErrors, validateClick(config)...)
	validationErrors = append(validationErrors, validateHosts(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateOverlay(config *Config) []string {
	var validationErrors []string
	if config.Overlay.LayoutID < 0 {
		validationErrors = append(validationErrors, "overlay.layout_id must be non-negative")
	}
	if !slices.Contains(validGravities, config.Overlay.Gravity) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"overlay.gravity must be one of %s (got %q)", strings.Join(validGravities, ", "), config.Overlay.Gravity))
	}
	if config.Overlay.Width < 0 {
		validationErrors = append(validationErrors, "overlay.width must be non-negative")
	}
	if config.Overlay.Height < 0 {
		validationErrors = append(validationErrors, "overlay.height must be non-negative")
	}
	return validationErrors
}

func validateAnimation(config *Config) []string {
	var validationErrors []string
	switch config.Animation.Kind {
	case AnimationFade, AnimationNone:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"animation.kind must be %q or %q (got %q)", AnimationFade, AnimationNone, config.Animation.Kind))
	}
	if config.Animation.DurationMs < 0 || config.Animation.DurationMs > maxAnimationDuration {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"animation.duration_ms must be between 0 and %d", maxAnimationDuration))
	}
	return validationErrors
}

func validateClick(config *Config) []string {
	if config.Click.ThresholdMs < 0 || config.Click.ThresholdMs > maxClickThreshold {
		return []string{fmt.Sprintf("click.threshold_ms must be between 0 and %d", maxClickThreshold)}
	}
	return nil
}

func validateHosts(config *Config) []string {
	var validationErrors []string
	check := func(key string, patterns []string) {
		for _, p := range patterns {
			if _, err := path.Match(p, ""); err != nil {
				validationErrors = append(validationErrors, fmt.Sprintf("%s contains invalid pattern %q", key, p))
			}
		}
	}
	check("hosts.allow", config.Hosts.Allow)
	check("hosts.deny", config.Hosts.Deny)
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !slices.Contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of %s (got %q)", strings.Join(validLogLevels, ", "), config.Logging.Level))
	}
	if !slices.Contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of %s (got %q)", strings.Join(validLogFormats, ", "), config.Logging.Format))
	}
	return validationErrors
}

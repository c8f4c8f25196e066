package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/bnema/floaty/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionOverlay   = "Overlay"
	SectionAnimation = "Animation"
	SectionClick     = "Click"
	SectionHosts     = "Hosts"
	SectionLogging   = "Logging"
)

// SchemaProvider lists every configuration key with its metadata.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 16)
	keys = append(keys, p.getOverlayKeys(defaults)...)
	keys = append(keys, p.getAnimationKeys(defaults)...)
	keys = append(keys, entity.ConfigKeyInfo{
		Key:         "click.threshold_ms",
		Type:        "int",
		Default:     strconv.Itoa(defaults.Click.ThresholdMs),
		Description: "Longest press still reported as a tap",
		Range:       fmt.Sprintf("0-%d", maxClickThreshold),
		Section:     SectionClick,
	})
	keys = append(keys, p.getHostsKeys()...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getOverlayKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "overlay.layout_id",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Overlay.LayoutID),
			Description: "Layout the floating view is built from; 0 leaves it unset",
			Section:     SectionOverlay,
		},
		{
			Key:         "overlay.gravity",
			Type:        "string",
			Default:     defaults.Overlay.Gravity,
			Description: "Corner or edge the view is anchored to",
			Values:      validGravities,
			Section:     SectionOverlay,
		},
		{
			Key:         "overlay.width",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Overlay.Width),
			Description: "View width in pixels",
			Section:     SectionOverlay,
		},
		{
			Key:         "overlay.height",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Overlay.Height),
			Description: "View height in pixels",
			Section:     SectionOverlay,
		},
		{
			Key:         "overlay.offset_x",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Overlay.OffsetX),
			Description: "Horizontal offset from the anchor",
			Section:     SectionOverlay,
		},
		{
			Key:         "overlay.offset_y",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Overlay.OffsetY),
			Description: "Vertical offset from the anchor",
			Section:     SectionOverlay,
		},
	}
}

func (*SchemaProvider) getAnimationKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "animation.enabled",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Animation.Enabled),
			Description: "Play enter/exit animations",
			Section:     SectionAnimation,
		},
		{
			Key:         "animation.kind",
			Type:        "string",
			Default:     string(defaults.Animation.Kind),
			Description: "Animator used for enter/exit",
			Values:      []string{string(AnimationFade), string(AnimationNone)},
			Section:     SectionAnimation,
		},
		{
			Key:         "animation.duration_ms",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Animation.DurationMs),
			Description: "Exit animation length; teardown waits for it",
			Range:       fmt.Sprintf("0-%d", maxAnimationDuration),
			Section:     SectionAnimation,
		},
	}
}

func (*SchemaProvider) getHostsKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "hosts.allow",
			Type:        "[]string",
			Default:     "[]",
			Description: "Host id patterns the overlay follows; empty allows all",
			Section:     SectionHosts,
		},
		{
			Key:         "hosts.deny",
			Type:        "[]string",
			Default:     "[]",
			Description: "Host id patterns the overlay never follows; wins over allow",
			Section:     SectionHosts,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      validLogLevels,
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      validLogFormats,
			Section:     SectionLogging,
		},
	}
}

// Sections returns section names in display order.
func (p *SchemaProvider) Sections() []string {
	return []string{SectionOverlay, SectionAnimation, SectionClick, SectionHosts, SectionLogging}
}

// KeysBySection groups GetSchema output by section.
func (p *SchemaProvider) KeysBySection() map[string][]entity.ConfigKeyInfo {
	out := make(map[string][]entity.ConfigKeyInfo)
	for _, k := range p.GetSchema() {
		out[k.Section] = append(out[k.Section], k)
	}
	return out
}

// JSONSchema reflects Config into a JSON schema document.
func (p *SchemaProvider) JSONSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/floaty/config.schema.json"
	schema.Title = "Floaty Configuration"
	schema.Description = "Configuration schema for floaty, a floating overlay lifecycle controller"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// Lookup returns the metadata for a dotted key.
func (p *SchemaProvider) Lookup(key string) (entity.ConfigKeyInfo, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, k := range p.GetSchema() {
		if k.Key == key {
			return k, true
		}
	}
	return entity.ConfigKeyInfo{}, false
}

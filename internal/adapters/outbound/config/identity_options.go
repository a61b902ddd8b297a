package config

import (
	"context"
	"fmt"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/teamgo/teamgo/internal/domain"
	"go.yaml.in/yaml/v3"
)

// LoadIdentityOptions reads identity policies from a YAML file. Keys absent
// from the file keep their default value.
func LoadIdentityOptions(path string) (domain.IdentityOptions, error) {
	options := domain.DefaultIdentityOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.IdentityOptions{}, fmt.Errorf("failed to read identity options: %w", err)
	}
	if err := yaml.Unmarshal(data, &options); err != nil {
		return domain.IdentityOptions{}, fmt.Errorf("failed to parse identity options: %w", err)
	}
	if err := options.Validate(); err != nil {
		return domain.IdentityOptions{}, err
	}
	return options, nil
}

// InitIdentityOptions registers the identity policies, read from
// IDENTITY_OPTIONS_FILE when it is set.
type InitIdentityOptions struct {
	Path string `config:"IDENTITY_OPTIONS_FILE" default:"-"`
}

// Initialize registers domain.IdentityOptions in the dependency container.
func (i InitIdentityOptions) Initialize(ctx context.Context) (context.Context, error) {
	options := domain.DefaultIdentityOptions()
	if i.Path != unset {
		var err error
		if options, err = LoadIdentityOptions(i.Path); err != nil {
			return ctx, err
		}
	}
	depend.Register(options)
	return ctx, nil
}

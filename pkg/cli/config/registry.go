package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
	"github.com/m-mizutani/vcshook/pkg/infra/registry"
	"github.com/urfave/cli/v3"
)

type Registry struct {
	path string
}

func (x *Registry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "registry",
			Usage:       "Path to YAML file of VCS roots and projects",
			Category:    "Registry",
			Aliases:     []string{"r"},
			Sources:     cli.EnvVars("VCSHOOK_REGISTRY"),
			Destination: &x.path,
		},
	}
}

func (x *Registry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
	)
}

func (x *Registry) New() (*registry.Registry, error) {
	if x.path == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "registry file is required")
	}
	return registry.Load(x.path)
}

package inspect

import (
	"go.uber.org/fx"

	"github.com/wiretap-io/wiretap/internal/server"
	"github.com/wiretap-io/wiretap/util/logging"
)

// NewConfiguredValidator compiles the configured schema, or yields a
// nil validator when none is configured.
func NewConfiguredValidator(config Config) (*Validator, error) {
	if config.SchemaFile == "" {
		return nil, nil
	}

	return NewValidator(config.SchemaFile)
}

// NewRootRoute mounts the handler on the root pattern, so every path
// reaches the inspector.
func NewRootRoute(handler *Handler) server.HttpHandlerResult {
	return server.AsHttpHandler("/", handler)
}

func Module(config Config) fx.Option {
	return fx.Module("inspect",
		// rename logger for module
		logging.DecorateLogger("inspect"),
		// provide config
		fx.Supply(config),
		// provide dump sink
		fx.Provide(NewStdoutDumper),
		// provide optional schema validator
		fx.Provide(NewConfiguredValidator),
		// provide handler
		fx.Provide(NewHandler),
		// mount handler
		fx.Provide(NewRootRoute),
	)
}

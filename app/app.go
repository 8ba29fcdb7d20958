package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/wiretap-io/wiretap/config"
	"github.com/wiretap-io/wiretap/internal/inspect"
	"github.com/wiretap-io/wiretap/internal/shell"
	"github.com/wiretap-io/wiretap/util/conf"
	"github.com/wiretap-io/wiretap/util/logging"
)

// New builds the application shell with everything shared by all run
// modes: the global config and the request inspector.
func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(cfg),
		// provide the inspector and its root route
		inspect.Module(cfg.Inspect),
	)

	return shell.New(log, sharedModule), nil
}

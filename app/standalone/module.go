package standalone

import (
	"go.uber.org/fx"

	"github.com/wiretap-io/wiretap/internal/server"
	"github.com/wiretap-io/wiretap/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide server
		server.Module(config.HttpConfig),
	)
}

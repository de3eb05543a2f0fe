package recovery

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/config"
)

// Module exposes the recovery client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.RecoveryAPIAddress, p.Logger)
}

package router

import "go.uber.org/fx"

// Module provides the HTTP router.
var Module = fx.Provide(Setup)

package auth

import (
	"go.uber.org/fx"

	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/config"
)

// Module wires the password hasher and session token strategy.
var Module = fx.Provide(
	func(cfg *config.Config) PasswordHasher { return NewBcryptHasher(cfg.BcryptCost) },
	func(cfg *config.Config) Strategy {
		return NewHMACStrategy(cfg.SessionSecret, Options{TTL: cfg.SessionTTL})
	},
)

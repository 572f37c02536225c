package types

import (
	"github.com/fieldtally/observer-api/internal/database"
	"github.com/fieldtally/observer-api/internal/engine"
	"github.com/fieldtally/observer-api/internal/services/sessions"
	"github.com/fieldtally/observer-api/pkg/config"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	Manager        *engine.Manager
	SessionService sessions.Service
	Config         *config.Config
}

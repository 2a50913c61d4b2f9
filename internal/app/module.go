package app

import (
	"github.com/rs/zerolog/log"

	fs "github.com/sappiah085/flight/internal/flightsearch"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.flight-search.enabled") {
		if err := fs.New(fs.Dependency{
			Config: a.config,
			Router: a.router,
		}); err != nil {
			log.Fatal().Err(err).Msg("failed to init module flight-search")
		}
	}
}

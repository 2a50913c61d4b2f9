package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func (a *App) Start() <-chan struct{} {
	terminateChan := make(chan struct{})

	go func() {
		log.Info().Str("address", a.httpServer.Addr).Msg("http server listening")

		if err := a.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to listen and serve http server")
		}
	}()

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

		<-sigint

		terminateChan <- struct{}{}
		close(terminateChan)

		log.Info().Msg("application gracefully shutdown")
	}()

	return terminateChan
}

func (a *App) Stop(ctx context.Context) {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Str("name", "HTTP Server").Msg("failed to close resources")
	}

	for name, closer := range a.closerFn {
		if err := closer(ctx); err != nil {
			log.Error().Err(err).Str("name", name).Msg("failed to close resources")
		}
	}
}

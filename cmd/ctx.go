package cmd

import (
	"context"

	"github.com/caner-cetin/amws-order/internal"
	"github.com/caner-cetin/amws-order/internal/settings"
	"github.com/caner-cetin/amws-order/internal/store"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type ResourceType int

const (
	// ResourceStore opens the settings store configured under store.* in the config file.
	ResourceStore ResourceType = iota
)

type ResourceConfig struct {
	Resources []ResourceType
}

type AppCtx struct {
	Store store.Store
	Form  *settings.Form
}

func WrapCommandWithResources(fn func(cmd *cobra.Command, args []string), resourceConfig ResourceConfig) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		app := AppCtx{}
		var closers []func() error
		defer func() {
			for _, closeFn := range closers {
				if err := closeFn(); err != nil {
					log.Error().Err(err).Msg("failed to release resource")
				}
			}
		}()
		for _, resource := range resourceConfig.Resources {
			switch resource {
			case ResourceStore:
				st, closeFn, err := store.Open(cmd.Context(), cfg.Store.Driver, cfg.Store.Path, cfg.Store.Collection)
				if err != nil {
					log.Fatal().Err(err).
						Str("driver", cfg.Store.Driver).
						Str("path", cfg.Store.Path).
						Msg("failed to open settings store")
				}
				closers = append(closers, closeFn)
				log.Debug().Str("driver", cfg.Store.Driver).Str("path", cfg.Store.Path).Msg("opened settings store")
				app.Store = st
				app.Form = settings.NewForm(st)
			}
		}
		cmd.SetContext(context.WithValue(cmd.Context(), internal.APP_CONTEXT, app))
		fn(cmd, args)
	}
}

func GetApp(cmd *cobra.Command) AppCtx {
	return cmd.Context().Value(internal.APP_CONTEXT).(AppCtx)
}

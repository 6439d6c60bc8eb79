package decorator

import (
	"context"

	"github.com/architeacher/device-registry/pkg/logger"
)

type (
	commandLoggingDecorator[C Command, R any] struct {
		base   CommandHandler[C, R]
		logger logger.Logger
	}

	queryLoggingDecorator[Q Query, R Result] struct {
		base   QueryHandler[Q, R]
		logger logger.Logger
	}
)

func (d commandLoggingDecorator[C, R]) Handle(ctx context.Context, cmd C) (result R, err error) {
	log := d.logger.WithContext(ctx)
	actionName := generateActionName(cmd)

	log.Debug().Str("command", actionName).Msg("executing command")

	defer func() {
		if err == nil {
			log.Debug().Str("command", actionName).Msg("command executed successfully")

			return
		}

		log.Error().Str("command", actionName).Err(err).Msg("failed to execute command")
	}()

	return d.base.Handle(ctx, cmd)
}

func (d queryLoggingDecorator[Q, R]) Execute(ctx context.Context, query Q) (result R, err error) {
	log := d.logger.WithContext(ctx)
	actionName := generateActionName(query)

	log.Debug().Str("query", actionName).Msg("executing query")

	defer func() {
		if err == nil {
			log.Debug().Str("query", actionName).Msg("query executed successfully")

			return
		}

		log.Error().Str("query", actionName).Err(err).Msg("failed to execute query")
	}()

	return d.base.Execute(ctx, query)
}

package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/compta-server/internal/operator/actions"
	"github.com/carson-networks/compta-server/internal/storage"
)

// writeOpener opens a unit of work; *storage.Storage satisfies it.
type writeOpener interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage writeOpener
	queue   chan ActionItem
	logger  *logrus.Logger
}

func NewOperator(s writeOpener, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

func (o *Operator) processItem(item ActionItem) error {
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		o.logger.WithError(err).Error("Operator.processItem.open writer failed")
		return err
	}

	if err = item.action.Perform(item.ctx, writer); err != nil {
		if rbErr := writer.Rollback(item.ctx); rbErr != nil {
			o.logger.WithError(rbErr).Error("Operator.processItem.rollback failed")
		}
		return err
	}

	if err = writer.Commit(item.ctx); err != nil {
		o.logger.WithError(err).Error("Operator.processItem.commit failed")
		return err
	}
	return nil
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}

package parcel_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"parcel-service/internal/entities"
	"parcel-service/internal/pkg/errs"
	"parcel-service/pkg/logger"
	"parcel-service/pkg/retrier"
	"parcel-service/pkg/retrier/backoff_adapter"
)

type Handler struct {
	parcelService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
	retrier                  retrier.Retrier
}

// New собирает обработчик. Событие, упавшее на недоступном хранилище, повторяется
// по расписанию retryConfig, пока жива сессия: MaxElapsedTime и ShouldRetry игнорируются.
func New(log handlerLogger, parcelService Service, timeout time.Duration, retryConfig retrier.Config) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "parcel.status.changed"),
	)

	retryConfig.MaxElapsedTime = 0
	retryConfig.ShouldRetry = isTransient
	retryConfig.OnRetry = func(err error, attempt uint64, next time.Duration) {
		EventsProcessedTotal.WithLabelValues(resultRetry).Inc()
		handlerLog.With(
			logger.NewField("error", err),
			logger.NewField("attempt", attempt),
			logger.NewField("next_attempt_in", next),
		).Warn("parcel.status.changed handler retrying event")
	}

	return &Handler{
		parcelService:            parcelService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
		retrier:                  backoff_adapter.New(retryConfig),
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("parcel.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка группы
			h.log.Info("parcel.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если сессия закончилась до применения события:
// offset не помечается и ConsumeClaim завершается.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("parcel.status.changed handler received bad message")
		EventsProcessedTotal.WithLabelValues(resultMalformed).Inc()
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("parcel", event.ParcelID),
		logger.NewField("status", event.Status),
		logger.NewField("delivery_person", event.DeliveryPersonID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Debug("parcel.status.changed processing")

	var parcel *entities.Parcel
	err = h.retrier.ExecuteWithContext(sess.Context(), func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, h.messageProcessingTimeout)
		defer cancel()

		var err error
		parcel, err = h.parcelService.UpdateStatusByAssignee(
			ctx,
			event.ParcelID,
			event.DeliveryPersonID,
			entities.ParcelStatusType(event.Status),
		)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled),
			errors.Is(err, context.DeadlineExceeded),
			errors.Is(err, errs.ErrStoreUnavailable):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.changed handler interrupted, message will be reprocessed")
			return true

		case errors.Is(err, errs.ErrValidation),
			errors.Is(err, errs.ErrNotFound),
			errors.Is(err, errs.ErrIllegalState),
			errors.Is(err, errs.ErrIllegalTransition),
			errors.Is(err, errs.ErrConflict):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.changed handler rejected event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("parcel.status.changed handler failed to process event")
		}
		EventsProcessedTotal.WithLabelValues(resultRejected).Inc()
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("current_status", parcel.Status.String()),
	).Info("parcel.status.changed: processed")
	EventsProcessedTotal.WithLabelValues(resultApplied).Inc()

	sess.MarkMessage(message, "")
	return false
}

// хранилище может восстановиться, остальные ошибки повтором не исправить
func isTransient(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, errs.ErrStoreUnavailable)
}

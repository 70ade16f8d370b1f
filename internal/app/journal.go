package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/nhle/deepdetect/internal/model"
	"github.com/nhle/deepdetect/internal/relay"
	"github.com/nhle/deepdetect/internal/store"
)

// journaledSender logs every relay attempt and records it in the
// delivery journal. A nil journal only logs.
type journaledSender struct {
	next    relay.Sender
	journal store.Journal
	backend string
	log     *zap.Logger
}

// Journaled wraps sender so each attempt is logged and journaled. Journal
// failures are logged and never change the delivery result.
func Journaled(sender relay.Sender, journal store.Journal, backend string, log *zap.Logger) relay.Sender {
	if log == nil {
		log = zap.NewNop()
	}
	return &journaledSender{next: sender, journal: journal, backend: backend, log: log}
}

func (s *journaledSender) Send(ctx context.Context, creds relay.Credentials, msg relay.Message) error {
	err := s.next.Send(ctx, creds, msg)

	fields := []zap.Field{
		zap.String("backend", s.backend),
		zap.String("category", msg.Category),
		zap.String("subject", msg.Subject),
	}
	d := model.Delivery{
		Backend:  s.backend,
		Category: msg.Category,
		Subject:  msg.Subject,
		Sender:   msg.FromEmail,
		Status:   model.DeliveryDelivered,
	}
	if err != nil {
		d.Status = model.DeliveryFailed
		d.Error = err.Error()
		s.log.Warn("forum post not delivered", append(fields, zap.Error(err))...)
	} else {
		s.log.Info("forum post delivered", fields...)
	}

	if s.journal != nil {
		if _, jerr := s.journal.RecordDelivery(ctx, d); jerr != nil {
			s.log.Error("recording delivery", zap.Error(jerr))
		}
	}
	return err
}

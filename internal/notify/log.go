package notify

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogSink writes events to the process log.
type LogSink struct {
	log logrus.FieldLogger
}

func NewLogSink(log logrus.FieldLogger) *LogSink { return &LogSink{log: log} }

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Publish(_ context.Context, ev Event) error {
	s.log.WithFields(logrus.Fields{
		"event":    ev.Type,
		"orderid":  ev.OrderID,
		"customer": ev.CustomerName,
		"email":    ev.Email,
		"total":    ev.Total.String(),
	}).Info("order placed")
	return nil
}

func (s *LogSink) Close() error { return nil }

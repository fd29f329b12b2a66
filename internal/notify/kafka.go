package notify

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"
)

// KafkaSink publishes events keyed by order id.
type KafkaSink struct {
	producer sarama.SyncProducer
	topic    string
	log      logrus.FieldLogger
}

func NewKafkaSink(brokers []string, topic string, log logrus.FieldLogger) (*KafkaSink, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Version = sarama.V2_6_0_0

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}
	return NewKafkaSinkWithProducer(producer, topic, log), nil
}

func NewKafkaSinkWithProducer(p sarama.SyncProducer, topic string, log logrus.FieldLogger) *KafkaSink {
	return &KafkaSink{producer: p, topic: topic, log: log}
}

func (s *KafkaSink) Name() string { return "kafka" }

// Publish ignores ctx; the sync producer applies its own timeouts.
func (s *KafkaSink) Publish(_ context.Context, ev Event) error {
	data, err := ev.encode()
	if err != nil {
		return err
	}
	partition, offset, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(ev.OrderID),
		Value: sarama.ByteEncoder(data),
	})
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"topic":     s.topic,
		"partition": partition,
		"offset":    offset,
		"orderid":   ev.OrderID,
	}).Debug("event published to kafka")
	return nil
}

func (s *KafkaSink) Close() error { return s.producer.Close() }

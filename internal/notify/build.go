package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

type Options struct {
	Sinks        []string
	KafkaBrokers []string
	KafkaTopic   string
	AMQPURL      string
	AMQPQueue    string
	SQSQueueURL  string
	AWSRegion    string
}

// Build connects every sink named in opts.Sinks. The returned Hub is nil
// unless "ws" is listed. On error, sinks opened so far are closed.
func Build(ctx context.Context, opts Options, log logrus.FieldLogger) (Multi, *Hub, error) {
	var (
		out Multi
		hub *Hub
	)
	fail := func(err error) (Multi, *Hub, error) {
		out.Close()
		return nil, nil, err
	}

	seen := map[string]bool{}
	for _, name := range opts.Sinks {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		switch name {
		case "log":
			out = append(out, NewLogSink(log.WithField("sink", "log")))
		case "kafka":
			s, err := NewKafkaSink(opts.KafkaBrokers, opts.KafkaTopic, log.WithField("sink", "kafka"))
			if err != nil {
				return fail(fmt.Errorf("kafka sink: %w", err))
			}
			out = append(out, s)
		case "amqp":
			s, err := NewAMQPSink(opts.AMQPURL, opts.AMQPQueue)
			if err != nil {
				return fail(fmt.Errorf("amqp sink: %w", err))
			}
			out = append(out, s)
		case "sqs":
			if opts.SQSQueueURL == "" {
				return fail(fmt.Errorf("sqs sink: SQS_QUEUE_URL is required"))
			}
			s, err := NewSQSSink(ctx, opts.AWSRegion, opts.SQSQueueURL)
			if err != nil {
				return fail(fmt.Errorf("sqs sink: %w", err))
			}
			out = append(out, s)
		case "ws":
			hub = NewHub(log)
			out = append(out, hub)
		default:
			return fail(fmt.Errorf("unknown notify sink %q", name))
		}
	}
	return out, hub, nil
}

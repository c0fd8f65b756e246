// Package events publishes engagement events to the analytics topic.
// Publishing is best-effort: the API never fails a request because the
// broker is down.
package events

import (
	"time"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/fundedrank/fundedrank-api/internal/config"
	"github.com/fundedrank/fundedrank-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Producer publishes engagement events. A nil-safe no-op implementation
// is returned when no brokers are configured.
type Producer interface {
	PublishClick(event *domain.ClickEvent) error
	PublishModeration(review *domain.Review) error
	Close() error
}

type clickPayload struct {
	Type      string    `json:"type"`
	PublicID  string    `json:"publicId"`
	CompanyID int64     `json:"companyId"`
	Intent    string    `json:"intent"`
	Tab       string    `json:"tab"`
	Position  int       `json:"position"`
	EmittedAt time.Time `json:"emittedAt"`
}

type moderationPayload struct {
	Type      string    `json:"type"`
	PublicID  string    `json:"publicId"`
	CompanyID int64     `json:"companyId"`
	Status    string    `json:"status"`
	EmittedAt time.Time `json:"emittedAt"`
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer builds a Kafka producer, or the no-op producer when no
// brokers are configured.
func NewProducer(cfg config.Events) (Producer, error) {
	if len(cfg.Brokers) == 0 {
		logrus.Info("No event brokers configured, event publishing disabled")
		return noopProducer{}, nil
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	saramaConfig.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, err
	}

	return &kafkaProducer{
		producer: producer,
		topic:    cfg.Topic,
	}, nil
}

func (p *kafkaProducer) PublishClick(event *domain.ClickEvent) error {
	payload := clickPayload{
		Type:      "click",
		PublicID:  event.PublicID,
		CompanyID: event.CompanyID,
		Intent:    string(event.Intent),
		Tab:       string(event.Tab),
		Position:  event.Position,
		EmittedAt: time.Now().UTC(),
	}
	return p.publish(event.PublicID, payload)
}

func (p *kafkaProducer) PublishModeration(review *domain.Review) error {
	payload := moderationPayload{
		Type:      "moderation",
		PublicID:  review.PublicID,
		CompanyID: review.CompanyID,
		Status:    string(review.Status),
		EmittedAt: time.Now().UTC(),
	}
	return p.publish(review.PublicID, payload)
}

func (p *kafkaProducer) publish(key string, payload interface{}) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"topic":     p.topic,
		"partition": partition,
		"offset":    offset,
	}).Debug("event published")

	return nil
}

func (p *kafkaProducer) Close() error {
	return p.producer.Close()
}

type noopProducer struct{}

func (noopProducer) PublishClick(*domain.ClickEvent) error  { return nil }
func (noopProducer) PublishModeration(*domain.Review) error { return nil }
func (noopProducer) Close() error                           { return nil }

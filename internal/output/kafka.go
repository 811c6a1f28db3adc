package output

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/chrisdamba/dispatchlens/internal/models"
)

// KafkaOutput publishes report rows to one Kafka topic per report table,
// optionally under a configured topic prefix.
type KafkaOutput struct {
	producer    sarama.SyncProducer
	topicPrefix string
}

func NewKafkaOutput(cfg *models.Config) (*KafkaOutput, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(cfg.KafkaBrokerList, ",")

	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	log.Printf("Sarama producer created successfully with brokers %v", brokerList)
	return &KafkaOutput{producer: producer, topicPrefix: cfg.KafkaTopicPrefix}, nil
}

func (k *KafkaOutput) WriteMessage(topic string, msg []byte) error {
	if k.producer == nil {
		return fmt.Errorf("Kafka producer is not initialized")
	}

	_, _, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: k.topicPrefix + topic,
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		log.Printf("Failed to send message to topic %s: %v", k.topicPrefix+topic, err)
		return err
	}

	return nil
}

func (k *KafkaOutput) Close() error {
	if k.producer != nil {
		return k.producer.Close()
	}
	return nil
}

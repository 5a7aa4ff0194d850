package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL string        `env:"DATABASE_URL"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	RabbitMQ RabbitMQ
	S3       S3
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL      string `env:"RABBITMQ_URL"`
	Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"cs-ex"`
	Queue    string `env:"RABBITMQ_QUEUE" envDefault:"catalog-syncer.commands"`
}

// S3 holds object storage configuration.
type S3 struct {
	Endpoint  string `env:"S3_ENDPOINT"`
	Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	Bucket    string `env:"S3_BUCKET" envDefault:"catalog-images"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	// PathStyle is required for MinIO-like endpoints.
	PathStyle bool `env:"S3_PATH_STYLE" envDefault:"true"`
}

package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr  string
	SessionTTL time.Duration

	KafkaHost             string
	KafkaOrderEventsTopic string

	ChannelCode             string
	ChannelCurrencyCode     string
	ChannelPricesIncludeTax bool
	ChannelDefaultTaxZone   string

	AnonymousAccessWindow time.Duration
	StaleOrderTTL         time.Duration
	StaleOrderCronSpec    string

	OpenAPISpecPath string
}

package cmd

type Config struct {
	HTTPPort       string
	AppID          string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	MigrationsPath string

	TariffAirPerKg float64
	TariffSeaPerM3 float64

	KafkaHost             string
	KafkaStepChangedTopic string

	RedisAddr         string
	RedisPassword     string
	StatsCacheTTLSecs int

	SMTPAddr     string
	SMTPHost     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string
}

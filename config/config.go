package config

import (
	"github.com/customeros/unsublink/internal/logger"
	"github.com/customeros/unsublink/internal/tracing"
	"github.com/customeros/unsublink/services/imapfetch"
	"github.com/customeros/unsublink/services/mailer"
)

type AppConfig struct {
	APIPort     string `env:"PORT,required" envDefault:"12333"`
	APIKey      string `env:"API_KEY,required"`
	RabbitMQURL string `env:"RABBITMQ_URL"`

	// BlacklistRulesPath points at a JSON file with the keys "emails" and
	// "browser"; built-in defaults apply when empty.
	BlacklistRulesPath string `env:"BLACKLIST_RULES_PATH"`

	// RecordRetentionDays bounds how long extraction audit records are kept.
	RecordRetentionDays int `env:"RECORD_RETENTION_DAYS" envDefault:"30"`
}

type DatabaseConfig struct {
	Host            string `env:"UNSUBLINK_POSTGRES_HOST,required"`
	Port            string `env:"UNSUBLINK_POSTGRES_PORT,required"`
	User            string `env:"UNSUBLINK_POSTGRES_USER,required"`
	DBName          string `env:"UNSUBLINK_POSTGRES_DB_NAME,required"`
	Password        string `env:"UNSUBLINK_POSTGRES_PASSWORD,required"`
	MaxConn         int    `env:"UNSUBLINK_POSTGRES_DB_MAX_CONN"`
	MaxIdleConn     int    `env:"UNSUBLINK_POSTGRES_DB_MAX_IDLE_CONN"`
	ConnMaxLifetime int    `env:"UNSUBLINK_POSTGRES_DB_CONN_MAX_LIFETIME"`
	LogLevel        string `env:"UNSUBLINK_POSTGRES_LOG_LEVEL" envDefault:"WARN"`
	SSLMode         string `env:"UNSUBLINK_POSTGRES_SSL_MODE" envDefault:"require"`
}

type Config struct {
	AppConfig      *AppConfig
	Logger         *logger.Config
	Tracing        *tracing.JaegerConfig
	DatabaseConfig *DatabaseConfig
	IMAPConfig     *imapfetch.Config
	SMTPConfig     *mailer.Config
}

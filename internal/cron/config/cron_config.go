package cron_config

type Config struct {
	// Heartbeat check, every minute
	CronScheduleHeartbeat string `env:"CRON_SCHEDULE_HEARTBEAT" envDefault:"0 * * * * *"`
	// Extraction record purge, daily at midnight
	CronSchedulePurgeRecords string `env:"CRON_SCHEDULE_PURGE_RECORDS" envDefault:"0 0 0 * * *"`
}

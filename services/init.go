package services

import (
	"github.com/customeros/unsublink/config"
	"github.com/customeros/unsublink/interfaces"
	"github.com/customeros/unsublink/internal/logger"
	"github.com/customeros/unsublink/services/actions"
	"github.com/customeros/unsublink/services/blacklist"
	"github.com/customeros/unsublink/services/extractor"
	"github.com/customeros/unsublink/services/imapfetch"
	"github.com/customeros/unsublink/services/mailer"
	"github.com/customeros/unsublink/services/notify"
)

type Services struct {
	BlacklistService  interfaces.BlacklistService
	ExtractionService interfaces.ExtractionService
	ActionService     interfaces.ActionService
	Notifier          interfaces.ConditionNotifier
}

func InitServices(cfg *config.Config, log logger.Logger) (*Services, error) {
	rules := blacklist.DefaultRules()
	if cfg.AppConfig.BlacklistRulesPath != "" {
		loaded, err := blacklist.LoadRules(cfg.AppConfig.BlacklistRulesPath)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}

	blacklistService, err := blacklist.NewBlacklistService(rules)
	if err != nil {
		return nil, err
	}

	var notifier interfaces.ConditionNotifier
	if cfg.AppConfig.RabbitMQURL != "" {
		rabbitNotifier, err := notify.NewRabbitMQNotifier(cfg.AppConfig.RabbitMQURL, log)
		if err != nil {
			return nil, err
		}
		notifier = rabbitNotifier
	} else {
		notifier = notify.NewNoopNotifier()
	}

	provider := imapfetch.NewIMAPMessageProvider(cfg.IMAPConfig, log)
	mailSender := mailer.NewSMTPMailSender(cfg.SMTPConfig, log)

	services := Services{
		BlacklistService:  blacklistService,
		ExtractionService: extractor.NewExtractionService(log, blacklistService, provider, notifier),
		ActionService:     actions.NewActionService(log, mailSender, blacklistService),
		Notifier:          notifier,
	}

	return &services, nil
}

package cron

import (
	"context"
	"os"
	"sync"

	"github.com/caarlos0/env/v6"
	cronv3 "github.com/robfig/cron/v3"

	"github.com/customeros/unsublink/config"
	cron_config "github.com/customeros/unsublink/internal/cron/config"
	"github.com/customeros/unsublink/internal/logger"
	"github.com/customeros/unsublink/internal/repository"
	"github.com/customeros/unsublink/internal/tracing"
	"github.com/customeros/unsublink/internal/utils"
)

// CONSTANTS
const (
	// GroupMaintenance is the group for record maintenance jobs
	GroupMaintenance = "maintenance"
)

// LOCK MANAGEMENT
var jobLocks = struct {
	sync.Mutex
	locks map[string]*sync.Mutex
}{
	locks: map[string]*sync.Mutex{
		GroupMaintenance: new(sync.Mutex),
	},
}

type CronManager struct {
	cfg          *config.Config
	log          logger.Logger
	cron         *cronv3.Cron
	stopCh       chan struct{}
	jobIDs       map[string]cronv3.EntryID
	repositories *repository.Repositories
}

func NewCronManager(cfg *config.Config, log logger.Logger, repositories *repository.Repositories) *CronManager {
	return &CronManager{
		cfg:          cfg,
		log:          log,
		stopCh:       make(chan struct{}),
		jobIDs:       make(map[string]cronv3.EntryID),
		repositories: repositories,
	}
}

// Stop gracefully stops the cron manager
func (cm *CronManager) Stop() {
	if cm.cron != nil {
		cm.log.Info("Stopping cron manager")
		ctx := cm.cron.Stop()
		// Wait for jobs to finish
		<-ctx.Done()
	}
	close(cm.stopCh)
}

// registerJobs adds all cron jobs to the scheduler
func (cm *CronManager) registerJobs(c *cronv3.Cron) {
	// Load cron config from environment variables
	var cronConfig cron_config.Config
	if err := env.Parse(&cronConfig); err != nil {
		cm.log.Fatalf("Failed to parse cron config from environment: %v", err)
	}

	// Register heartbeat job
	if cronConfig.CronScheduleHeartbeat != "" {
		podName := os.Getenv("POD_NAME")
		if podName == "" {
			podName = "local"
		}
		id, err := c.AddFunc(cronConfig.CronScheduleHeartbeat, func() {
			defer tracing.RecoverAndLogToJaeger(cm.log)
			cm.log.Infof("Cron heartbeat from pod: %s", podName)
		})
		if err != nil {
			cm.log.Fatalf("Could not add heartbeat cron job: %v", err)
		}
		cm.jobIDs["heartbeat"] = id
		cm.log.Infof("Registered heartbeat job with schedule: %s", cronConfig.CronScheduleHeartbeat)
	}

	// Add extraction record purge job
	if cronConfig.CronSchedulePurgeRecords != "" {
		id, err := c.AddFunc(cronConfig.CronSchedulePurgeRecords, func() {
			defer tracing.RecoverAndLogToJaeger(cm.log)
			jobLocks.locks[GroupMaintenance].Lock()
			defer jobLocks.locks[GroupMaintenance].Unlock()
			cm.purgeOldExtractionRecords()
		})
		if err != nil {
			cm.log.Fatalf("Could not add record purge cron job: %v", err)
		}
		cm.jobIDs["purge_records"] = id
		cm.log.Infof("Registered record purge job with schedule: %s", cronConfig.CronSchedulePurgeRecords)
	}
}

// StartCron initializes and starts the cron scheduler
func (cm *CronManager) StartCron() {
	cm.log.Info("Starting cron manager")
	// Create a new cron with seconds field enabled and panic recovery
	cronOptions := []cronv3.Option{
		cronv3.WithSeconds(),
		cronv3.WithChain(
			cronv3.SkipIfStillRunning(cronv3.DefaultLogger), // Skip if still running
			cronv3.Recover(cronv3.DefaultLogger),            // Default recovery as backup
		),
	}
	c := cronv3.New(cronOptions...)
	cm.registerJobs(c)
	c.Start()
	cm.cron = c
}

func (cm *CronManager) purgeOldExtractionRecords() {
	cm.log.Info("Running extraction record purge")

	ctx := context.Background()

	span, ctx := tracing.StartTracerSpan(ctx, "CronManager.purgeOldExtractionRecords")
	defer span.Finish()
	tracing.TagComponentCronJob(span)

	retentionDays := cm.cfg.AppConfig.RecordRetentionDays
	if retentionDays <= 0 {
		cm.log.Info("Record retention disabled, skipping purge")
		return
	}

	cutoff := utils.Now().AddDate(0, 0, -retentionDays)
	deleted, err := cm.repositories.ExtractionRecordRepository.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		tracing.TraceErr(span, err)
		cm.log.Errorf("Failed to purge extraction records: %v", err)
		return
	}

	cm.log.Infof("Purged %d extraction records older than %d days", deleted, retentionDays)
}

package tasks

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/netvendor/creditintake/config"
	"github.com/netvendor/creditintake/ent/application"
	"github.com/netvendor/creditintake/ent/digitalsignature"
	"github.com/netvendor/creditintake/ent/shippingrequest"
	"github.com/netvendor/creditintake/services/email"
	"github.com/netvendor/creditintake/storage"
	"github.com/netvendor/creditintake/utils/logger"
)

var (
	serverConf = config.ServerConfig()
	intakeConf = config.IntakeConfig()
)

// SweepExpiredShippingRequests deletes shipping requests older than the
// configured retention window.
func SweepExpiredShippingRequests() error {
	ctx := context.Background()
	cutoff := time.Now().Add(-intakeConf.ShippingRetention)

	deleted, err := storage.Client.ShippingRequest.
		Delete().
		Where(shippingrequest.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		logger.Errorf("SweepExpiredShippingRequests: %v", err)
		return err
	}

	if deleted > 0 {
		logger.Infof("SweepExpiredShippingRequests: removed %d requests older than %s", deleted, cutoff.Format(time.RFC3339))
	}

	return nil
}

// SendIntakeDigest emails the ops address a count of applications and
// signatures received over the last 24 hours.
func SendIntakeDigest() error {
	if !config.NotificationConfig().DigestEnabled {
		return nil
	}

	ctx := context.Background()
	since := time.Now().Add(-24 * time.Hour)

	applicationCount, err := storage.Client.Application.
		Query().
		Where(application.CreatedAtGTE(since)).
		Count(ctx)
	if err != nil {
		logger.Errorf("SendIntakeDigest.countApplications: %v", err)
		return err
	}

	signatureCount, err := storage.Client.DigitalSignature.
		Query().
		Where(digitalsignature.CreatedAtGTE(since)).
		Count(ctx)
	if err != nil {
		logger.Errorf("SendIntakeDigest.countSignatures: %v", err)
		return err
	}

	emailService := email.NewService()
	if _, err := emailService.SendIntakeDigest(ctx, applicationCount, signatureCount); err != nil {
		logger.Errorf("SendIntakeDigest.send: %v", err)
		return err
	}

	return nil
}

// StartCronJobs starts cron jobs
func StartCronJobs() {
	scheduler := gocron.NewScheduler(time.Local)

	// Sweep expired shipping requests every 6 hours
	_, err := scheduler.Every(6).Hours().Do(SweepExpiredShippingRequests)
	if err != nil {
		logger.Errorf("StartCronJobs for SweepExpiredShippingRequests: %v", err)
	}

	// Send the intake digest once a day
	_, err = scheduler.Every(1).Day().At(intakeConf.DigestSendTime).Do(SendIntakeDigest)
	if err != nil {
		logger.Errorf("StartCronJobs for SendIntakeDigest: %v", err)
	}

	if serverConf.Environment != "production" {
		logger.Infof("StartCronJobs: scheduler running with %d jobs", len(scheduler.Jobs()))
	}

	scheduler.StartAsync()
}

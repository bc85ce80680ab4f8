package repository

import (
	"context"

	"github.com/techbuddyspace/certify/internal/constant"
	"github.com/techbuddyspace/certify/internal/model"
	"gorm.io/gorm"
)

type VerificationLogRepository struct {
	*baseRepository
}

// VerificationStats aggregates verification outcomes for the stats endpoint.
type VerificationStats struct {
	Total   int64 `json:"total"`
	Success int64 `json:"success"`
	Failed  int64 `json:"failed"`
	Revoked int64 `json:"revoked"`
}

func (vr VerificationLogRepository) Create(ctx context.Context, tx *gorm.DB, log *model.VerificationLog) (*model.VerificationLog, error) {
	vr.logger.Debugf("Create verification log for certificate id: %s, result: %s", log.CertificateID, log.Result)

	db := vr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.VerificationLog{}).Create(log).Error; err != nil {
		return log, err
	}

	return log, nil
}

// List returns the most recent verification attempts, newest first.
func (vr VerificationLogRepository) List(ctx context.Context, tx *gorm.DB, limit uint) (*[]model.VerificationLog, error) {
	vr.logger.Debugf("List verification logs, limit: %d", limit)

	db := vr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var logs []model.VerificationLog
	if err := db.WithContext(ctx).Model(&model.VerificationLog{}).Order("verified_at desc").Limit(int(limit)).Find(&logs).Error; err != nil {
		return &logs, err
	}

	return &logs, nil
}

func (vr VerificationLogRepository) DeleteByCertificateId(ctx context.Context, tx *gorm.DB, certificateId string) error {
	vr.logger.Debugf("Delete verification logs by certificate id: %s", certificateId)

	db := vr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where(map[string]any{
		"certificate_id": certificateId,
	}).Delete(&model.VerificationLog{}).Error
}

func (vr VerificationLogRepository) Stats(ctx context.Context, tx *gorm.DB) (*VerificationStats, error) {
	vr.logger.Debug("Get verification stats")

	db := vr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var stats VerificationStats
	if err := db.WithContext(ctx).Model(&model.VerificationLog{}).Count(&stats.Total).Error; err != nil {
		return &stats, err
	}

	counts := []struct {
		result constant.VerificationResult
		dest   *int64
	}{
		{constant.VerificationSuccess, &stats.Success},
		{constant.VerificationFailed, &stats.Failed},
		{constant.VerificationRevoked, &stats.Revoked},
	}

	for _, c := range counts {
		if err := db.WithContext(ctx).Model(&model.VerificationLog{}).Where(map[string]any{
			"result": c.result,
		}).Count(c.dest).Error; err != nil {
			return &stats, err
		}
	}

	return &stats, nil
}

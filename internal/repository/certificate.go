package repository

import (
	"context"
	"time"

	"github.com/techbuddyspace/certify/internal/constant"
	"github.com/techbuddyspace/certify/internal/model"
	"gorm.io/gorm"
)

type CertificateRepository struct {
	*baseRepository
}

func (cr CertificateRepository) Create(ctx context.Context, tx *gorm.DB, certificate *model.Certificate) (*model.Certificate, error) {
	cr.logger.Debugf("Create certificate: %s", certificate.CertificateID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Certificate{}).Create(certificate).Error; err != nil {
		return certificate, err
	}

	return certificate, nil
}

func (cr CertificateRepository) GetByCertificateId(ctx context.Context, tx *gorm.DB, certificateId string) (*model.Certificate, error) {
	cr.logger.Debugf("Get certificate by certificate id: %s", certificateId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certificate model.Certificate
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Where(model.Certificate{
		CertificateID: certificateId,
	}).First(&certificate).Error; err != nil {
		return &certificate, err
	}

	return &certificate, nil
}

// Return certificates and total count.
func (cr CertificateRepository) List(ctx context.Context, tx *gorm.DB, page, pageSize uint) (*[]model.Certificate, int64, error) {
	cr.logger.Debugf("List certificates, page: %d, pageSize: %d", page, pageSize)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certificates []model.Certificate
	total := int64(0)

	if err := db.WithContext(ctx).Model(&model.Certificate{}).Count(&total).Error; err != nil {
		return &certificates, total, err
	}

	query := db.WithContext(ctx).Model(&model.Certificate{}).Order("issued_at desc")
	if err := query.Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&certificates).Error; err != nil {
		return &certificates, total, err
	}

	return &certificates, total, nil
}

// Revoke marks a certificate invalid without deleting the row so the public
// verify page can explain why the id no longer checks out.
func (cr CertificateRepository) Revoke(ctx context.Context, tx *gorm.DB, certificateId string, reason string) error {
	cr.logger.Debugf("Revoke certificate: %s", certificateId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	now := time.Now()
	result := db.WithContext(ctx).Model(&model.Certificate{}).Where(model.Certificate{
		CertificateID: certificateId,
	}).Updates(map[string]any{
		"verified":       false,
		"revoked":        true,
		"revoked_reason": reason,
		"revoked_at":     &now,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (cr CertificateRepository) DeleteByCertificateId(ctx context.Context, tx *gorm.DB, certificateId string) error {
	cr.logger.Debugf("Delete certificate by certificate id: %s", certificateId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where(model.Certificate{
		CertificateID: certificateId,
	}).Delete(&model.Certificate{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

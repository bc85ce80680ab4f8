package repository

import (
	"context"

	"github.com/techbuddyspace/certify/internal/constant"
	"github.com/techbuddyspace/certify/internal/model"
	"gorm.io/gorm"
)

type TemplateRepository struct {
	*baseRepository
}

func (tr TemplateRepository) Create(ctx context.Context, tx *gorm.DB, template *model.Template) (*model.Template, error) {
	tr.logger.Debugf("Create template: %s", template.TemplateID)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Template{}).Create(template).Error; err != nil {
		return template, err
	}

	return template, nil
}

func (tr TemplateRepository) GetByTemplateId(ctx context.Context, tx *gorm.DB, templateId string) (*model.Template, error) {
	tr.logger.Debugf("Get template by template id: %s", templateId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var template model.Template
	if err := db.WithContext(ctx).Model(&model.Template{}).Where(model.Template{
		TemplateID: templateId,
	}).Preload("Placeholders").First(&template).Error; err != nil {
		return &template, err
	}

	return &template, nil
}

// Return templates and total count.
func (tr TemplateRepository) List(ctx context.Context, tx *gorm.DB, page, pageSize uint) (*[]model.Template, int64, error) {
	tr.logger.Debugf("List templates, page: %d, pageSize: %d", page, pageSize)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var templates []model.Template
	total := int64(0)

	if err := db.WithContext(ctx).Model(&model.Template{}).Count(&total).Error; err != nil {
		return &templates, total, err
	}

	query := db.WithContext(ctx).Model(&model.Template{}).Preload("Placeholders").Order("created_at desc")
	if err := query.Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&templates).Error; err != nil {
		return &templates, total, err
	}

	return &templates, total, nil
}

// SetPlaceholders replaces a template's placeholder set atomically. The old
// rows are removed and the new ones inserted in one transaction so a template
// never exposes a half-updated layout.
func (tr TemplateRepository) SetPlaceholders(ctx context.Context, tx *gorm.DB, templateId string, placeholders []model.Placeholder) error {
	tr.logger.Debugf("Set %d placeholders for template id: %s", len(placeholders), templateId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return tr.withTx(db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Where(model.Placeholder{TemplateRef: templateId}).Delete(&model.Placeholder{}).Error; err != nil {
			return err
		}

		if len(placeholders) == 0 {
			return nil
		}

		for i := range placeholders {
			placeholders[i].TemplateRef = templateId
		}

		return tx.Model(&model.Placeholder{}).Create(&placeholders).Error
	})
}

func (tr TemplateRepository) DeleteByTemplateId(ctx context.Context, tx *gorm.DB, templateId string) error {
	tr.logger.Debugf("Delete template by template id: %s", templateId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where(model.Template{
		TemplateID: templateId,
	}).Delete(&model.Template{}).Error
}

package model

import (
	"time"

	"github.com/techbuddyspace/certify/pkg/certify"
)

type Certificate struct {
	BaseModel
	// The unique index backs the probabilistic identifier guarantee: a
	// collision surfaces as an insert error instead of a silent overwrite.
	CertificateID      string    `gorm:"type:text;not null;uniqueIndex" json:"certificateId"`
	TemplateID         string    `gorm:"type:text;not null;index" json:"templateId"`
	StudentName        string    `gorm:"type:text;not null" json:"studentName"`
	CourseName         string    `gorm:"type:text" json:"courseName"`
	DateOfRegistration string    `gorm:"type:text;not null" json:"dateOfRegistration"`
	ImageKey           string    `gorm:"type:text;not null" json:"imageKey"`
	QRKey              string    `gorm:"type:text;not null" json:"qrKey"`
	IssuedAt           time.Time `gorm:"type:timestamptz;not null" json:"issuedAt"`
	Verified           bool      `gorm:"type:boolean;default:true" json:"verified"`
	Revoked            bool      `gorm:"type:boolean;default:false" json:"revoked"`

	RevokedReason string     `gorm:"type:text" json:"revokedReason,omitempty"`
	RevokedAt     *time.Time `gorm:"type:timestamptz" json:"revokedAt,omitempty"`

	StudentEmail    string `gorm:"type:text" json:"studentEmail"`
	StudentPhone    string `gorm:"type:text" json:"studentPhone"`
	StudentRef      string `gorm:"type:text" json:"studentId"`
	Institution     string `gorm:"type:text" json:"institution"`
	Grade           string `gorm:"type:text" json:"grade"`
	Instructor      string `gorm:"type:text" json:"instructor"`
	CompletionHours int    `gorm:"type:int;default:0" json:"completionHours"`
	AdditionalNotes string `gorm:"type:text" json:"additionalNotes"`
}

func (c Certificate) TableName() string {
	return "certificates"
}

// FromRecord maps a core issuance record onto a persistable row.
func FromRecord(rec certify.CertificateRecord) *Certificate {
	return &Certificate{
		CertificateID:      rec.CertificateID,
		TemplateID:         rec.TemplateID,
		StudentName:        rec.StudentName,
		CourseName:         rec.CourseName,
		DateOfRegistration: rec.DateOfRegistration,
		ImageKey:           rec.StorageImageKey,
		QRKey:              rec.StorageQRKey,
		IssuedAt:           rec.IssuedAt,
		Verified:           rec.Verified,
		Revoked:            rec.Revoked,
		StudentEmail:       rec.StudentEmail,
		Institution:        rec.Institution,
	}
}

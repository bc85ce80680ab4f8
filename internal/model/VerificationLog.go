package model

import (
	"time"

	"github.com/techbuddyspace/certify/internal/constant"
)

// VerificationLog records one public verification attempt, successful or not.
type VerificationLog struct {
	BaseModel
	CertificateID string                      `gorm:"type:text;not null;index" json:"certificateId"`
	Result        constant.VerificationResult `gorm:"type:text;not null" json:"result"`
	StudentName   string                      `gorm:"type:text" json:"studentName"`
	CourseName    string                      `gorm:"type:text" json:"courseName"`
	FailureReason string                      `gorm:"type:text" json:"failureReason,omitempty"`
	IPAddress     string                      `gorm:"type:text" json:"ipAddress"`
	UserAgent     string                      `gorm:"type:text" json:"userAgent"`
	VerifiedAt    time.Time                   `gorm:"type:timestamptz;not null" json:"verifiedAt"`
}

func (v VerificationLog) TableName() string {
	return "verification_logs"
}

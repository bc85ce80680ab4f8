package certify

import "time"

// CertificateRecord is the issuance metadata persisted for one successful
// composition. Created exactly once per composition; immutable afterwards
// except for the revocation fields, which the storage collaborator owns.
type CertificateRecord struct {
	CertificateID      string    `json:"certificateId"`
	TemplateID         string    `json:"templateId"`
	StudentName        string    `json:"studentName"`
	CourseName         string    `json:"courseName"`
	DateOfRegistration string    `json:"dateOfRegistration"`
	ImageURL           string    `json:"imageUrl"`
	QRURL              string    `json:"qrUrl"`
	StorageImageKey    string    `json:"storageImageKey"`
	StorageQRKey       string    `json:"storageQrKey"`
	IssuedAt           time.Time `json:"issuedAt"`
	Verified           bool      `json:"verified"`
	Revoked            bool      `json:"revoked"`
	Institution        string    `json:"institution"`

	StudentEmail    string `json:"studentEmail"`
	StudentPhone    string `json:"studentPhone"`
	StudentID       string `json:"studentId"`
	Grade           string `json:"grade"`
	Instructor      string `json:"instructor"`
	CompletionHours int    `json:"completionHours"`
	AdditionalNotes string `json:"additionalNotes"`
}

// RecordInput names the collaborator-supplied parts of a record: what the
// compositor produced plus where the caller stored the artifacts.
type RecordInput struct {
	CertificateID   string
	TemplateID      string
	StudentName     string
	CourseName      string
	DateStr         string
	ImageURL        string
	QRURL           string
	StorageImageKey string
	StorageQRKey    string
	StudentEmail    string
}

// BuildRecord assembles a fresh issuance record: verified, not revoked,
// stamped with the configured institution and the current time.
func (c *Compositor) BuildRecord(in RecordInput) CertificateRecord {
	return CertificateRecord{
		CertificateID:      in.CertificateID,
		TemplateID:         in.TemplateID,
		StudentName:        in.StudentName,
		CourseName:         in.CourseName,
		DateOfRegistration: in.DateStr,
		ImageURL:           in.ImageURL,
		QRURL:              in.QRURL,
		StorageImageKey:    in.StorageImageKey,
		StorageQRKey:       in.StorageQRKey,
		IssuedAt:           time.Now(),
		Verified:           true,
		Revoked:            false,
		Institution:        c.cfg.Institution,
		StudentEmail:       in.StudentEmail,
	}
}

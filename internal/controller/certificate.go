package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techbuddyspace/certify/internal/mailer"
	"github.com/techbuddyspace/certify/internal/model"
	"github.com/techbuddyspace/certify/internal/util"
	"github.com/techbuddyspace/certify/pkg/certify"
	"gorm.io/gorm"
)

type CertificateController struct {
	*baseController
}

const ErrCertificateIdRequired = "certificate id is required"

func toCertificateImageKey(certificateId string) string {
	return fmt.Sprintf("certificates/%s.png", certificateId)
}

func toCertificateQRKey(certificateId string) string {
	return fmt.Sprintf("certificates/%s_qr.png", certificateId)
}

// GenerateCertificate runs the full issuance flow: load the template and its
// placeholders, compose the certificate image, upload the artifacts, persist
// the record and optionally email the student.
func (cc CertificateController) GenerateCertificate(ctx *gin.Context) {
	type Request struct {
		TemplateID   string `json:"templateId" form:"templateId" binding:"required,strNotEmpty"`
		StudentName  string `json:"studentName" form:"studentName" binding:"required,strNotEmpty,max=200"`
		CourseName   string `json:"courseName" form:"courseName" binding:"omitempty,max=200"`
		DateStr      string `json:"dateStr" form:"dateStr" binding:"required,strNotEmpty,max=50"`
		DeviceClass  string `json:"deviceClass" form:"deviceClass" binding:"omitempty,oneof=desktop mobile unknown"`
		StudentEmail string `json:"studentEmail" form:"studentEmail" binding:"omitempty,email"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		cc.app.Logger.Errorf("Failed to bind request: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	template, err := cc.app.Repository.Template.GetByTemplateId(ctx, nil, body.TemplateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Template not found", util.GenerateErrorMessages(errors.New("template not found"), "templateId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get template", util.GenerateErrorMessages(err), nil)
		return
	}

	templateData, err := cc.app.Storage.Download(ctx, template.ImageKey)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load template image", util.GenerateErrorMessages(err), nil)
		return
	}

	result, err := cc.app.Compositor.ComposeBytes(templateData, certify.ComposeRequest{
		Placeholders: model.ToCorePlaceholders(template.Placeholders),
		StudentName:  body.StudentName,
		CourseName:   body.CourseName,
		DateStr:      body.DateStr,
		DeviceClass:  certify.ParseDeviceClass(body.DeviceClass),
	})
	if err != nil {
		cc.app.Logger.Errorf("Failed to compose certificate: %v", err)
		if errors.Is(err, certify.ErrEmptyStudentName) || errors.Is(err, certify.ErrZeroAreaRect) || errors.Is(err, certify.ErrTemplateDecode) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to compose certificate", util.GenerateErrorMessages(err), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to compose certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	imageKey, err := cc.app.Storage.Upload(ctx, toCertificateImageKey(result.CertificateID), result.CertificatePNG, "image/png")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload certificate image", util.GenerateErrorMessages(err), nil)
		return
	}

	qrKey, err := cc.app.Storage.Upload(ctx, toCertificateQRKey(result.CertificateID), result.QRPNG, "image/png")
	if err != nil {
		cc.cleanupArtifacts(ctx, imageKey, "")
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload QR image", util.GenerateErrorMessages(err), nil)
		return
	}

	imageUrl, err := cc.app.Storage.ResolveURL(ctx, imageKey)
	if err != nil {
		cc.app.Logger.Errorf("failed to resolve certificate image url: %v", err)
	}

	qrUrl, err := cc.app.Storage.ResolveURL(ctx, qrKey)
	if err != nil {
		cc.app.Logger.Errorf("failed to resolve qr image url: %v", err)
	}

	record := cc.app.Compositor.BuildRecord(certify.RecordInput{
		CertificateID:   result.CertificateID,
		TemplateID:      template.TemplateID,
		StudentName:     body.StudentName,
		CourseName:      body.CourseName,
		DateStr:         body.DateStr,
		ImageURL:        imageUrl,
		QRURL:           qrUrl,
		StorageImageKey: imageKey,
		StorageQRKey:    qrKey,
		StudentEmail:    body.StudentEmail,
	})

	certificate := model.FromRecord(record)
	if _, err := cc.app.Repository.Certificate.Create(ctx, nil, certificate); err != nil {
		// Delete the uploaded files if certificate creation in db failed
		cc.cleanupArtifacts(ctx, imageKey, qrKey)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	if body.StudentEmail != "" {
		go cc.sendIssuedMail(certificate)
	}

	util.ResponseSuccess(ctx, gin.H{
		"certificate": certificate,
		"imageUrl":    imageUrl,
		"qrUrl":       qrUrl,
		"positions":   result.Positions,
	})
}

func (cc CertificateController) cleanupArtifacts(ctx *gin.Context, imageKey, qrKey string) {
	for _, key := range []string{imageKey, qrKey} {
		if key == "" {
			continue
		}
		if err := cc.app.Storage.Delete(ctx, key); err != nil {
			cc.app.Logger.Errorf("Failed to delete file during cleanup of certificate artifacts: %v", err)
		}
	}
}

// sendIssuedMail is best-effort; a mail failure never fails the issuance.
func (cc CertificateController) sendIssuedMail(certificate *model.Certificate) {
	vars := struct {
		StudentName   string
		CourseName    string
		CertificateID string
		VerifyURL     string
		Institution   string
	}{
		StudentName:   certificate.StudentName,
		CourseName:    certificate.CourseName,
		CertificateID: certificate.CertificateID,
		VerifyURL:     certify.VerificationURL(cc.app.Config.Certify.VerifyBaseURL, certificate.CertificateID),
		Institution:   certificate.Institution,
	}

	status, err := cc.app.Mailer.Send(mailer.CERTIFICATE_ISSUED_TEMPLATE, certificate.StudentName, certificate.StudentEmail, vars)
	if err != nil {
		cc.app.Logger.Errorf("Failed to send certificate issued mail, status: %d, error: %v", status, err)
	}
}

func (cc CertificateController) ListCertificates(ctx *gin.Context) {
	page, pageSize := util.ParsePagination(ctx)

	certificates, total, err := cc.app.Repository.Certificate.List(ctx, nil, page, pageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list certificates", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"certificates": certificates,
		"total":        total,
		"page":         page,
		"totalPage":    util.CalculateTotalPage(total, pageSize),
	})
}

func (cc CertificateController) GetCertificateById(ctx *gin.Context) {
	certificateId := ctx.Params.ByName("certificateId")
	if certificateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate id is required", util.GenerateErrorMessages(errors.New(ErrCertificateIdRequired), "certificateId"), nil)
		return
	}

	certificate, err := cc.app.Repository.Certificate.GetByCertificateId(ctx, nil, certificateId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Certificate not found", util.GenerateErrorMessages(errors.New("certificate not found"), "certificateId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	imageUrl, err := cc.app.Storage.ResolveURL(ctx, certificate.ImageKey)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get certificate image URL", util.GenerateErrorMessages(err), nil)
		return
	}

	qrUrl, err := cc.app.Storage.ResolveURL(ctx, certificate.QRKey)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get QR image URL", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"certificate": certificate,
		"imageUrl":    imageUrl,
		"qrUrl":       qrUrl,
	})
}

func (cc CertificateController) RevokeCertificate(ctx *gin.Context) {
	certificateId := ctx.Params.ByName("certificateId")
	if certificateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate id is required", util.GenerateErrorMessages(errors.New(ErrCertificateIdRequired), "certificateId"), nil)
		return
	}

	type Request struct {
		Reason string `json:"reason" form:"reason" binding:"omitempty,max=500"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := cc.app.Repository.Certificate.Revoke(ctx, nil, certificateId, body.Reason); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Certificate not found", util.GenerateErrorMessages(errors.New("certificate not found"), "certificateId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to revoke certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"certificateId": certificateId,
		"revoked":       true,
	})
}

func (cc CertificateController) DeleteCertificate(ctx *gin.Context) {
	certificateId := ctx.Params.ByName("certificateId")
	if certificateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate id is required", util.GenerateErrorMessages(errors.New(ErrCertificateIdRequired), "certificateId"), nil)
		return
	}

	certificate, err := cc.app.Repository.Certificate.GetByCertificateId(ctx, nil, certificateId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Certificate not found", util.GenerateErrorMessages(errors.New("certificate not found"), "certificateId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := cc.app.Repository.Certificate.DeleteByCertificateId(ctx, nil, certificateId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := cc.app.Repository.VerificationLog.DeleteByCertificateId(ctx, nil, certificateId); err != nil {
		cc.app.Logger.Errorf("failed to delete verification logs for certificate %s: %v", certificateId, err)
	}

	// Leftover blobs don't affect the system, so storage failures only log.
	cc.cleanupArtifacts(ctx, certificate.ImageKey, certificate.QRKey)

	util.ResponseSuccess(ctx, nil)
}

package controller

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/techbuddyspace/certify/internal/constant"
	"github.com/techbuddyspace/certify/internal/model"
	"github.com/techbuddyspace/certify/internal/util"
	"gorm.io/gorm"
)

type VerifyController struct {
	*baseController
}

//go:embed templates
var verifyFS embed.FS

var verifyTemplate = template.Must(template.ParseFS(verifyFS, "templates/verify.tmpl"))

type verifyPageData struct {
	Result        constant.VerificationResult
	CertificateID string
	StudentName   string
	CourseName    string
	Date          string
	Institution   string
	IssuedAt      string
	RevokedReason string
	ImageURL      string
}

// VerifyPage is the public page behind every certificate's QR code. It
// renders one of three variants (valid / revoked / not found) and records
// the attempt in the verification log.
func (vc VerifyController) VerifyPage(ctx *gin.Context) {
	certificateId := ctx.Params.ByName("certificateId")

	data := verifyPageData{
		Result:        constant.VerificationFailed,
		CertificateID: certificateId,
		Institution:   vc.app.Config.Certify.Institution,
	}

	certificate, err := vc.app.Repository.Certificate.GetByCertificateId(ctx, nil, certificateId)
	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		vc.logAttempt(ctx, certificateId, constant.VerificationFailed, "", "", "certificate not found")
	case err != nil:
		vc.app.Logger.Errorf("Failed to get certificate for verification: %v", err)
		vc.logAttempt(ctx, certificateId, constant.VerificationFailed, "", "", "lookup error")
	case certificate.Revoked:
		data.Result = constant.VerificationRevoked
		data.StudentName = certificate.StudentName
		data.CourseName = certificate.CourseName
		data.RevokedReason = certificate.RevokedReason
		vc.logAttempt(ctx, certificateId, constant.VerificationRevoked, certificate.StudentName, certificate.CourseName, "")
	default:
		data.Result = constant.VerificationSuccess
		data.StudentName = certificate.StudentName
		data.CourseName = certificate.CourseName
		data.Date = certificate.DateOfRegistration
		data.IssuedAt = certificate.IssuedAt.Format("2 January 2006")

		if url, err := vc.app.Storage.ResolveURL(ctx, certificate.ImageKey); err == nil {
			data.ImageURL = url
		} else {
			vc.app.Logger.Errorf("failed to resolve certificate image url for verify page: %v", err)
		}

		vc.logAttempt(ctx, certificateId, constant.VerificationSuccess, certificate.StudentName, certificate.CourseName, "")
	}

	status := http.StatusOK
	if data.Result == constant.VerificationFailed {
		status = http.StatusNotFound
	}

	ctx.Status(status)
	ctx.Header("Content-Type", "text/html; charset=utf-8")
	if err := verifyTemplate.Execute(ctx.Writer, data); err != nil {
		vc.app.Logger.Errorf("Failed to render verify page: %v", err)
	}
}

// logAttempt is best-effort; the page renders even if the log write fails.
func (vc VerifyController) logAttempt(ctx *gin.Context, certificateId string, result constant.VerificationResult, studentName, courseName, failureReason string) {
	log := model.VerificationLog{
		CertificateID: certificateId,
		Result:        result,
		StudentName:   studentName,
		CourseName:    courseName,
		FailureReason: failureReason,
		IPAddress:     ctx.ClientIP(),
		UserAgent:     ctx.Request.UserAgent(),
		VerifiedAt:    time.Now(),
	}

	if _, err := vc.app.Repository.VerificationLog.Create(ctx, nil, &log); err != nil {
		vc.app.Logger.Errorf("Failed to write verification log: %v", err)
	}
}

func (vc VerifyController) ListVerificationLogs(ctx *gin.Context) {
	limit, err := strconv.ParseUint(ctx.DefaultQuery("limit", "50"), 10, 32)
	if err != nil || limit < 1 || limit > 500 {
		limit = 50
	}

	logs, err := vc.app.Repository.VerificationLog.List(ctx, nil, uint(limit))
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list verification logs", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"logs": logs,
	})
}

func (vc VerifyController) VerificationStats(ctx *gin.Context) {
	stats, err := vc.app.Repository.VerificationLog.Stats(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get verification stats", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"stats": stats,
	})
}

package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/techbuddyspace/certify/internal/constant"
	"github.com/techbuddyspace/certify/internal/model"
	"github.com/techbuddyspace/certify/internal/util"
	"github.com/techbuddyspace/certify/pkg/certify"
	"gorm.io/gorm"
)

type TemplateController struct {
	*baseController
}

const ErrTemplateIdRequired = "template id is required"

func getTemplateDirectoryPath(templateId string) string {
	return fmt.Sprintf("templates/%s", templateId)
}

func toTemplateDirectoryPath(templateId string, filename string) string {
	return filepath.Join(getTemplateDirectoryPath(templateId), filepath.Base(filename))
}

// UploadTemplate accepts a multipart background image plus metadata, stores
// the image and creates the template row with an empty placeholder list.
func (tc TemplateController) UploadTemplate(ctx *gin.Context) {
	type Request struct {
		Name        string `json:"name" form:"name" binding:"required,strNotEmpty,min=1,max=100"`
		Description string `json:"description" form:"description" binding:"omitempty,max=500"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		tc.app.Logger.Errorf("Failed to bind request: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	imageFile, err := ctx.FormFile("templateFile")
	if err != nil {
		tc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "No template file uploaded", util.GenerateErrorMessages(errors.New("template file is required"), "templateFile"), nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(imageFile.Filename))
	if !constant.AllowedTemplateExtensions[ext] {
		tc.app.Logger.Errorf("Failed to upload template: invalid file type %s", ext)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid file type", util.GenerateErrorMessages(errors.New("invalid file type, expect png, jpg or jpeg"), "templateFile"), nil)
		return
	}

	file, err := imageFile.Open()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to read template file", util.GenerateErrorMessages(err), nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to read template file", util.GenerateErrorMessages(err), nil)
		return
	}

	// Reject undecodable images at upload time rather than at issuance.
	if _, err := certify.DecodeTemplate(data); err != nil {
		tc.app.Logger.Errorf("Failed to decode uploaded template: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Template image could not be decoded", util.GenerateErrorMessages(err, "templateFile"), nil)
		return
	}

	templateId := certify.GenerateTemplateID()
	key := toTemplateDirectoryPath(templateId, util.AddUniquePrefixToFileName(imageFile.Filename))

	storedKey, err := tc.app.Storage.Upload(ctx, key, data, imageFile.Header.Get("Content-Type"))
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload file", util.GenerateErrorMessages(err), nil)
		return
	}

	template := model.Template{
		TemplateID:  templateId,
		Name:        body.Name,
		Description: body.Description,
		ImageKey:    storedKey,
	}

	if _, err := tc.app.Repository.Template.Create(ctx, nil, &template); err != nil {
		// delete the file from s3 if template creation failed
		if err := tc.app.Storage.Delete(ctx, storedKey); err != nil {
			tc.app.Logger.Errorf("failed to delete template file from storage with err: %v", err)
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create template", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"template": template,
	})
}

// SetPlaceholders replaces a template's placeholder list.
func (tc TemplateController) SetPlaceholders(ctx *gin.Context) {
	templateId := ctx.Params.ByName("templateId")
	if templateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Template id is required", util.GenerateErrorMessages(errors.New(ErrTemplateIdRequired), "templateId"), nil)
		return
	}

	type Request struct {
		Placeholders []model.Placeholder `json:"placeholders" binding:"required,dive"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		tc.app.Logger.Errorf("Failed to bind request: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	for _, p := range body.Placeholders {
		core := p.ToCore()
		if core.HasRect() && !core.Rect().Valid() {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid placeholder", util.GenerateErrorMessages(fmt.Errorf("placeholder %s has a zero-area rectangle", p.Key), "placeholders"), nil)
			return
		}
	}

	if _, err := tc.app.Repository.Template.GetByTemplateId(ctx, nil, templateId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Template not found", util.GenerateErrorMessages(err, "templateId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get template", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := tc.app.Repository.Template.SetPlaceholders(ctx, nil, templateId, body.Placeholders); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to set placeholders", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"templateId":   templateId,
		"placeholders": body.Placeholders,
	})
}

func (tc TemplateController) ListTemplates(ctx *gin.Context) {
	page, pageSize := util.ParsePagination(ctx)

	templates, total, err := tc.app.Repository.Template.List(ctx, nil, page, pageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list templates", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"templates": templates,
		"total":     total,
		"page":      page,
		"totalPage": util.CalculateTotalPage(total, pageSize),
	})
}

func (tc TemplateController) GetTemplateById(ctx *gin.Context) {
	templateId := ctx.Params.ByName("templateId")
	if templateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Template id is required", util.GenerateErrorMessages(errors.New(ErrTemplateIdRequired), "templateId"), nil)
		return
	}

	template, err := tc.app.Repository.Template.GetByTemplateId(ctx, nil, templateId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Template not found", util.GenerateErrorMessages(errors.New("template not found"), "templateId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get template", util.GenerateErrorMessages(err), nil)
		return
	}

	imageUrl, err := tc.app.Storage.ResolveURL(ctx, template.ImageKey)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get template image URL", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"template": template,
		"imageUrl": imageUrl,
	})
}

func (tc TemplateController) DeleteTemplate(ctx *gin.Context) {
	templateId := ctx.Params.ByName("templateId")
	if templateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Template id is required", util.GenerateErrorMessages(errors.New(ErrTemplateIdRequired), "templateId"), nil)
		return
	}

	template, err := tc.app.Repository.Template.GetByTemplateId(ctx, nil, templateId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Template not found", util.GenerateErrorMessages(errors.New("template not found"), "templateId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get template", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := tc.app.Repository.Template.DeleteByTemplateId(ctx, nil, templateId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete template", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := tc.app.Storage.Delete(ctx, template.ImageKey); err != nil {
		// Intentionally not returning failed; a leftover blob doesn't affect the system.
		tc.app.Logger.Errorf("failed to delete template file from storage with err: %v", err)
	}

	util.ResponseSuccess(ctx, nil)
}

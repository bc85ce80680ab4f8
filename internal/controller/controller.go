package controller

import (
	appcontext "github.com/techbuddyspace/certify/internal/app_context"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index       *IndexController
	Template    *TemplateController
	Certificate *CertificateController
	Verify      *VerifyController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:       &IndexController{baseController: bc},
		Template:    &TemplateController{baseController: bc},
		Certificate: &CertificateController{baseController: bc},
		Verify:      &VerifyController{baseController: bc},
	}
}

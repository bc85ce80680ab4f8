package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/techbuddyspace/certify/internal/util"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"service":     "certify",
		"institution": ic.app.Config.Certify.Institution,
	})
}

func (ic IndexController) Health(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"status": "ok",
	})
}

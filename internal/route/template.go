package route

import (
	"github.com/gin-gonic/gin"
	"github.com/techbuddyspace/certify/internal/controller"
	"github.com/techbuddyspace/certify/internal/middleware"
)

func V1_Templates(r *gin.RouterGroup, tc *controller.TemplateController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/templates")
	{
		v1.POST("", tc.UploadTemplate)
		v1.GET("", tc.ListTemplates)
		v1.GET("/:templateId", tc.GetTemplateById)
		v1.PUT("/:templateId/placeholders", tc.SetPlaceholders)
		v1.DELETE("/:templateId", tc.DeleteTemplate)
	}
}

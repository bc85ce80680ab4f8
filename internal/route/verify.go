package route

import (
	"github.com/gin-gonic/gin"
	"github.com/techbuddyspace/certify/internal/controller"
	"github.com/techbuddyspace/certify/internal/middleware"
)

// Verify registers the public verification page reached by scanning a
// certificate's QR code.
func Verify(r *gin.Engine, vc *controller.VerifyController, middleware *middleware.Middleware) {
	r.GET("/verify/:certificateId", vc.VerifyPage)
}

func V1_VerificationLogs(r *gin.RouterGroup, vc *controller.VerifyController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1")
	{
		v1.GET("/verification-logs", vc.ListVerificationLogs)
		v1.GET("/verification-stats", vc.VerificationStats)
	}
}

package route

import (
	"github.com/gin-gonic/gin"
	"github.com/techbuddyspace/certify/internal/controller"
	"github.com/techbuddyspace/certify/internal/middleware"
)

func V1_Certificates(r *gin.RouterGroup, cc *controller.CertificateController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/certificates")
	{
		v1.POST("", cc.GenerateCertificate)
		v1.GET("", cc.ListCertificates)
		v1.GET("/:certificateId", cc.GetCertificateById)
		v1.PUT("/:certificateId/revoke", cc.RevokeCertificate)
		v1.DELETE("/:certificateId", cc.DeleteCertificate)
	}
}

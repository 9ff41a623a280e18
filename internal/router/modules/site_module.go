package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SiteModule serves the plain-text landing greeting.
type SiteModule struct{}

func NewSiteModule() *SiteModule { return &SiteModule{} }

func (m *SiteModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Emelies page, yoga")
	})
}

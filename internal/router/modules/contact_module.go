package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/yogajuristen/api/internal/interface/http"
)

// ContactModule wires the contact-form mailer route.
type ContactModule struct {
	Handler *handlers.ContactHandler
}

func NewContactModule(h *handlers.ContactHandler) *ContactModule {
	return &ContactModule{Handler: h}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	rg.POST("/contact", m.Handler.Contact)
}

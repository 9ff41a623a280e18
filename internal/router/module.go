package router

import "github.com/gin-gonic/gin"

// Module is a feature unit (users, reviews, contact, site) that knows
// how to register its own routes on a RouterGroup.
type Module interface {
	Register(rg *gin.RouterGroup)
}

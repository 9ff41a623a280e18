package router

import "github.com/gin-gonic/gin"

// Registry collects feature modules and registers their routes at the
// engine root; the public surface of this service has no path prefix.
// Global middleware (recovery, request id, CORS) is attached to the
// engine in main before any module registers.
type Registry struct {
	Engine  *gin.Engine
	Root    *gin.RouterGroup
	modules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, Root: engine.Group("/")}
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) RegisterAll() {
	for _, m := range r.modules {
		m.Register(r.Root)
	}
}

package httpserver

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

// apiPrefix is the second mount point of every survey endpoint.
const apiPrefix = "/api"

// dualRouter registers each handler twice: at its bare path and under
// apiPrefix. Both entries share the same handler chain.
type dualRouter struct {
	engine *gin.Engine
	prefix string
}

func newDualRouter(engine *gin.Engine, prefix string) *dualRouter {
	return &dualRouter{engine: engine, prefix: prefix}
}

func (d *dualRouter) handle(method, path string, h gin.HandlerFunc) {
	d.engine.Handle(method, path, h)
	d.engine.Handle(method, d.prefix+path, h)
}

// GET registers h for GET at path and prefix+path.
func (d *dualRouter) GET(path string, h gin.HandlerFunc) {
	d.handle(http.MethodGet, path, h)
}

// POST registers h for POST at path and prefix+path.
func (d *dualRouter) POST(path string, h gin.HandlerFunc) {
	d.handle(http.MethodPost, path, h)
}

// routePaths returns every distinct registered path, sorted.
func routePaths(engine *gin.Engine) []string {
	seen := make(map[string]struct{})
	var paths []string
	for _, ri := range engine.Routes() {
		if _, ok := seen[ri.Path]; ok {
			continue
		}
		seen[ri.Path] = struct{}{}
		paths = append(paths, ri.Path)
	}
	sort.Strings(paths)
	return paths
}

// Package catalogapi binds the public catalog endpoints onto a web server.
package catalogapi

import (
	"time"

	"github.com/talkincode/catalog/internal/repository"
	"github.com/talkincode/catalog/internal/webserver"
)

// Register binds /ping and /produtos. now supplies the reference date for
// discounts; nil means time.Now.
func Register(srv *webserver.Server, repo repository.ProductRepository, now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	h := &productHandler{repo: repo, now: now}

	srv.GET("/ping", ping)
	srv.GET("/produtos", h.listProducts)
}

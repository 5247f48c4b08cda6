// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/louisbranch/beyondui/internal/services/web/module"
	"github.com/louisbranch/beyondui/internal/services/web/modules/blogpost"
	"github.com/louisbranch/beyondui/internal/services/web/modules/home"
	"github.com/louisbranch/beyondui/internal/services/web/modules/posts"
	"github.com/louisbranch/beyondui/internal/services/web/modules/sitemap"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Default returns the modules served by the web service. Order matters only
// for error messages; the mux picks the most specific pattern.
func Default(deps module.Dependencies) []Module {
	return []Module{
		home.New(deps),
		posts.New(deps),
		blogpost.New(deps),
		sitemap.New(deps),
	}
}

// Healthy reports whether every module that reports health is healthy.
func Healthy(mods []Module) bool {
	for _, mod := range mods {
		reporter, ok := mod.(module.HealthReporter)
		if ok && !reporter.Healthy() {
			return false
		}
	}
	return true
}

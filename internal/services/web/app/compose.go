// Package app composes web modules into the root HTTP handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/beyondui/internal/services/web/module"
)

// ComposeInput carries the modules mounted on the root handler.
type ComposeInput struct {
	Modules []module.Module
}

// Compose builds a root HTTP handler from modules.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		if err := mountModule(root, feature, seen); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func mountModule(root *http.ServeMux, feature module.Module, seen map[string]string) error {
	mount, err := resolveMount(feature)
	if err != nil {
		return err
	}
	patterns := make([]string, 0, len(mount.Paths)+2)
	if mount.Prefix != "" {
		patterns = append(patterns, mount.Prefix)
		// Without the alias the mux would redirect /posts to /posts/.
		if alias := slashlessPrefixAlias(mount.Prefix); alias != "" {
			patterns = append(patterns, alias)
		}
	}
	patterns = append(patterns, mount.Paths...)

	for _, pattern := range patterns {
		if previous, ok := seen[pattern]; ok {
			return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), pattern, previous)
		}
		seen[pattern] = feature.ID()
	}
	for _, pattern := range patterns {
		root.Handle(pattern, mount.Handler)
	}
	return nil
}

func resolveMount(feature module.Module) (module.Mount, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if mount.Prefix == "" && len(mount.Paths) == 0 {
		return module.Mount{}, fmt.Errorf("mount module %q: prefix is required", feature.ID())
	}
	if mount.Prefix != "" {
		if err := validatePrefix(mount.Prefix); err != nil {
			return module.Mount{}, fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
		}
	}
	for _, path := range mount.Paths {
		if err := validatePath(path); err != nil {
			return module.Mount{}, fmt.Errorf("mount module %q has invalid path %q: %w", feature.ID(), path, err)
		}
	}
	if mount.Handler == nil {
		return module.Mount{}, fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, nil
}

func validatePrefix(prefix string) error {
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

func validatePath(path string) error {
	if strings.TrimSpace(path) != path || path == "" {
		return fmt.Errorf("path must be non-empty without surrounding whitespace")
	}
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("path must begin with /")
	}
	if strings.HasSuffix(path, "/") {
		return fmt.Errorf("path must not end with /")
	}
	return nil
}

func slashlessPrefixAlias(prefix string) string {
	return strings.TrimSuffix(prefix, "/")
}

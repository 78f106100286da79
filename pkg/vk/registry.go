package vk

import (
	_ "embed"

	"github.com/vietanhduong/wcap/pkg/registry"
)

//go:embed registry.yaml
var registryYAML []byte

// Registry returns the description the tables of this package were
// generated from.
func Registry() (*registry.Registry, error) {
	return registry.Parse(registryYAML)
}

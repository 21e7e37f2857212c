// Package scenes holds the built-in demo scenes shipped with the viewer.
// Workshop participants add their own scene types here and register them in
// RegisterAll.
package scenes

import (
	"worldshop/internal/registry"
)

// RegisterAll registers every built-in scene. Called once at startup;
// registration errors are programming mistakes (duplicate keys), so they
// propagate.
func RegisterAll() error {
	if err := registry.Register("plaza", func() registry.Scene { return &Plaza{} }); err != nil {
		return err
	}
	if err := registry.Register("orchard", func() registry.Scene { return &Orchard{} }); err != nil {
		return err
	}
	return nil
}

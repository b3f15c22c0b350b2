package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Buckets      map[string]int `json:"buckets"`
	UnknownKeys  []string       `json:"unknown_keys,omitempty"`
	DroppedItems int            `json:"dropped_items"`
	ArchiverType string         `json:"archiver_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	counts := make(map[string]int, len(s.container.buckets))
	for k, items := range s.container.buckets {
		counts[k.String()] = len(items)
	}

	archiverType := "unknown"
	if comp, ok := s.archiver.(introspection.Component); ok {
		archiverType = comp.ComponentType()
	}

	return ServiceState{
		Buckets:      counts,
		UnknownKeys:  s.report.UnknownKeys,
		DroppedItems: s.report.DroppedItems,
		ArchiverType: archiverType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)

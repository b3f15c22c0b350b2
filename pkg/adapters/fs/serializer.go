package fs

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Serializer defines how an envelope is rendered to and from archive
// bytes. The choice only affects the outer file format; item blobs inside
// the envelope stay opaque either way.
type Serializer interface {
	// Marshal converts the envelope to archive bytes.
	Marshal(env Envelope) ([]byte, error)
	// Unmarshal parses archive bytes back into an envelope.
	Unmarshal(data []byte) (Envelope, error)
}

// DefaultSerializers returns the standard set of serializers keyed by
// archive file extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json":    &JSONSerializer{},
		".yaml":    &YAMLSerializer{},
		".yml":     &YAMLSerializer{},
		".msgpack": &MsgpackSerializer{},
		".bin":     &MsgpackSerializer{},
	}
}

// --- JSON Serializer ---

// JSONSerializer renders the envelope as a JSON object; blobs become
// base64 strings per encoding/json convention. Inspectable with any JSON
// tooling at the cost of base64 inflation.
type JSONSerializer struct{}

func (s *JSONSerializer) Marshal(env Envelope) ([]byte, error) {
	return json.MarshalIndent(env, "", "  ")
}

func (s *JSONSerializer) Unmarshal(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("invalid json envelope: %w", err)
	}
	if env == nil {
		return nil, fmt.Errorf("invalid json envelope: null document")
	}
	return env, nil
}

// --- YAML Serializer ---

// YAMLSerializer renders the envelope as YAML; blobs become !!binary
// base64 scalars.
type YAMLSerializer struct{}

func (s *YAMLSerializer) Marshal(env Envelope) ([]byte, error) {
	return yaml.Marshal(env)
}

func (s *YAMLSerializer) Unmarshal(data []byte) (Envelope, error) {
	var env Envelope
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("invalid yaml envelope: %w", err)
	}
	if env == nil {
		return nil, fmt.Errorf("invalid yaml envelope: empty document")
	}
	return env, nil
}

// --- MessagePack Serializer ---

// MsgpackSerializer renders the envelope as MessagePack, which carries
// byte blobs natively. The default for archives whose extension matches
// no other serializer.
type MsgpackSerializer struct{}

func (s *MsgpackSerializer) Marshal(env Envelope) ([]byte, error) {
	return msgpack.Marshal(env)
}

func (s *MsgpackSerializer) Unmarshal(data []byte) (Envelope, error) {
	var env Envelope
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("invalid msgpack envelope: %w", err)
	}
	if env == nil {
		return nil, fmt.Errorf("invalid msgpack envelope: nil document")
	}
	return env, nil
}

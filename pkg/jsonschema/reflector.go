package jsonschema

import (
	"encoding/json"
	"fmt"
	"reflect"

	invopopjsonschema "github.com/invopop/jsonschema"

	"github.com/macropower/pageid/pkg/pagepath"
)

type Reflector struct {
	Reflector *invopopjsonschema.Reflector
}

func NewReflector() *Reflector {
	return &Reflector{
		Reflector: &invopopjsonschema.Reflector{
			DoNotReference: true,
			ExpandedStruct: true,
			Anonymous:      true,
		},
	}
}

func (r *Reflector) Reflect(t reflect.Type) *invopopjsonschema.Schema {
	return r.Reflector.ReflectFromType(t)
}

// FileIdentitySchema returns a schema accepting either serialized record
// shape.
func (r *Reflector) FileIdentitySchema() *invopopjsonschema.Schema {
	resolved := r.Reflect(reflect.TypeFor[pagepath.ResolvedRecord]())
	resolved.Version = ""
	resolved.Title = "ResolvedFileIdentity"

	unresolved := r.Reflect(reflect.TypeFor[pagepath.UnresolvedRecord]())
	unresolved.Version = ""
	unresolved.Title = "UnresolvedFileIdentity"

	return &invopopjsonschema.Schema{
		Version: invopopjsonschema.Version,
		Title:   "FileIdentity",
		OneOf:   []*invopopjsonschema.Schema{resolved, unresolved},
	}
}

// MarshalFileIdentitySchema returns [Reflector.FileIdentitySchema] as
// indented JSON.
func (r *Reflector) MarshalFileIdentitySchema() ([]byte, error) {
	b, err := json.MarshalIndent(r.FileIdentitySchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json schema: %w", err)
	}

	return b, nil
}

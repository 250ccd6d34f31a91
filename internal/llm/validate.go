package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var compiled struct {
	sync.Mutex
	byName map[string]*jsonschema.Schema
}

// validateResponse checks raw against schema. A nil schema accepts
// anything. Failures are KindInvalid errors carrying raw.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return invalid(raw, "reply is not JSON: %w", err)
	}
	sch, err := compile(schema)
	if err != nil {
		return invalid(raw, "schema %s: %w", schema.Name, err)
	}
	if err := sch.Validate(doc); err != nil {
		return invalid(raw, "reply does not match %s: %w", schema.Name, err)
	}
	return nil
}

// compile returns the cached compiled form of s, compiling on first use.
func compile(s *Schema) (*jsonschema.Schema, error) {
	compiled.Lock()
	defer compiled.Unlock()
	if sch, ok := compiled.byName[s.Name]; ok {
		return sch, nil
	}

	def, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("mem://schemas/%s.json", s.Name)
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, err
	}
	if compiled.byName == nil {
		compiled.byName = make(map[string]*jsonschema.Schema)
	}
	compiled.byName[s.Name] = sch
	return sch, nil
}

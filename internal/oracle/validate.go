package oracle

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema describes the JSON shape a structured reply must take. The
// Name doubles as the schema name sent to providers that want one.
// Instances are package-level vars; each compiles itself once, on
// first use.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	compErr  error
}

// Validate checks raw against the schema. A failure is reported as
// *InvalidResponseError carrying the offending content.
func (s *Schema) Validate(raw json.RawMessage) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &InvalidResponseError{Content: raw, Err: fmt.Errorf("reply is not JSON: %w", err)}
	}

	s.once.Do(s.compile)
	if s.compErr != nil {
		return &InvalidResponseError{Content: raw, Err: s.compErr}
	}

	if err := s.compiled.Validate(doc); err != nil {
		return &InvalidResponseError{Content: raw, Err: err}
	}
	return nil
}

func (s *Schema) compile() {
	// The compiler wants the definition as decoded JSON, where every
	// number is a float64. A Go literal map holds ints, so round-trip
	// it through encoding/json first.
	enc, err := json.Marshal(s.Definition)
	if err != nil {
		s.compErr = fmt.Errorf("encode schema %q: %w", s.Name, err)
		return
	}
	var doc any
	if err := json.Unmarshal(enc, &doc); err != nil {
		s.compErr = fmt.Errorf("decode schema %q: %w", s.Name, err)
		return
	}

	url := fmt.Sprintf("socra://schema/%s.json", s.Name)
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		s.compErr = fmt.Errorf("register schema %q: %w", s.Name, err)
		return
	}
	s.compiled, s.compErr = c.Compile(url)
	if s.compErr != nil {
		s.compErr = fmt.Errorf("compile schema %q: %w", s.Name, s.compErr)
	}
}

package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	jsValidator "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/froggy1014/orval/oaserrors"
)

//go:embed schema.json
var schemaJSON string

const schemaURL = "https://github.com/froggy1014/orval/config/schema.json"

var (
	schemaOnce      sync.Once
	schemaValidator *jsValidator.Schema
	schemaErr       error
	schemaPrinter   = message.NewPrinter(language.English)
)

func compiledSchema() (*jsValidator.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsValidator.UnmarshalJSON(strings.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("config: embedded schema: %w", err)
			return
		}
		c := jsValidator.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("config: embedded schema: %w", err)
			return
		}
		schemaValidator, schemaErr = c.Compile(schemaURL)
	})
	return schemaValidator, schemaErr
}

// ValidateSchema checks a YAML or JSON configuration document against the
// embedded schema. Violations are reported as a *oaserrors.ConfigError whose
// Message lists each failing location.
func ValidateSchema(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}

	jsonData, err := sigsyaml.YAMLToJSON(data)
	if err != nil {
		return &oaserrors.ParseError{Message: "configuration is not valid YAML", Cause: err}
	}
	inst, err := jsValidator.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return &oaserrors.ParseError{Message: "configuration is not valid JSON", Cause: err}
	}
	// An empty document decodes to null and means "all defaults".
	if inst == nil {
		return nil
	}

	err = sch.Validate(inst)
	if err == nil {
		return nil
	}

	var validationErr *jsValidator.ValidationError
	if !errors.As(err, &validationErr) {
		return &oaserrors.ConfigError{Message: "schema validation failed", Cause: err}
	}
	causes := rootCauses(validationErr)
	return &oaserrors.ConfigError{
		Option:  causes[0].location,
		Message: joinCauses(causes),
	}
}

type schemaCause struct {
	location string
	message  string
}

func rootCauses(err *jsValidator.ValidationError) []schemaCause {
	if len(err.Causes) == 0 {
		return []schemaCause{{
			location: "/" + strings.Join(err.InstanceLocation, "/"),
			message:  err.ErrorKind.LocalizedString(schemaPrinter),
		}}
	}
	var out []schemaCause
	for _, cause := range err.Causes {
		out = append(out, rootCauses(cause)...)
	}
	// Deepest locations first: they name the offending value rather than a parent.
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := strings.Count(out[i].location, "/"), strings.Count(out[j].location, "/")
		if di != dj {
			return di > dj
		}
		return out[i].location < out[j].location
	})
	return out
}

func joinCauses(causes []schemaCause) string {
	parts := make([]string, 0, len(causes))
	for _, c := range causes {
		parts = append(parts, fmt.Sprintf("at %s: %s", c.location, c.message))
	}
	return strings.Join(parts, "; ")
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/froggy1014/orval/document"
)

func TestCompileOperationName(t *testing.T) {
	op := &document.Operation{OperationID: "list_pets", Summary: "List pets", Tags: []string{"pets"}}

	tests := []struct {
		name  string
		tmpl  string
		op    *document.Operation
		route string
		verb  document.Verb
		want  string
	}{
		{"camel id", "{{ camel .OperationID }}", op, "/pets", document.VerbGet, "listPets"},
		{"verb and pascal route", "{{ .Verb }}{{ pascal .Route }}", op, "/pets/{petId}", document.VerbGet, "getPetsPetId"},
		{"first tag", "{{ index .Tags 0 }}_{{ snake .Summary }}", op, "/pets", document.VerbGet, "pets_list pets"},
		{"derived id", "{{ .OperationID }}", &document.Operation{}, "/pets/{petId}", document.VerbDelete, "delete-pets-petId"},
		{"nil operation", "{{ kebab .Verb }}", nil, "/", document.VerbPost, "post"},
		{"exec error yields empty", "{{ index .Tags 3 }}", op, "/pets", document.VerbGet, ""},
		{"whitespace trimmed", "  {{ upper .Verb }}  ", op, "/pets", document.VerbPut, "PUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := CompileOperationName(tt.tmpl)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fn(tt.op, tt.route, tt.verb))
		})
	}
}

func TestCompileOperationNameErrors(t *testing.T) {
	for _, tmpl := range []string{"{{ .Verb", "{{ nosuchfunc .Verb }}"} {
		_, err := CompileOperationName(tmpl)
		assert.Error(t, err, tmpl)
	}
}

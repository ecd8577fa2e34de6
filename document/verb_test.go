package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVerb(t *testing.T) {
	tests := []struct {
		input string
		want  Verb
		ok    bool
	}{
		{"get", VerbGet, true},
		{"POST", VerbPost, true},
		{"Patch", VerbPatch, true},
		{"trace", VerbTrace, true},
		{"parameters", "", false},
		{"x-internal", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseVerb(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, IsVerb(tt.input))
		})
	}
}

func TestOperationID(t *testing.T) {
	tests := []struct {
		name  string
		op    *Operation
		route string
		verb  Verb
		want  string
	}{
		{"explicit id", &Operation{OperationID: "listPets"}, "/pets", VerbGet, "listPets"},
		{"whitespace id falls back", &Operation{OperationID: "  "}, "/pets", VerbGet, "get-pets"},
		{"derived with param", &Operation{}, "/pets/{petId}", VerbGet, "get-pets-petId"},
		{"nil operation", nil, "/store/inventory", VerbPost, "post-store-inventory"},
		{"root route", &Operation{}, "/", VerbDelete, "delete"},
		{"no verb", &Operation{}, "", "", "operation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OperationID(tt.op, tt.route, tt.verb)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
		})
	}
}

func TestFormatRoute(t *testing.T) {
	tests := []struct {
		route      string
		wantFormat string
		wantNames  []string
	}{
		{"/pets", "/pets", nil},
		{"/pets/{petId}", "/pets/%s", []string{"petId"}},
		{"/pets/{petId}/toys/{toyId}", "/pets/%s/toys/%s", []string{"petId", "toyId"}},
		{"/files/{name}.{ext}", "/files/%s.%s", []string{"name", "ext"}},
		{"/discount/100%/{code}", "/discount/100%%/%s", []string{"code"}},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			assert.Equal(t, tt.wantFormat, FormatRoute(tt.route))
			assert.Equal(t, tt.wantNames, PathParamNames(tt.route))
		})
	}
}

func TestRequestBodyHelpers(t *testing.T) {
	body := &RequestBody{Content: []MediaType{
		{ContentType: "application/json"},
		{ContentType: "application/xml", Schema: &Schema{Ref: "#/components/schemas/Pet"}},
		{ContentType: "application/json"},
	}}

	assert.Equal(t, []string{"application/json", "application/xml", "application/json"}, body.ContentTypes())
	assert.Equal(t, "Pet", body.Media("application/xml").Schema.RefName())
	assert.Nil(t, body.Media("text/plain"))

	var nilBody *RequestBody
	assert.Nil(t, nilBody.ContentTypes())
	assert.Nil(t, nilBody.Media("application/json"))
}

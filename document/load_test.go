package document

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/froggy1014/orval/oaserrors"
)

func TestLoadFile(t *testing.T) {
	doc, err := LoadFile(context.Background(), filepath.Join("testdata", "petstore.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Petstore", doc.Title)
	assert.Equal(t, "1.0.0", doc.Version)
	require.Len(t, doc.Paths, 2)

	pets := doc.Paths[0]
	assert.Equal(t, "/pets", pets.Route)
	require.Len(t, pets.Operations, 2)
	// post is declared before get in the file and must stay first
	assert.Equal(t, VerbPost, pets.Operations[0].Verb)
	assert.Equal(t, VerbGet, pets.Operations[1].Verb)

	create := pets.Operation(VerbPost)
	require.NotNil(t, create)
	assert.Equal(t, "createPet", create.OperationID)
	assert.Equal(t, []string{"pets"}, create.Tags)
	require.NotNil(t, create.RequestBody)
	assert.True(t, create.RequestBody.Required)
	assert.Equal(t, []string{"application/json", "application/xml"}, create.RequestBody.ContentTypes())
	assert.Equal(t, "Pet", create.RequestBody.Content[0].Schema.RefName())

	require.Len(t, create.Responses, 2)
	assert.Equal(t, "201", create.Responses[0].Status)
	assert.Equal(t, "default", create.Responses[1].Status)
	assert.Equal(t, "Error", create.Responses[1].Content[0].Schema.RefName())

	list := pets.Operation(VerbGet)
	require.NotNil(t, list)
	require.Len(t, list.Parameters, 2)
	assert.Equal(t, "limit", list.Parameters[0].Name)
	assert.Equal(t, InQuery, list.Parameters[0].In)
	assert.Equal(t, "integer", list.Parameters[0].Schema.Type)
	assert.Equal(t, "int32", list.Parameters[0].Schema.Format)
	assert.Equal(t, "array", list.Responses[0].Content[0].Schema.Type)
	assert.Equal(t, "Pet", list.Responses[0].Content[0].Schema.Items.RefName())

	byID := doc.Paths[1]
	assert.Equal(t, "/pets/{petId}", byID.Route)
	require.Len(t, byID.Parameters, 1)
	assert.True(t, byID.Parameters[0].Required)
	require.Len(t, byID.Operations, 2)
	assert.Equal(t, VerbGet, byID.Operations[0].Verb)
	assert.Equal(t, VerbDelete, byID.Operations[1].Verb)

	getPet := byID.Operation(VerbGet)
	assert.Empty(t, getPet.OperationID)
	assert.True(t, getPet.Deprecated)
	assert.Equal(t, true, getPet.Extensions["x-internal"])
	assert.Nil(t, getPet.RequestBody)
}

func TestLoadPreservesVerbOrderInJSON(t *testing.T) {
	const spec = `{
  "openapi": "3.0.3",
  "info": {"title": "Order", "version": "1"},
  "paths": {
    "/things": {
      "delete": {"responses": {"204": {"description": "ok"}}},
      "put": {"responses": {"204": {"description": "ok"}}},
      "get": {"responses": {"200": {"description": "ok"}}}
    }
  }
}`
	doc, err := Load(context.Background(), []byte(spec))
	require.NoError(t, err)
	require.Len(t, doc.Paths, 1)

	var verbs []Verb
	for _, op := range doc.Paths[0].Operations {
		verbs = append(verbs, op.Verb)
	}
	assert.Equal(t, []Verb{VerbDelete, VerbPut, VerbGet}, verbs)
}

func TestLoadKeepsStringTagsOnly(t *testing.T) {
	tests := []struct {
		name string
		tags string
		want []string
	}{
		{"strings", "[pets, store]", []string{"pets", "store"}},
		{"mixed kinds", "[pets, 42, {a: b}]", []string{"pets"}},
		{"quoted number", "[pets, '42']", []string{"pets", "42"}},
		{"boolean", "[true]", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := "openapi: 3.0.3\ninfo:\n  title: Tags\n  version: '1'\npaths:\n  /pets:\n    get:\n      tags: " +
				tt.tags + "\n      responses:\n        '200':\n          description: ok\n"
			doc, err := Load(context.Background(), []byte(spec))
			require.NoError(t, err)
			require.Len(t, doc.Paths, 1)

			op := doc.Paths[0].Operation(VerbGet)
			require.NotNil(t, op)
			assert.Equal(t, tt.want, op.Tags)
		})
	}
}

func TestVerbOrderIgnoresCaseDuplicates(t *testing.T) {
	tests := []struct {
		name string
		item string
		want []Verb
	}{
		{"distinct", `{"get": {}, "post": {}}`, []Verb{VerbGet, VerbPost}},
		{"upper then lower", `{"GET": {}, "get": {}, "post": {}}`, []Verb{VerbGet, VerbPost}},
		{"mixed case repeats", `{"delete": {}, "Delete": {}, "DELETE": {}}`, []Verb{VerbDelete}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := verbOrder([]byte(`{"paths": {"/things": ` + tt.item + `}}`))
			require.NoError(t, err)
			assert.Equal(t, tt.want, order["/things"])
		})
	}
}

func TestLoadNoPaths(t *testing.T) {
	doc, err := Load(context.Background(), []byte("openapi: 3.0.3\ninfo:\n  title: Empty\n  version: '1'\n"))
	require.NoError(t, err)
	assert.Empty(t, doc.Paths)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "openapi: [3.0.3"},
		{"empty", ""},
		{"scalar root", "just a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), []byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrParse), "expected ParseError, got %v", err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var pe *oaserrors.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Path, "missing.yaml")
}

func TestLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, []byte("openapi: 3.0.3"))
	assert.ErrorIs(t, err, context.Canceled)
}

package verbs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/froggy1014/orval/config"
	"github.com/froggy1014/orval/document"
)

func TestSupportsContentTypeSplit(t *testing.T) {
	assert.True(t, SupportsContentTypeSplit(config.ClientNetHTTP))
	assert.True(t, SupportsContentTypeSplit(config.ClientResty))
	assert.False(t, SupportsContentTypeSplit(config.ClientFetch))
	assert.False(t, SupportsContentTypeSplit(""))
}

func TestRequestContentTypes(t *testing.T) {
	body := &document.RequestBody{Content: []document.MediaType{
		{ContentType: "application/json"},
		{ContentType: "application/json"},
		{ContentType: "application/xml"},
		{ContentType: "multipart/form-data"},
	}}

	tests := []struct {
		name   string
		filter *config.ContentTypeFilter
		want   []string
	}{
		{"no filter", nil, []string{"application/json", "application/xml", "multipart/form-data"}},
		{"include", &config.ContentTypeFilter{Include: []string{"multipart/form-data", "application/json"}}, []string{"application/json", "multipart/form-data"}},
		{"exclude", &config.ContentTypeFilter{Exclude: []string{"application/xml"}}, []string{"application/json", "multipart/form-data"}},
		{
			"include then exclude",
			&config.ContentTypeFilter{Include: []string{"application/json", "application/xml"}, Exclude: []string{"application/json"}},
			[]string{"application/xml"},
		},
		{"empty include keeps nothing", &config.ContentTypeFilter{Include: []string{}}, []string{}},
		{"include without declared types", &config.ContentTypeFilter{Include: []string{"text/plain"}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequestContentTypes(body, tt.filter))
		})
	}

	assert.Nil(t, RequestContentTypes(nil, nil))
}

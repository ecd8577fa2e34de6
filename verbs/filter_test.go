package verbs

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/froggy1014/orval/config"
	"github.com/froggy1014/orval/document"
)

func TestMatchTags(t *testing.T) {
	petsOrStore := []config.TagMatcher{config.Literal("pets"), config.Pattern(regexp.MustCompile(`^store`))}

	tests := []struct {
		name    string
		tags    []string
		filters *config.Filters
		want    bool
	}{
		{"no filters", []string{"pets"}, nil, true},
		{"no tag list", []string{"pets"}, &config.Filters{Mode: config.FilterExclude}, true},
		{"literal match", []string{"admin", "pets"}, &config.Filters{Tags: petsOrStore}, true},
		{"pattern match", []string{"storefront"}, &config.Filters{Tags: petsOrStore}, true},
		{"no match", []string{"admin"}, &config.Filters{Tags: petsOrStore}, false},
		{"untagged include", nil, &config.Filters{Tags: petsOrStore}, false},
		{"empty tag list keeps nothing", []string{"pets"}, &config.Filters{Tags: []config.TagMatcher{}}, false},
		{"exclude match", []string{"pets"}, &config.Filters{Tags: petsOrStore, Mode: config.FilterExclude}, false},
		{"exclude no match", []string{"admin"}, &config.Filters{Tags: petsOrStore, Mode: config.FilterExclude}, true},
		{"untagged exclude", nil, &config.Filters{Tags: petsOrStore, Mode: config.FilterExclude}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchTags(tt.tags, tt.filters))
		})
	}
}

func TestMatchTagsExcludeIsNegation(t *testing.T) {
	matchers := []config.TagMatcher{config.Literal("pets"), config.Pattern(regexp.MustCompile(`^adm`))}
	tagSets := [][]string{nil, {}, {"pets"}, {"admin"}, {"store"}, {"store", "pets"}, {"PETS"}}

	for _, tags := range tagSets {
		include := MatchTags(tags, &config.Filters{Tags: matchers, Mode: config.FilterInclude})
		exclude := MatchTags(tags, &config.Filters{Tags: matchers, Mode: config.FilterExclude})
		assert.NotEqual(t, include, exclude, "tags %v", tags)
	}
}

func TestFilterOperations(t *testing.T) {
	item := &document.PathItem{
		Route: "/pets",
		Operations: []document.VerbOperation{
			{Verb: document.VerbPost, Operation: &document.Operation{OperationID: "createPet", Tags: []string{"pets"}}},
			{Verb: document.VerbGet, Operation: &document.Operation{OperationID: "listPets", Tags: []string{"admin"}}},
			{Verb: document.Verb("x-custom"), Operation: &document.Operation{OperationID: "custom", Tags: []string{"pets"}}},
			{Verb: document.VerbPut, Operation: &document.Operation{OperationID: "replacePet", Tags: []string{"pets"}}},
		},
	}

	got := FilterOperations(item, &config.Filters{Tags: []config.TagMatcher{config.Literal("pets")}})
	var ids []string
	for _, vo := range got {
		ids = append(ids, vo.Operation.OperationID)
	}
	assert.Equal(t, []string{"createPet", "replacePet"}, ids)

	assert.Len(t, FilterOperations(item, nil), 3)
	assert.Nil(t, FilterOperations(nil, nil))
}

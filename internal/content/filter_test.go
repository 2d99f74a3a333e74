package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id    string
	texts []string
	tags  []string
}

func (i item) SearchableText() []string { return i.texts }
func (i item) Tags() []string           { return i.tags }

func ids(items []item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.id)
	}
	return out
}

func sampleCollection() []item {
	return []item{
		{id: "web", texts: []string{"Dashboard", "Built a portfolio UI"}, tags: []string{"React", "Node.js"}},
		{id: "fw", texts: []string{"Sensor Firmware", "Low power telemetry"}, tags: []string{"C++", "RTOS"}},
		{id: "infra", texts: []string{"Platform", "Led a Kubernetes deployment", "Cut costs"}, tags: nil},
		{id: "ml", texts: []string{"Recommender"}, tags: []string{"PyTorch", "Data Visualization"}},
	}
}

func TestFilterScenarios(t *testing.T) {
	tests := []struct {
		name     string
		items    []item
		criteria Criteria
		want     []string
	}{
		{
			name: "frontend keeps react entry only",
			items: []item{
				{id: "a", tags: []string{"React", "Node.js"}},
				{id: "b", tags: []string{"C++", "RTOS"}},
			},
			criteria: Criteria{Category: CategoryFrontend},
			want:     []string{"a"},
		},
		{
			name:     "description bullet matches regardless of tags",
			items:    sampleCollection(),
			criteria: Criteria{Query: "kubernetes", Category: CategoryAll},
			want:     []string{"infra"},
		},
		{
			name:     "no match is empty",
			items:    sampleCollection(),
			criteria: Criteria{Query: "zzz-no-match", Category: CategoryAll},
			want:     []string{},
		},
		{
			name:     "query matches tag",
			items:    sampleCollection(),
			criteria: Criteria{Query: "rtos", Category: CategoryAll},
			want:     []string{"fw"},
		},
		{
			name:     "search and category are combined with and",
			items:    sampleCollection(),
			criteria: Criteria{Query: "firmware", Category: CategoryFrontend},
			want:     []string{},
		},
		{
			name:     "embedded matches c++ tag",
			items:    sampleCollection(),
			criteria: Criteria{Category: CategoryEmbedded},
			want:     []string{"fw"},
		},
		{
			name:     "ai matches substring of tag",
			items:    sampleCollection(),
			criteria: Criteria{Category: CategoryAI},
			want:     []string{"ml"},
		},
		{
			name:     "entry without tags never matches a category",
			items:    sampleCollection(),
			criteria: Criteria{Query: "platform", Category: CategoryCloud},
			want:     []string{},
		},
		{
			name:     "unknown category matches nothing",
			items:    sampleCollection(),
			criteria: Criteria{Category: CategoryID("quantum")},
			want:     []string{},
		},
		{
			name:     "empty category behaves as all",
			items:    sampleCollection(),
			criteria: Criteria{Query: "d"},
			want:     []string{"web", "infra", "ml"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(tc.items, tc.criteria)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestFilterEmptyQueryReturnsEverything(t *testing.T) {
	items := sampleCollection()
	got := Filter(items, Criteria{Query: "", Category: CategoryAll})
	if diff := cmp.Diff(ids(items), ids(got)); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestFilterIsIdempotentAndDoesNotMutate(t *testing.T) {
	items := sampleCollection()
	before := sampleCollection()
	c := Criteria{Query: "e", Category: CategoryBackend}

	first := Filter(items, c)
	second := Filter(items, c)

	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, before, items)
}

func TestFilterPreservesOrder(t *testing.T) {
	items := sampleCollection()
	got := Filter(items, Criteria{Query: "o", Category: CategoryAll})

	// every result must appear in the input in the same relative order
	pos := 0
	for _, g := range got {
		for pos < len(items) && items[pos].id != g.id {
			pos++
		}
		require.Less(t, pos, len(items), "%s out of order", g.id)
		pos++
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	items := sampleCollection()
	for _, cat := range []CategoryID{CategoryAll, CategoryFrontend, CategoryBackend} {
		upper := Filter(items, Criteria{Query: "REACT", Category: cat})
		lower := Filter(items, Criteria{Query: "react", Category: cat})
		assert.Equal(t, ids(lower), ids(upper), "category %s", cat)
	}
}

func TestFilterDroppingAPredicateNeverShrinks(t *testing.T) {
	items := sampleCollection()
	for _, cat := range []CategoryID{CategoryFrontend, CategoryBackend, CategoryAI, CategoryCloud, CategoryEmbedded} {
		both := Filter(items, Criteria{Query: "o", Category: cat})
		searchOnly := Filter(items, Criteria{Query: "o", Category: CategoryAll})
		categoryOnly := Filter(items, Criteria{Category: cat})

		assert.LessOrEqual(t, len(both), len(searchOnly))
		assert.LessOrEqual(t, len(both), len(categoryOnly))
		for _, e := range both {
			assert.True(t, MatchesSearch(e, "o"))
			assert.True(t, MatchesCategory(e, cat))
		}
	}
}

func TestMatchesCategoryUsesMarkersOnly(t *testing.T) {
	// "red" is not a marker even though it is a prefix of "redux"
	assert.False(t, MatchesCategory(item{tags: []string{"Red"}}, CategoryFrontend))
	assert.True(t, MatchesCategory(item{tags: []string{"React.js"}}, CategoryFrontend))
	assert.True(t, MatchesCategory(item{tags: []string{"anything"}}, CategoryAll))
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryAll, ParseCategory(""))
	assert.Equal(t, CategoryAll, ParseCategory("  "))
	assert.Equal(t, CategoryCloud, ParseCategory(" Cloud "))
	assert.Equal(t, CategoryID("other"), ParseCategory("other"))
	assert.False(t, ParseCategory("other").Known())
	assert.True(t, CategoryAI.Known())
}

func TestCategoriesAndKeywordsAreCopies(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 6)
	assert.Equal(t, CategoryAll, cats[0].ID)
	cats[0].Label = "changed"
	assert.Equal(t, "All", Categories()[0].Label)

	kw := Keywords(CategoryEmbedded)
	require.NotEmpty(t, kw)
	kw[0] = "changed"
	assert.Equal(t, "c++", Keywords(CategoryEmbedded)[0])
	assert.Nil(t, Keywords(CategoryAll))
}

package repository

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/gogotex/docstore/internal/document"
	"github.com/gogotex/docstore/internal/idgen"
)

var (
	t1 = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	t2 = time.Date(2024, 2, 20, 9, 0, 0, 0, time.UTC)
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ids(docs []*document.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ID)
	}
	return out
}

func TestMemoryRepo_SaveGeneratesDistinctIDs(t *testing.T) {
	r := NewMemoryRepo()
	a := r.Save(&document.Document{Title: document.StringPtr("a")})
	b := r.Save(&document.Document{Title: document.StringPtr("a")})

	require.NotEmpty(t, a.ID)
	require.NotEmpty(t, b.ID)
	require.NotEqual(t, a.ID, b.ID)
	require.Equal(t, 2, r.Len())
}

func TestMemoryRepo_SaveUsesInjectedGeneratorAndClock(t *testing.T) {
	r := NewMemoryRepo(WithIDGenerator(idgen.Sequence("doc-")), WithClock(fixedClock(t1)))

	d := r.Save(&document.Document{})
	require.Equal(t, "doc-1", d.ID)
	require.True(t, d.Created.Equal(t1))
}

func TestMemoryRepo_SaveKeepsCallerCreatedOnInsert(t *testing.T) {
	r := NewMemoryRepo(WithClock(fixedClock(t2)))
	d := r.Save(&document.Document{ID: "x", Created: t1})
	require.True(t, d.Created.Equal(t1))
}

func TestMemoryRepo_CreatedIsImmutable(t *testing.T) {
	r := NewMemoryRepo(WithClock(fixedClock(t2)))
	r.Save(&document.Document{ID: "x", Title: document.StringPtr("v1"), Created: t1})

	updated := r.Save(&document.Document{ID: "x", Title: document.StringPtr("v2"), Created: t2})
	require.True(t, updated.Created.Equal(t1))

	again := r.Save(&document.Document{ID: "x", Title: document.StringPtr("v3")})
	require.True(t, again.Created.Equal(t1))

	got, ok := r.FindByID("x")
	require.True(t, ok)
	require.Equal(t, "v3", *got.Title)
	require.True(t, got.Created.Equal(t1))
	require.Equal(t, 1, r.Len())
}

func TestMemoryRepo_RoundTrip(t *testing.T) {
	r := NewMemoryRepo()
	saved := r.Save(&document.Document{
		Title:   document.StringPtr("t"),
		Content: document.StringPtr("c"),
		Author:  &document.Author{ID: "a1", Name: "Ann"},
	})

	got, ok := r.FindByID(saved.ID)
	require.True(t, ok)
	if diff := cmp.Diff(saved, got); diff != "" {
		t.Fatalf("FindByID mismatch (-saved +got):\n%s", diff)
	}
}

func TestMemoryRepo_FindByIDMiss(t *testing.T) {
	r := NewMemoryRepo()
	got, ok := r.FindByID("nope")
	require.False(t, ok)
	require.Nil(t, got)
}

func TestMemoryRepo_SearchVacuous(t *testing.T) {
	r := NewMemoryRepo()
	r.Save(&document.Document{ID: "1"})
	r.Save(&document.Document{ID: "2", Title: document.StringPtr("x")})

	require.ElementsMatch(t, []string{"1", "2"}, ids(r.Search(nil)))
	require.ElementsMatch(t, []string{"1", "2"}, ids(r.Search(&document.SearchRequest{})))
	require.ElementsMatch(t, []string{"1", "2"}, ids(r.Search(&document.SearchRequest{
		TitlePrefixes: document.AnyOf{}, AuthorIDs: document.AnyOf{},
	})))
}

func TestMemoryRepo_SearchEmptyStore(t *testing.T) {
	got := NewMemoryRepo().Search(nil)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestMemoryRepo_SearchOrWithinAndAcross(t *testing.T) {
	r := NewMemoryRepo()
	r.Save(&document.Document{ID: "ra", Title: document.StringPtr("Report-A"), Author: &document.Author{ID: "a1"}})
	r.Save(&document.Document{ID: "rb", Title: document.StringPtr("Report-B"), Author: &document.Author{ID: "a2"}})
	r.Save(&document.Document{ID: "ma", Title: document.StringPtr("Memo-A"), Author: &document.Author{ID: "a3"}})

	got := r.Search(&document.SearchRequest{
		TitlePrefixes: document.AnyOf{"Report"},
		AuthorIDs:     document.AnyOf{"a1"},
	})
	require.Equal(t, []string{"ra"}, ids(got))

	got = r.Search(&document.SearchRequest{TitlePrefixes: document.AnyOf{"Report", "Memo"}})
	require.ElementsMatch(t, []string{"ra", "rb", "ma"}, ids(got))
}

func TestMemoryRepo_SearchInclusiveRange(t *testing.T) {
	eps := time.Millisecond
	r := NewMemoryRepo()
	r.Save(&document.Document{ID: "before", Created: t1.Add(-eps)})
	r.Save(&document.Document{ID: "at", Created: t1})
	r.Save(&document.Document{ID: "after", Created: t1.Add(eps)})

	got := r.Search(&document.SearchRequest{CreatedFrom: &t1, CreatedTo: &t1})
	require.Equal(t, []string{"at"}, ids(got))
}

func TestMemoryRepo_SearchMissingTitleExcluded(t *testing.T) {
	r := NewMemoryRepo()
	r.Save(&document.Document{ID: "untitled"})
	r.Save(&document.Document{ID: "titled", Title: document.StringPtr("Report")})

	require.Equal(t, []string{"titled"}, ids(r.Search(&document.SearchRequest{TitlePrefixes: document.AnyOf{"R"}})))
	require.ElementsMatch(t, []string{"untitled", "titled"}, ids(r.Search(&document.SearchRequest{TitlePrefixes: document.AnyOf{}})))
}

package document

import "time"

// Author is embedded in a Document and has no lifecycle of its own.
type Author struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// Document is the stored record. Title and Content are pointers so that an
// absent value stays distinct from an empty string. A zero Created means the
// caller did not supply one; every document held by a repository has it set.
type Document struct {
	ID      string    `json:"id" bson:"_id"`
	Title   *string   `json:"title,omitempty" bson:"title,omitempty"`
	Content *string   `json:"content,omitempty" bson:"content,omitempty"`
	Author  *Author   `json:"author,omitempty" bson:"author,omitempty"`
	Created time.Time `json:"created" bson:"created"`
}

// SearchRequest filters documents. Every field is optional; see AnyOf for how
// the list fields behave when nil or empty.
type SearchRequest struct {
	TitlePrefixes    AnyOf      `json:"titlePrefixes,omitempty"`
	ContainsContents AnyOf      `json:"containsContents,omitempty"`
	AuthorIDs        AnyOf      `json:"authorIds,omitempty"`
	CreatedFrom      *time.Time `json:"createdFrom,omitempty"`
	CreatedTo        *time.Time `json:"createdTo,omitempty"`
}

// AnyOf is an optional set of alternatives. A nil or empty set places no
// constraint at all; a non-empty set is satisfied when any member matches.
type AnyOf []string

// Vacuous reports whether the set constrains nothing.
func (a AnyOf) Vacuous() bool {
	return len(a) == 0
}

// Match returns true when the set is vacuous or pred holds for some member.
func (a AnyOf) Match(pred func(string) bool) bool {
	if a.Vacuous() {
		return true
	}
	for _, v := range a {
		if pred(v) {
			return true
		}
	}
	return false
}

// StringPtr is a convenience for filling the optional text fields.
func StringPtr(s string) *string {
	return &s
}

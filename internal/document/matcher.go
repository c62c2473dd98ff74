package document

import (
	"strings"
	"time"
)

// Matches reports whether d satisfies every criteria group in req.
// A nil request matches everything.
//
// d.Created must be set; documents saved through a repository always are.
func Matches(d *Document, req *SearchRequest) bool {
	if req == nil {
		return true
	}
	return matchTitle(d, req.TitlePrefixes) &&
		matchContent(d, req.ContainsContents) &&
		matchAuthor(d, req.AuthorIDs) &&
		matchCreated(d.Created, req.CreatedFrom, req.CreatedTo)
}

func matchTitle(d *Document, prefixes AnyOf) bool {
	return prefixes.Match(func(p string) bool {
		return d.Title != nil && strings.HasPrefix(*d.Title, p)
	})
}

func matchContent(d *Document, parts AnyOf) bool {
	return parts.Match(func(s string) bool {
		return d.Content != nil && strings.Contains(*d.Content, s)
	})
}

func matchAuthor(d *Document, ids AnyOf) bool {
	return ids.Match(func(id string) bool {
		return d.Author != nil && d.Author.ID == id
	})
}

// bounds are inclusive on both ends
func matchCreated(created time.Time, from, to *time.Time) bool {
	if from != nil && created.Before(*from) {
		return false
	}
	if to != nil && created.After(*to) {
		return false
	}
	return true
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify partitions extracted articles into keyword/author matches
// and the rest.
package classify

import (
	"strings"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// Partition splits articles into matched and unmatched results, preserving
// source order within each slice. Every article lands in exactly one slice.
// Matching is a case-insensitive substring test: any keyword against the
// title, each author term against every author name. With no keywords and no
// author terms, everything is unmatched.
func Partition(articles []types.ArticleRecord, keywords, authorTerms []string) (matched, unmatched []types.MatchResult) {
	for _, a := range articles {
		r := types.MatchResult{
			Title:        a.Title,
			ShortAuthors: a.ShortAuthors,
			Link:         a.Link,
			MatchTags:    matchTags(a, keywords, authorTerms),
		}
		if len(r.MatchTags) > 0 {
			matched = append(matched, r)
		} else {
			unmatched = append(unmatched, r)
		}
	}
	return matched, unmatched
}

// matchTags collects the criteria that matched: "title" first when any
// keyword hits the title, then "author: <term>" per matching term, in the
// order the terms were supplied. The tag carries the search term as given,
// not the author name it matched.
func matchTags(a types.ArticleRecord, keywords, authorTerms []string) []string {
	var tags []string

	title := strings.ToLower(a.Title)
	for _, kw := range keywords {
		if strings.Contains(title, strings.ToLower(kw)) {
			tags = append(tags, "title")
			break
		}
	}

	for _, term := range authorTerms {
		if anyAuthorContains(a.AllAuthors, strings.ToLower(term)) {
			tags = append(tags, "author: "+term)
		}
	}

	return tags
}

func anyAuthorContains(authors []string, lowerTerm string) bool {
	for _, name := range authors {
		if strings.Contains(strings.ToLower(name), lowerTerm) {
			return true
		}
	}
	return false
}

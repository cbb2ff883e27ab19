// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data structures shared across the digest pipeline.
package types

// ArticleRecord holds the fields extracted from one digest entry.
// Extraction is best-effort: Title may be empty when the entry carries no
// Title marker, but Link is always non-empty (synthesized from the arXiv
// identifier when the entry has no explicit abs URL).
type ArticleRecord struct {
	// Title is the article title, normalized to a single line.
	Title string `json:"title" yaml:"title"`

	// ShortAuthors lists the first three authors, in source order.
	ShortAuthors []string `json:"short_authors" yaml:"short_authors"`

	// AllAuthors lists every author, in source order. May be empty.
	AllAuthors []string `json:"all_authors" yaml:"all_authors"`

	// Link is the arXiv abstract URL for the article.
	Link string `json:"link" yaml:"link"`
}

// MatchResult is an article after classification against the filter terms.
type MatchResult struct {
	Title        string   `json:"title" yaml:"title"`
	ShortAuthors []string `json:"short_authors" yaml:"short_authors"`
	Link         string   `json:"link" yaml:"link"`

	// MatchTags records which criteria matched: "title" when a keyword
	// matched the title, then "author: <term>" per matching author term,
	// in the order the terms were supplied. Empty for unmatched articles.
	MatchTags []string `json:"match_tags,omitempty" yaml:"match_tags,omitempty"`
}

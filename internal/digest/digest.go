// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package digest extracts article records from plain-text arXiv digest emails.
//
// A digest body is a sequence of entries separated by a dashed rule followed
// by a line-continuation marker. Long fields (Title, Authors) wrap onto
// subsequent lines indented by two or more spaces. Extraction is lenient:
// missing fields degrade to empty values, and entries without an arXiv
// identifier are skipped as preamble or footer noise.
package digest

import (
	"regexp"
	"strings"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

var (
	// entrySeparator is the visual rule between digest entries: one or
	// more dashes, a newline, and a literal double backslash.
	entrySeparator = regexp.MustCompile(`-+\n\\\\`)

	// arxivID captures the identifier from an "arXiv:2301.07041" marker.
	arxivID = regexp.MustCompile(`arXiv:(\d{4}\.\d{5})`)

	// absLink matches an explicit abstract URL inside an entry.
	absLink = regexp.MustCompile(`https://arxiv\.org/abs/\d{4}\.\d{5}`)
)

// shortAuthorCount caps the author list shown in report blocks.
const shortAuthorCount = 3

const absURLPrefix = "https://arxiv.org/abs/"

// Parse splits the digest body into entries and extracts an ArticleRecord
// from each entry that carries an arXiv identifier. Entries without one are
// dropped. Every returned record has a non-empty Link.
func Parse(text string) []types.ArticleRecord {
	var articles []types.ArticleRecord

	for _, entry := range entrySeparator.Split(text, -1) {
		m := arxivID.FindStringSubmatch(entry)
		if m == nil {
			continue
		}
		id := m[1]

		allAuthors := splitAuthors(fieldValue(entry, "Authors:"))
		shortAuthors := allAuthors
		if len(shortAuthors) > shortAuthorCount {
			shortAuthors = shortAuthors[:shortAuthorCount]
		}

		link := absLink.FindString(entry)
		if link == "" {
			link = absURLPrefix + id
		}

		articles = append(articles, types.ArticleRecord{
			Title:        fieldValue(entry, "Title:"),
			ShortAuthors: shortAuthors,
			AllAuthors:   allAuthors,
			Link:         link,
		})
	}

	return articles
}

// Line-classification states for fieldValue.
const (
	seekingMarker = iota
	inField
)

// fieldValue extracts one logical field from an entry. It scans for the
// first line beginning with marker followed by whitespace, then accumulates
// that line's remainder and every continuation line (indented by two or more
// spaces). The first non-indented or blank line terminates the field. The
// accumulated lines are trimmed and joined with single spaces. Returns ""
// when the marker never appears.
func fieldValue(entry, marker string) string {
	state := seekingMarker
	var parts []string

	for _, line := range strings.Split(entry, "\n") {
		switch state {
		case seekingMarker:
			rest, ok := strings.CutPrefix(line, marker)
			if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
				continue
			}
			parts = appendTrimmed(parts, rest)
			state = inField
		case inField:
			if !isContinuation(line) {
				return strings.Join(parts, " ")
			}
			parts = appendTrimmed(parts, line)
		}
	}

	return strings.Join(parts, " ")
}

// isContinuation reports whether line extends the current field: indented
// by at least two spaces and not blank.
func isContinuation(line string) bool {
	return strings.HasPrefix(line, "  ") && strings.TrimSpace(line) != ""
}

// appendTrimmed appends the trimmed line, dropping whitespace-only input so
// the joined field never carries doubled spaces.
func appendTrimmed(parts []string, line string) []string {
	if t := strings.TrimSpace(line); t != "" {
		parts = append(parts, t)
	}
	return parts
}

// splitAuthors splits a normalized author field on commas, trimming each
// name and discarding empties.
func splitAuthors(field string) []string {
	var authors []string
	for _, name := range strings.Split(field, ",") {
		if t := strings.TrimSpace(name); t != "" {
			authors = append(authors, t)
		}
	}
	return authors
}

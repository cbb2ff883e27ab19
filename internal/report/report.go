// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders classified articles into human-readable text,
// JSON, or YAML.
package report

import (
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// Palette holds the ANSI sequences used when rendering. A zero Palette
// renders plain text, so the rendering path is identical with and without
// color. The caller decides which palette applies; the renderer never
// inspects the terminal.
type Palette struct {
	Bold        string
	MatchTitle  string
	MatchAuthor string
	OtherTitle  string
	OtherAuthor string
	Reset       string
}

// Plain returns the palette for uncolored output.
func Plain() Palette { return Palette{} }

// ANSI returns the palette for interactive terminals: bold summary, a
// green/yellow pair for matched blocks and a cyan/blue pair for the rest.
func ANSI() Palette {
	return Palette{
		Bold:        "\033[1m",
		MatchTitle:  "\033[92m",
		MatchAuthor: "\033[93m",
		OtherTitle:  "\033[96m",
		OtherAuthor: "\033[94m",
		Reset:       "\033[0m",
	}
}

// Render formats the classified articles into a single report string.
// The summary line comes first, then a "Keyword Matches" section when any
// article matched, then an "Other Articles" section. The other-articles
// header appears only when a matches section precedes it.
func Render(matched, unmatched []types.MatchResult, p Palette) string {
	total := len(matched) + len(unmatched)
	summary := fmt.Sprintf("Collected %d total articles, %d of which are keyword articles.",
		total, len(matched))

	out := []string{p.Bold + summary + p.Reset + "\n"}

	if len(matched) > 0 {
		out = append(out, "=== Keyword Matches ===")
		for _, r := range matched {
			out = append(out, renderBlock(r, p.MatchTitle, p.MatchAuthor, p.Reset))
		}
	}

	if len(unmatched) > 0 {
		if len(matched) > 0 {
			out = append(out, "\n=== Other Articles ===")
		}
		for _, r := range unmatched {
			out = append(out, renderBlock(r, p.OtherTitle, p.OtherAuthor, p.Reset))
		}
	}

	return strings.Join(out, "\n")
}

// renderBlock formats one article: title and short author list, the link on
// an indented line, and the match annotation when tags are present. Color
// codes reset at the end of each colored span.
func renderBlock(r types.MatchResult, titleColor, authorColor, reset string) string {
	b := fmt.Sprintf("%s- %s %s[%s]%s\n  %s",
		titleColor, r.Title, authorColor, strings.Join(r.ShortAuthors, ", "), reset, r.Link)
	if len(r.MatchTags) > 0 {
		b += fmt.Sprintf("\n  %s→ match: %s%s", titleColor, strings.Join(r.MatchTags, ", "), reset)
	}
	return b
}

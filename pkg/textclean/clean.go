// Package textclean strips markup and noise from downloaded documentation
// before it is persisted or embedded.
package textclean

import (
	"regexp"
	"strings"

	"github.com/forPelevin/gomoji"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	urlRe        = regexp.MustCompile(`http\S+|www.\S+`)
	copyrightRe  = regexp.MustCompile(`Copyright.*`)
	emojiTokenRe = regexp.MustCompile(`:[a-z_&+-]+:`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Preprocess removes HTML tags, URLs, copyright lines and emoji from text and
// flattens newlines to spaces, in that order. The relative order of all
// remaining characters is preserved.
func Preprocess(text string) string {
	text = htmlTagRe.ReplaceAllString(text, "")
	text = urlRe.ReplaceAllString(text, "")
	text = copyrightRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\n", " ")
	text = demojize(text)
	text = emojiTokenRe.ReplaceAllString(text, "")
	return text
}

// CollapseWhitespace squeezes runs of whitespace to single spaces and trims
// the result. Applied last, after any optional summarization pass.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// demojize replaces each emoji with a :slug: token so the token pass in
// Preprocess deletes emoji and pre-existing shortcodes uniformly.
func demojize(text string) string {
	for _, e := range gomoji.FindAll(text) {
		text = strings.ReplaceAll(text, e.Character, ":"+e.Slug+":")
	}
	return text
}

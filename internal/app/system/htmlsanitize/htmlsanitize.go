// Package htmlsanitize strips dangerous markup from admin-authored HTML
// before it is stored. News content is the only rich-text field on the site.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var contentPolicy = newContentPolicy()

func newContentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// Embedded video players (YouTube/Facebook) arrive as iframes from the
	// admin editor.
	p.AllowElements("iframe")
	p.AllowAttrs("src", "width", "height", "allowfullscreen", "frameborder").OnElements("iframe")
	return p
}

// Content sanitizes news body HTML, keeping user-generated-content tags and
// video iframes, dropping scripts and event handlers.
func Content(html string) string {
	return contentPolicy.Sanitize(html)
}

// Strict strips all markup, leaving plain text. Used for excerpts.
func Strict(html string) string {
	return bluemonday.StrictPolicy().Sanitize(html)
}

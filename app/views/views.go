// Package views embeds the HTML templates.
package views

import "embed"

// FS holds the base layout and one template per page.
//
//go:embed *.html
var FS embed.FS

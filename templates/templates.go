// Package templates embeds the HTML views rendered by unrolled/render.
package templates

import "embed"

//go:embed layout.html admin
var FS embed.FS

package models

import "slices"

// Feature is a single card of the landing page feature grid.
type Feature struct {
	ID          int    `json:"id"`
	Emoji       string `json:"emoji"`
	EmojiName   string `json:"emoji_name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProjectLinks holds the external links the landing page points to.
type ProjectLinks struct {
	GitHub string `json:"github"`
}

// Docs returns the documentation link, the repository README.
func (l ProjectLinks) Docs() string {
	return l.GitHub + "#readme"
}

// OpenGraph is the Open Graph subset rendered into the page head.
type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// PageMetadata describes the document head of the landing page.
type PageMetadata struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    []string  `json:"keywords"`
	Author      string    `json:"author"`
	OpenGraph   OpenGraph `json:"open_graph"`
}

// LandingPage is the view model the landing template renders.
type LandingPage struct {
	AppName      string
	Environment  string
	Metadata     PageMetadata
	Links        ProjectLinks
	Features     []Feature
	Technologies []string

	// PublicEnv is the browser-safe view of the environment. It is
	// serialized into the page and must never hold server variables.
	PublicEnv map[string]any
}

var features = []Feature{
	{
		ID:          1,
		Emoji:       "🚀",
		EmojiName:   "Rocket",
		Title:       "Lightning Fast",
		Description: "A single static binary with embedded assets that starts in milliseconds.",
	},
	{
		ID:          2,
		Emoji:       "🎯",
		EmojiName:   "Target",
		Title:       "Clean Architecture",
		Description: "Layered packages with clear separation of concerns for scalable applications.",
	},
	{
		ID:          3,
		Emoji:       "🔒",
		EmojiName:   "Lock",
		Title:       "Type-Safe",
		Description: "Environment variables validated against typed schemas with a strict server/client boundary.",
	},
	{
		ID:          4,
		Emoji:       "🎨",
		EmojiName:   "Artist Palette",
		Title:       "Server-Side Templates",
		Description: "html/template rendering with contextual escaping and no client build step.",
	},
	{
		ID:          5,
		Emoji:       "📏",
		EmojiName:   "Ruler",
		Title:       "Code Standards",
		Description: "gofmt, go vet and table-driven tests with enforced conventions and best practices.",
	},
	{
		ID:          6,
		Emoji:       "♿",
		EmojiName:   "Wheelchair",
		Title:       "Accessibility",
		Description: "Semantic markup and ARIA labels for accessible pages by default.",
	},
}

var technologies = []string{
	"Go",
	"chi",
	"zerolog",
	"Prometheus",
	"caarlos0/env",
	"testify",
}

// Features returns the feature grid in display order.
func Features() []Feature {
	return slices.Clone(features)
}

// Technologies returns the technology list in display order.
func Technologies() []string {
	return slices.Clone(technologies)
}

// DefaultMetadata returns the document head of the landing page.
func DefaultMetadata() PageMetadata {
	return PageMetadata{
		Title:       "Go Boilerplate Base - Modern Go Starter",
		Description: "A production-ready Go boilerplate with clean architecture, typed environment access, structured logging, and best practices built-in. Start building faster.",
		Keywords:    []string{"Go", "Golang", "chi", "zerolog", "Boilerplate", "Starter", "Prometheus"},
		Author:      "ForknRoll",
		OpenGraph: OpenGraph{
			Title:       "Go Boilerplate Base",
			Description: "A modern, production-ready Go boilerplate with clean architecture and best practices built-in.",
			Type:        "website",
		},
	}
}

// Package view renders the single-page site with gomponents. Every section
// is a pure function of its inputs; interactive behaviour is driven by the
// page script talking to the viewport socket and the tagline stream.
package view

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Zachkp/pillar-dev/internal/content"
)

// PageData is everything the full page needs for one render.
type PageData struct {
	Category string
	Contact  ContactView
}

// Render writes the page to w.
func Render(w io.Writer, data PageData) error {
	return Page(data).Render(w)
}

// Page is the page shell: loading screen, background, navigation, the five
// sections and the footer.
func Page(data PageData) g.Node {
	category := data.Category
	if !content.IsCategory(category) {
		category = content.CategoryAll
	}

	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(content.Brand+" | Full-Stack Architect")),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Script(h.Src("https://unpkg.com/lucide@latest"), h.Defer()),
				h.StyleEl(g.Raw(siteCSS)),
				h.NoScript(h.StyleEl(g.Raw(".reveal{opacity:1!important;transform:none!important}#loading{display:none}"))),
			),
			h.Body(
				h.Class("relative min-h-screen bg-ai-black text-white overflow-x-hidden"),
				loadingScreen(),
				h.Div(h.Class("fixed inset-0 tech-grid opacity-20 pointer-events-none"), h.Aria("hidden", "true")),
				navigation(),
				h.Main(
					h.Class("relative z-10"),
					Hero(),
					Portfolio(content.Projects()),
					Experience(content.Experiences(), content.SkillLevels()),
					Skills(category),
					Contact(data.Contact),
				),
				footer(),
				h.Script(g.Raw(pageScript)),
			),
		),
	)
}

func loadingScreen() g.Node {
	return h.Div(
		h.ID("loading"),
		h.Class("fixed inset-0 z-50 bg-ai-black flex items-center justify-center transition-opacity duration-1000"),
		h.Div(
			h.Class("text-center"),
			h.Div(h.Class("w-16 h-16 border-2 border-ai-red border-t-transparent rounded-full animate-spin mx-auto mb-4")),
			h.P(h.Class("font-orbitron text-ai-blue animate-pulse"), g.Text("INITIALIZING SYSTEM...")),
		),
	)
}

func navigation() g.Node {
	return h.Nav(
		h.ID("nav"),
		h.Class("fixed top-0 left-0 right-0 z-40 transition-all duration-500 bg-transparent py-5"),
		h.Div(
			h.Class("container mx-auto px-4 flex items-center justify-between"),
			h.A(
				h.Href("#hero"),
				h.Class("flex items-center gap-2 group"),
				icon("brain", "w-10 h-10 text-ai-red"),
				h.Span(h.Class("font-orbitron text-xl font-bold"),
					h.Span(h.Class("text-ai-red"), g.Text("Pillar")),
					h.Span(h.Class("text-white"), g.Text(".ai")),
				),
			),
			h.Ul(
				h.Class("hidden md:flex items-center gap-8"),
				g.Map(content.NavLinks(), func(link content.NavLink) g.Node {
					return h.Li(h.A(
						h.Href(link.Href),
						h.Class("font-rajdhani text-white/70 hover:text-white transition-colors"),
						g.Text(link.Name),
					))
				}),
			),
		),
	)
}

func footer() g.Node {
	return h.Footer(
		h.Class("relative z-10 py-8 bg-ai-dark border-t border-white/5"),
		h.Div(
			h.Class("container mx-auto px-4 text-center"),
			h.P(
				h.Class("text-white/50 font-rajdhani"),
				g.Raw("&copy; 2024 "),
				h.Span(h.Class("text-ai-red"), g.Text(content.Brand)),
				g.Text(" | Built with "),
				h.Span(h.Class("text-ai-blue"), g.Text("Go")),
				g.Text(" + "),
				h.Span(h.Class("text-ai-red"), g.Text("Gin")),
				g.Text(" + "),
				h.Span(h.Class("text-ai-blue"), g.Text("Tailwind")),
			),
		),
	)
}

func icon(name, class string) g.Node {
	return h.I(g.Attr("data-lucide", name), h.Class(class))
}

// sectionHeader renders the badge, two-tone title and intro shared by sections.
func sectionHeader(badgeIcon, badge, title, accent, intro string) g.Node {
	return h.Div(
		h.Class("text-center mb-16"),
		h.Div(
			h.Class("inline-flex items-center gap-2 px-4 py-2 glass-card rounded-full mb-6"),
			icon(badgeIcon, "w-4 h-4 text-ai-blue"),
			h.Span(h.Class("font-rajdhani text-sm text-white/80"), g.Text(badge)),
		),
		h.H2(
			h.Class("font-orbitron text-4xl md:text-5xl lg:text-6xl font-bold mb-4"),
			h.Span(h.Class("text-white"), g.Text(title+" ")),
			h.Span(h.Class("text-gradient"), g.Text(accent)),
		),
		g.If(intro != "", h.P(h.Class("font-rajdhani text-lg text-white/60 max-w-2xl mx-auto"), g.Text(intro))),
	)
}

package view

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Zachkp/pillar-dev/internal/content"
	"github.com/Zachkp/pillar-dev/internal/motion"
)

// reveal marks an element for the entrance latch of section (and item, when non-zero).
func reveal(section string, item int) g.Node {
	nodes := g.Group{g.Attr("data-reveal", section)}
	if item != 0 {
		nodes = append(nodes, g.Attr("data-item", strconv.Itoa(item)))
	}
	return nodes
}

func Hero() g.Node {
	return h.Section(
		h.ID("hero"),
		reveal("hero", 0),
		h.Class("relative min-h-screen flex items-center overflow-hidden"),
		h.Div(h.Class("absolute inset-0 circuit-pattern opacity-50")),
		h.Div(h.Class("absolute top-1/4 left-1/4 w-96 h-96 bg-ai-red/20 rounded-full blur-[150px] animate-pulse")),
		h.Div(h.Class("absolute bottom-1/4 right-1/4 w-96 h-96 bg-ai-blue/20 rounded-full blur-[150px] animate-pulse")),
		h.Div(
			h.Class("container mx-auto px-4 py-20 grid lg:grid-cols-2 gap-12 items-center"),
			h.Div(
				h.Class("space-y-8 relative z-20"),
				h.Div(
					h.Class("inline-flex items-center gap-2 px-4 py-2 glass-card rounded-full"),
					icon("sparkles", "w-4 h-4 text-ai-red"),
					h.Span(h.Class("font-rajdhani text-sm text-white/80"), g.Text("Available for Projects")),
				),
				h.H1(
					h.Class("font-orbitron text-5xl md:text-6xl lg:text-7xl font-bold leading-tight"),
					h.Span(h.Class("text-white"), g.Text("I am")),
					h.Br(),
					h.Span(h.Class("text-gradient"), g.Text("The Developer")),
				),
				h.P(
					h.Class("h-12 font-orbitron text-xl md:text-2xl text-ai-blue tracking-wider"),
					h.Span(h.ID("tagline"), g.Attr("data-decode-src", "/api/hero/tagline"), g.Text(content.Tagline)),
					h.Span(h.Class("animate-pulse"), g.Text("|")),
				),
				h.P(h.Class("font-rajdhani text-lg text-white/70 max-w-xl leading-relaxed"), g.Text(content.HeroIntro)),
				h.Div(
					h.Class("flex flex-wrap gap-8"),
					g.Map(content.HeroStats, func(s content.Stat) g.Node {
						return h.Div(
							h.Class("space-y-1"),
							h.Span(h.Class("font-orbitron text-3xl font-bold text-white"), g.Text(s.Value)),
							h.P(h.Class("font-rajdhani text-sm text-white/50"), g.Text(s.Label)),
						)
					}),
				),
				h.Div(
					h.Class("flex flex-wrap gap-4"),
					h.A(h.Href("#contact"), h.Class("cyber-btn rounded-lg flex items-center gap-2"),
						h.Span(g.Text("Initialize Contact")), icon("chevron-right", "w-5 h-5")),
					h.A(h.Href("#portfolio"),
						h.Class("px-8 py-4 font-orbitron font-semibold text-sm uppercase tracking-wider border border-white/20 rounded-lg hover:border-ai-blue"),
						g.Text("View Projects")),
				),
			),
			h.Div(
				h.Class("relative flex justify-center lg:justify-end"),
				h.Img(h.Src("/images/brain-logo.png"), h.Alt("AI Brain"), h.Class("absolute w-[500px] h-[500px] opacity-30 animate-spin-slow")),
				h.Div(
					h.Class("relative z-10 w-80 h-96 md:w-96 md:h-[480px] rounded-2xl overflow-hidden glass-card group"),
					h.Img(h.Src("/images/profile-photo.jpg"), h.Alt("Developer Profile"),
						h.Class("w-full h-full object-cover transition-all duration-500 group-hover:scale-110")),
					h.Div(
						h.Class("absolute bottom-0 left-0 right-0 p-6"),
						h.Div(
							h.Class("glass-card p-4 rounded-xl"),
							h.P(h.Class("font-orbitron text-sm text-ai-red mb-1"), g.Text("STATUS")),
							h.P(h.Class("font-rajdhani text-white"), g.Text("Active Development")),
						),
					),
				),
			),
		),
	)
}

func Portfolio(projects []content.Project) g.Node {
	return h.Section(
		h.ID("portfolio"),
		reveal("portfolio", 0),
		h.Class("relative py-24 overflow-hidden"),
		h.Div(
			h.Class("container mx-auto px-4 relative z-10"),
			sectionHeader("layers", "Project Archive", "Featured", "Work", content.PortfolioIntro),
			h.Div(
				h.Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Map(projects, func(p content.Project) g.Node {
					return projectCard(p)
				}),
			),
		),
	)
}

func projectCard(p content.Project) g.Node {
	return h.Article(
		h.Class("reveal group relative glass-card rounded-2xl overflow-hidden transition-all duration-500 hover:-translate-y-2"),
		g.Attr("data-project", strconv.Itoa(p.ID)),
		h.Div(
			h.Class("relative h-56 overflow-hidden"),
			h.Img(h.Src(p.Image), h.Alt(p.Title), h.Loading("lazy"),
				h.Class("w-full h-full object-cover transition-transform duration-700 group-hover:scale-110")),
			h.Div(h.Class("absolute inset-0 bg-gradient-to-t opacity-70 group-hover:opacity-90 "+p.Color)),
			h.Span(h.Class("absolute top-4 left-4 px-3 py-1 glass-card rounded-full text-xs font-rajdhani"), g.Text(p.Category)),
		),
		h.Div(
			h.Class("p-6 space-y-4"),
			h.H3(h.Class("font-orbitron text-xl font-bold"), g.Text(p.Title)),
			h.P(h.Class("font-rajdhani text-white/60"), g.Text(p.Description)),
			h.Ul(
				h.Class("flex flex-wrap gap-2"),
				g.Map(p.Tags, func(tag string) g.Node {
					return h.Li(h.Class("px-2 py-1 text-xs rounded bg-white/5 text-white/60"), g.Text(tag))
				}),
			),
			h.Div(
				h.Class("flex items-center gap-4"),
				h.A(h.Href(p.Link), h.Class("flex items-center gap-1 text-ai-blue"), icon("external-link", "w-4 h-4"), g.Text("View")),
				g.If(p.GitHub != "", h.A(h.Href(p.GitHub), h.Class("flex items-center gap-1 text-white/60"), icon("github", "w-4 h-4"), g.Text("Code"))),
			),
		),
	)
}

func Experience(items []content.ExperienceItem, levels []content.SkillLevel) g.Node {
	return h.Section(
		h.ID("experience"),
		reveal("experience", 0),
		g.Attr("data-timeline", ""),
		h.Class("relative py-24 overflow-hidden"),
		h.Div(
			h.Class("container mx-auto px-4 relative z-10"),
			sectionHeader("cpu", "Journey Log", "Experience", "Timeline", ""),
			h.Div(
				h.Class("relative"),
				h.Div(h.Class("absolute left-1/2 top-0 bottom-0 w-px bg-white/10 -translate-x-1/2")),
				h.Div(h.ID("timeline-progress"),
					h.Class("absolute left-1/2 top-0 w-px bg-gradient-to-b from-ai-red to-ai-blue -translate-x-1/2"),
					h.Style("height:0%")),
				h.Div(h.ID("timeline-marker"),
					h.Class("absolute left-1/2 w-4 h-4 rounded-full bg-ai-red shadow-glow-red -translate-x-1/2"),
					h.Style("top:0%")),
				g.Map(items, timelineItem),
			),
			h.Div(
				h.Class("grid md:grid-cols-3 gap-6 mt-16"),
				g.Map(levels, func(l content.SkillLevel) g.Node {
					return h.Div(
						h.Class("glass-card p-4 rounded-xl"),
						h.Div(h.Class("flex items-center justify-between mb-2"),
							h.Span(h.Class("flex items-center gap-2 font-rajdhani"), icon(l.Icon, "w-4 h-4 text-ai-blue"), g.Text(l.Name)),
							h.Span(h.Class("font-orbitron text-sm text-ai-red"), g.Textf("%d%%", l.Level)),
						),
						h.Div(h.Class("h-2 rounded-full bg-white/10"),
							h.Div(h.Class("h-2 rounded-full bg-gradient-to-r from-ai-red to-ai-blue"), h.Style(fmt.Sprintf("width:%d%%", l.Level)))),
					)
				}),
			),
		),
	)
}

func timelineItem(item content.ExperienceItem) g.Node {
	offset := "reveal-left md:pr-[55%]"
	if item.Side == content.SideRight {
		offset = "reveal-right md:pl-[55%]"
	}
	return h.Div(
		reveal(motion.TimelineSection, item.ID),
		h.Class("reveal experience-item relative mb-12 "+offset),
		h.Div(
			h.Class("glass-card p-6 rounded-2xl"),
			h.Div(h.Class("flex items-center gap-3 mb-3"),
				icon(item.Icon, "w-6 h-6 "+item.Color),
				h.Span(h.Class("font-orbitron text-sm "+item.Color), g.Text(item.Year)),
			),
			h.H3(h.Class("font-orbitron text-lg font-bold mb-2"), g.Text(item.Title)),
			h.P(h.Class("font-rajdhani text-white/60"), g.Text(item.Description)),
		),
	)
}

// Skills renders the tech stack with the given category preselected. The
// filter buttons are links so the section works without the page script.
func Skills(category string) g.Node {
	skills := content.FilterSkills(category)
	return h.Section(
		h.ID("skills"),
		reveal("skills", 0),
		h.Class("relative py-24 overflow-hidden"),
		h.Div(
			h.Class("container mx-auto px-4 relative z-10"),
			sectionHeader("cpu", "Tech Arsenal", "Tech", "Stack", content.SkillsIntro),
			h.Div(
				h.Class("flex flex-wrap justify-center gap-3 mb-12"),
				g.Map(content.Categories(), func(c string) g.Node {
					class := "glass-card text-white/60 hover:text-white hover:bg-white/10"
					if c == category {
						class = "bg-gradient-to-r from-ai-red to-ai-blue text-white"
					}
					return h.A(
						h.Href("?category="+c+"#skills"),
						g.Attr("data-category", c),
						g.If(c == category, h.Aria("current", "true")),
						h.Class("px-6 py-2 rounded-full font-rajdhani font-medium text-sm transition-all duration-300 "+class),
						g.Text(c),
					)
				}),
			),
			h.Div(
				h.ID("skills-grid"),
				h.Class("grid grid-cols-2 sm:grid-cols-3 md:grid-cols-4 lg:grid-cols-8 gap-6"),
				g.Map(skills, SkillCard),
			),
			h.Div(
				h.Class("grid md:grid-cols-3 gap-8 mt-16"),
				g.Map(content.InfoCards, func(c content.InfoCard) g.Node {
					return h.Div(
						h.Class("glass-card p-6 rounded-2xl"),
						icon(c.Icon, "w-7 h-7 mb-4 text-"+c.Accent),
						h.H3(h.Class("font-orbitron text-lg font-bold text-white mb-2"), g.Text(c.Title)),
						h.P(h.Class("font-rajdhani text-white/60 text-sm"), g.Text(c.Description)),
					)
				}),
			),
			h.Div(
				h.Class("mt-16 glass-card p-8 rounded-2xl grid grid-cols-2 md:grid-cols-4 gap-8 text-center"),
				g.Map(content.SkillStats, func(s content.Stat) g.Node {
					return h.Div(
						h.P(h.Class("font-orbitron text-3xl md:text-4xl font-bold text-ai-red mb-2"), g.Text(s.Value)),
						h.P(h.Class("font-rajdhani text-white/60"), g.Text(s.Label)),
					)
				}),
			),
		),
	)
}

func SkillCard(s content.TechSkill) g.Node {
	return h.Div(
		h.Class("reveal skill-card group relative glass-card rounded-xl p-6 text-center transition-all duration-300 hover:scale-110"),
		g.Attr("data-skill", s.Name),
		h.Div(
			h.Class("w-12 h-12 mx-auto mb-3 rounded-lg flex items-center justify-center"),
			h.Style(fmt.Sprintf("background-color:%s20;border:1px solid %s40", s.Color, s.Color)),
			h.I(g.Attr("data-lucide", s.Icon), h.Class("w-6 h-6"), h.Style("color:"+s.Color)),
		),
		h.P(h.Class("font-rajdhani text-sm text-white/80"), g.Text(s.Name)),
		h.Span(h.Class("inline-block mt-2 px-2 py-0.5 text-xs font-rajdhani rounded bg-white/5 text-white/40"), g.Text(s.Category)),
	)
}

// SkillGrid renders only the cards of the skills grid, for swapping in after
// a category change.
func SkillGrid(skills []content.TechSkill) g.Node {
	return g.Map(skills, SkillCard)
}

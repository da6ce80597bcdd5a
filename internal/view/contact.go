package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Zachkp/pillar-dev/internal/contact"
	"github.com/Zachkp/pillar-dev/internal/content"
)

// ContactView is the contact form as the server last saw it. The zero value
// is an empty idle form.
type ContactView struct {
	Draft contact.Draft
	State contact.State
	Error string
	Field string
}

func Contact(v ContactView) g.Node {
	submitting := v.State == contact.StateSubmitting
	label := "Send Message"
	if submitting {
		label = "Transmitting..."
	}

	return h.Section(
		h.ID("contact"),
		reveal("contact", 0),
		h.Class("relative py-24 overflow-hidden"),
		h.Div(
			h.Class("container mx-auto px-4 relative z-10"),
			sectionHeader("send", "Get In Touch", "Initialize", "Contact", content.ContactIntro),
			h.Div(
				h.Class("grid lg:grid-cols-2 gap-12"),
				h.Div(
					h.Class("space-y-6"),
					g.Map(content.ContactDetails(), func(c content.ContactInfo) g.Node {
						return h.A(
							h.Href(c.Href),
							h.Class("flex items-center gap-4 glass-card p-6 rounded-2xl group"),
							h.Div(h.Class("w-14 h-14 rounded-xl bg-gradient-to-br from-ai-red/20 to-ai-blue/20 flex items-center justify-center"),
								icon(c.Icon, "w-6 h-6 text-ai-blue")),
							h.Div(
								h.P(h.Class("font-rajdhani text-sm text-white/50"), g.Text(c.Label)),
								h.P(h.Class("font-orbitron text-white"), g.Text(c.Value)),
							),
						)
					}),
					h.Div(
						h.Class("glass-card p-6 rounded-2xl"),
						h.P(h.Class("font-orbitron text-sm text-white mb-4"), g.Text("Connect With Me")),
						h.Div(
							h.Class("flex gap-4"),
							g.Map(content.SocialLinks(), func(s content.SocialLink) g.Node {
								return h.A(h.Href(s.Href), h.Aria("label", s.Label),
									h.Class("w-12 h-12 rounded-xl glass-card flex items-center justify-center hover:bg-ai-red/20"),
									icon(s.Icon, "w-5 h-5"))
							}),
						),
					),
					h.Div(
						h.Class("glass-card p-6 rounded-2xl border-l-4 border-green-400"),
						h.P(h.Class("font-orbitron text-sm text-green-400 mb-2"), g.Text("Available for Work")),
						h.P(h.Class("font-rajdhani text-white/60"), g.Text(content.Availability)),
					),
				),
				h.Form(
					h.ID("contact-form"),
					h.Method("post"),
					h.Action("/contact#contact"),
					h.Class("glass-card p-8 rounded-2xl space-y-6"),
					g.Attr("data-state", v.State.String()),
					h.Div(h.Class("grid md:grid-cols-2 gap-6"),
						field("name", "Your Name", "John Doe", "text", v.Draft.Name, v.Field),
						field("email", "Email Address", "john@example.com", "email", v.Draft.Email, v.Field),
					),
					field("subject", "Subject", "Project Inquiry", "text", v.Draft.Subject, v.Field),
					h.Div(
						h.Label(h.For("message"), h.Class("block font-rajdhani text-sm text-white/60 mb-2"), g.Text("Message")),
						h.Textarea(h.ID("message"), h.Name("message"), h.Rows("5"), h.Required(),
							h.Placeholder("Tell me about your project..."),
							h.Class(inputClass(v.Field == "message")+" resize-none"),
							g.Text(v.Draft.Message)),
					),
					h.P(h.ID("contact-error"), h.Role("alert"),
						h.Class("font-rajdhani text-sm text-ai-red"),
						g.If(v.Error == "", g.Attr("hidden")),
						g.Text(v.Error)),
					h.Button(
						h.Type("submit"),
						h.Class("cyber-btn w-full rounded-lg flex items-center justify-center gap-2 disabled:opacity-50"),
						g.If(submitting, h.Disabled()),
						h.Span(g.Text(label)),
						icon("send", "w-5 h-5"),
					),
				),
			),
		),
		successDialog(v.State == contact.StateSubmitted),
	)
}

func field(name, label, placeholder, typ, value, invalid string) g.Node {
	return h.Div(
		h.Label(h.For(name), h.Class("block font-rajdhani text-sm text-white/60 mb-2"), g.Text(label)),
		h.Input(h.ID(name), h.Name(name), h.Type(typ), h.Value(value), h.Placeholder(placeholder), h.Required(),
			g.If(invalid == name, h.Aria("invalid", "true")),
			h.Class(inputClass(invalid == name))),
	)
}

func inputClass(invalid bool) string {
	class := "w-full px-4 py-3 bg-white/5 border rounded-lg font-rajdhani text-white placeholder-white/30 focus:outline-none focus:border-ai-blue"
	if invalid {
		return class + " border-ai-red"
	}
	return class + " border-white/10"
}

// successDialog is rendered open when the form was just submitted.
// Dismissing it is handled by the page script, or by the form method
// when scripts are off.
func successDialog(open bool) g.Node {
	return g.El("dialog",
		h.ID("contact-dialog"),
		g.If(open, g.Attr("open")),
		h.Class("glass-card rounded-2xl p-8 text-center text-white max-w-md backdrop:bg-black/70"),
		h.Div(h.Class("w-16 h-16 mx-auto mb-4 rounded-full bg-green-500/20 flex items-center justify-center"),
			icon("check-circle", "w-8 h-8 text-green-400")),
		h.H3(h.Class("font-orbitron text-2xl font-bold mb-4"), g.Text(content.SuccessTitle)),
		h.P(h.Class("font-rajdhani text-white/70 mb-6"), g.Text(content.SuccessBody)),
		h.Form(h.Method("dialog"),
			h.Button(h.Type("submit"), h.Class("cyber-btn rounded-lg"), g.Text("Close"))),
	)
}

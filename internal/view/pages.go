package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Zachkp/pillar-dev/internal/content"
)

func simplePage(title string, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("robots"), h.Content("noindex")),
				h.TitleEl(g.Text(title+" | "+content.Brand)),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.StyleEl(g.Raw(siteCSS)),
			),
			h.Body(
				h.Class("min-h-screen bg-ai-black text-white flex items-center justify-center p-6"),
				h.Main(h.Class("glass-card rounded-2xl p-8 w-full max-w-lg space-y-6"), g.Group(body)),
			),
		),
	)
}

// AdminLogin is the operator login form. errMsg is shown above the form when set.
func AdminLogin(errMsg string) g.Node {
	return simplePage("Admin Login",
		h.H1(h.Class("font-orbitron text-2xl font-bold"), g.Text("Admin Login")),
		g.If(errMsg != "", h.P(h.Role("alert"), h.Class("font-rajdhani text-ai-red"), g.Text(errMsg))),
		h.Form(
			h.Method("post"),
			h.Action("/admin/login"),
			h.Class("space-y-4"),
			h.Input(h.Name("username"), h.Type("text"), h.Placeholder("Username"), h.Required(), h.AutoComplete("username"),
				h.Class(inputClass(false))),
			h.Input(h.Name("password"), h.Type("password"), h.Placeholder("Password"), h.Required(), h.AutoComplete("current-password"),
				h.Class(inputClass(false))),
			h.Button(h.Type("submit"), h.Class("cyber-btn w-full rounded-lg"), g.Text("Sign In")),
		),
	)
}

// Privacy explains what the visitor analytics keep. retentionMonths is the
// configured visitor retention.
func Privacy(retentionMonths int) g.Node {
	return simplePage("Privacy Policy",
		h.H1(h.Class("font-orbitron text-2xl font-bold"), g.Text("Privacy Policy")),
		h.P(h.Class("font-rajdhani text-white/70"),
			g.Text("Visits are counted with a salted hash of your IP address. The raw address is never stored. "+
				"Requests carrying a Do Not Track header are not counted at all.")),
		h.P(h.Class("font-rajdhani text-white/70"),
			g.Textf("Visit records are deleted after %d months. Messages sent through the contact form are kept until answered.", retentionMonths)),
		h.A(h.Href("/"), h.Class("text-ai-blue font-rajdhani"), g.Text("Back to site")),
	)
}

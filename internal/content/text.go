package content

const (
	Brand = "Pillar.ai"

	Tagline = "Full-Stack Architect & AI Visionary"

	HeroIntro = `Crafting digital realities at the intersection of robust engineering and
	artificial intelligence. I build systems that think, adapt, and evolve.
	From full-stack web applications to AI-powered solutions, transforming
	ideas into intelligent digital experiences.`

	PortfolioIntro = `Selected builds from the digital frontier. Each project represents a unique
	challenge solved with cutting-edge technology and creative innovation.`

	SkillsIntro = `A comprehensive toolkit of modern technologies powering the next generation
	of web applications and AI solutions.`

	ContactIntro = `Ready to collaborate on your next project? Let's build something extraordinary together.
	Reach out and let's discuss how we can bring your vision to life.`

	Availability = `Currently accepting new projects and collaboration opportunities.
	Response time: within 24 hours.`

	SuccessTitle = "Message Received!"

	SuccessBody = `Thank you for reaching out. Your message has been successfully transmitted.
	I'll get back to you within 24 hours.`

	FailureBody = "Sorry, there was an error sending your message. Please try again later."
)

var (
	HeroStats = []Stat{
		{Value: "10+", Label: "Years Experience"},
		{Value: "50+", Label: "Projects Built"},
		{Value: "AI", Label: "Powered Solutions"},
	}

	SkillStats = []Stat{
		{Value: "10+", Label: "Years Coding"},
		{Value: "50+", Label: "Projects Done"},
		{Value: "20+", Label: "Technologies"},
		{Value: "100%", Label: "Dedication"},
	}

	InfoCards = []InfoCard{
		{
			Icon:        "server",
			Title:       "Web Hosting",
			Description: "Expert in VPS setup, server configuration, CDN integration, and performance optimization for scalable deployments.",
			Accent:      "ai-red",
		},
		{
			Icon:        "code-2",
			Title:       "Programming",
			Description: "Proficient in JavaScript, TypeScript, Python, PHP, and Bash scripting for diverse development needs.",
			Accent:      "ai-blue",
		},
		{
			Icon:        "layers",
			Title:       "Frameworks",
			Description: "Mastery of React, Next.js, Express, Django, and modern CSS frameworks for rapid development.",
			Accent:      "purple-400",
		},
	}
)

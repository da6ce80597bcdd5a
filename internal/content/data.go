package content

var projects = []Project{
	{
		ID:          1,
		Title:       "Sinar Sako Residence",
		Category:    "Real Estate",
		Description: "Luxury property listing platform with advanced search, virtual tours, and integrated CRM system for real estate agents.",
		Image:       "/images/portfolio-sinar-sako.jpg",
		Tags:        []string{"React", "Node.js", "MongoDB", "Three.js"},
		Link:        "#",
		Color:       "from-blue-500 to-cyan-400",
	},
	{
		ID:          2,
		Title:       "Pillar.ai",
		Category:    "AI Platform",
		Description: "Next-generation AI analytics platform featuring neural network visualizations, predictive modeling, and real-time data processing.",
		Image:       "/images/portfolio-pillar-ai.jpg",
		Tags:        []string{"Python", "TensorFlow", "React", "AWS"},
		Link:        "#",
		Color:       "from-purple-500 to-pink-400",
	},
	{
		ID:          3,
		Title:       "StyleHub Online Shop",
		Category:    "E-Commerce",
		Description: "Full-featured e-commerce platform with AI-powered recommendations, seamless checkout, and inventory management.",
		Image:       "/images/portfolio-online-shop.jpg",
		Tags:        []string{"Next.js", "Stripe", "PostgreSQL", "Redis"},
		Link:        "#",
		Color:       "from-orange-500 to-red-400",
	},
	{
		ID:          4,
		Title:       "ProBuild Materials",
		Category:    "Construction",
		Description: "Industrial-grade e-commerce for construction materials with bulk ordering, supplier management, and logistics tracking.",
		Image:       "/images/portfolio-construction.jpg",
		Tags:        []string{"Vue.js", "Laravel", "MySQL", "Docker"},
		Link:        "#",
		Color:       "from-yellow-500 to-orange-400",
	},
	{
		ID:          5,
		Title:       "VersaTemplate Pro",
		Category:    "Web Template",
		Description: "Multi-purpose website template system with drag-and-drop builder, 50+ components, and customizable themes.",
		Image:       "/images/portfolio-template.jpg",
		Tags:        []string{"React", "Tailwind", "Framer Motion"},
		Link:        "#",
		Color:       "from-green-500 to-teal-400",
	},
}

var experiences = []ExperienceItem{
	{
		ID:          1,
		Year:        "2011 - 2016",
		Title:       "Japan Robotics Education",
		Description: "Studied advanced robotics engineering in Japan. Mastered Japanese language achieving N1 certification. Specialized in automation systems and AI fundamentals.",
		Icon:        "graduation-cap",
		Color:       "text-ai-red",
		Side:        SideLeft,
	},
	{
		ID:          2,
		Year:        "2008",
		Title:       "Ragnarok Private Server",
		Description: "Built and managed a private Ragnarok Online server from scratch. Handled VPS setup, server configuration, script editing, and command line operations.",
		Icon:        "gamepad-2",
		Color:       "text-ai-blue",
		Side:        SideRight,
	},
	{
		ID:          3,
		Year:        "Language Skills",
		Title:       "Multilingual Proficiency",
		Description: "Japanese N1 (Native-level proficiency) and English Intermediate. Able to communicate technical concepts fluently in multiple languages.",
		Icon:        "globe",
		Color:       "text-green-400",
		Side:        SideLeft,
	},
	{
		ID:          4,
		Year:        "Web Development",
		Title:       "Full-Stack Mastery",
		Description: "Extensive experience in website development and server hosting. From frontend design to backend architecture and database management.",
		Icon:        "code",
		Color:       "text-purple-400",
		Side:        SideRight,
	},
	{
		ID:          5,
		Year:        "Present",
		Title:       "Advanced Learning Journey",
		Description: "Currently advancing skills in frontend and backend development, internet security, physical robotics with electronic components, and developing Pillar.ai.",
		Icon:        "bot",
		Color:       "text-ai-red",
		Side:        SideLeft,
	},
}

var skillLevels = []SkillLevel{
	{Name: "React.js", Icon: "code", Level: 95},
	{Name: "Node.js", Icon: "server", Level: 90},
	{Name: "Python", Icon: "terminal", Level: 85},
	{Name: "AI/ML", Icon: "cpu", Level: 80},
	{Name: "Security", Icon: "shield", Level: 75},
	{Name: "Robotics", Icon: "bot", Level: 70},
}

var techSkills = []TechSkill{
	{Name: "React.js", Icon: "code-2", Category: "Frontend", Color: "#61DAFB"},
	{Name: "Next.js", Icon: "layers", Category: "Frontend", Color: "#FFFFFF"},
	{Name: "TypeScript", Icon: "code-2", Category: "Frontend", Color: "#3178C6"},
	{Name: "Tailwind CSS", Icon: "layout", Category: "Frontend", Color: "#06B6D4"},

	{Name: "Node.js", Icon: "server", Category: "Backend", Color: "#339933"},
	{Name: "Python", Icon: "terminal", Category: "Backend", Color: "#3776AB"},
	{Name: "PostgreSQL", Icon: "database", Category: "Backend", Color: "#336791"},
	{Name: "MongoDB", Icon: "database", Category: "Backend", Color: "#47A248"},

	{Name: "Docker", Icon: "container", Category: "DevOps", Color: "#2496ED"},
	{Name: "AWS", Icon: "cloud", Category: "DevOps", Color: "#FF9900"},
	{Name: "Git", Icon: "git-branch", Category: "DevOps", Color: "#F05032"},
	{Name: "Linux", Icon: "terminal", Category: "DevOps", Color: "#FCC624"},

	{Name: "TensorFlow", Icon: "bot", Category: "AI/ML", Color: "#FF6F00"},
	{Name: "PyTorch", Icon: "cpu", Category: "AI/ML", Color: "#EE4C2C"},
	{Name: "Cybersecurity", Icon: "shield", Category: "Security", Color: "#00D4AA"},
	// Realtime has no filter button; it only shows under All.
	{Name: "WebSockets", Icon: "zap", Category: "Realtime", Color: "#FFFFFF"},
}

var contactInfo = []ContactInfo{
	{Icon: "mail", Label: "Email", Value: "contact@pillar.ai", Href: "mailto:contact@pillar.ai"},
	{Icon: "phone", Label: "Phone", Value: "+62 812-3456-7890", Href: "tel:+6281234567890"},
	{Icon: "map-pin", Label: "Location", Value: "Indonesia", Href: "#"},
}

var socialLinks = []SocialLink{
	{Icon: "github", Label: "GitHub", Href: "#"},
	{Icon: "linkedin", Label: "LinkedIn", Href: "#"},
	{Icon: "twitter", Label: "Twitter", Href: "#"},
}

var navLinks = []NavLink{
	{Name: "Home", Href: "#hero"},
	{Name: "Portfolio", Href: "#portfolio"},
	{Name: "Experience", Href: "#experience"},
	{Name: "Skills", Href: "#skills"},
	{Name: "Contact", Href: "#contact"},
}

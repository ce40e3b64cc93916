package content

// Project is a single portfolio project. The same registry entry backs
// both the HTML detail page and the /api/projects payload; the slug is
// routing data and stays out of the JSON.
type Project struct {
	Title        string   `json:"title"`
	Slug         string   `json:"-"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GitHub       string   `json:"github"`
	Demo         *string  `json:"demo"`
	Image        string   `json:"image"`
	Features     []string `json:"features"`
}

var portfolioDemo = "https://www.samuelrincon.com"

// projects is ordered: the API returns them in this order
var projects = []Project{
	{
		Title:        "Python FastAPI MCP Appointment Manager (AI Integration)",
		Slug:         "mcp-appointment-manager",
		Description:  "Intelligent appointment management backend built with FastAPI and PostgreSQL, containerized with Docker and integrated with Claude via Model Context Protocol (MCP). This project demonstrates how artificial intelligence can directly interact with a backend system to create, list, update, and delete appointments.",
		Technologies: []string{"Python", "FastAPI", "PostgreSQL", "Docker", "MCP", "Claude", "Artificial Intelligence"},
		GitHub:       "https://github.com/Samuelr2112/mcp-project",
		Image:        "/images/project5.png",
		Features: []string{
			"AI-powered appointment management with Claude",
			"CRUD operations with FastAPI + PostgreSQL",
			"Containerized deployment with Docker Compose",
			"Model Context Protocol (MCP) integration",
			"Swagger UI for live API testing",
		},
	},
	{
		Title:        "Java Spring Boot Task Manager",
		Slug:         "springboot-task-manager",
		Description:  "Enterprise-level task and appointment management system built with Spring Boot. Provides comprehensive CRUD operations, RESTful API design, and a maintainable layered architecture. Endpoints tested directly from the command line using cURL.",
		Technologies: []string{"Java", "Spring Boot", "REST API", "Maven", "OOP"},
		GitHub:       "https://github.com/Samuelr2112/Task-and-Appointment-Management-System-with-Java",
		Image:        "/images/project4.png",
		Features: []string{
			"Complete REST API with CRUD operations",
			"Command-line testing with cURL",
			"Layered architecture with separation of concerns",
			"Future-ready for validation, unit testing, and database integration",
		},
	},
	{
		Title:        "FastAPI Portfolio Website",
		Slug:         "fastapi-portfolio",
		Description:  "This modern, responsive portfolio website built with FastAPI backend and vanilla JavaScript frontend. Deployed on AWS with professional design and smooth animations.",
		Technologies: []string{"Python", "FastAPI", "HTML/CSS", "JavaScript", "Bootstrap", "AWS"},
		GitHub:       "https://github.com/Samuelr2112/portfolio-website",
		Demo:         &portfolioDemo,
		Image:        "/images/project2.png",
		Features: []string{
			"Professional responsive design",
			"FastAPI REST API backend",
			"Contact form with email integration",
			"AWS Lightsail deployment",
		},
	},
	{
		Title:        "Binary Search Tree Data Parser",
		Slug:         "bst-parser",
		Description:  "Command-line application implementing custom Binary Search Tree for efficient sales data parsing and analysis. Demonstrates advanced data structures and algorithm implementation.",
		Technologies: []string{"Python", "Data Structures", "Algorithms", "CSV", "CLI"},
		GitHub:       "https://github.com/Samuelr2112/Python-Sales-Data-BST-Parser",
		Image:        "/images/project3.png",
		Features: []string{
			"Custom BST implementation from scratch",
			"Efficient data parsing and searching",
			"Interactive command-line interface",
			"CSV file processing capabilities",
		},
	},
	{
		Title:        "SQL Inventory Management System",
		Slug:         "inventory-tracker",
		Description:  "Full-featured inventory tracking system with SQL database integration. Features both command-line interface and web dashboard for comprehensive inventory management.",
		Technologies: []string{"Python", "SQLite", "SQL", "Flask", "HTML/CSS", "Jinja2"},
		GitHub:       "https://github.com/Samuelr2112/Inventory-Tracker-with-SQLite-and-Python",
		Image:        "/images/project1.png",
		Features: []string{
			"Full CRUD operations with SQL",
			"Web interface with Flask",
			"Database schema design",
			"Inventory reporting and analytics",
		},
	},
}

var projectsBySlug = func() map[string]Project {
	m := make(map[string]Project, len(projects))
	for _, p := range projects {
		m[p.Slug] = p
	}
	return m
}()

// Projects returns all projects in display order
func Projects() []Project {
	return projects
}

// ProjectBySlug looks up a project by its detail-page slug
func ProjectBySlug(slug string) (Project, bool) {
	p, ok := projectsBySlug[slug]
	return p, ok
}

package content

// Metadata is the SEO metadata served at /api/metadata
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Author      string `json:"author"`
	OGImage     string `json:"og_image"`
}

func SEOMetadata() Metadata {
	return Metadata{
		Title:       "Samuel Rincon | Portfolio",
		Description: "Computer Science graduate specializing in backend development with Python, Java, FastAPI, Spring Boot and modern web technologies. View my projects and experience.",
		Keywords:    "Samuel Rincon, Software Engineer, Backend Developer, Python, Java, FastAPI, Spring Boot, Computer Science, Full Stack Developer",
		Author:      "Samuel Rincon",
		OGImage:     "/images/portfolio-preview.png",
	}
}

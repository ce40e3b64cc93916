package content

import (
	"fmt"
	"strings"
	"time"
)

// SitemapURL is one entry of the sitemap
type SitemapURL struct {
	Loc        string
	ChangeFreq string
	Priority   string
}

// SitemapURLs returns the fixed URL list of the site, rooted at baseURL
func SitemapURLs(baseURL string) []SitemapURL {
	return []SitemapURL{
		{Loc: baseURL + "/", ChangeFreq: "weekly", Priority: "1.0"},
		{Loc: baseURL + "/resume/download", ChangeFreq: "yearly", Priority: "0.3"},
		{Loc: baseURL + "/api/projects", ChangeFreq: "monthly", Priority: "0.5"},
		{Loc: baseURL + "/api/resume", ChangeFreq: "monthly", Priority: "0.5"},
		{Loc: baseURL + "/api/metadata", ChangeFreq: "yearly", Priority: "0.2"},

		// Project detail pages
		{Loc: baseURL + "/projects/mcp-appointment-manager", ChangeFreq: "monthly", Priority: "0.9"},
		{Loc: baseURL + "/projects/springboot-task-manager", ChangeFreq: "monthly", Priority: "0.8"},
		{Loc: baseURL + "/projects/fastapi-portfolio", ChangeFreq: "monthly", Priority: "0.8"},
		{Loc: baseURL + "/projects/bst-parser", ChangeFreq: "monthly", Priority: "0.7"},
		{Loc: baseURL + "/projects/inventory-tracker", ChangeFreq: "monthly", Priority: "0.7"},
	}
}

// SitemapXML renders the sitemap with lastmod set to the given date
func SitemapXML(baseURL string, now time.Time) string {
	lastmod := now.Format("2006-01-02")

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n")
	for _, u := range SitemapURLs(baseURL) {
		fmt.Fprintf(&b, "  <url>\n    <loc>%s</loc>\n    <lastmod>%s</lastmod>\n    <changefreq>%s</changefreq>\n    <priority>%s</priority>\n  </url>\n",
			u.Loc, lastmod, u.ChangeFreq, u.Priority)
	}
	b.WriteString("</urlset>")

	return b.String()
}

// RobotsTxt renders the crawler policy
func RobotsTxt(baseURL string) string {
	return fmt.Sprintf(`User-agent: *
Allow: /

# Sitemap location
Sitemap: %s/sitemap.xml

# Disallow sensitive endpoints
Disallow: /health
`, baseURL)
}

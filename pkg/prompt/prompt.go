// Package prompt turns a website configuration into the instruction text
// sent to the completion service.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sitesmith/sitesmith-cli/pkg/models"
)

const (
	TailwindScript  = `<script src="https://cdn.tailwindcss.com"></script>`
	ImageURLPattern = "https://picsum.photos/seed/{seed}/width/height"
)

var ErrMissingFields = errors.New("business name and description are required")

// Validate checks the fields that must be present before generation
func Validate(cfg models.WebsiteConfig) error {
	missing := cfg.MissingFields()
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w (missing: %s)", ErrMissingFields, strings.Join(missing, ", "))
}

// Compile builds the generation prompt. The result depends only on cfg;
// features appear in the order they were selected.
func Compile(cfg models.WebsiteConfig) string {
	var out strings.Builder

	out.WriteString("You are an expert web developer specializing in creating stunning, responsive, single-page websites using Tailwind CSS.\n")
	out.WriteString("Your task is to generate a complete, single HTML file based on the user's request.\n\n")

	out.WriteString("**Website Requirements:**\n")
	out.WriteString(fmt.Sprintf("- **Website Type:** %s\n", cfg.WebsiteType))
	out.WriteString(fmt.Sprintf("- **Business Name:** %s\n", cfg.BusinessName))
	out.WriteString(fmt.Sprintf("- **Description:** %s\n", cfg.Description))
	out.WriteString(fmt.Sprintf("- **Tone & Style:** %s\n", cfg.Tone))
	out.WriteString(fmt.Sprintf("- **Visual Theme:** %s\n", cfg.Style))
	out.WriteString(fmt.Sprintf("- **Required Sections/Features:** %s\n", strings.Join(cfg.Features, ", ")))
	if cfg.UsesCustomCSS() {
		out.WriteString("- **Custom CSS:** The user has provided custom CSS. Place this inside a <style> tag in the <head>. CSS:\n")
		out.WriteString(cfg.CustomCSS)
		out.WriteString("\n")
	}

	out.WriteString("\n**Technical Specifications:**\n")
	out.WriteString("1. **Single File:** The entire website (HTML, CSS, and JavaScript) must be contained within a single `index.html` file.\n")
	out.WriteString("2. **Tailwind CSS:** Use Tailwind CSS for all styling. You MUST include the Tailwind CDN script in the `<head>`. ")
	out.WriteString("Do not use any other CSS frameworks or custom CSS files. All styling should be done with Tailwind classes directly in the HTML markup. ")
	out.WriteString("If a visual theme is specified (e.g., 'Dark Mode', 'Minimalist'), apply Tailwind classes that reflect that theme throughout the site. ")
	if cfg.UsesCustomCSS() {
		out.WriteString("Include the custom CSS in a <style> tag in the head.")
	}
	out.WriteString("\n")
	out.WriteString(fmt.Sprintf("   `%s`\n", TailwindScript))
	out.WriteString("3. **JavaScript:** If any interactivity is needed (e.g., mobile menu toggle, simple animations), include the JavaScript within a `<script>` tag at the end of the `<body>`.\n")
	out.WriteString("4. **Responsiveness:** The website must be fully responsive and look great on all screen sizes, from mobile to desktop.\n")
	out.WriteString(fmt.Sprintf("5. **Images:** Use placeholder images from `%s`. Use descriptive and relevant seed words for each image (e.g., 'portfolio', 'restaurant', 'tech').\n", ImageURLPattern))
	out.WriteString("6. **Content:** Generate relevant and high-quality placeholder text for all sections that fits the specified tone and business type.\n")
	out.WriteString("7. **Structure:** The HTML should be well-structured, semantic, and clean.\n\n")

	out.WriteString("**Output Format:**\n")
	out.WriteString("Provide ONLY the raw HTML code for the complete webpage.\n")
	out.WriteString("Start with `<!DOCTYPE html>` and end with `</html>`.\n")
	out.WriteString("Do not include any explanations, comments, or markdown formatting like ```html before or after the code.\n")

	return out.String()
}

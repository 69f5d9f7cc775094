package site

import "strings"

// buildLLMSTxt writes the plain-text site digest for language models.
func (g *Generator) buildLLMSTxt(posts []Post) error {
	lines := []string{"# " + g.cfg.Site.Name, ""}
	for _, s := range g.cfg.Site.LLMSSummary {
		lines = append(lines, "> "+s)
	}
	lines = append(lines, "", "## Posts", "")
	for _, p := range byDateDesc(posts) {
		lines = append(lines, "- ["+p.Title+"]("+g.url(postPath(p.Slug))+"): "+p.Description)
	}
	lines = append(lines, "")
	return g.writeOutput("llms.txt", []byte(strings.Join(lines, "\n")))
}

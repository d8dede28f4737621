package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Shivagad/SDLC-Automation/internal/store"
)

// Page is one slice of the exported store contents.
type Page struct {
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalItems int    `json:"total_items"`
	TotalPages int    `json:"total_pages"`
	Content    string `json:"content"`
}

// sections flattens the store into one markdown section per record:
// requirement sets first, then user stories, then design artifacts by
// kind in first-insertion order. Pure formatting, no I/O.
func sections(s *store.Store) []string {
	var out []string

	for _, rec := range s.Requirements() {
		out = append(out, renderSection(fmt.Sprintf("Requirement Set %s", rec.ID), rec.Data))
	}
	for _, rec := range s.UserStories() {
		out = append(out, renderSection(fmt.Sprintf("User Story %s", rec.ID), rec.Data))
	}
	for _, kind := range s.ArtifactKinds() {
		for i, artifact := range s.DesignArtifacts(kind) {
			title := fmt.Sprintf("Design Artifact %s #%d", kind, i+1)
			out = append(out, renderSection(title, artifact))
		}
	}

	return out
}

func renderSection(title string, data any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)

	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Fprintf(&b, "_unrenderable artifact: %v_\n", err)
		return b.String()
	}

	b.WriteString("```json\n")
	b.Write(body)
	b.WriteString("\n```\n")
	return b.String()
}

// Export renders the full store contents as a markdown document.
func Export(s *store.Store) string {
	secs := sections(s)
	if len(secs) == 0 {
		return "# SDLC Artifacts\n\n_No artifacts recorded yet._\n"
	}
	return "# SDLC Artifacts\n\n" + strings.Join(secs, "\n")
}

// ExportPage renders one page of the store contents. Pages are
// 1-based; out-of-range pages return an empty content block rather
// than an error.
func ExportPage(s *store.Store, page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	secs := sections(s)
	total := len(secs)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
		Content:    strings.Join(secs[start:end], "\n"),
	}
}

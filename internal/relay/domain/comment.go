package domain

import "strings"

// Comment is a failure report to be posted on a pull request.
type Comment struct {
	PRNumber int
	Title    string
	Body     string
}

// Render produces the markdown posted to the pull request: a bold title
// followed by the report body folded inside a <details> block.
// The body is inserted verbatim.
func (c Comment) Render() string {
	var sb strings.Builder
	sb.WriteString("❌ **")
	sb.WriteString(c.Title)
	sb.WriteString("**\n")
	sb.WriteString("<details>\n<summary>Click to view the full report</summary>\n\n---\n")
	sb.WriteString(c.Body)
	sb.WriteString("\n</details>")
	return sb.String()
}

package detect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/project"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
)

// readmeNames lists the files probed for a project readme, in order.
var readmeNames = []string{"README.md", "README.markdown", "README.txt", "README"}

// ReadmeDetector scrapes the project name from the readme title and the
// description from the first prose paragraph. Best-effort text scanning;
// everything it finds is MEDIUM confidence.
type ReadmeDetector struct{}

func (ReadmeDetector) Name() string { return "readme" }

func (ReadmeDetector) Detect(ctx project.Context) Outcome {
	var content string
	for _, name := range readmeNames {
		data, err := ctx.ReadFile(name)
		if errors.Is(err, project.ErrNotExist) {
			continue
		}
		if err != nil {
			return Failed(fmt.Errorf("reading %s: %w", name, err))
		}
		content = string(data)
		break
	}
	if content == "" {
		return NoSignal()
	}

	title, description := scanReadme(content)

	b := newResultBuilder("readme")
	b.set(PathProjectName, title, Medium)
	b.set(PathProjectDescription, description, Medium)

	cfg := pubconfig.Config{}
	cfg.Project.Name = title
	cfg.Project.Description = description
	return b.outcome(cfg)
}

// scanReadme extracts the first heading and the first paragraph of prose
// after it. Badge lines and HTML fragments are skipped.
func scanReadme(content string) (title, description string) {
	lines := strings.Split(content, "\n")

	var paragraph []string
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if title == "" {
			if strings.HasPrefix(line, "#") {
				title = strings.TrimSpace(strings.TrimLeft(line, "#"))
				continue
			}
			// Setext-style heading: text underlined with = signs.
			if line != "" && i+1 < len(lines) {
				next := strings.TrimSpace(lines[i+1])
				if next != "" && strings.Trim(next, "=") == "" {
					title = line
					i++
					continue
				}
			}
		}

		if isReadmeNoise(line) {
			if len(paragraph) > 0 {
				break
			}
			continue
		}

		paragraph = append(paragraph, line)
	}

	description = strings.Join(paragraph, " ")
	return title, description
}

// isReadmeNoise reports lines that end or never start a prose paragraph:
// blanks, badges, images, headings, and HTML.
func isReadmeNoise(line string) bool {
	if line == "" {
		return true
	}
	for _, prefix := range []string{"[![", "![", "#", "<", "---", "===", "```", "|"} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

package detect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/project"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
)

// ManifestDetector scrapes project identity from build descriptor files:
// package.json when present, falling back to the go.mod module path.
// Descriptor names are declared identifiers, not display names, so they
// rank MEDIUM at best.
type ManifestDetector struct{}

func (ManifestDetector) Name() string { return "manifest" }

func (ManifestDetector) Detect(ctx project.Context) Outcome {
	if out, handled := detectPackageJSON(ctx); handled {
		return out
	}
	return detectGoMod(ctx)
}

func detectPackageJSON(ctx project.Context) (Outcome, bool) {
	data, err := ctx.ReadFile("package.json")
	if errors.Is(err, project.ErrNotExist) {
		return Outcome{}, false
	}
	if err != nil {
		return Failed(fmt.Errorf("reading package.json: %w", err)), true
	}
	if !gjson.ValidBytes(data) {
		return Failed(errors.New("package.json is not valid JSON")), true
	}

	doc := gjson.ParseBytes(data)
	name := unscopedName(doc.Get("name").String())
	description := doc.Get("description").String()
	homepage := doc.Get("homepage").String()

	b := newResultBuilder("manifest")
	b.set(PathProjectName, name, Medium)
	b.set(PathProjectDescription, description, Medium)
	b.set(PathProjectURL, homepage, Medium)

	cfg := pubconfig.Config{}
	cfg.Project.Name = name
	cfg.Project.Description = description
	cfg.Project.URL = homepage
	return b.outcome(cfg), true
}

func detectGoMod(ctx project.Context) Outcome {
	data, err := ctx.ReadFile("go.mod")
	if errors.Is(err, project.ErrNotExist) {
		return NoSignal()
	}
	if err != nil {
		return Failed(fmt.Errorf("reading go.mod: %w", err))
	}

	name := ""
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if modPath, ok := strings.CutPrefix(line, "module "); ok {
			modPath = strings.TrimSpace(modPath)
			if slash := strings.LastIndex(modPath, "/"); slash >= 0 {
				modPath = modPath[slash+1:]
			}
			name = modPath
			break
		}
	}
	if name == "" {
		return NoSignal()
	}

	// A module path tail is a weak identity signal.
	b := newResultBuilder("manifest")
	b.set(PathProjectName, name, Low)

	cfg := pubconfig.Config{}
	cfg.Project.Name = name
	return b.outcome(cfg)
}

// unscopedName strips an npm scope prefix: "@org/lib" becomes "lib".
func unscopedName(name string) string {
	if strings.HasPrefix(name, "@") {
		if slash := strings.Index(name, "/"); slash >= 0 {
			return name[slash+1:]
		}
	}
	return name
}

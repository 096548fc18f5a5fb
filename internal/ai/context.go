package ai

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// maxContextFiles caps the number of file paths included in a prompt
	maxContextFiles = 200

	// maxReadmeSize caps the README excerpt included in a prompt (in bytes)
	maxReadmeSize = 10000
)

// skipDirs are directories never worth describing to the model
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	".idea":        true,
	".vscode":      true,
}

// ProjectContext contains the project information handed to the AI analyzer
type ProjectContext struct {
	Name          string
	RootPath      string
	Files         []string
	ReadmeExcerpt string
}

// CollectProjectContext walks the project tree and assembles the context
// for feature analysis. The walk is shallow by data, not by depth: it
// records relative file paths (capped) and a README excerpt.
func CollectProjectContext(rootPath string) (*ProjectContext, error) {
	projectCtx := &ProjectContext{
		Name:     filepath.Base(rootPath),
		RootPath: rootPath,
	}

	err := filepath.WalkDir(rootPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal
			return nil
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if len(projectCtx.Files) >= maxContextFiles {
			return filepath.SkipAll
		}

		rel, err := filepath.Rel(rootPath, path)
		if err != nil {
			return nil
		}
		projectCtx.Files = append(projectCtx.Files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(projectCtx.Files)
	projectCtx.ReadmeExcerpt = readReadme(rootPath)

	return projectCtx, nil
}

// readReadme returns a truncated README excerpt, or empty if none exists
func readReadme(rootPath string) string {
	for _, name := range []string{"README.md", "README", "readme.md"} {
		data, err := os.ReadFile(filepath.Join(rootPath, name))
		if err != nil {
			continue
		}
		excerpt := string(data)
		if len(excerpt) > maxReadmeSize {
			excerpt = excerpt[:maxReadmeSize] + "\n... (truncated)"
		}
		return strings.TrimSpace(excerpt)
	}
	return ""
}

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// addGitignoreEntry appends an anchored directory pattern for resultsDir to
// the .gitignore in repoRoot. It reports false when an equivalent pattern is
// already present.
func addGitignoreEntry(repoRoot, resultsDir string) (bool, error) {
	rel, err := normalizeGitignorePath(repoRoot, resultsDir)
	if err != nil {
		return false, err
	}

	path := filepath.Join(repoRoot, ".gitignore")
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("read .gitignore: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if gitignorePatternMatches(line, rel) {
			return false, nil
		}
	}

	var b strings.Builder
	b.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		b.WriteByte('\n')
	}
	b.WriteString("/" + rel + "/\n")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return false, fmt.Errorf("write .gitignore: %w", err)
	}
	return true, nil
}

// gitignorePatternMatches reports whether a .gitignore line already names rel,
// with or without the leading and trailing slashes.
func gitignorePatternMatches(line, rel string) bool {
	pattern := strings.TrimSpace(line)
	if pattern == "" || strings.HasPrefix(pattern, "#") || strings.HasPrefix(pattern, "!") {
		return false
	}
	return strings.Trim(pattern, "/") == rel
}

// normalizeGitignorePath returns resultsDir relative to repoRoot in slash
// form, or an error when it does not live below repoRoot.
func normalizeGitignorePath(repoRoot, resultsDir string) (string, error) {
	if strings.TrimSpace(resultsDir) == "" {
		return "", errors.New("results dir is required")
	}
	rel := filepath.Clean(resultsDir)
	if filepath.IsAbs(rel) {
		var err error
		if rel, err = filepath.Rel(repoRoot, rel); err != nil {
			return "", fmt.Errorf("resolve results dir: %w", err)
		}
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("results dir %q is outside the repo root", resultsDir)
	}
	return filepath.ToSlash(rel), nil
}

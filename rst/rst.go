// Package rst scans reStructuredText documentation sources for guide
// anchors and directive usage.
package rst

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/robertchinezon/docscheck"
)

// Ext is the reStructuredText file extension.
const Ext = ".rst"

// anchorPattern matches guide anchor declarations such as
// ".. _howto/operator:CopyOperator:".
var anchorPattern = regexp.MustCompile(`\.\. _howto/operator:(.+?):`)

// Files returns every file under root whose name ends with suffix. A
// missing root yields an empty result.
func Files(root, suffix string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), suffix) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindGuideAnchors returns the set of guide anchor names declared in the
// reST files under the given roots. Roots may be directories or single
// files; missing roots are skipped.
func FindGuideAnchors(roots ...string) (map[string]struct{}, error) {
	anchors := map[string]struct{}{}
	for _, root := range roots {
		info, err := os.Stat(root)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}

		paths := []string{root}
		if info.IsDir() {
			paths, err = Files(root, Ext)
			if err != nil {
				return nil, err
			}
		}

		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			for _, m := range anchorPattern.FindAllStringSubmatch(string(data), -1) {
				anchors[m[1]] = struct{}{}
			}
		}
	}
	return anchors, nil
}

// AssertFileNotContains scans the file line by line and reports a
// line-numbered error for the first line matching pattern. Nil means the
// file is clean.
func AssertFileNotContains(filePath string, pattern *regexp.Regexp, message string) *docscheck.BuildError {
	f, err := os.Open(filePath)
	if err != nil {
		return &docscheck.BuildError{FilePath: filePath, Message: err.Error()}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	num := 0
	for scanner.Scan() {
		num++
		if pattern.MatchString(scanner.Text()) {
			return &docscheck.BuildError{FilePath: filePath, LineNo: num, Message: message}
		}
	}
	if err := scanner.Err(); err != nil {
		return &docscheck.BuildError{FilePath: filePath, Message: err.Error()}
	}
	return nil
}

// AssertFileContains reports an error, without a line number, when pattern
// matches nowhere in the file. Nil means the pattern was found.
func AssertFileContains(filePath string, pattern *regexp.Regexp, message string) *docscheck.BuildError {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return &docscheck.BuildError{FilePath: filePath, Message: err.Error()}
	}
	if !pattern.Match(data) {
		return &docscheck.BuildError{FilePath: filePath, Message: message}
	}
	return nil
}

package utils

import "strings"

// MapFilenamesToKeywords maps uploaded file names to brand keywords based
// on simple pattern matching. File contents are never read.
func MapFilenamesToKeywords(fileNames []string) []string {
	var keywords []string

	for _, fileName := range fileNames {
		lowerName := strings.ToLower(fileName)

		switch {
		case strings.Contains(lowerName, "salomon") || strings.Contains(lowerName, "sneaker"):
			keywords = append(keywords, "outdoor / sport")
		case strings.Contains(lowerName, "chess"):
			keywords = append(keywords, "intellectual / quiet-night")
		}
	}

	return keywords
}

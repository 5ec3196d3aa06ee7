package extractors

import "strings"

// UntitledDocument is the sentinel title for empty or whitespace-only
// content.
const UntitledDocument = "Untitled Document"

// maxTitleLength bounds extracted titles; longer first lines are
// truncated to 97 characters plus an ellipsis marker.
const maxTitleLength = 100

// ExtractTitle derives a document title from extracted content. This is
// the shared policy for all extractor variants: the first line of the
// content, truncated when it exceeds 100 characters, with a fixed
// sentinel for empty content.
func ExtractTitle(content string) string {
	if strings.TrimSpace(content) == "" {
		return UntitledDocument
	}

	firstLine := strings.TrimSpace(strings.SplitN(content, "\n", 2)[0])
	if firstLine == "" {
		return UntitledDocument
	}

	if runes := []rune(firstLine); len(runes) > maxTitleLength {
		return string(runes[:maxTitleLength-3]) + "..."
	}
	return firstLine
}

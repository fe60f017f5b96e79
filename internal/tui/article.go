package tui

import (
	"os"
	"strings"
)

// Article is the content region the committed selection is applied to.
type Article struct {
	Title      string
	Paragraphs []string
}

// DefaultArticle is shown when no article file is configured.
func DefaultArticle() Article {
	return Article{
		Title: "The measure of a line",
		Paragraphs: []string{
			"Typography is the craft of making written language legible and pleasant to read. Choosing a typeface, a size and a line length changes how long a reader stays with a text.",
			"A comfortable line holds somewhere between forty-five and seventy-five characters. Narrow columns break the rhythm of reading; very wide ones make the eye lose its place when returning to the next line.",
			"Contrast matters as much as form. Dark text on a light ground is the default for long reading, but a well chosen tint can reduce glare without hurting clarity.",
			"Open the settings panel, try a few combinations and apply the ones that suit you. Reset brings everything back to the defaults.",
		},
	}
}

// LoadArticle reads an article from a plain text file: the first non-empty
// line is the title, blank lines separate paragraphs. A non-empty title
// overrides the one found in the file.
func LoadArticle(path, title string) (Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Article{}, err
	}
	article := ParseArticle(string(data))
	if title != "" {
		article.Title = title
	}
	return article, nil
}

// ParseArticle splits text into a title and paragraphs.
func ParseArticle(text string) Article {
	var article Article
	var current []string
	flush := func() {
		if len(current) > 0 {
			article.Paragraphs = append(article.Paragraphs, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if article.Title == "" {
			if line != "" {
				article.Title = line
			}
			continue
		}
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return article
}

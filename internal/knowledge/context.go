package knowledge

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/saulo-duarte/quizgen/internal/config"
	"github.com/saulo-duarte/quizgen/internal/metrics"
)

const (
	MaxSnippets      = 4
	MaxContentLength = 2000
	MinRelatedLength = 100

	contextPreamble = "Here is factual information from Wikipedia to help generate accurate quiz questions:\n\n"
	contextClosing  = "Please use this factual information to generate accurate, educational quiz questions. " +
		"Ensure all questions and answers are factually correct based on the provided context."
)

// Source returns the intro text of the article best matching query.
type Source interface {
	Extract(ctx context.Context, query string) (string, error)
}

type ContextProvider interface {
	RelatedContext(ctx context.Context, topic string) []Snippet
}

type relatedTerms struct {
	keyword string
	terms   []string
}

// Checked in order; the first keyword contained in the topic wins.
var relatedTermTable = []relatedTerms{
	{keyword: "javascript", terms: []string{"JavaScript programming", "ECMAScript", "Web development"}},
	{keyword: "python", terms: []string{"Python programming", "Python syntax", "Python libraries"}},
	{keyword: "photosynthesis", terms: []string{"Chlorophyll", "Plant biology", "Carbon cycle"}},
	{keyword: "history", terms: []string{"Historical events", "Timeline", "Historical figures"}},
}

var genericSuffixes = []string{"basics", "fundamentals", "concepts"}

var whitespace = regexp.MustCompile(`\s+`)

type provider struct {
	source Source
}

func NewProvider(source Source) ContextProvider {
	return &provider{source: source}
}

// RelatedContext never fails: lookup errors are logged and the topic simply
// ends up with fewer (possibly zero) snippets.
func (p *provider) RelatedContext(ctx context.Context, topic string) []Snippet {
	log := config.WithContext(ctx).WithField("topic", topic)
	snippets := make([]Snippet, 0, MaxSnippets)

	primary, err := p.source.Extract(ctx, topic)
	if err != nil {
		log.WithError(err).Warn("Wikipedia lookup failed for topic")
	}
	if primary != "" {
		snippets = append(snippets, Snippet{Title: topic, Content: primary, Kind: SnippetPrimary})
	}

	for _, term := range RelatedTerms(topic) {
		if len(snippets) >= MaxSnippets {
			break
		}
		content, err := p.source.Extract(ctx, term)
		if err != nil {
			log.WithError(err).WithField("term", term).Warn("Wikipedia lookup failed for related term")
			continue
		}
		if utf8.RuneCountInString(content) <= MinRelatedLength {
			continue
		}
		snippets = append(snippets, Snippet{Title: term, Content: content, Kind: SnippetRelated})
	}

	metrics.ContextSnippets.Observe(float64(len(snippets)))
	log.WithField("snippets", len(snippets)).Debug("Gathered topic context")
	return snippets
}

func RelatedTerms(topic string) []string {
	lower := strings.ToLower(topic)
	if entry, ok := lo.Find(relatedTermTable, func(e relatedTerms) bool {
		return strings.Contains(lower, e.keyword)
	}); ok {
		return append([]string(nil), entry.terms...)
	}

	return lo.Map(genericSuffixes, func(suffix string, _ int) string {
		return topic + " " + suffix
	})
}

// CleanContent collapses whitespace and caps the text at MaxContentLength
// characters, marking truncation with "...".
func CleanContent(content string) string {
	content = strings.TrimSpace(whitespace.ReplaceAllString(content, " "))
	if utf8.RuneCountInString(content) > MaxContentLength {
		runes := []rune(content)
		content = string(runes[:MaxContentLength]) + "..."
	}
	return content
}

func FormatContextForPrompt(snippets []Snippet) string {
	if len(snippets) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(contextPreamble)
	for _, s := range snippets {
		b.WriteString("**" + s.Title + "**\n")
		b.WriteString(s.Content + "\n\n")
	}
	b.WriteString(contextClosing)
	return b.String()
}

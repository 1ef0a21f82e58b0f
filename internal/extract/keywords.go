// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "regexp"

// keywords is the fixed benchmark vocabulary, in declaration order. Matched
// keywords are reported in this order, so the order is contractual.
var keywords = []string{
	"benchmark",
	"dataset",
	"evaluation",
	"leaderboard",
	"testbed",
	"test bed",
	"test suite",
	"corpus",
	"survey",
}

// keywordPatterns pairs each vocabulary entry with its compiled matcher.
// Patterns are compiled once at init and shared across all titles.
var keywordPatterns = compileKeywords(keywords)

type keywordPattern struct {
	keyword string
	pattern *regexp.Regexp
}

// compileKeywords builds a case-insensitive whole-word matcher for each
// vocabulary phrase. Word boundaries keep "Benchmarking" from matching
// "benchmark"; multi-word phrases match only as contiguous word sequences.
func compileKeywords(vocabulary []string) []keywordPattern {
	patterns := make([]keywordPattern, len(vocabulary))
	for i, kw := range vocabulary {
		patterns[i] = keywordPattern{
			keyword: kw,
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`),
		}
	}
	return patterns
}

// MatchKeywords returns the vocabulary entries whose whole-word pattern
// occurs in title, in vocabulary order. An empty result means the title is
// not benchmark-related and is excluded from extraction output.
func MatchKeywords(title string) []string {
	var matched []string
	for _, kp := range keywordPatterns {
		if kp.pattern.MatchString(title) {
			matched = append(matched, kp.keyword)
		}
	}
	return matched
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaperRecord holds one benchmark-related paper extracted from a conference
// title list. Field names in JSON match the dataset files exchanged with the
// external classifier, so they must not change.
type PaperRecord struct {
	// ID is the position of the record in the final sorted dataset,
	// starting at 1. It is assigned only after the final sort and carries
	// no meaning before output time.
	ID int `json:"id" yaml:"id"`

	// Title is the paper title, exactly the source line with surrounding
	// whitespace trimmed.
	Title string `json:"title" yaml:"title"`

	// Conference is the uppercase conference token (e.g. "NEURIPS").
	Conference string `json:"conference" yaml:"conference"`

	// Year is the 4-digit conference year.
	Year int `json:"year" yaml:"year"`

	// Domain is the research area derived from Conference
	// (AI/ML, CV, NLP, SE, DB/IR, or Unknown).
	Domain string `json:"domain" yaml:"domain"`

	// Category and Subcategory are assigned by the external classifier.
	// Empty string means not yet classified.
	Category    string `json:"category" yaml:"category"`
	Subcategory string `json:"subcategory" yaml:"subcategory"`

	// URL and Abstract are populated downstream, not by this tool.
	URL      string `json:"url" yaml:"url"`
	Abstract string `json:"abstract" yaml:"abstract"`

	// MatchedKeywords lists the vocabulary keywords that matched the title,
	// in vocabulary declaration order.
	MatchedKeywords []string `json:"matchedKeywords" yaml:"matchedKeywords"`
}

// Less reports whether p sorts before q in canonical dataset order:
// ascending by domain, conference, year, then title. String fields compare
// case-sensitively; the domain label compares as a plain string, which groups
// domains by label rather than any enum order.
func (p PaperRecord) Less(q PaperRecord) bool {
	if p.Domain != q.Domain {
		return p.Domain < q.Domain
	}
	if p.Conference != q.Conference {
		return p.Conference < q.Conference
	}
	if p.Year != q.Year {
		return p.Year < q.Year
	}
	return p.Title < q.Title
}

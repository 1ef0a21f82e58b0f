// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package conference maps conference identifiers to research domains.
package conference

// Domain labels. The label string itself is the sort key for the final
// dataset, so the values here are contractual.
const (
	DomainAIML    = "AI/ML"
	DomainCV      = "CV"
	DomainNLP     = "NLP"
	DomainSE      = "SE"
	DomainDBIR    = "DB/IR"
	DomainUnknown = "Unknown"
)

// domains maps a lower-cased conference identifier to its domain label.
// Initialized once; never mutated at runtime.
var domains = map[string]string{
	"neurips": DomainAIML,
	"icml":    DomainAIML,
	"iclr":    DomainAIML,
	"aaai":    DomainAIML,
	"ijcai":   DomainAIML,

	"cvpr": DomainCV,
	"iccv": DomainCV,
	"eccv": DomainCV,

	"acl":   DomainNLP,
	"emnlp": DomainNLP,
	"naacl": DomainNLP,

	"icse": DomainSE,
	"fse":  DomainSE,
	"ase":  DomainSE,

	"sigmod": DomainDBIR,
	"vldb":   DomainDBIR,
	"cikm":   DomainDBIR,
	"sigir":  DomainDBIR,
}

// Resolve returns the domain label for a lower-cased conference identifier.
// Identifiers not in the table resolve to DomainUnknown.
func Resolve(conference string) string {
	if d, ok := domains[conference]; ok {
		return d
	}
	return DomainUnknown
}

// Domains returns the known domain labels in canonical display order.
func Domains() []string {
	return []string{DomainAIML, DomainCV, DomainNLP, DomainSE, DomainDBIR, DomainUnknown}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package conference

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		conference string
		want       string
	}{
		{"neurips", DomainAIML},
		{"icml", DomainAIML},
		{"iclr", DomainAIML},
		{"aaai", DomainAIML},
		{"ijcai", DomainAIML},
		{"cvpr", DomainCV},
		{"iccv", DomainCV},
		{"eccv", DomainCV},
		{"acl", DomainNLP},
		{"emnlp", DomainNLP},
		{"naacl", DomainNLP},
		{"icse", DomainSE},
		{"fse", DomainSE},
		{"ase", DomainSE},
		{"sigmod", DomainDBIR},
		{"vldb", DomainDBIR},
		{"cikm", DomainDBIR},
		{"sigir", DomainDBIR},
		{"xyzconf", DomainUnknown},
		{"", DomainUnknown},
		{"CVPR", DomainUnknown}, // callers lower-case before resolving
	}

	for _, tt := range tests {
		if got := Resolve(tt.conference); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.conference, got, tt.want)
		}
	}
}

func TestDomainsCoversTable(t *testing.T) {
	known := make(map[string]bool)
	for _, d := range Domains() {
		known[d] = true
	}
	for conf, d := range domains {
		if !known[d] {
			t.Errorf("conference %q maps to %q, which Domains() does not list", conf, d)
		}
	}
}

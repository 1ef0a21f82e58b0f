// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "testing"

func TestParseFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantConf string
		wantYear int
		wantErr  bool
	}{
		{
			name:     "plain conference and year",
			filename: "icml_2023.txt",
			wantConf: "icml",
			wantYear: 2023,
		},
		{
			name:     "upper-cased conference is lowered",
			filename: "NEURIPS_2024.txt",
			wantConf: "neurips",
			wantYear: 2024,
		},
		{
			name:     "splits on the last underscore",
			filename: "test_bed_2023.txt",
			wantConf: "test_bed",
			wantYear: 2023,
		},
		{
			name:     "full path uses the base name",
			filename: "paper-list/cvpr_2024.txt",
			wantConf: "cvpr",
			wantYear: 2024,
		},
		{
			name:     "no underscore",
			filename: "nounderscore.txt",
			wantErr:  true,
		},
		{
			name:     "last segment is not an integer",
			filename: "no_underscore.txt",
			wantErr:  true,
		},
		{
			name:     "empty year segment",
			filename: "icml_.txt",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, year, err := ParseFilename(tt.filename)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFilename(%q) expected error, got (%q, %d)", tt.filename, conf, year)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFilename(%q): %v", tt.filename, err)
			}
			if conf != tt.wantConf || year != tt.wantYear {
				t.Errorf("ParseFilename(%q) = (%q, %d), want (%q, %d)",
					tt.filename, conf, year, tt.wantConf, tt.wantYear)
			}
		})
	}
}

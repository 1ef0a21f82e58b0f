package types

// ExtractConfig holds settings for the extraction stage.
type ExtractConfig struct {
	// PaperListDir is the directory of per-conference title lists, one
	// file per conference/year named <conference>_<year>.txt.
	PaperListDir string `json:"paper_list_dir" yaml:"paper_list_dir"`

	// OutputPath is the destination for the raw extracted dataset
	// (e.g. "data/benchmark_papers_raw.json").
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// MergeConfig holds settings for the merge stage.
type MergeConfig struct {
	// DataDir is the base directory holding classified input files and
	// the merged output.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Inputs lists the classified dataset files to merge, in order.
	// Relative names are resolved under DataDir. Empty means the default
	// classified file list.
	Inputs []string `json:"inputs,omitempty" yaml:"inputs,omitempty"`

	// OutputPath is the destination for the merged dataset
	// (e.g. "data/papers.json").
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// CatalogConfig holds settings for the catalog stage.
type CatalogConfig struct {
	// DataDir is the base directory for datasets (contains index/).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

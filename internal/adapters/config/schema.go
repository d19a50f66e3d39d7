package config

// FileConfig is the on-disk configuration, shared by .repin.yaml and the
// [tool.repin] table of pyproject.toml. Pointer fields distinguish an unset
// value from a zero one.
type FileConfig struct {
	Exempt      []string `yaml:"exempt" toml:"exempt"`
	ReportLimit *int     `yaml:"report_limit" toml:"report_limit"`
	Backup      *bool    `yaml:"backup" toml:"backup"`
}

// pyProject is the subset of pyproject.toml the loader reads.
type pyProject struct {
	Tool struct {
		Repin *FileConfig `toml:"repin"`
	} `toml:"tool"`
}

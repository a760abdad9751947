package lines

// Config holds configuration for document checks.
type Config struct {
	// Workers bounds how many documents of a batch are processed at once.
	Workers int `mapstructure:"workers" default:"4"`
	// InputPrefix is the storage prefix documents are read from when none is given.
	InputPrefix string `mapstructure:"input_prefix" default:"scripts/"`
	// OutputPrefix is the storage prefix rewritten documents are uploaded under.
	OutputPrefix string `mapstructure:"output_prefix" default:"fixed/"`
	// Extension selects which files are treated as documents.
	Extension string `mapstructure:"extension" default:".docx"`
}

func (c Config) workers() int {
	if c.Workers <= 0 {
		return 1
	}
	return c.Workers
}

func (c Config) extension() string {
	if c.Extension == "" {
		return ".docx"
	}
	return c.Extension
}

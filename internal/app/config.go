package app

import "time"

// Config holds runtime configuration for one extraction run.
type Config struct {
	PDFPath    string
	TargetYear string
	Label      string

	// Analysis service
	AWSRegion  string
	BlocksFile string

	// Behavior
	CacheDir    string
	CacheMaxAge time.Duration
	CacheClear  bool
	Verbose     bool
}

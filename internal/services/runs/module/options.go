package module

import "staymeter/internal/platform/config"

// Options holds configuration settings for the runs module
type Options struct {
	IQRMultiplier       float64
	TopAffiliates       int
	IncludeInvalidInIQR bool
	ErrorOnEmpty        bool
	Archive             bool
	ArchiveTable        string
	ListLimit           int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	af := cfg.Prefix("CORE_ANALYSIS_")
	return Options{
		IQRMultiplier:       af.MayFloat64("IQR_MULTIPLIER", 1.5),
		TopAffiliates:       af.MayInt("TOP_AFFILIATES", 10),
		IncludeInvalidInIQR: af.MayBool("INCLUDE_INVALID_IQR", false),
		ErrorOnEmpty:        af.MayBool("ERROR_ON_EMPTY", false),
		Archive:             af.MayBool("ARCHIVE", true),
		ArchiveTable:        af.MayString("ARCHIVE_TABLE", "service_records"),
		ListLimit:           af.MayInt("LIST_LIMIT", 100),
	}
}

// Package config provides configuration management for the tweet metrics
// cleaning tool. Only ambient concerns (logging) are configurable; the
// pipeline's input and output locations are fixed by cmd/cleandata.
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. config.yaml in the working directory
//	3. Default values (lowest priority)
//
// All environment variables follow the pattern TWEETMETRICS_* for
// namespacing:
//
//	TWEETMETRICS_LOGGING_LEVEL=debug
//	TWEETMETRICS_LOGGING_OUTPUT=both
//	TWEETMETRICS_LOGGING_FILE_PATH=logs/cleandata.log
package config

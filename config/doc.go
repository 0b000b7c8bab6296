// Package config loads tabopt settings with viper.
//
// Precedence, lowest first: built-in defaults, an optional YAML file,
// TABOPT_* environment variables (TABOPT_LOG_LEVEL, TABOPT_JOURNAL_PATH, ...),
// then any flags the caller binds on the returned *viper.Viper.
package config

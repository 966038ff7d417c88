// Package config loads the Java-.properties-style key=value file that
// drives one orientation run. Defaults mirror the original tool's
// EOMain.setDefaults; unknown values for an enumerated key are a fatal
// config: invalid value error.
package config

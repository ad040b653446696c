// Package config defines the scheduler's runtime settings and provides
// helpers to load, validate and save them in YAML format.
//
// The Config type holds the dispatcher poll interval, the countdown tick
// interval and the log level. A missing settings file yields defaults.
package config

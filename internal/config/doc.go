// Package config reads the harness' positional arguments and the suite's
// flags, applying FIBBENCH_* environment overrides where flags are unset.
package config

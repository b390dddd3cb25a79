// Package config loads matcalc settings from a TOML or YAML file.
//
// A file only needs the keys it changes; everything else keeps the value from
// Default(). The format is picked from the extension (.yaml/.yml → YAML,
// anything else → TOML).
//
//	[display]
//	precision = 3
//
//	[random]
//	min  = -20
//	max  = 20
//	seed = 0      # 0 → seed from the clock
//
//	[solver]
//	workers = 1
//
//	[log]
//	level  = "info"   # debug|info|warn|error
//	format = "text"   # text|json
//
//	[session]
//	tui = false
package config

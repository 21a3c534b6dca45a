// Package presets is a registry of named masks.
//
// A preset file is YAML:
//
//	presets:
//	  - name: phone-us
//	    description: US phone number
//	    pattern: "(999) 999-9999"
//	    guide: true               # optional
//	    placeholder_char: "_"     # optional
//	    keep_char_positions: false # optional
//
// Patterns use the mask.Parse syntax. Default returns the built-in presets
// plus "email", which is registered from the emailmask package since it
// cannot be written as a pattern.
package presets

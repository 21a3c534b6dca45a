// Package config loads textmask defaults from the process environment.
//
// Load first reads .env files with godotenv (a missing file is fine), then
// parses variables into a tagged struct with caarlos0/env. Every variable is
// looked up under the TEXTMASK_ prefix unless WithPrefix says otherwise.
//
//	var d config.Defaults
//	if err := config.Load(&d); err != nil {
//	    return err
//	}
//	if err := d.Validate(); err != nil {
//	    return err
//	}
//
// Values already present in the environment win over .env files.
package config

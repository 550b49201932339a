// Package config loads the optional mssqlsplit.yaml configuration file.
//
// A configuration file looks like:
//
//	delimiter: "/****** Object:"
//	on_error: collect          # fail (default) or collect
//	collisions: error          # overwrite (default) or error
//	strip_script_dates: true
//	manifest: true
//	allow_empty: false
//	include:
//	  - "addr_*"
//	exclude:
//	  - "*_TB"
//
// Keys that are left out keep the values returned by Defaults.
package config

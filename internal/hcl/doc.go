// Package hcl provides the HCL implementation of the config.Loader
// interface. It is responsible for all file parsing and for translating the
// HCL-specific schema into the format-agnostic config.Manifest.
//
// A manifest looks like this:
//
//	contraption "sample" {
//	  layout  = "sample.txt"
//	  workers = 4
//	  order   = "fifo"
//	}
//
//	start "corner" {
//	  x       = 0
//	  y       = 0
//	  heading = right
//	}
//
//	output {
//	  format     = "json"
//	  results_db = "${env.HOME}/beamgrid/runs.db"
//	}
//
// The headings right, left, up and down are available as bare variables,
// and the process environment is exposed as the env map.
package hcl

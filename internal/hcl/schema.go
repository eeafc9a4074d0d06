package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Contraptions []*contraptionBlock `hcl:"contraption,block"`
	Starts       []*startBlock       `hcl:"start,block"`
	Outputs      []*outputBlock      `hcl:"output,block"`
	Remain       hcl.Body            `hcl:",remain"`
}

// contraptionBlock represents the `contraption` block naming the layout to
// search.
type contraptionBlock struct {
	Name    string `hcl:"name,label"`
	Layout  string `hcl:"layout"`
	Workers *int   `hcl:"workers,optional"`
	Order   string `hcl:"order,optional"`
}

// startBlock represents an explicit starting beam.
type startBlock struct {
	Name    string `hcl:"name,label"`
	X       int    `hcl:"x"`
	Y       int    `hcl:"y"`
	Heading string `hcl:"heading"`
}

// outputBlock represents the `output` block configuring reports and sinks.
type outputBlock struct {
	Format     string `hcl:"format,optional"`
	Render     bool   `hcl:"render,optional"`
	ResultsDB  string `hcl:"results_db,optional"`
	PublishURL string `hcl:"publish_url,optional"`
	Namespace  string `hcl:"namespace,optional"`
	Event      string `hcl:"event,optional"`
}

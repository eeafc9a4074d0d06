// Package integrationtests holds end-to-end tests that drive the application
// the way the CLI does: files on disk in, report and result sinks out.
package integrationtests

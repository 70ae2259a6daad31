// Package packagemanager builds and runs npm, yarn and pnpm invocations.
//
// A Builder collects the manager, working directory, packages and flags.
// Execute runs the resulting command to completion while ExecuteAsync
// hands back a live Process. Both share Prepare, which validates the
// builder, creates the working directory when missing and assembles the
// argument vector as verb, packages and then flags.
package packagemanager

// Command snap-seed-sync keeps the snap list of Ubuntu classic model
// assertions in line with the snaps declared in the Ubuntu seeds.
//
// It is meant to run from a checkout of the repository holding the
// ubuntu-classic-<series>-<arch>[-dangerous].json model files:
//
//	snap-seed-sync check --release noble --dry-run
//	snap-seed-sync check --all-supported --commit
package main

import "snap-seed-sync/internal/cli"

func main() {
	cli.Execute()
}

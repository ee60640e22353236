// Package backendtest provides a conformance test suite for validating
// implementations of the cloudpath.Backend contract.
//
// Backend packages import the suite and run it against a factory that
// returns a fresh, empty backend per test:
//
//	func TestBackend(t *testing.T) {
//	    backendtest.Run(t, func(t *testing.T) cloudpath.Backend {
//	        return billyfs.NewMemory()
//	    })
//	}
//
// The suite validates the interface contract, not backend-specific
// behavior. Object stores differ from POSIX trees in documented ways
// (virtual directories above all); pass a Config to absorb those
// differences instead of skipping the whole suite.
package backendtest

import (
	"testing"

	cloudpath "github.com/joshicola/cloud-path"
)

// Factory returns a fresh, empty backend for one test. Tests create and
// remove entries, so each invocation must start clean.
type Factory func(t *testing.T) cloudpath.Backend

// Config adapts the suite to documented backend behavior differences.
type Config struct {
	// VirtualDirectories indicates directories are prefixes (e.g. S3):
	// files can be created without creating parents first, and a
	// directory exists as soon as anything lives under it.
	VirtualDirectories bool

	// SkipTests lists top-level subtest names to skip, e.g. "Glob".
	SkipTests []string
}

// POSIXConfig returns the configuration for POSIX-like backends.
func POSIXConfig() Config {
	return Config{}
}

// ObjectStoreConfig returns the configuration for S3-like backends.
func ObjectStoreConfig() Config {
	return Config{VirtualDirectories: true}
}

// Run runs the full conformance suite with POSIX configuration.
func Run(t *testing.T, newBackend Factory) {
	RunWithConfig(t, newBackend, POSIXConfig())
}

// RunWithConfig runs the full conformance suite.
func RunWithConfig(t *testing.T, newBackend Factory, config Config) {
	shouldSkip := func(name string) bool {
		for _, skip := range config.SkipTests {
			if skip == name {
				return true
			}
		}
		return false
	}

	run := func(name string, fn func(t *testing.T, b cloudpath.Backend, config Config)) {
		t.Run(name, func(t *testing.T) {
			if shouldSkip(name) {
				t.Skip("skipped by backend configuration")
			}
			fn(t, newBackend(t), config)
		})
	}

	run("RoundTrip", testRoundTrip)
	run("Exists", testExists)
	run("FileType", testFileType)
	run("List", testList)
	run("Glob", testGlob)
	run("MakeDirs", testMakeDirs)
	run("RemoveDir", testRemoveDir)
	run("Delete", testDelete)
	run("Move", testMove)
	run("OpenMissing", testOpenMissing)
}

// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: One time, process wide test environment defaults.

// Package testenv configures the process environment for cluster tests.
//
// Before any suite runs, Configure sets a fixed table of defaults into the
// process environment: real networking off, the management center off,
// a minimal join wait, a loopback bind address, IPv4 preferred, version
// checks off and a random multicast group so that concurrent test
// processes on shared CI hosts do not discover each other.
//
// Every default is set only if the key has no value yet, so anything
// exported by the caller (or by CI) wins. Extra defaults, or different
// values for the built in ones, can be supplied in a testenv.yaml file
// read through pkg/cfg:
//
//	Defaults:
//	  CLUSTER_LOCAL_ADDRESS: 10.0.0.5
//	  MY_SERVICE_MODE: test
//
// Configure runs once per process. The test runners call it before
// they touch any suite, so tests normally never call it themselves.
package testenv

// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Aggregation of several log marshalers.

package log

import "github.com/getoutreach/testharness/internal/logf"

// Many aggregates marshaling of many items
//
// This avoids having to build an append list and also simplifies code
type Many = logf.Many

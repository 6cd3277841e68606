// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/vortexdb/vortex-go/cmd"
)

func main() {
	cmd.Execute()
}

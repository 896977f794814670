// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"context"
	"log"
	"os"

	"github.com/azure/azure-dev/cli/azdprompt/cmd"
	"github.com/mattn/go-colorable"
)

func main() {
	ctx := context.Background()

	restoreColorMode := colorable.EnableColorsStdout(nil)
	defer restoreColorMode()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cmdErr := cmd.NewRootCmd(nil).ExecuteContext(ctx)
	if cmdErr != nil {
		restoreColorMode()
		os.Exit(1)
	}
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"carvel.dev/vurf/pkg/cmd"
	uierrs "github.com/cppforlife/go-cli-ui/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	command := cmd.NewDefaultVurfCmd()

	err := command.ExecuteContext(ctx)
	if err != nil {
		var exitErr cmd.ExitError
		if errors.As(err, &exitErr) {
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "vurf: Error: %s\n", uierrs.NewMultiLineError(err))
		stop()
		os.Exit(1)
	}
}

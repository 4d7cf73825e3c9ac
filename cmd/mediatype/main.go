// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command mediatype parses, compares and negotiates media types.
//
//	mediatype parse "text/html; charset=utf-8"
//	mediatype includes "application/*+xml" application/atom+xml
//	mediatype negotiate --accept "text/html;q=0.8, application/json" html json
//	mediatype --types types.yaml detect report.acme
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"rivaas.dev/mediatype/cmd/mediatype/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// SPDX-License-Identifier: MIT

// Command mfaoa runs the mean-field AOA engine from a YAML run description.
//
//	mfaoa generate --kind sk --n 8 > run.yaml
//	mfaoa evolve   --config run.yaml --plot z.svg
//	mfaoa lyapunov --config run.yaml --format yaml
//	mfaoa optimize --config run.yaml --out best.json
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Command zeta is a small driver that classifies a bytecode array step by
// step and prints the resulting trace, exercising the halting-condition
// analyzer end-to-end without running a full interpreter.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"

	"github.com/ethcore-labs/zeta"
	"github.com/ethcore-labs/zeta/gasoracle"
	"github.com/ethcore-labs/zeta/halt"
	"github.com/ethcore-labs/zeta/trace"
)

func main() {
	app := &cli.App{
		Name:      "zeta",
		Usage:     "EVM halting-condition analyzer trace driver",
		Copyright: "(c) 2026 ethcore-labs",
		Commands: []*cli.Command{
			&traceCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var traceCmd = cli.Command{
	Name:  "trace",
	Usage: "classify a bytecode array step by step and print the trace",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "code", Usage: "hex-encoded bytecode (with or without 0x prefix)", Required: true},
		&cli.Int64Flag{Name: "gas", Usage: "initial gas budget", Value: 1_000_000},
		&cli.BoolFlag{Name: "static", Usage: "run in a static (read-only) frame"},
	},
	Action: runTrace,
}

func runTrace(c *cli.Context) error {
	code, err := decodeCode(c.String("code"))
	if err != nil {
		return fmt.Errorf("invalid code: %w", err)
	}

	env := halt.NewEnvironment(code, c.Bool("static"), allFeaturesEnabled())
	m := &halt.Machine{
		Stack:  halt.NewStack(),
		Memory: halt.NewMemory(),
		Gas:    zeta.Gas(c.Int64("gas")),
	}
	defer halt.ReturnStack(m.Stack)

	oracle := gasoracle.New(nil)
	outcome := trace.Run(m, env, oracle, os.Stdout)

	fmt.Fprintf(os.Stdout, "\nremaining gas: %s\n", unitconv.FormatPrefix(float64(outcome.Gas), unitconv.SI, 2))
	switch {
	case outcome.Halt != nil:
		fmt.Fprintf(os.Stdout, "exceptional halt: %s at pc %d\n", outcome.Halt.Kind, outcome.PC)
	case outcome.Err != nil:
		fmt.Fprintf(os.Stdout, "oracle error: %v\n", outcome.Err)
	default:
		fmt.Fprintf(os.Stdout, "normal halt: %s, %d bytes returned\n", outcome.Normal, len(outcome.Payload))
	}
	return nil
}

func decodeCode(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

// allFeaturesEnabled returns a Config with every gated opcode turned on,
// the CLI's default fork (equivalent to a fully up-to-date chain).
func allFeaturesEnabled() zeta.Config {
	return zeta.Config{
		HasDelegateCall:             true,
		HasRevert:                   true,
		HasStaticCall:               true,
		HasVariableLengthReturnData: true,
		HasShiftOps:                 true,
		HasExtCodeHash:              true,
		HasCreate2:                  true,
	}
}

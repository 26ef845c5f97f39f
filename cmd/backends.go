// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/choria-io/fisk"

	"github.com/choria-io/upm/internal/registry"
)

type backendsCmd struct{}

func registerBackendsCommand(app *fisk.Application) {
	cmd := &backendsCmd{}

	app.Command("backends", "List known backends").Action(cmd.listAction)
}

func (c *backendsCmd) listAction(_ *fisk.ParseContext) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}

	selected := ""
	b, err := mgr.Backend()
	if err == nil {
		selected = b.Name()
	}

	for _, name := range registry.Names() {
		if name == selected {
			fmt.Printf("* %s\n", name)
		} else {
			fmt.Printf("  %s\n", name)
		}
	}

	if selected == "" {
		fmt.Println()
		fmt.Printf("No backend can be used: %v\n", err)
	}

	return nil
}

// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/choria-io/fisk"

	"github.com/choria-io/upm/model"
)

type operationCommand struct {
	op    model.Operation
	alias string
	help  string
}

var operationCommands = []operationCommand{
	{model.OpQuery, "Q", "List installed packages, with keywords search them"},
	{model.OpQueryChangelog, "Qc", "Show the changelog of a package"},
	{model.OpQueryInfo, "Qi", "Show information about installed packages"},
	{model.OpQueryFiles, "Ql", "List files provided by installed packages"},
	{model.OpQuerySearch, "Qs", "Search installed packages matching all keywords"},
	{model.OpQueryUpdates, "Qu", "List packages with an update available"},
	{model.OpRemove, "R", "Remove packages, leaving their dependencies installed"},
	{model.OpRemoveWithDeps, "Rs", "Remove packages and dependencies no longer required"},
	{model.OpSyncInstall, "S", "Install packages"},
	{model.OpSyncClean, "Sc", "Remove cached packages that are no longer installed"},
	{model.OpSyncCleanAll, "Scc", "Remove all files from the cache"},
	{model.OpSyncInfo, "Si", "Show information about remote packages"},
	{model.OpSyncReverseDeps, "Sii", "Show packages that require the given packages"},
	{model.OpSyncSearch, "Ss", "Search remote packages"},
	{model.OpSyncUpdate, "Su", "Upgrade outdated packages"},
	{model.OpSyncUpdateRefresh, "Suy", "Refresh the package database then upgrade outdated packages"},
	{model.OpSyncDownload, "Sw", "Download packages without installing them"},
	{model.OpSyncRefresh, "Sy", "Refresh the package database"},
}

type operationCmd struct {
	op       model.Operation
	keywords []string
	flags    []string
}

func registerOperationCommands(app *fisk.Application) {
	for _, oc := range operationCommands {
		cmd := &operationCmd{op: oc.op}

		op := app.Command(oc.op.String(), oc.help).Alias(oc.alias).Action(cmd.runAction)
		op.Arg("keywords", "Packages or search terms").StringsVar(&cmd.keywords)
		op.Flag("flag", "Flags to pass to the package manager").PlaceHolder("FLAG").StringsVar(&cmd.flags)
	}
}

func (c *operationCmd) runAction(_ *fisk.ParseContext) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}

	return mgr.Run(ctx, c.op, c.keywords, c.flags)
}

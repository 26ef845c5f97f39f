// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package backends registers the built-in backends and dispatches operations to them
package backends

import (
	"context"
	"fmt"

	"github.com/choria-io/upm/backends/brew"
	"github.com/choria-io/upm/model"
)

func init() {
	brew.Register()
}

type handler func(model.Backend, context.Context, []string, []string) error

var handlers = map[model.Operation]handler{
	model.OpQuery:             model.Backend.Query,
	model.OpQueryChangelog:    model.Backend.QueryChangelog,
	model.OpQueryInfo:         model.Backend.QueryInfo,
	model.OpQueryFiles:        model.Backend.QueryFiles,
	model.OpQuerySearch:       model.Backend.QuerySearch,
	model.OpQueryUpdates:      model.Backend.QueryUpdates,
	model.OpRemove:            model.Backend.Remove,
	model.OpRemoveWithDeps:    model.Backend.RemoveWithDeps,
	model.OpSyncInstall:       model.Backend.SyncInstall,
	model.OpSyncClean:         model.Backend.SyncClean,
	model.OpSyncCleanAll:      model.Backend.SyncCleanAll,
	model.OpSyncInfo:          model.Backend.SyncInfo,
	model.OpSyncReverseDeps:   model.Backend.SyncReverseDeps,
	model.OpSyncSearch:        model.Backend.SyncSearch,
	model.OpSyncUpdate:        model.Backend.SyncUpdate,
	model.OpSyncUpdateRefresh: model.Backend.SyncUpdateRefresh,
	model.OpSyncDownload:      model.Backend.SyncDownload,
	model.OpSyncRefresh:       model.Backend.SyncRefresh,
}

// Invoke runs op on backend b
func Invoke(ctx context.Context, b model.Backend, op model.Operation, kws []string, flags []string) error {
	h, ok := handlers[op]
	if !ok {
		return fmt.Errorf("%w: %q", model.ErrUnknownOperation, op)
	}

	return h(b, ctx, kws, flags)
}

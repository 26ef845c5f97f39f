// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"slices"
)

// Operation is one abstract package management action
type Operation string

const (
	OpQuery             Operation = "query"
	OpQueryChangelog    Operation = "query-changelog"
	OpQueryInfo         Operation = "query-info"
	OpQueryFiles        Operation = "query-files"
	OpQuerySearch       Operation = "query-search"
	OpQueryUpdates      Operation = "query-updates"
	OpRemove            Operation = "remove"
	OpRemoveWithDeps    Operation = "remove-with-deps"
	OpSyncInstall       Operation = "sync-install"
	OpSyncClean         Operation = "sync-clean"
	OpSyncCleanAll      Operation = "sync-clean-all"
	OpSyncInfo          Operation = "sync-info"
	OpSyncReverseDeps   Operation = "sync-reverse-deps"
	OpSyncSearch        Operation = "sync-search"
	OpSyncUpdate        Operation = "sync-update"
	OpSyncUpdateRefresh Operation = "sync-update-refresh"
	OpSyncDownload      Operation = "sync-download"
	OpSyncRefresh       Operation = "sync-refresh"
)

var operations = []Operation{
	OpQuery, OpQueryChangelog, OpQueryInfo, OpQueryFiles, OpQuerySearch, OpQueryUpdates,
	OpRemove, OpRemoveWithDeps,
	OpSyncInstall, OpSyncClean, OpSyncCleanAll, OpSyncInfo, OpSyncReverseDeps, OpSyncSearch,
	OpSyncUpdate, OpSyncUpdateRefresh, OpSyncDownload, OpSyncRefresh,
}

// Operations lists every known operation
func Operations() []Operation {
	return slices.Clone(operations)
}

// ParseOperation validates an operation name
func ParseOperation(name string) (Operation, error) {
	op := Operation(name)
	if !slices.Contains(operations, op) {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}

	return op, nil
}

func (o Operation) String() string { return string(o) }

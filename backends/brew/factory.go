// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package brew

import (
	"runtime"

	"github.com/choria-io/upm/internal/registry"
	iu "github.com/choria-io/upm/internal/util"
	"github.com/choria-io/upm/model"
)

// Register registers this backend with the registry
func Register() {
	registry.MustRegister(&factory{})
}

type factory struct{}

func (p *factory) Name() string { return BackendName }
func (p *factory) New(opts model.BackendOptions) (model.Backend, error) {
	return NewBrewBackend(opts)
}
func (p *factory) IsManageable() (bool, int, error) {
	_, found, _ := iu.ExecutableInPath(program)
	if !found {
		return false, 0, nil
	}

	// native package managers are preferred on linux
	if runtime.GOOS == "darwin" {
		return true, 1, nil
	}

	return true, 50, nil
}

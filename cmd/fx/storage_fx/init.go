package storage_fx

import (
	"go.uber.org/fx"

	"babylog/internal/infra"
)

var Module = fx.Provide(provideObjectStore)

func provideObjectStore() infra.ObjectStore {
	return infra.InitObjectStore()
}

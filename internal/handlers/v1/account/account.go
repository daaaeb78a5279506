package account

import (
	"github.com/carson-networks/compta-server/internal/model"
)

// Registry is the API response model for the account registry.
type Registry struct {
	Current     []string          `json:"current" doc:"Current accounts, the first one is the default"`
	Saving      []string          `json:"saving" doc:"Saving accounts"`
	SavingLinks map[string]string `json:"savingLinks" doc:"Current account each saving account belongs to"`
}

func fromRegistry(reg model.Registry) Registry {
	out := Registry{
		Current:     reg.Current,
		Saving:      reg.Saving,
		SavingLinks: reg.EffectiveLinks(),
	}
	if out.Saving == nil {
		out.Saving = []string{}
	}
	return out
}

// RegistryOutput is the Huma output of every registry endpoint.
type RegistryOutput struct {
	Body Registry
}

// AccountPath addresses one account of a given kind.
type AccountPath struct {
	Kind string `path:"kind" enum:"current,saving" doc:"Account kind"`
	Name string `path:"name" minLength:"1" doc:"Account name"`
}

package driver

import (
	"corund/internal/names"
)

// AliasEntry is one row of the alias table.
type AliasEntry struct {
	Crate  string `yaml:"crate" msgpack:"crate"`
	Scope  string `yaml:"scope" msgpack:"scope"`
	Block  bool   `yaml:"block,omitempty" msgpack:"block"`
	Name   string `yaml:"name" msgpack:"name"`
	Target string `yaml:"target" msgpack:"target"`
}

// CollectAliases lists every alias of scopes in scope creation order and,
// within a scope, in registration order.
func CollectAliases(scopes *names.Tree) []AliasEntry {
	var out []AliasEntry
	scopes.Walk(func(id names.ScopeID, s *names.Scope) {
		crate := ""
		if c, ok := scopes.FindCrate(id); ok {
			crate = scopes.Get(c).Name
		}
		for _, name := range s.Order {
			item := s.Items[name]
			if item.Kind != names.ItemAlias {
				continue
			}
			out = append(out, AliasEntry{
				Crate:  crate,
				Scope:  s.Path.String(),
				Block:  s.Kind == names.ScopeBlock,
				Name:   name,
				Target: item.Target.String(),
			})
		}
	})
	return out
}

package model

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultCurrentAccount is created when a registry would otherwise be empty.
const DefaultCurrentAccount = "Current account"

// SavingLinks maps a saving account name to the current account it belongs to.
type SavingLinks map[string]string

// Registry lists the known accounts. It is a value: editing operations return
// a modified copy and never rewrite historical transactions.
type Registry struct {
	Current     []string
	Saving      []string
	SavingLinks SavingLinks
}

// DefaultRegistry is the registry of a fresh installation.
func DefaultRegistry() Registry {
	return Registry{
		Current:     []string{DefaultCurrentAccount},
		Saving:      []string{},
		SavingLinks: SavingLinks{},
	}
}

// Normalize drops blank and duplicate names and guarantees one current account.
func (r Registry) Normalize() Registry {
	out := Registry{
		Current:     uniqueNames(r.Current),
		Saving:      uniqueNames(r.Saving),
		SavingLinks: SavingLinks{},
	}
	if len(out.Current) == 0 {
		out.Current = []string{DefaultCurrentAccount}
	}
	for saving, current := range r.SavingLinks {
		if saving != "" && current != "" {
			out.SavingLinks[saving] = current
		}
	}
	return out
}

func (r Registry) clone() Registry {
	links := make(SavingLinks, len(r.SavingLinks))
	for k, v := range r.SavingLinks {
		links[k] = v
	}
	return Registry{
		Current:     slices.Clone(r.Current),
		Saving:      slices.Clone(r.Saving),
		SavingLinks: links,
	}
}

// DefaultCurrent is the first current account, or "" for an empty registry.
func (r Registry) DefaultCurrent() string {
	if len(r.Current) == 0 {
		return ""
	}
	return r.Current[0]
}

func (r Registry) HasCurrent(name string) bool {
	return slices.Contains(r.Current, name)
}

func (r Registry) HasSaving(name string) bool {
	return slices.Contains(r.Saving, name)
}

// LinkFor resolves the current account a saving account belongs to,
// defaulting to the first current account.
func (r Registry) LinkFor(saving string) string {
	if linked, ok := r.SavingLinks[saving]; ok && linked != "" {
		return linked
	}
	return r.DefaultCurrent()
}

// EffectiveLinks returns an explicit link for every known saving account.
// Links kept for saving accounts no longer in the registry are carried over.
func (r Registry) EffectiveLinks() SavingLinks {
	links := make(SavingLinks, len(r.Saving)+len(r.SavingLinks))
	for k, v := range r.SavingLinks {
		if v != "" {
			links[k] = v
		}
	}
	for _, saving := range r.Saving {
		links[saving] = r.LinkFor(saving)
	}
	return links
}

func (r Registry) AddCurrent(name string) (Registry, error) {
	name, err := r.checkNewName(name)
	if err != nil {
		return r, err
	}
	out := r.clone()
	out.Current = append(out.Current, name)
	return out, nil
}

func (r Registry) AddSaving(name string) (Registry, error) {
	name, err := r.checkNewName(name)
	if err != nil {
		return r, err
	}
	out := r.clone()
	out.Saving = append(out.Saving, name)
	return out, nil
}

// RenameCurrent renames a current account; saving links follow the new name.
func (r Registry) RenameCurrent(oldName, newName string) (Registry, error) {
	idx := slices.Index(r.Current, oldName)
	if idx < 0 {
		return r, fmt.Errorf("current account %q: %w", oldName, ErrUnknownAccount)
	}
	newName = strings.TrimSpace(newName)
	if newName == oldName {
		return r, nil
	}
	newName, err := r.checkNewName(newName)
	if err != nil {
		return r, err
	}
	out := r.clone()
	out.Current[idx] = newName
	for saving, current := range out.SavingLinks {
		if current == oldName {
			out.SavingLinks[saving] = newName
		}
	}
	return out, nil
}

// RenameSaving renames a saving account; its link moves with it.
func (r Registry) RenameSaving(oldName, newName string) (Registry, error) {
	idx := slices.Index(r.Saving, oldName)
	if idx < 0 {
		return r, fmt.Errorf("saving account %q: %w", oldName, ErrUnknownAccount)
	}
	newName = strings.TrimSpace(newName)
	if newName == oldName {
		return r, nil
	}
	newName, err := r.checkNewName(newName)
	if err != nil {
		return r, err
	}
	out := r.clone()
	out.Saving[idx] = newName
	if linked, ok := out.SavingLinks[oldName]; ok {
		delete(out.SavingLinks, oldName)
		out.SavingLinks[newName] = linked
	}
	return out, nil
}

// DeleteCurrent removes a current account. Saving links that pointed at it
// are reassigned to the first remaining current account.
func (r Registry) DeleteCurrent(name string) (Registry, error) {
	idx := slices.Index(r.Current, name)
	if idx < 0 {
		return r, fmt.Errorf("current account %q: %w", name, ErrUnknownAccount)
	}
	if len(r.Current) == 1 {
		return r, ErrLastCurrentAccount
	}
	out := r.clone()
	out.Current = slices.Delete(out.Current, idx, idx+1)
	fallback := out.Current[0]
	for saving, current := range out.SavingLinks {
		if current == name {
			out.SavingLinks[saving] = fallback
		}
	}
	return out, nil
}

func (r Registry) DeleteSaving(name string) (Registry, error) {
	idx := slices.Index(r.Saving, name)
	if idx < 0 {
		return r, fmt.Errorf("saving account %q: %w", name, ErrUnknownAccount)
	}
	out := r.clone()
	out.Saving = slices.Delete(out.Saving, idx, idx+1)
	delete(out.SavingLinks, name)
	return out, nil
}

// Link attaches a saving account to a current account.
func (r Registry) Link(saving, current string) (Registry, error) {
	if !r.HasSaving(saving) {
		return r, fmt.Errorf("saving account %q: %w", saving, ErrUnknownAccount)
	}
	if !r.HasCurrent(current) {
		return r, fmt.Errorf("current account %q: %w", current, ErrUnknownAccount)
	}
	out := r.clone()
	out.SavingLinks[saving] = current
	return out, nil
}

func (r Registry) checkNewName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyAccountName
	}
	if r.HasCurrent(name) || r.HasSaving(name) {
		return "", fmt.Errorf("%q: %w", name, ErrDuplicateAccount)
	}
	return name, nil
}

func uniqueNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

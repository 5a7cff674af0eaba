// Package assets implements the layered asset-resolution core: an ordered
// registry of bundles, a first-match resolver over it, and the manager
// lifecycle (activate, reload, clone, close).
//
// A Manager is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves.
package assets

import (
	"fmt"

	"github.com/openpuyo/assetman/pkg/types"
)

// Manager owns an ordered set of bundles and resolves asset requests
// against them. Bundles are tried in insertion order; the first bundle
// that produces a clean result wins, so later bundles act as fallbacks
// and earlier ones as overrides (mods and skin packs shadow base assets).
type Manager struct {
	bundles   []types.Bundle
	front     types.Frontend
	debug     types.DebugLog
	activated bool
	closed    bool
}

// ReloadReport is the outcome of ReloadBundles: how many reloads were
// attempted and which bundles failed.
type ReloadReport struct {
	Attempted int
	Failures  []error
}

// OK reports whether every attempted reload succeeded.
func (r ReloadReport) OK() bool {
	return len(r.Failures) == 0
}

// New constructs an empty, unactivated Manager.
func New() *Manager {
	return &Manager{}
}

// NewActivated constructs a Manager bound to the given collaborators.
// Logs a "loaded" trace when a debug log is supplied.
func NewActivated(fe types.Frontend, dbg types.DebugLog) *Manager {
	m := &Manager{front: fe, debug: dbg}
	m.activated = fe != nil && dbg != nil
	if m.debug != nil {
		m.debug.Log("asset manager loaded", types.MessageDebug)
	}
	return m
}

// Activate rebinds the front-end and debug-log collaborators, reloads
// every bundle against the new front-end, and marks the manager activated
// iff both collaborators are non-nil. This is the only path that can set
// the activated flag.
func (m *Manager) Activate(fe types.Frontend, dbg types.DebugLog) {
	m.front = fe
	m.debug = dbg
	m.ReloadBundles()
	m.activated = fe != nil && dbg != nil
}

// Activated reports whether both collaborators are bound.
func (m *Manager) Activated() bool {
	return m.activated
}

// LoadBundle initializes the bundle against the current front-end, forces
// a reload, attaches the debug log, and appends the bundle to the registry
// if it reports itself valid. Returns the bundle's validity; on false the
// caller keeps ownership and must Close the bundle.
//
// The priority argument is accepted for interface stability but has no
// effect: bundles resolve strictly in insertion order.
func (m *Manager) LoadBundle(bundle types.Bundle, priority int) bool {
	_ = priority

	if err := bundle.Init(m.front); err != nil {
		m.log(fmt.Sprintf("bundle init failed: %v", err), types.MessageError)
	}
	if err := bundle.Reload(m.front); err != nil {
		m.log(fmt.Sprintf("bundle reload failed: %v", err), types.MessageError)
	}
	bundle.SetDebugLog(m.debug)

	if bundle.Valid() {
		m.bundles = append(m.bundles, bundle)
	}
	return bundle.Valid()
}

// DeleteBundle removes the bundle from the registry and closes it.
// Reports whether the bundle was actually found and removed.
func (m *Manager) DeleteBundle(bundle types.Bundle) bool {
	for i, b := range m.bundles {
		if b == bundle {
			m.bundles = append(m.bundles[:i], m.bundles[i+1:]...)
			if err := b.Close(); err != nil {
				m.log(fmt.Sprintf("bundle close failed: %v", err), types.MessageError)
			}
			return true
		}
	}
	return false
}

// PruneInactive removes every tombstoned bundle from the registry without
// closing it; a tombstoned bundle returns to its creator's ownership.
// Returns true iff the registry was already empty when called.
func (m *Manager) PruneInactive() bool {
	if len(m.bundles) == 0 {
		return true
	}
	kept := m.bundles[:0]
	for _, b := range m.bundles {
		if b.Active() {
			kept = append(kept, b)
		}
	}
	m.bundles = kept
	return false
}

// ReloadBundles reloads every bundle against the current front-end and
// reports the attempt count together with any per-bundle failures.
func (m *Manager) ReloadBundles() ReloadReport {
	report := ReloadReport{}
	for _, b := range m.bundles {
		report.Attempted++
		if err := b.Reload(m.front); err != nil {
			report.Failures = append(report.Failures, err)
		}
	}
	return report
}

// Len returns the number of bundles in the registry.
func (m *Manager) Len() int {
	return len(m.bundles)
}

// Bundles returns a snapshot of the registry in resolution order.
// Mutating the returned slice does not affect the registry.
func (m *Manager) Bundles() []types.Bundle {
	out := make([]types.Bundle, len(m.bundles))
	copy(out, m.bundles)
	return out
}

// Clone produces a structurally independent copy of the manager: every
// bundle is deep-copied and loaded through the normal insertion path, then
// the copy is activated with the same collaborators as the source. The
// front-end and debug log are shared, not cloned.
func (m *Manager) Clone() *Manager {
	clone := New()
	for _, b := range m.bundles {
		clone.LoadBundle(b.Clone(), 0)
	}
	clone.Activate(m.front, m.debug)
	return clone
}

// Close releases every bundle still owned by the registry and logs a
// "destroyed" trace. Idempotent; the first bundle close error is returned
// after all bundles have been closed.
func (m *Manager) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true

	var first error
	for _, b := range m.bundles {
		if err := b.Close(); err != nil && first == nil {
			first = err
		}
	}
	m.bundles = nil
	m.log("asset manager destroyed", types.MessageDebug)
	return first
}

// log writes to the debug collaborator when one is bound.
func (m *Manager) log(message string, kind types.MessageKind) {
	if m.debug != nil {
		m.debug.Log(message, kind)
	}
}

package notification

import "fmt"

// TargetKind distinguishes pane identifiers from tab indices.
type TargetKind uint8

const (
	TargetPane TargetKind = iota
	TargetTab
)

// TargetKey identifies one render surface. It is comparable and usable as a map key.
type TargetKey struct {
	Kind TargetKind
	ID   int64
}

// PaneKey returns the key for a pane.
func PaneKey(id uint32) TargetKey {
	return TargetKey{Kind: TargetPane, ID: int64(id)}
}

// TabKey returns the key for a tab.
func TabKey(index int) TargetKey {
	return TargetKey{Kind: TargetTab, ID: int64(index)}
}

// Less orders panes before tabs, then by ID.
func (k TargetKey) Less(other TargetKey) bool {
	if k.Kind != other.Kind {
		return k.Kind < other.Kind
	}
	return k.ID < other.ID
}

func (k TargetKey) String() string {
	if k.Kind == TargetTab {
		return fmt.Sprintf("tab:%d", k.ID)
	}
	return fmt.Sprintf("pane:%d", k.ID)
}

// Key returns the surface a target's visual state lives on.
// A pane wins over a tab when both are set. ok is false for untargeted values.
func (t Target) Key() (TargetKey, bool) {
	switch {
	case t.HasPane:
		return PaneKey(t.Pane), true
	case t.HasTab:
		return TabKey(t.Tab), true
	default:
		return TargetKey{}, false
	}
}

// Matches reports whether the target addresses the surface identified by key.
func (t Target) Matches(key TargetKey) bool {
	switch key.Kind {
	case TargetPane:
		return t.HasPane && int64(t.Pane) == key.ID
	case TargetTab:
		return t.HasTab && int64(t.Tab) == key.ID
	default:
		return false
	}
}

package controllers

import (
	"fmt"
	"strings"
	"sync"

	"campushire/screener/internal/models"
	"campushire/screener/internal/view"
)

const maxSectionIDLength = 50

// Navigation resolves section identifiers to the active view. Exactly
// one section is active at a time; anything invalid converges on the
// dashboard so a navigation request never fails outright.
type Navigation struct {
	mu      sync.Mutex
	view    view.View
	active  models.SectionID
	address string
	loaders map[models.SectionID]func() error
}

func NewNavigation(v view.View) *Navigation {
	return &Navigation{
		view:    v,
		active:  models.SectionDashboard,
		address: string(models.SectionDashboard),
		loaders: make(map[models.SectionID]func() error),
	}
}

// Register installs the loader dispatched after section activates.
// Components register their own sections at startup.
func (n *Navigation) Register(section models.SectionID, loader func() error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.loaders[section] = loader
}

func (n *Navigation) Active() models.SectionID {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}

// ShowSection activates the target section. Unknown ids and sections
// without a renderable surface fall back to the dashboard with a
// warning toast naming the rejected id.
func (n *Navigation) ShowSection(id models.SectionID) {
	n.mu.Lock()

	target := id
	if !models.ValidSection(target) {
		n.view.ShowMessage(fmt.Sprintf("Unknown section %q — returning to the dashboard", string(id)), view.MessageWarning)
		target = models.SectionDashboard
	}

	if err := n.view.Render(target, target.Title()); err != nil {
		if target != models.SectionDashboard {
			n.view.ShowMessage(fmt.Sprintf("Unknown section %q — returning to the dashboard", string(id)), view.MessageWarning)
			target = models.SectionDashboard
			n.view.Render(target, target.Title())
		}
	}

	n.active = target
	// Update the address directly; routing it through
	// HandleAddressChange would trigger a self-transition.
	n.address = string(target)
	loader := n.loaders[target]
	n.mu.Unlock()

	if loader == nil {
		return
	}
	if err := loader(); err != nil {
		n.view.ShowMessage(fmt.Sprintf("Failed to load %s: %v", target.Title(), err), view.MessageError)
	}
}

// HandleAddressChange reacts to an externally changed address. A
// sanitized id equal to the active section is ignored, which breaks
// the loop when a transition rewrites the address itself.
func (n *Navigation) HandleAddressChange(raw string) {
	id := models.SectionID(Sanitize(raw))

	n.mu.Lock()
	same := id == n.active
	n.mu.Unlock()
	if same {
		return
	}

	n.ShowSection(id)
}

// Address returns the current address representation.
func (n *Navigation) Address() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.address
}

// Sanitize normalizes a raw address fragment into a section id
// candidate: everything from the first '?', '&' or '#' is stripped,
// the rest is lowercased and reduced to [a-z0-9-], truncated to 50
// characters. An empty result maps to the dashboard.
func Sanitize(raw string) string {
	if i := strings.IndexAny(raw, "?&#"); i >= 0 {
		raw = raw[:i]
	}

	raw = strings.ToLower(strings.TrimSpace(raw))

	var b strings.Builder
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}

	out := b.String()
	if len(out) > maxSectionIDLength {
		out = out[:maxSectionIDLength]
	}
	if out == "" {
		return string(models.SectionDashboard)
	}
	return out
}

// Package panel implements the settings panel controller: open/closed state,
// the uncommitted draft selection, outside-click and Escape dismissal, and
// the submit/reset hand-off to the host.
package panel

import (
	"github.com/alexisbeaulieu97/typepanel/internal/catalog"
	"github.com/alexisbeaulieu97/typepanel/internal/document"
	"github.com/alexisbeaulieu97/typepanel/internal/logger"
)

// EscapeKey is the key string that dismisses an open panel.
const EscapeKey = "esc"

// Ownership selects who decides the panel's open state.
type Ownership int

const (
	// OwnOpenState flips the open state inside the controller and reports
	// each change through OnOpenChange.
	OwnOpenState Ownership = iota
	// ExternalOpenState forwards every requested change to OnOpenChange and
	// waits for the parent to call SetOpen.
	ExternalOpenState
)

func (o Ownership) String() string {
	if o == ExternalOpenState {
		return "external"
	}
	return "internal"
}

// State is the dismissal state machine position.
type State int

const (
	Closed State = iota
	OpenListening
)

func (s State) String() string {
	if s == OpenListening {
		return "open"
	}
	return "closed"
}

// Options configures a Controller. Every callback is optional.
type Options struct {
	Catalogs  catalog.Set
	Defaults  catalog.Selection
	Ownership Ownership

	OnSubmit     func(catalog.Selection)
	OnReset      func(catalog.Selection)
	OnOpenChange func(open bool)

	Logger *logger.Logger
}

// Controller owns the panel state. It is not safe for concurrent use; all
// calls are expected to come from the host's update loop.
type Controller struct {
	doc  *document.Document
	opts Options
	log  *logger.Logger

	open  bool
	draft catalog.Selection

	region   document.Rect
	mounted  bool
	disposed bool

	pointer document.Registration
	key     document.Registration
}

// New creates a closed controller whose draft equals the defaults. Missing
// catalogs or defaults fall back to the built-in ones.
func New(doc *document.Document, opts Options) *Controller {
	if opts.Catalogs == nil {
		opts.Catalogs = catalog.Builtin()
	}
	if opts.Defaults == (catalog.Selection{}) {
		opts.Defaults = catalog.DefaultSelection()
	}

	return &Controller{
		doc:   doc,
		opts:  opts,
		log:   opts.Logger.With("component", "panel"),
		draft: opts.Defaults,
	}
}

// IsOpen reports whether the panel is open.
func (c *Controller) IsOpen() bool {
	return c.open
}

// State returns the dismissal state.
func (c *Controller) State() State {
	if c.open {
		return OpenListening
	}
	return Closed
}

// Draft returns the uncommitted selection.
func (c *Controller) Draft() catalog.Selection {
	return c.draft
}

// Defaults returns the reset target.
func (c *Controller) Defaults() catalog.Selection {
	return c.opts.Defaults
}

// Catalogs returns the option catalogs the panel offers.
func (c *Controller) Catalogs() catalog.Set {
	return c.opts.Catalogs
}

// Ownership reports who owns the open state.
func (c *Controller) Ownership() Ownership {
	return c.opts.Ownership
}

// Toggle requests the opposite open state.
func (c *Controller) Toggle() {
	if c.disposed {
		return
	}
	c.request(!c.open, "toggle")
}

// SetOpen applies an open state decided by the parent. In OwnOpenState mode
// it behaves like a direct open or close.
func (c *Controller) SetOpen(open bool) {
	c.apply(open, "external")
}

// SelectOption replaces the draft entry for one category. Membership of opt
// in the category's catalog is the caller's responsibility.
func (c *Controller) SelectOption(category catalog.Category, opt catalog.Option) {
	if c.disposed || !category.Valid() {
		return
	}
	c.draft = c.draft.With(category, opt)
	c.log.WithFields(map[string]any{"category": string(category), "option": opt.ID}).Debug("option selected")
}

// Submit hands the current draft to OnSubmit.
func (c *Controller) Submit() {
	if c.disposed {
		return
	}
	c.log.WithFields(map[string]any{
		"font_family": c.draft.FontFamily.ID,
		"font_size":   c.draft.FontSize.ID,
		"font_color":  c.draft.FontColor.ID,
		"background":  c.draft.BackgroundColor.ID,
		"width":       c.draft.ContentWidth.ID,
	}).Info("selection submitted")
	if c.opts.OnSubmit != nil {
		c.opts.OnSubmit(c.draft)
	}
}

// Reset reverts the draft to the defaults and hands the defaults to OnReset.
func (c *Controller) Reset() {
	if c.disposed {
		return
	}
	c.draft = c.opts.Defaults
	c.log.Info("selection reset")
	if c.opts.OnReset != nil {
		c.opts.OnReset(c.opts.Defaults)
	}
}

// OnChange returns the callback a widget uses to report a choice for category.
func (c *Controller) OnChange(category catalog.Category) func(catalog.Option) {
	return func(opt catalog.Option) {
		c.SelectOption(category, opt)
	}
}

// Mount records the panel's rendered region. Hosts call it on every layout
// pass; pointer presses inside the region never dismiss the panel.
func (c *Controller) Mount(region document.Rect) {
	if c.disposed {
		return
	}
	c.region = region
	c.mounted = true
}

// Region returns the last mounted region and whether one is mounted.
func (c *Controller) Region() (document.Rect, bool) {
	return c.region, c.mounted
}

// Unmount forgets the rendered region. Pointer events received while
// unmounted are ignored.
func (c *Controller) Unmount() {
	c.mounted = false
	c.region = document.Rect{}
}

// Dispose tears the controller down, closing the panel without notifying
// OnOpenChange and releasing any document listeners. Further operations are
// ignored.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.stopListening()
	c.open = false
	c.Unmount()
	c.disposed = true
	c.log.Debug("panel disposed")
}

// Listening reports whether the controller currently holds its document
// listeners.
func (c *Controller) Listening() bool {
	return c.pointer.Active() || c.key.Active()
}

func (c *Controller) request(open bool, reason string) {
	if c.opts.Ownership == ExternalOpenState {
		if c.opts.OnOpenChange != nil {
			c.opts.OnOpenChange(open)
		}
		return
	}
	before := c.open
	c.apply(open, reason)
	if c.open != before && c.opts.OnOpenChange != nil {
		c.opts.OnOpenChange(c.open)
	}
}

func (c *Controller) apply(open bool, reason string) {
	if c.disposed || open == c.open {
		return
	}
	c.open = open
	if open {
		c.startListening()
	} else {
		c.stopListening()
	}
	c.log.WithFields(map[string]any{"open": open, "reason": reason}).Debug("panel state changed")
}

func (c *Controller) startListening() {
	// Reopening must not stack registrations.
	c.stopListening()
	c.pointer = c.doc.AddListener(document.PointerDown, c.handlePointerDown)
	c.key = c.doc.AddListener(document.KeyDown, c.handleKeyDown)
}

func (c *Controller) stopListening() {
	c.pointer.Remove()
	c.key.Remove()
	c.pointer = document.Registration{}
	c.key = document.Registration{}
}

func (c *Controller) handlePointerDown(ev document.Event) {
	if !c.open || !c.mounted {
		return
	}
	if c.region.Contains(ev.X, ev.Y) {
		return
	}
	c.request(false, "outside-press")
}

func (c *Controller) handleKeyDown(ev document.Event) {
	if !c.open || ev.Key != EscapeKey {
		return
	}
	c.request(false, "escape")
}

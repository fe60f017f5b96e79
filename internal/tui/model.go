// Package tui is the host application: a bubbletea model that renders the
// settings panel next to an article, keeps the committed selection and
// applies it to the article.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/typepanel/internal/catalog"
	"github.com/alexisbeaulieu97/typepanel/internal/document"
	"github.com/alexisbeaulieu97/typepanel/internal/logger"
	"github.com/alexisbeaulieu97/typepanel/internal/panel"
)

// Config describes what the host shows and how the panel behaves.
type Config struct {
	Catalogs  catalog.Set
	Defaults  catalog.Selection
	Ownership panel.Ownership
	Article   Article
	Logger    *logger.Logger
}

// focusTarget enumerates the keyboard-focusable panel controls in order.
type focusTarget int

const (
	focusFontFamily focusTarget = iota
	focusFontSize
	focusFontColor
	focusBackground
	focusWidth
	focusReset
	focusApply
	focusCount
)

// hostState is shared by every copy of Model so that panel callbacks, which
// close over it, update the model the program is currently holding.
type hostState struct {
	committed catalog.Selection
	submits   int
	resets    int
}

// Model is the bubbletea model for the host application.
type Model struct {
	doc   *document.Document
	ctrl  *panel.Controller
	state *hostState
	log   *logger.Logger

	article Article
	keys    KeyMap
	help    help.Model

	focus  focusTarget
	width  int
	height int
}

// NewModel wires a panel controller to a fresh document and host state.
func NewModel(cfg Config) Model {
	if cfg.Catalogs == nil {
		cfg.Catalogs = catalog.Builtin()
	}
	if cfg.Defaults == (catalog.Selection{}) {
		cfg.Defaults = catalog.DefaultSelection()
	}
	if cfg.Article.Title == "" && len(cfg.Article.Paragraphs) == 0 {
		cfg.Article = DefaultArticle()
	}

	log := cfg.Logger.With("component", "host")
	state := &hostState{committed: cfg.Defaults}
	doc := document.New()

	var ctrl *panel.Controller
	opts := panel.Options{
		Catalogs:  cfg.Catalogs,
		Defaults:  cfg.Defaults,
		Ownership: cfg.Ownership,
		Logger:    cfg.Logger,
		OnSubmit: func(sel catalog.Selection) {
			state.committed = sel
			state.submits++
		},
		OnReset: func(sel catalog.Selection) {
			state.committed = sel
			state.resets++
		},
	}
	if cfg.Ownership == panel.ExternalOpenState {
		opts.OnOpenChange = func(open bool) {
			log.With("open", open).Debug("host applied open request")
			ctrl.SetOpen(open)
		}
	}
	ctrl = panel.New(doc, opts)

	m := Model{
		doc:     doc,
		ctrl:    ctrl,
		state:   state,
		log:     log,
		article: cfg.Article,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   100,
		height:  30,
	}
	m.keys.setPanelOpen(false)
	m.mount()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Committed returns the selection currently applied to the article.
func (m Model) Committed() catalog.Selection {
	return m.state.committed
}

// Controller exposes the panel controller.
func (m Model) Controller() *panel.Controller {
	return m.ctrl
}

// Document exposes the event surface the host feeds.
func (m Model) Document() *document.Document {
	return m.doc
}

// Presentation returns the article presentation for the committed selection.
func (m Model) Presentation() Presentation {
	return PresentationFor(m.state.committed, m.articleColumns())
}

// mount tells the controller where the panel is drawn.
func (m Model) mount() {
	m.ctrl.Mount(toggleRect().Union(m.panelRect()))
}

func (m Model) articleColumns() int {
	available := m.width - 1
	if m.ctrl.IsOpen() {
		available -= panelWidth + 1
	}
	return available
}

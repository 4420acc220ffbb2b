package chat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/astrochat/astrochat/internal/core"
	"github.com/astrochat/astrochat/internal/interact"
	"github.com/astrochat/astrochat/internal/store"
	"github.com/astrochat/astrochat/internal/types"
	"github.com/astrochat/astrochat/internal/view"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// DefaultUnitsPerCell converts terminal cells of drag into gesture units.
const DefaultUnitsPerCell = 8

// Options configure chat.
type Options struct {
	Context      context.Context
	Store        *store.Store
	Title        string
	Subtitle     string
	Lang         string
	Location     *time.Location
	UnitsPerCell float64
	IDs          core.IDSource
	Sink         interact.RatingSink
	Reasons      core.ReasonTable
	Logger       *slog.Logger
	Now          func() time.Time
	Clipboard    func(string) error
}

// Run starts the chat UI.
func Run(opts Options) error {
	model := NewModel(opts)
	// Set window title (ANSI OSC sequence)
	fmt.Printf("\033]0;%s\007", "astrochat · "+model.title)

	program := tea.NewProgram(model, tea.WithMouseCellMotion())
	_, err := program.Run()
	model.Close()
	return err
}

type focusMode int

const (
	focusInput focusMode = iota
	focusMessages
)

// Model implements the chat UI.
type Model struct {
	ctx          context.Context
	store        *store.Store
	ctrl         *interact.Controller
	reasons      core.ReasonTable
	localizer    *core.Localizer
	location     *time.Location
	logger       *slog.Logger
	title        string
	subtitle     string
	unitsPerCell float64
	viewport     viewport.Model
	input        textarea.Model
	zoneManager  *zone.Manager
	width        int
	height       int
	focus        focusMode
	selectedID   string
	status       string
	// views and messageLines describe the last rendered message list.
	views         []view.MessageView
	messageLines  map[string]lineSpan
	renderedCount int
	initialScroll bool
	drag          *dragState
	frameActive   bool
	sessionRated  bool
	quitting      bool
	now           func() time.Time
	clipboard     func(string) error
}

// lineSpan is the [start, end) viewport line range of one message.
type lineSpan struct {
	start int
	end   int
}

// dragState tracks a pointer held on a message bubble.
type dragState struct {
	id     string
	seq    uint64
	startX int
	startY int
}

// NewModel creates a chat model over opts.Store.
func NewModel(opts Options) *Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Store == nil {
		opts.Store = store.New(core.SeedMessages())
	}
	if opts.Title == "" {
		opts.Title = core.DefaultTitle
	}
	if opts.Subtitle == "" {
		opts.Subtitle = core.DefaultSubtitle
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.UnitsPerCell <= 0 {
		opts.UnitsPerCell = DefaultUnitsPerCell
	}
	if opts.Reasons.Len() == 0 {
		opts.Reasons = core.DefaultReasons()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	localizer := core.NewLocalizer(opts.Lang)
	m := &Model{
		ctx:           opts.Context,
		store:         opts.Store,
		reasons:       opts.Reasons,
		localizer:     localizer,
		location:      opts.Location,
		logger:        opts.Logger,
		title:         opts.Title,
		subtitle:      opts.Subtitle,
		unitsPerCell:  opts.UnitsPerCell,
		viewport:      viewport.New(0, 0),
		input:         newInputModel(localizer.Text(core.KeyInputPlaceholder)),
		zoneManager:   zone.New(),
		messageLines:  make(map[string]lineSpan),
		initialScroll: true,
		now:           opts.Now,
		clipboard:     opts.Clipboard,
	}
	m.ctrl = interact.NewController(opts.Store, interact.Config{
		Reasons:        opts.Reasons,
		Session:        opts.Title,
		IDs:            opts.IDs,
		Sink:           opts.Sink,
		Logger:         opts.Logger,
		OnReply:        m.handleReplyRequested,
		OnRatingClosed: m.handleRatingClosed,
	})
	m.refreshViewport(true)
	return m
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Close releases the zone manager.
func (m *Model) Close() {
	if m.zoneManager != nil {
		m.zoneManager.Close()
	}
}

func (m *Model) handleReplyRequested(target types.ReplyTarget) {
	m.focus = focusInput
	m.input.Focus()
	m.status = ""
	m.resize()
}

func (m *Model) handleRatingClosed() {
	if m.sessionRated {
		m.quitting = true
	}
}

func (m *Model) hasReply() bool {
	_, ok := m.ctrl.Reply()
	return ok
}

func (m *Model) clearReply() {
	m.ctrl.CancelReply()
	m.resize()
}

func (m *Model) openRating() {
	m.drag = nil
	m.input.Blur()
	m.ctrl.ShowRating()
}

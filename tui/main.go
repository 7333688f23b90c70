package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/randomfusion/sdk/cache"
	"github.com/randomfusion/sdk/config"
	"github.com/randomfusion/sdk/controller"
	"github.com/randomfusion/sdk/emitter"
	"github.com/randomfusion/sdk/fingerprint"
	"github.com/randomfusion/sdk/visuals"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)
var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

type item struct {
	style visuals.Style
	desc  string
}

func (i item) Title() string       { return string(i.style) }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return string(i.style) }

type renderDoneMsg struct {
	path string
	err  error
}

type model struct {
	list   list.Model
	ctrl   *controller.Controller
	seed   string
	cfg    config.Config
	status string
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if i, ok := m.list.SelectedItem().(item); ok {
				m.status = "rendering " + string(i.style) + "..."
				return m, m.renderCmd(i.style)
			}
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-1)
	case renderDoneMsg:
		if msg.err != nil {
			m.status = "render failed: " + msg.err.Error()
		} else {
			m.status = "written " + msg.path
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) renderCmd(style visuals.Style) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		req := controller.NewRenderRequest(m.seed, style, m.cfg.Options())
		data, err := m.ctrl.Render(ctx, req)
		if err != nil {
			return renderDoneMsg{err: err}
		}
		path := filepath.Join(m.cfg.OutputDir, fmt.Sprintf("%s-%s.png", style, req.Id))
		if err := m.ctrl.WriteFile(ctx, data, path); err != nil {
			return renderDoneMsg{err: err}
		}
		return renderDoneMsg{path: path}
	}
}

func (m model) View() string {
	view := m.list.View()
	if m.status != "" {
		view += "\n" + statusStyle.Render(m.status)
	}
	return docStyle.Render(view)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: tui <key-file-or-fingerprint>")
		os.Exit(2)
	}

	logger := log.Default()
	f, err := tea.LogToFileWith("debug.log", "debug", logger)
	if err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}
	defer f.Close()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalln(err)
	}
	fp, err := fingerprint.KeyData(os.Args[1], logger)
	if err != nil {
		log.Fatalln(err)
	}

	store, err := cache.New(cfg.CachePath, logger)
	if err != nil {
		logger.Println("cache disabled: ", err)
		store = nil
	} else {
		defer store.Close()
	}

	items := []list.Item{
		item{style: visuals.ColorBlocksStyle, desc: "grid of seed colored blocks"},
		item{style: visuals.CirclesStyle, desc: "concentric seed colored rings"},
		item{style: visuals.MandelbrotStyle, desc: "escape time fractal over a seed derived window"},
		item{style: visuals.NoiseScapeStyle, desc: "gradient noise field between two seed colors"},
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "randomfusion styles"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	m := model{
		list: l,
		ctrl: controller.New(emitter.LoggerEvent{Logger: logger}, store, logger),
		seed: fingerprint.Remap(fp),
		cfg:  cfg,
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}

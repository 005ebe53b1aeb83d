package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	if os.Getenv("FRACTERM_DEBUG") != "" {
		f, err := tea.LogToFile("fracterm.log", "fracterm")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	p := tea.NewProgram(
		initialModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type model struct {
	engine  *Engine
	config  *Config
	history History

	width  int
	height int

	heldKeys  map[string]time.Time
	dragging  bool
	dragMoved bool
	dragX     int
	dragY     int

	mode          Mode
	fileOp        FileOperation
	filenameInput string
	confirmAction ConfirmAction
	pendingPath   string

	help       bool
	helpScroll int
	presetIdx  int

	errorMessage   string
	successMessage string
}

func initialModel() model {
	config := loadConfig()
	engine := NewEngine()
	config.apply(engine)
	return model{
		engine:   engine,
		config:   config,
		heldKeys: make(map[string]time.Time),
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		renderRows := m.height - 1 // status line
		if renderRows < 1 {
			renderRows = 1
		}
		m.engine.Resize(m.width, renderRows)
		return m, nil

	case tickMsg:
		// Frame order is fixed: poll held input, animate the
		// viewport, derive quality, render. The view then reads the
		// finished framebuffer.
		if !m.help {
			m.pollHeldKeys()
			m.engine.StepFrame()
		}
		return m, tick()

	case tea.MouseMsg:
		if m.mode == ModeNormal && !m.help {
			m.handleMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help {
		switch msg.String() {
		case "j", "down":
			if m.helpScroll < len(helpLines())-1 {
				m.helpScroll++
			}
		case "k", "up":
			if m.helpScroll > 0 {
				m.helpScroll--
			}
		default:
			m.help = false
			m.helpScroll = 0
		}
		return m, nil
	}

	switch m.mode {
	case ModeFileInput:
		return m.handleFileInputKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	}

	m.errorMessage = ""
	m.successMessage = ""

	key := msg.String()
	if continuousKeys[key] {
		m.pressKey(key)
		return m, nil
	}

	switch key {
	case "ctrl+c":
		m.mode = ModeConfirm
		m.confirmAction = ConfirmQuit
	case "?":
		m.help = true
	case "tab":
		m.history.Push(m.engine)
		m.engine.CycleFractal(1)
	case "shift+tab":
		m.history.Push(m.engine)
		m.engine.CycleFractal(-1)
	case "[":
		m.engine.CyclePalette(-1)
	case "]":
		m.engine.CyclePalette(1)
	case "{":
		m.presetIdx--
		m.applyPreset()
	case "}":
		m.presetIdx++
		m.applyPreset()
	case "+", "=", "ctrl++", "ctrl+=":
		m.history.Push(m.engine)
		m.zoomAtCenter(keyZoomStep)
	case "-", "_", "ctrl+-", "ctrl+_":
		m.history.Push(m.engine)
		m.zoomAtCenter(keyZoomStepOut)
	case "ctrl+r":
		m.history.Push(m.engine)
		m.engine.VP.Reset(homeCenter(m.engine.Params.Type))
	case "i":
		m.engine.SetIterations(m.engine.Params.Iterations / 2)
	case "I":
		m.engine.SetIterations(m.engine.Params.Iterations * 2)
	case "v":
		m.engine.SetEscapeRadius(m.engine.Params.EscapeRadius - 0.5)
	case "V":
		m.engine.SetEscapeRadius(m.engine.Params.EscapeRadius + 0.5)
	case ",":
		m.engine.SetDepth(m.engine.Depth() - 1)
	case ".":
		m.engine.SetDepth(m.engine.Depth() + 1)
	case "n":
		m.nudgeJulia(Complex{-0.005, 0})
	case "m":
		m.nudgeJulia(Complex{0.005, 0})
	case "N":
		m.nudgeJulia(Complex{0, -0.005})
	case "M":
		m.nudgeJulia(Complex{0, 0.005})
	case "u":
		if !m.history.Back(m.engine) {
			m.errorMessage = "nothing to go back to"
		}
	case "U":
		if !m.history.Forward(m.engine) {
			m.errorMessage = "nothing to go forward to"
		}
	case "c":
		if err := m.engine.CopySnapshot(); err != nil {
			m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		} else {
			m.successMessage = "view copied to clipboard"
		}
	case "y":
		m.mode = ModeFileInput
		m.fileOp = FileOpSaveSnapshot
		m.filenameInput = defaultBasename(m.engine) + ".json"
	case "Y":
		m.mode = ModeFileInput
		m.fileOp = FileOpSavePNG
		m.filenameInput = defaultBasename(m.engine) + ".png"
	case "o":
		m.mode = ModeFileInput
		m.fileOp = FileOpOpenSnapshot
		m.filenameInput = ""
	}
	return m, nil
}

func (m model) handleFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.filenameInput = ""
	case tea.KeyEnter:
		if m.filenameInput == "" {
			m.mode = ModeNormal
			return m, nil
		}
		path := m.config.GetExportPath(m.filenameInput)
		if m.fileOp != FileOpOpenSnapshot {
			if _, err := os.Stat(path); err == nil {
				m.mode = ModeConfirm
				m.confirmAction = ConfirmOverwriteFile
				m.pendingPath = path
				return m, nil
			}
		}
		m.runFileOp(path)
	case tea.KeyBackspace:
		if len(m.filenameInput) > 0 {
			m.filenameInput = m.filenameInput[:len(m.filenameInput)-1]
		}
	case tea.KeySpace:
		m.filenameInput += " "
	case tea.KeyRunes:
		m.filenameInput += string(msg.Runes)
	}
	return m, nil
}

func (m *model) runFileOp(path string) {
	var err error
	switch m.fileOp {
	case FileOpSaveSnapshot:
		err = m.engine.SaveSnapshot(path)
	case FileOpSavePNG:
		err = m.engine.ExportPNG(path)
	case FileOpOpenSnapshot:
		m.history.Push(m.engine)
		err = m.engine.LoadSnapshot(path)
	}
	if err != nil {
		m.errorMessage = err.Error()
	} else {
		m.successMessage = fmt.Sprintf("wrote %s", path)
		if m.fileOp == FileOpOpenSnapshot {
			m.successMessage = fmt.Sprintf("loaded %s", path)
		}
	}
	m.mode = ModeNormal
	m.filenameInput = ""
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.confirmAction {
	case ConfirmQuit:
		if msg.String() == "y" {
			return m, tea.Quit
		}
		m.mode = ModeNormal
	case ConfirmOverwriteFile:
		if msg.String() == "y" {
			m.runFileOp(m.pendingPath)
		} else {
			m.mode = ModeNormal
		}
		m.pendingPath = ""
	}
	return m, nil
}

func (m *model) applyPreset() {
	if !m.engine.Params.Type.EscapeTime() {
		return
	}
	m.history.Push(m.engine)
	if name := m.engine.CyclePreset(m.presetIdx); name != "" {
		m.successMessage = name
	}
}

func (m *model) nudgeJulia(d Complex) {
	if m.engine.Params.Type != FractalJulia {
		return
	}
	m.engine.SetJuliaConstant(m.engine.Params.JuliaC.Add(d))
}

func defaultBasename(e *Engine) string {
	return fmt.Sprintf("%s-%s", e.Params.Type, time.Now().Format("20060102-150405"))
}

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Background(lipgloss.Color("236")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Background(lipgloss.Color("236"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("179")).Background(lipgloss.Color("236"))
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	if m.width < 1 || m.height < 2 {
		return ""
	}

	lines := m.engine.Framebuffer().renderCells()
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString(m.statusLine())
	return sb.String()
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeFileInput:
		var prompt string
		switch m.fileOp {
		case FileOpSaveSnapshot:
			prompt = "save snapshot as: "
		case FileOpSavePNG:
			prompt = "export png as: "
		case FileOpOpenSnapshot:
			prompt = "open snapshot: "
		}
		return padStatus(labelStyle.Render(prompt)+statusStyle.Render(m.filenameInput+"▌"), m.width)
	case ModeConfirm:
		var q string
		switch m.confirmAction {
		case ConfirmQuit:
			q = "quit? (y/n)"
		case ConfirmOverwriteFile:
			q = fmt.Sprintf("overwrite %s? (y/n)", m.pendingPath)
		}
		return padStatus(errorStyle.Render(q), m.width)
	}

	if m.errorMessage != "" {
		return padStatus(errorStyle.Render(m.errorMessage), m.width)
	}
	if m.successMessage != "" {
		return padStatus(successStyle.Render(m.successMessage), m.width)
	}

	e := m.engine
	vp := e.VP
	st := e.Stats()
	var b strings.Builder
	b.WriteString(labelStyle.Render(" " + e.Params.Type.String() + " "))
	b.WriteString(statusStyle.Render(fmt.Sprintf(" %.6g%+.6gi  zoom %.4g", vp.Center.Re, vp.Center.Im, vp.Zoom)))
	if vp.Rotation != 0 {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  rot %.2f", vp.Rotation)))
	}
	if e.Params.Type.EscapeTime() {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  iter %d", e.Params.Iterations)))
		if s := suggestedIterations(vp.Zoom, e.Params.Iterations); s > e.Params.Iterations {
			b.WriteString(hintStyle.Render(fmt.Sprintf(" (try %d)", s)))
		}
		if st.Quality.DeepZoom {
			b.WriteString(hintStyle.Render("  deep"))
		}
		if st.Quality.Supersample > 1 {
			b.WriteString(statusStyle.Render(fmt.Sprintf("  %dx%d ss", st.Quality.Supersample, st.Quality.Supersample)))
		}
	} else {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  depth %d  prims %d", e.Depth(), st.Primitives)))
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("  %dms", st.RenderTime.Milliseconds())))
	b.WriteString(statusStyle.Render("  ?=help"))
	return padStatus(b.String(), m.width)
}

func padStatus(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad > 0 {
		s += statusStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

func helpLines() []string {
	return []string{
		"Fracterm Help",
		"=============",
		"",
		"Navigation:",
		"-----------",
		"  drag / arrows / wasd   Pan",
		"  mouse wheel            Zoom at cursor",
		"  z / x                  Zoom in/out at screen center (hold)",
		"  + / -                  Zoom in/out one step",
		"  q / e                  Rotate (hold)",
		"  ctrl+r                 Reset view",
		"  u / U                  View history back / forward",
		"",
		"Fractal:",
		"--------",
		"  tab / shift+tab        Next / previous fractal",
		"  { / }                  Cycle presets (Julia constants, Mandelbrot landmarks)",
		"  [ / ]                  Cycle palette",
		"  i / I                  Halve / double iterations",
		"  v / V                  Escape radius down / up",
		"  , / .                  Recursion depth down / up (Koch, Sierpinski, tree)",
		"  n m N M                Nudge Julia constant (re-, re+, im-, im+)",
		"",
		"Files:",
		"------",
		"  y                      Save snapshot (JSON)",
		"  Y                      Export PNG",
		"  o                      Open snapshot",
		"  c                      Copy snapshot to clipboard",
		"",
		"General:",
		"--------",
		"  ?                      Toggle this help",
		"  ctrl+c                 Quit",
		"",
		"Config: ~/.fractermrc (exportdir, fractal, palette, julia, iterations, supersampling)",
	}
}

func (m model) helpView() string {
	lines := helpLines()
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}
	start := m.helpScroll
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start:end], "\n") + "\n" +
		padStatus(statusStyle.Render(" j/k scroll, any other key closes "), m.width)
}

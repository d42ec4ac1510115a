package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/matthewfesta/Wordle-Clone/internal/game"
)

const flashFor = 600 * time.Millisecond

type model struct {
	theme   Theme
	deps    Deps
	spinner spinner.Model

	game    *game.Game
	loading bool
	flash   bool // current row was rejected
	banner  string
	errMsg  string
	hints   map[rune]game.Classification
}

// Run starts the terminal game and blocks until the player quits.
func Run(deps Deps) error {
	p := tea.NewProgram(safeModel{m: newModel(deps)}, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		spinner: sp,
		loading: true,
		hints:   make(map[rune]game.Classification),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchSecret())
}

// callCtx bounds a dictionary call by Deps.Timeout.
func (m model) callCtx() (context.Context, context.CancelFunc) {
	if m.deps.Timeout > 0 {
		return context.WithTimeout(context.Background(), m.deps.Timeout)
	}
	return context.WithCancel(context.Background())
}

func (m model) fetchSecret() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.callCtx()
		defer cancel()
		w, err := m.deps.Dict.WordOfTheDay(ctx)
		return secretMsg{word: w, err: err}
	}
}

func (m model) validate(p game.Pending) tea.Cmd {
	if p.Winning {
		return func() tea.Msg { return validatedMsg{valid: true} }
	}
	return func() tea.Msg {
		ctx, cancel := m.callCtx()
		defer cancel()
		ok, err := m.deps.Dict.Validate(ctx, p.Guess)
		return validatedMsg{valid: ok, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case secretMsg:
		return m.startGame(msg)

	case validatedMsg:
		return m.finishCommit(msg)

	case clearFlashMsg:
		m.flash = false
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) startGame(msg secretMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		log.Error().Err(msg.err).Msg("fetch secret word")
		m.errMsg = "Could not fetch the word of the day. Press enter to retry."
		return m, nil
	}
	lis := &logListener{}
	g, err := game.New(msg.word,
		game.WithBoard(m.deps.Rows, m.deps.Cols),
		game.WithListener(lis),
	)
	if err != nil {
		log.Error().Err(err).Str("word", msg.word).Msg("start game")
		m.errMsg = "The words service returned an unusable word. Press enter to retry."
		return m, nil
	}
	id := g.ID()
	lis.bind(id)
	if m.deps.Store != nil {
		if err := m.deps.Store.Save(context.Background(), g); err != nil {
			log.Warn().Err(err).Str("game", id).Msg("register session")
		}
	}
	log.Info().Str("game", id).Msg("game started")
	m.errMsg = ""
	m.game = g
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	}
	if m.loading {
		return m, nil
	}
	if m.game == nil {
		if msg.Type == tea.KeyEnter {
			m.loading = true
			m.errMsg = ""
			return m, tea.Batch(m.spinner.Tick, m.fetchSecret())
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		p, ok := m.game.BeginCommit()
		if !ok {
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.validate(p))

	case tea.KeyBackspace:
		m.game.RemoveLetter()

	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			m.game.AppendLetter(msg.Runes[0])
		}
	}
	return m, nil
}

func (m model) finishCommit(msg validatedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if m.game == nil {
		return m, nil
	}
	out, err := m.game.ResolveCommit(msg.valid, msg.err)
	if err != nil {
		m.errMsg = "Could not check that word. Press enter to retry."
		return m, nil
	}
	if out.Invalid {
		m.flash = true
		return m, tea.Tick(flashFor, func(time.Time) tea.Msg { return clearFlashMsg{} })
	}
	if !out.Committed {
		return m, nil
	}

	snap := m.game.Snapshot()
	last := snap.History[len(snap.History)-1]
	for i, r := range last.Guess {
		if rank(out.Classes[i]) > rank(m.hints[r]) {
			m.hints[r] = out.Classes[i]
		}
	}
	switch out.Status {
	case game.Won:
		m.banner = "*** YOU WIN! ***"
	case game.Lost:
		m.banner = "YOU LOSE! THE WORD WAS: " + snap.Secret
	}
	return m, nil
}

// rank orders classifications for the keyboard hint (unset < absent < present < correct).
func rank(c game.Classification) int {
	switch c {
	case game.Correct:
		return 3
	case game.Present:
		return 2
	case game.Absent:
		return 1
	}
	return 0
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	header := m.theme.Brand.Render("WORD MASTERS")
	if m.banner != "" {
		header = m.theme.Winner.Render(m.banner)
	}

	var body strings.Builder
	if m.game != nil {
		body.WriteString(m.board())
		body.WriteString("\n")
		body.WriteString(m.keyboard())
	}

	status := ""
	if m.loading {
		status = m.spinner.View() + " loading"
	}
	if m.errMsg != "" {
		status = m.theme.Error.Render(m.errMsg)
	}

	help := m.theme.Help.Render("a–z type • backspace delete • enter submit • esc quit")
	return wrap.Render(header + "\n\n" + body.String() + "\n" + status + "\n" + help)
}

// board renders scored rows, the current guess row and empty rows.
func (m model) board() string {
	snap := m.game.Snapshot()
	var b strings.Builder
	for r := 0; r < snap.Rows; r++ {
		cells := make([]string, snap.Cols)
		switch {
		case r < len(snap.History):
			row := snap.History[r]
			for i, ch := range []rune(row.Guess) {
				cells[i] = m.theme.Tiles[row.Classes[i]].Render(string(ch))
			}
		case r == len(snap.History) && snap.Status == game.InProgress:
			guess := []rune(snap.Guess)
			style := m.theme.Typed
			if m.flash {
				style = m.theme.Invalid
			}
			for i := range cells {
				if i < len(guess) {
					cells[i] = style.Render(string(guess[i]))
				} else {
					cells[i] = m.theme.Empty.Render("_")
				}
			}
		default:
			for i := range cells {
				cells[i] = m.theme.Empty.Render("_")
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	return b.String()
}

var keyRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// keyboard renders letters coloured by the best classification seen so far.
func (m model) keyboard() string {
	var b strings.Builder
	for _, row := range keyRows {
		for _, r := range row {
			if c, ok := m.hints[r]; ok {
				b.WriteString(m.theme.Tiles[c].Width(1).Render(string(r)))
			} else {
				b.WriteRune(r)
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

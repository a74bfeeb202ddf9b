// Command duel is a terminal harness for one local game: a human player
// against the trivial bot of internal/bot, driven entirely in-process
// through internal/engine. It never opens a network connection — the
// server host in cmd/server is the one that exposes the engine remotely.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"pockettcg/internal/bot"
	"pockettcg/internal/config"
	"pockettcg/internal/deckbuilder"
	"pockettcg/internal/engine"
	"pockettcg/internal/logger"
	"pockettcg/internal/message"
	"pockettcg/internal/model"
	"pockettcg/internal/repository"
	"pockettcg/internal/rng"
	"pockettcg/internal/state"
	"pockettcg/internal/turn"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const humanPlayer = 0
const botPlayerIdx = 1

var (
	primaryColor = lipgloss.Color("#7C3AED")
	accentColor  = lipgloss.Color("#10B981")
	warningColor = lipgloss.Color("#F59E0B")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#94A3B8")

	baseStyle   = lipgloss.NewStyle()
	headerStyle = baseStyle.Foreground(primaryColor).Bold(true)
	okStyle     = baseStyle.Foreground(accentColor)
	warnStyle   = baseStyle.Foreground(warningColor)
	errStyle    = baseStyle.Foreground(errorColor)
	mutedStyle  = baseStyle.Foreground(mutedColor)
	panelStyle  = baseStyle.Border(lipgloss.RoundedBorder()).BorderForeground(primaryColor).Padding(1, 2)
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	if err := logger.Init(&cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	deckList := []string{
		"emberpup", "emberpup", "emberfang",
		"sproutling", "sproutling", "crownstag",
		"tidalpup", "tidalpup",
	}

	creatures, items, supporters, tools := repository.DefaultCatalogue()
	repo := repository.NewInMemory(creatures, items, supporters, tools)

	deckA, err := deckbuilder.Build(repo, deckList)
	if err != nil {
		fatal("build deck A", err)
	}
	deckB, err := deckbuilder.Build(repo, deckList)
	if err != nil {
		fatal("build deck B", err)
	}

	params := state.Params{MaxHandSize: cfg.MaxHandSize, MaxTurns: cfg.MaxTurns}
	source := rng.NewDefault(cfg.Seed)
	gs := state.New([2][]model.CardInstance{deckA, deckB}, params, source)

	for i := range gs.Players {
		p := &gs.Players[i]
		p.AvailableTypes = []model.EnergyType{model.EnergyFire, model.EnergyWater, model.EnergyGrass}
		for j := 0; j < 3 && len(p.Deck) > 0; j++ {
			p.Field = append(p.Field, model.CreatureStack{Forms: []model.CardInstance{p.Deck[0]}})
			p.Deck = p.Deck[1:]
		}
		for j := 0; j < 5 && len(p.Deck) > 0; j++ {
			p.Hand = append(p.Hand, p.Deck[0])
			p.Deck = p.Deck[1:]
		}
	}
	turn.Begin(gs)

	notifier := message.NewNotifier(1, 16)
	defer notifier.Close()
	eng := engine.New(uuid.NewString(), gs, repo, notifier)

	fmt.Println(headerStyle.Render("pockettcg duel"))
	fmt.Println(mutedStyle.Render("type 'help' for commands"))

	runLoop(eng, repo)
}

func runLoop(eng *engine.Engine, repo repository.CardRepository) {
	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		printStatus(eng.GS)

		if eng.GS.GameOver != nil {
			printGameOver(eng.GS)
			return
		}

		if eng.GS.ActivePlayerIndex == botPlayerIdx || pendingChooser(eng.GS) == botPlayerIdx {
			resp, err := botRespond(eng.GS, repo)
			if err != nil {
				fatal("bot turn", err)
			}
			status, err := eng.Submit(ctx, botPlayerIdx, resp)
			if err != nil {
				fatal("bot submit", err)
			}
			printStatus2(status)
			continue
		}

		fmt.Print(mutedStyle.Render("duel> "))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		if line == "help" {
			printHelp()
			continue
		}
		if line == "hand" {
			printHand(eng.GS)
			continue
		}

		resp, err := parseCommand(eng.GS, line)
		if err != nil {
			fmt.Println(errStyle.Render(err.Error()))
			continue
		}

		status, err := eng.Submit(ctx, humanPlayer, resp)
		if err != nil {
			fatal("submit", err)
		}
		printStatus2(status)
	}
}

func pendingChooser(gs *state.GameState) int {
	if gs.PendingSelection == nil {
		return -1
	}
	return gs.PendingSelection.Chooser
}

func botRespond(gs *state.GameState, repo repository.CardRepository) (message.Response, error) {
	if gs.PendingSelection != nil {
		return bot.RespondToSelection(gs), nil
	}
	return bot.Act(gs, repo, botPlayerIdx)
}

func parseCommand(gs *state.GameState, line string) (message.Response, error) {
	fields := strings.Fields(line)
	cmd := fields[0]

	if gs.PendingSelection != nil {
		return parseSelection(gs, cmd, fields[1:])
	}

	switch cmd {
	case "attach":
		return message.Response{Kind: message.ResponseAction, Action: message.ActionAttachEnergy,
			DestField: &model.ConcreteField{PlayerIndex: humanPlayer, FieldIndex: state.ActiveIndex}}, nil
	case "attack":
		if len(fields) < 2 {
			return message.Response{}, fmt.Errorf("usage: attack <name...>")
		}
		return message.Response{Kind: message.ResponseAction, Action: message.ActionUseAttack,
			AttackName: strings.Join(fields[1:], " ")}, nil
	case "retreat":
		idx, err := benchIndex(fields)
		if err != nil {
			return message.Response{}, err
		}
		return message.Response{Kind: message.ResponseAction, Action: message.ActionRetreat,
			DestField: &model.ConcreteField{PlayerIndex: humanPlayer, FieldIndex: idx}}, nil
	case "newactive":
		idx, err := benchIndex(fields)
		if err != nil {
			return message.Response{}, err
		}
		return message.Response{Kind: message.ResponseAction, Action: message.ActionSelectNewActive,
			SourceField: &model.ConcreteField{PlayerIndex: humanPlayer, FieldIndex: idx}}, nil
	case "play":
		if len(fields) < 2 {
			return message.Response{}, fmt.Errorf("usage: play <handInstanceId> [benchIdx]")
		}
		resp := message.Response{Kind: message.ResponseAction, Action: message.ActionPlayCard, HandInstanceID: fields[1]}
		if len(fields) >= 3 {
			idx, err := strconv.Atoi(fields[2])
			if err != nil {
				return message.Response{}, fmt.Errorf("bench index must be a number")
			}
			resp.DestField = &model.ConcreteField{PlayerIndex: humanPlayer, FieldIndex: idx}
		}
		return resp, nil
	case "end":
		return message.Response{Kind: message.ResponseAction, Action: message.ActionEndTurn}, nil
	default:
		return message.Response{}, fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
}

func parseSelection(gs *state.GameState, cmd string, _ []string) (message.Response, error) {
	ps := gs.PendingSelection
	idx, parseErr := strconv.Atoi(cmd)
	switch ps.Kind {
	case state.PendingField:
		if parseErr != nil || idx < 0 || idx >= len(ps.FieldCandidates) {
			return message.Response{}, fmt.Errorf("pick a candidate index 0-%d", len(ps.FieldCandidates)-1)
		}
		return message.Response{Kind: message.ResponseFieldSelection,
			FieldSelection: []model.ConcreteField{ps.FieldCandidates[idx]}}, nil
	case state.PendingEnergy:
		if parseErr != nil || idx < 0 || idx >= len(ps.EnergyCandidates) {
			return message.Response{}, fmt.Errorf("pick a candidate index 0-%d", len(ps.EnergyCandidates)-1)
		}
		f := ps.EnergyCandidates[idx]
		return message.Response{Kind: message.ResponseEnergySelection, EnergySelection: &f}, nil
	case state.PendingCard:
		if parseErr != nil || idx < 0 || idx >= len(ps.CardCandidates) {
			return message.Response{}, fmt.Errorf("pick a candidate index 0-%d", len(ps.CardCandidates)-1)
		}
		return message.Response{Kind: message.ResponseCardSelection,
			CardSelection: []model.ConcreteCard{ps.CardCandidates[idx]}}, nil
	default:
		return message.Response{}, fmt.Errorf("no pending selection of a known kind")
	}
}

func benchIndex(fields []string) (int, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("usage: %s <bench-index>", fields[0])
	}
	idx, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("bench index must be a number")
	}
	return idx, nil
}

func printHelp() {
	fmt.Println(mutedStyle.Render(strings.Join([]string{
		"attach                        attach this turn's energy to your active creature",
		"attack <name>                 use an attack by name",
		"retreat <bench idx>           retreat to the given bench position",
		"newactive <idx>               promote a bench creature after a knockout",
		"hand                          list your hand with instance ids",
		"play <handInstanceId> [idx]   play an item/supporter, or attach a tool to bench idx",
		"end                           end your turn",
		"<number>                      answer a pending selection by candidate index",
		"quit                          leave the duel",
	}, "\n")))
}

func printHand(gs *state.GameState) {
	for _, c := range gs.Players[humanPlayer].Hand {
		fmt.Printf("  %s  %-10s %s\n", c.InstanceID, c.Kind, c.TemplateID)
	}
}

func printStatus(gs *state.GameState) {
	if gs.PendingSelection != nil {
		ps := gs.PendingSelection
		fmt.Println(warnStyle.Render(fmt.Sprintf("player %d must choose a %s target:", ps.Chooser, ps.Kind)))
		switch ps.Kind {
		case state.PendingField:
			for i, c := range ps.FieldCandidates {
				fmt.Printf("  [%d] player %d field %d\n", i, c.PlayerIndex, c.FieldIndex)
			}
		case state.PendingEnergy:
			for i, c := range ps.EnergyCandidates {
				fmt.Printf("  [%d] player %d field %d\n", i, c.PlayerIndex, c.FieldIndex)
			}
		case state.PendingCard:
			for i, c := range ps.CardCandidates {
				fmt.Printf("  [%d] card %s (player %d)\n", i, c.InstanceID, c.PlayerIndex)
			}
		}
		return
	}

	style := panelStyle
	if w := terminalWidth(); w > 40 {
		style = style.Width(w - 6)
	}
	fmt.Println(style.Render(renderBoard(gs)))
}

func renderBoard(gs *state.GameState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "turn %d — phase %s — active player %d\n", gs.TurnNumber, gs.Phase, gs.ActivePlayerIndex)
	for i := range gs.Players {
		p := &gs.Players[i]
		fmt.Fprintf(&b, "player %d: points=%d hand=%d deck=%d bench=%d\n", i, p.Points, len(p.Hand), len(p.Deck), p.BenchCount())
		for j, stack := range p.Field {
			id := stack.FieldInstanceID()
			hp := gs.Damage[id]
			fmt.Fprintf(&b, "  [%d] %s (dmg %d) energy=%v\n", j, stack.Top().TemplateID, hp, gs.Energy[id])
		}
	}
	return b.String()
}

func printStatus2(status message.Status) {
	switch status.Kind {
	case message.StatusRejected:
		fmt.Println(errStyle.Render("rejected: " + status.RejectReason))
	case message.StatusGameOver:
		// handled by printGameOver on the next loop iteration
	default:
	}
}

func printGameOver(gs *state.GameState) {
	if gs.GameOver.Tie {
		fmt.Println(okStyle.Render("game over: tie"))
		return
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("game over: player %d wins", gs.GameOver.Winner)))
}

func fatal(step string, err error) {
	logger.Error(step, zap.Error(err))
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

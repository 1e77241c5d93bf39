// Simmer — a multi-pot countdown board for slow-cooked tonics.
//
// Usage:
//
//	simmer [-verbose] [-quiet] [-no-sound] [-no-ai]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/simmer/internal/catalog"
	"github.com/hammamikhairi/simmer/internal/chime"
	"github.com/hammamikhairi/simmer/internal/conversation"
	"github.com/hammamikhairi/simmer/internal/display"
	"github.com/hammamikhairi/simmer/internal/domain"
	"github.com/hammamikhairi/simmer/internal/engine"
	"github.com/hammamikhairi/simmer/internal/gen"
	"github.com/hammamikhairi/simmer/internal/logger"
	"github.com/hammamikhairi/simmer/internal/storage"
	"github.com/hammamikhairi/simmer/internal/timer"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".simmer-logs/simmer.log", "file to write logs to (use \"stderr\" to log to console)")
	noSound := flag.Bool("no-sound", false, "disable the audio chime entirely")
	noAI := flag.Bool("no-ai", false, "disable AI program generation even if API keys are set")
	tick := flag.Duration("tick", time.Second, "countdown tick interval")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the REPL stays clean.
	log := logger.New(logLevel, os.Stderr)
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		fileLog, f, err := logger.NewFile(logLevel, *logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (falling back to stderr)\n", err)
		} else {
			log = fileLog
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package to the same output so third-party
	// libraries can't spam the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	// Set up context — cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	board := storage.NewMemoryBoard(log)
	ui := display.NewUI(board)
	textNotifier := conversation.NewCLINotifier(log, ui.Printf)
	parser := conversation.NewKeywordParser(log)
	eng := engine.New(board, log, engine.WithDefaults(catalog.Defaults))

	if err := eng.SeedIfEmpty(ctx); err != nil {
		log.Error("seeding catalog defaults: %v", err)
	}

	// Build the active notifier. Unless sound is disabled, wrap the text
	// notifier with the chime decorator. The chime stays silent until the
	// user arms it with the 'sound' command.
	var activeNotifier domain.Notifier = textNotifier
	var bell *chime.Chime
	if !*noSound {
		bell = chime.New(log)
		activeNotifier = chime.NewNotifier(textNotifier, bell, log)
	}

	// Build the AI generator if credentials are available.
	var generator domain.ProgramGenerator

	apiKey := os.Getenv("OPENAI_API_KEY")
	baseURL := os.Getenv("OPENAI_BASE_URL")
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	if apiKey != "" && !*noAI {
		generator = gen.New(apiKey, baseURL, model, log)
		log.Info("AI generation enabled (model=%s)", model)
	} else if !*noAI {
		log.Info("AI generation disabled: set OPENAI_API_KEY to enable")
	}

	// Start the background countdown supervisor.
	supervisor := timer.New(eng, activeNotifier, log,
		timer.WithTickInterval(*tick),
	)
	supervisor.Start(ctx)
	defer supervisor.Stop()

	app := &cliApp{
		engine:    eng,
		parser:    parser,
		generator: generator,
		bell:      bell,
		log:       log,
		ui:        ui,
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	if bell != nil {
		fmt.Println(display.BannerStyle.Render("  Type 'sound' to arm the chime."))
	}
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal — blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
}

type cliApp struct {
	engine    *engine.Engine
	parser    domain.IntentParser
	generator domain.ProgramGenerator // nil when AI is disabled
	bell      *chime.Chime            // nil when sound is disabled
	log       *logger.Logger
	ui        *display.UI
}

func (a *cliApp) run(ctx context.Context) {
	a.ui.PrintChat("Welcome back. Your pots are on the board.")
	a.ui.Println("")
	a.showBoard(ctx)

	uiCh := a.ui.InputChan()

	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		intent, err := a.parser.Parse(ctx, input)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)
		a.handleIntent(ctx, intent)
	}
}

func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) {
	switch intent.Type {
	case domain.IntentHelp:
		a.showHelp()
	case domain.IntentList:
		a.showBoard(ctx)
	case domain.IntentShow:
		a.showProgram(ctx, intent.Payload)
	case domain.IntentNew:
		a.create(ctx, intent.Payload)
	case domain.IntentGenerate:
		a.generate(ctx, intent.Payload)
	case domain.IntentToggle:
		a.toggle(ctx, intent.Payload)
	case domain.IntentNext:
		a.advance(ctx, intent.Payload)
	case domain.IntentReset:
		a.reset(ctx, intent.Payload)
	case domain.IntentScale:
		a.scale(ctx, intent.Payload)
	case domain.IntentEdit:
		a.edit(ctx, intent.Payload)
	case domain.IntentDelete:
		a.remove(ctx, intent.Payload)
	case domain.IntentRestore:
		a.restore(ctx)
	case domain.IntentSound:
		a.armSound()
	case domain.IntentQuit:
		a.quit()
	case domain.IntentUnknown:
		a.ui.PrintHint(fmt.Sprintf("Didn't catch that (%q). Type 'help' for commands.", intent.Payload))
	}
}

// ── Board and program views ──────────────────────────────────────

func (a *cliApp) showBoard(ctx context.Context) {
	programs, err := a.engine.List(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error loading the board: %v", err))
		return
	}

	if len(programs) == 0 {
		a.ui.PrintHint("The board is empty. 'new' or 'gen' adds a program, 'restore' brings back the defaults.")
		return
	}

	a.ui.PrintHeader(fmt.Sprintf("Board (%d/%d):", len(programs), domain.MaxPrograms))
	a.ui.Println("")
	for i, p := range programs {
		line := fmt.Sprintf("[%d] %-28s %-9s phase %d/%d  %s",
			i+1, p.Name, p.Status, p.CurrentPhase+1, len(p.Phases), display.FormatClock(p.TimeLeft))
		if p.Multiplier > 1 {
			line += fmt.Sprintf("  x%d", p.Multiplier)
		}
		a.ui.PrintLine(line)
	}
	a.ui.Println("")
	a.ui.PrintChat("A bare number shows that program's phases and ingredients.")
}

func (a *cliApp) showProgram(ctx context.Context, payload string) {
	p, ok := a.resolve(ctx, firstField(payload))
	if !ok {
		return
	}

	a.ui.PrintHeader(fmt.Sprintf("=== %s ===", p.Name))
	a.ui.PrintHint(fmt.Sprintf("Status: %s — phase %d/%d — %s left — servings x%d",
		p.Status, p.CurrentPhase+1, len(p.Phases), display.FormatClock(p.TimeLeft), p.Multiplier))
	a.ui.Println("")

	for i, ph := range p.Phases {
		marker := "  "
		if i == p.CurrentPhase {
			marker = "▸ "
		}
		a.ui.PrintLine(fmt.Sprintf("%s%d. %s (%s)", marker, i+1, ph.Name, display.FormatClock(ph.DurationSeconds)))
		for _, ing := range ph.Ingredients {
			a.ui.PrintHint(fmt.Sprintf("     - %s %s %s", trimFloat(ing.Scaled(p.Multiplier)), ing.Unit, ing.Name))
		}
	}
}

// ── Lifecycle commands ───────────────────────────────────────────

func (a *cliApp) create(ctx context.Context, payload string) {
	spec, err := parseProgramArg(payload)
	if err != nil {
		a.ui.PrintHint("Usage: new <name>: <phase>=<duration>, <phase>=<duration>, ...")
		a.ui.PrintHint(fmt.Sprintf("(%v)", err))
		return
	}

	p, err := a.engine.Create(ctx, *spec)
	if err != nil {
		a.reportCommandError(err)
		return
	}

	a.ui.PrintChat(fmt.Sprintf("%q is on the board. 'start %s' fires it up.", p.Name, a.positionOf(ctx, p.ID)))
}

func (a *cliApp) generate(ctx context.Context, prompt string) {
	if a.generator == nil {
		a.ui.PrintHint("AI generation is off. Set OPENAI_API_KEY (and drop -no-ai) to enable it.")
		return
	}
	if strings.TrimSpace(prompt) == "" {
		a.ui.PrintHint("Usage: gen <describe what you want to cook>")
		return
	}

	a.ui.PrintHint("Planning the program...")

	spec, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, domain.ErrGenerationFailed) {
			a.ui.PrintUrgent("Couldn't come up with a program for that. Try rephrasing, or build it with 'new'.")
		} else {
			a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		}
		return
	}

	p, err := a.engine.Create(ctx, *spec)
	if err != nil {
		a.reportCommandError(err)
		return
	}

	a.ui.PrintChat(fmt.Sprintf("%q is on the board:", p.Name))
	a.showProgram(ctx, a.positionOf(ctx, p.ID))
}

func (a *cliApp) toggle(ctx context.Context, payload string) {
	p, ok := a.resolve(ctx, firstField(payload))
	if !ok {
		return
	}

	if err := a.engine.ToggleRun(ctx, p.ID); err != nil {
		a.reportCommandError(err)
		return
	}

	switch updated, err := a.engine.Get(ctx, p.ID); {
	case err != nil:
		a.log.Error("reloading %s after toggle: %v", p.ID, err)
	case updated.Status == domain.StatusRunning:
		a.ui.PrintChat(fmt.Sprintf("%q is cooking — %s on %q.", updated.Name,
			display.FormatClock(updated.TimeLeft), updated.ActivePhase().Name))
	case updated.Status == domain.StatusPaused:
		a.ui.PrintChat(fmt.Sprintf("%q is paused at %s.", updated.Name, display.FormatClock(updated.TimeLeft)))
	default:
		a.ui.PrintHint(fmt.Sprintf("%q is %s — nothing to toggle. 'next' moves it along, 'reset' starts it over.",
			updated.Name, updated.Status))
	}
}

func (a *cliApp) advance(ctx context.Context, payload string) {
	p, ok := a.resolve(ctx, firstField(payload))
	if !ok {
		return
	}

	if err := a.engine.AdvancePhase(ctx, p.ID); err != nil {
		a.reportCommandError(err)
		return
	}

	updated, err := a.engine.Get(ctx, p.ID)
	if err != nil {
		a.log.Error("reloading %s after advance: %v", p.ID, err)
		return
	}

	if updated.Status == domain.StatusCompleted {
		a.ui.PrintChat(fmt.Sprintf("%q is finished. Enjoy!", updated.Name))
		return
	}

	phase := updated.ActivePhase()
	a.ui.PrintChat(fmt.Sprintf("%q moved to %q — %s on the clock.",
		updated.Name, phase.Name, display.FormatClock(updated.TimeLeft)))
	if len(phase.Ingredients) > 0 {
		for _, ing := range phase.Ingredients {
			a.ui.PrintHint(fmt.Sprintf("  add %s %s %s", trimFloat(ing.Scaled(updated.Multiplier)), ing.Unit, ing.Name))
		}
	}
}

func (a *cliApp) reset(ctx context.Context, payload string) {
	p, ok := a.resolve(ctx, firstField(payload))
	if !ok {
		return
	}

	if err := a.engine.Reset(ctx, p.ID); err != nil {
		a.reportCommandError(err)
		return
	}
	a.ui.PrintChat(fmt.Sprintf("%q is back at phase 1, ready to start.", p.Name))
}

func (a *cliApp) scale(ctx context.Context, payload string) {
	fields := strings.Fields(payload)
	if len(fields) < 2 {
		a.ui.PrintHint("Usage: scale <program> <1|2|3>  (e.g. 'scale 2 x3')")
		return
	}

	p, ok := a.resolve(ctx, fields[0])
	if !ok {
		return
	}

	m, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(fields[1]), "x"))
	if err != nil {
		a.ui.PrintHint("Usage: scale <program> <1|2|3>  (e.g. 'scale 2 x3')")
		return
	}

	if err := a.engine.SetMultiplier(ctx, p.ID, m); err != nil {
		if errors.Is(err, domain.ErrInvalidProgram) {
			a.ui.PrintHint("The multiplier can be 1, 2 or 3.")
			return
		}
		a.reportCommandError(err)
		return
	}
	a.ui.PrintChat(fmt.Sprintf("%q now shows ingredients for x%d servings.", p.Name, m))
}

func (a *cliApp) remove(ctx context.Context, payload string) {
	p, ok := a.resolve(ctx, firstField(payload))
	if !ok {
		return
	}

	if err := a.engine.Delete(ctx, p.ID); err != nil {
		a.reportCommandError(err)
		return
	}
	a.ui.PrintChat(fmt.Sprintf("%q is off the board.", p.Name))
}

func (a *cliApp) restore(ctx context.Context) {
	if err := a.engine.RestoreDefaults(ctx); err != nil {
		a.reportCommandError(err)
		return
	}
	a.ui.PrintChat("The board is back to the default programs.")
	a.ui.Println("")
	a.showBoard(ctx)
}

func (a *cliApp) armSound() {
	if a.bell == nil {
		a.ui.PrintHint("Sound is disabled (-no-sound).")
		return
	}
	if a.bell.Ready() {
		a.ui.PrintChat("The chime is already armed.")
		return
	}
	if err := a.bell.Init(); err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Couldn't open the audio device: %v", err))
		return
	}
	a.bell.Ring()
	a.ui.PrintChat("Chime armed — that's what a finished phase sounds like.")
}

func (a *cliApp) quit() {
	a.ui.PrintChat("Turning off the stove. Bye!")
	time.Sleep(200 * time.Millisecond)
	a.ui.Quit()
}

// ── Phase editing ────────────────────────────────────────────────

func (a *cliApp) edit(ctx context.Context, payload string) {
	fields := strings.Fields(payload)
	if len(fields) < 2 {
		a.showEditHelp()
		return
	}

	p, ok := a.resolve(ctx, fields[0])
	if !ok {
		return
	}

	sub := strings.ToLower(fields[1])
	args := fields[2:]

	var err error
	switch sub {
	case "phases":
		// Wholesale replacement: edit N phases boil=10m, steep=5m
		specs, perr := parsePhaseList(strings.Join(args, " "))
		if perr != nil {
			a.ui.PrintHint(perr.Error())
			return
		}
		err = a.engine.EditPhases(ctx, p.ID, specs)

	case "rename":
		if len(args) < 2 {
			a.showEditHelp()
			return
		}
		idx, perr := parsePhaseIndex(args[0])
		if perr != nil {
			a.ui.PrintHint(perr.Error())
			return
		}
		err = a.engine.RenamePhase(ctx, p.ID, idx, strings.Join(args[1:], " "))

	case "resize":
		if len(args) < 2 {
			a.showEditHelp()
			return
		}
		idx, perr := parsePhaseIndex(args[0])
		if perr != nil {
			a.ui.PrintHint(perr.Error())
			return
		}
		secs, perr := parseSeconds(args[1])
		if perr != nil {
			a.ui.PrintHint(perr.Error())
			return
		}
		err = a.engine.ResizePhase(ctx, p.ID, idx, secs)

	case "add":
		if len(args) < 2 {
			a.showEditHelp()
			return
		}
		idx, perr := parsePhaseIndex(args[0])
		if perr != nil {
			a.ui.PrintHint(perr.Error())
			return
		}
		spec, perr := parsePhaseArg(strings.Join(args[1:], " "))
		if perr != nil {
			a.ui.PrintHint(perr.Error())
			return
		}
		err = a.engine.AddPhase(ctx, p.ID, idx, *spec)

	case "remove", "rm":
		if len(args) < 1 {
			a.showEditHelp()
			return
		}
		idx, perr := parsePhaseIndex(args[0])
		if perr != nil {
			a.ui.PrintHint(perr.Error())
			return
		}
		err = a.engine.RemovePhase(ctx, p.ID, idx)

	case "ing":
		if len(args) < 4 {
			a.showEditHelp()
			return
		}
		idx, perr := parsePhaseIndex(args[0])
		if perr != nil {
			a.ui.PrintHint(perr.Error())
			return
		}
		amount, perr := strconv.ParseFloat(args[1], 64)
		if perr != nil {
			a.ui.PrintHint("The ingredient amount must be a number, e.g. 'edit 2 ing 1 30 g goji berries'.")
			return
		}
		err = a.engine.AddIngredient(ctx, p.ID, idx, domain.Ingredient{
			Name:   strings.Join(args[3:], " "),
			Amount: amount,
			Unit:   args[2],
		})

	case "uning":
		if len(args) < 2 {
			a.showEditHelp()
			return
		}
		idx, perr := parsePhaseIndex(args[0])
		if perr != nil {
			a.ui.PrintHint(perr.Error())
			return
		}
		err = a.engine.RemoveIngredient(ctx, p.ID, idx, strings.Join(args[1:], " "))

	default:
		a.showEditHelp()
		return
	}

	if err != nil {
		a.reportCommandError(err)
		return
	}
	a.showProgram(ctx, fields[0])
}

func (a *cliApp) showEditHelp() {
	a.ui.PrintHeader("Edit commands (P = program number, I = phase number):")
	a.ui.PrintLine("  edit P phases a=10m, b=5m      Replace the whole phase list")
	a.ui.PrintLine("  edit P rename I <name>         Rename a phase")
	a.ui.PrintLine("  edit P resize I <duration>     Change a phase's duration (45s, 30m, 1h30m)")
	a.ui.PrintLine("  edit P add I <name>=<duration> Insert a phase at position I")
	a.ui.PrintLine("  edit P remove I                Remove a phase")
	a.ui.PrintLine("  edit P ing I <amt> <unit> <n>  Add an ingredient to phase I")
	a.ui.PrintLine("  edit P uning I <name>          Remove an ingredient from phase I")
}

// ── Helpers ──────────────────────────────────────────────────────

// resolve turns a 1-based board position into its program. Prints its own
// hint on failure.
func (a *cliApp) resolve(ctx context.Context, token string) (*domain.Program, bool) {
	n, err := strconv.Atoi(token)
	if err != nil || n < 1 {
		a.ui.PrintHint("Pick a program by its board number — 'list' shows them.")
		return nil, false
	}

	programs, err := a.engine.List(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error loading the board: %v", err))
		return nil, false
	}
	if n > len(programs) {
		a.ui.PrintHint(fmt.Sprintf("There's no program %d — the board has %d.", n, len(programs)))
		return nil, false
	}
	return programs[n-1], true
}

// positionOf reports a program's current 1-based board position, for
// embedding in follow-up hints. Falls back to "?" if it vanished.
func (a *cliApp) positionOf(ctx context.Context, id string) string {
	programs, err := a.engine.List(ctx)
	if err != nil {
		return "?"
	}
	for i, p := range programs {
		if p.ID == id {
			return strconv.Itoa(i + 1)
		}
	}
	return "?"
}

func (a *cliApp) reportCommandError(err error) {
	switch {
	case errors.Is(err, domain.ErrCapacityExceeded):
		a.ui.PrintUrgent(fmt.Sprintf("The board is full (%d programs). Delete one first.", domain.MaxPrograms))
	case errors.Is(err, domain.ErrInvalidProgram):
		a.ui.PrintUrgent(fmt.Sprintf("That doesn't make a valid program: %v", err))
	default:
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
	}
}

func (a *cliApp) showHelp() {
	a.ui.PrintHeader("Commands:")
	a.ui.PrintLine("  list                Show the board")
	a.ui.PrintLine("  1, 2, 3...          Show a program's phases and ingredients")
	a.ui.PrintLine("  start/pause N       Start or pause program N")
	a.ui.PrintLine("  next N              Move past a finished phase (or skip one)")
	a.ui.PrintLine("  reset N             Put program N back to its first phase")
	a.ui.PrintLine("  scale N x2          Show ingredients for 1x, 2x or 3x servings")
	a.ui.PrintLine("  new <name>: a=30m, b=1h  Add a program by hand")
	a.ui.PrintLine("  gen <description>   Have the AI plan a program")
	a.ui.PrintLine("  edit N ...          Change phases ('edit' alone lists subcommands)")
	a.ui.PrintLine("  delete N            Take program N off the board")
	a.ui.PrintLine("  restore             Replace the board with the default programs")
	a.ui.PrintLine("  sound               Arm the audio chime")
	a.ui.PrintLine("  help                Show this message")
	a.ui.PrintLine("  quit                Exit")
}

// firstField returns the first whitespace-separated token of s.
func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// parsePhaseIndex converts a 1-based phase number to a 0-based index.
func parsePhaseIndex(token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("phase numbers start at 1 (got %q)", token)
	}
	return n - 1, nil
}

// parseSeconds reads a duration argument. Bare digits are seconds;
// anything else goes through time.ParseDuration ("30m", "1h30m").
func parseSeconds(token string) (int, error) {
	if n, err := strconv.Atoi(token); err == nil {
		if n < 1 {
			return 0, fmt.Errorf("a phase needs at least one second (got %d)", n)
		}
		return n, nil
	}
	d, err := time.ParseDuration(token)
	if err != nil {
		return 0, fmt.Errorf("can't read %q as a duration (try 45s, 30m or 1h30m)", token)
	}
	secs := int(d.Seconds())
	if secs < 1 {
		return 0, fmt.Errorf("a phase needs at least one second (got %s)", d)
	}
	return secs, nil
}

// parsePhaseArg reads a single "<name>=<duration>" phrase.
func parsePhaseArg(s string) (*domain.PhaseSpec, error) {
	name, dur, found := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return nil, fmt.Errorf("phases look like <name>=<duration>, e.g. 'steep=20m' (got %q)", s)
	}
	secs, err := parseSeconds(strings.TrimSpace(dur))
	if err != nil {
		return nil, err
	}
	return &domain.PhaseSpec{Name: name, DurationSeconds: secs}, nil
}

// parsePhaseList reads a comma-separated "<phase>=<dur>, ..." list.
func parsePhaseList(s string) ([]domain.PhaseSpec, error) {
	var phases []domain.PhaseSpec
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		spec, err := parsePhaseArg(part)
		if err != nil {
			return nil, err
		}
		phases = append(phases, *spec)
	}
	if len(phases) == 0 {
		return nil, fmt.Errorf("give at least one phase, e.g. 'boil=10m, steep=5m'")
	}
	return phases, nil
}

// parseProgramArg reads the 'new' payload: "<name>: <phase>=<dur>, ...".
func parseProgramArg(payload string) (*domain.ProgramSpec, error) {
	name, rest, found := strings.Cut(payload, ":")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return nil, fmt.Errorf("missing program name before ':'")
	}

	phases, err := parsePhaseList(rest)
	if err != nil {
		return nil, err
	}
	return &domain.ProgramSpec{Name: name, Phases: phases}, nil
}

// trimFloat renders an amount without trailing zeros (2 not 2.0, 1.5 kept).
func trimFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

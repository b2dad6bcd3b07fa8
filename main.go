package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"merlin/pkg/engine"
	"merlin/pkg/logging"
	"merlin/pkg/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Configuration struct {
	Plain     bool
	DemoMode  bool
	Statement string
	LogLevel  string
	LogFormat string
	LogFile   string
}

func main() {
	config := parseArguments()

	if err := logging.Init(logging.Config{
		Level:      config.LogLevel,
		Format:     config.LogFormat,
		OutputPath: config.LogFile,
	}); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	defer logging.Close()

	store := engine.NewTableStore()

	if config.Statement != "" {
		if err := runOneStatement(store, config.Statement); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	showSplashScreen()

	if config.DemoMode {
		if err := runDemoMode(store); err != nil {
			log.Fatalf("Demo mode failed: %v", err)
		}
	}

	if config.Plain {
		if err := ui.RunREPL(store, os.Stdin, os.Stdout); err != nil {
			log.Fatalf("REPL failed: %v", err)
		}
		return
	}

	if err := startInteractiveMode(store); err != nil {
		log.Fatalf("Failed to start UI: %v", err)
	}
}

// parseArguments processes command-line flags
func parseArguments() Configuration {
	var config Configuration

	flag.BoolVar(&config.Plain, "plain", false, "Run the plain line REPL instead of the TUI")
	flag.BoolVar(&config.DemoMode, "demo", false, "Seed a sample table before starting")
	flag.StringVar(&config.Statement, "e", "", "Execute one statement and exit")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn or error")
	flag.StringVar(&config.LogFormat, "log-format", "text", "Log format: text or json")
	flag.StringVar(&config.LogFile, "log-file", "", "Log file path (default stderr)")

	flag.Parse()

	return config
}

// showSplashScreen greets with the resident wizard
func showSplashScreen() {
	splash := `
               _
              / \
  .||,       /_ _\
 \.` + "`" + `',/      |'L'|
 = ,. =      | -,|
 / || \    ,-'\"/,'` + "`" + `.
   ||     ,'   ` + "`" + `,,. ` + "`" + `.
   ,|____,' , ,;' \| |
  (3|\    _/|/'   _| |
   ||/,-''  | >-'' _,\
   ||'      ==\ ,-'  ,'
   ||       |  V \ ,|
   ||       |    |` + "`" + ` |
   ||       |    |   \
   ||       |    \    \
   ||       |     |    \
   ||       |      \_,-'
   ||       |___,,--")_\
   ||         |_|   ccc/
   ||        ccc/
   ||                merlin
`

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7C3AED")).
		Bold(true)

	fmt.Println(style.Render(splash))
}

// runOneStatement executes a single -e statement and prints its outcome
func runOneStatement(store *engine.TableStore, statement string) error {
	result, err := store.Execute(statement)
	if err != nil {
		return err
	}
	if len(result.Columns) > 0 {
		fmt.Println(format(result))
	} else {
		fmt.Println(result.Message)
	}
	return nil
}

func format(result engine.Result) string {
	out := ""
	for i, col := range result.Columns {
		if i > 0 {
			out += "\t"
		}
		out += col
	}
	for _, row := range result.Rows {
		out += "\n"
		for i, v := range row {
			if i > 0 {
				out += "\t"
			}
			out += v
		}
	}
	return out
}

// startInteractiveMode launches the Bubble Tea UI
func startInteractiveMode(store *engine.TableStore) error {
	p := tea.NewProgram(
		ui.NewModel(store),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %v", err)
	}

	return nil
}

// runDemoMode seeds a sample table through ordinary statements
func runDemoMode(store *engine.TableStore) error {
	fmt.Println("🎮 Seeding demo tables...")

	demoStatements := []string{
		`CREATE TABLE person(name varchar(32), age number, male boolean)`,
		`INSERT INTO person(name, age, male) VALUES ("Nimue", 19, false)`,
		`INSERT INTO person(name, age, male) VALUES ("Arthur", 24, true)`,
		`INSERT INTO person(name, age, male) VALUES ("Morgana", 27, false)`,

		`CREATE TABLE spell(name varchar(24), level number, forbidden boolean)`,
		`INSERT INTO spell(name, level, forbidden) VALUES ("fireball", 3, false)`,
		`INSERT INTO spell(name, level, forbidden) VALUES ("polymorph", 9, true)`,
	}

	for _, statement := range demoStatements {
		if _, err := store.Execute(statement); err != nil {
			return fmt.Errorf("failed to execute demo statement: %v", err)
		}
	}

	fmt.Println("✅ Demo tables ready. Try:")
	fmt.Println("  • SELECT * FROM person")
	fmt.Println("  • SELECT name, level FROM spell")
	fmt.Println("  • SHOW TABLES")
	fmt.Println()

	return nil
}

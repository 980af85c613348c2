package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// Коды возврата - их проверяют скрипты запуска.
const (
	exitOK         = 0
	exitMissingDir = 1
	exitUsage      = 2
)

type CLI struct {
	// Flags:
	GalaktikaExe string `name:"galaktika-exe" help:"Path to Galaktika executables" env:"GALAKTIKA_EXE" default:"${galaktika_exe}"`
	Debug        bool   `help:"Enable more output" short:"d"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("galexe"),
		kong.Description("Check that the Galaktika executables directory exists"),
		kong.Writers(stdout, stderr),
		kong.Vars{"galaktika_exe": DefaultGalaktikaExe},
	)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return exitUsage
	}
	if _, err := parser.Parse(args); err != nil {
		parser.Errorf("%s", err)
		return exitUsage
	}

	guard := NewConfigGuard(cli.GalaktikaExe)
	if err := guard.Enforce(newLogger(stderr, cli.Debug)); err != nil {
		// Одна строка: маркер, имя переменной и значение без экранирования.
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return exitMissingDir
	}

	return exitOK
}

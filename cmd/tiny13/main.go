// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chzyer/readline"

	"github.com/ezrec/tiny13/config"
	"github.com/ezrec/tiny13/console"
	"github.com/ezrec/tiny13/cpu"
	"github.com/ezrec/tiny13/emulator"
	"github.com/ezrec/tiny13/ihex"
	"github.com/ezrec/tiny13/translate"
)

func main() {
	var hexfile string
	var compile string
	var output string
	var confpath string
	var color string
	var verbose bool
	var dumpConfig bool

	flag.StringVar(&hexfile, "f", "", ".hex firmware to load")
	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.StringVar(&output, "o", "", "Write the program as .hex, do not execute")
	flag.StringVar(&confpath, "config", "", "Configuration file")
	flag.StringVar(&color, "color", "", "Color mode: auto, always or never")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dumpConfig, "dump-config", false, "Write the effective configuration, do not execute")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	conf, err := config.Load(confpath)
	if err != nil {
		log.Fatalf("%v: %v", confpath, err)
	}
	if verbose {
		conf.Verbose = true
	}
	if len(color) != 0 {
		conf.Color = color
	}
	err = conf.Validate()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	if dumpConfig {
		err = conf.Write(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	if len(hexfile) == 0 && len(compile) == 0 {
		log.Fatalf("%v: %v", os.Args[0], translate.From("one of -f or -c is required"))
	}

	emu := emulator.NewEmulator()
	emu.Verbose = conf.Verbose
	emu.Listing = conf.Listing
	emu.Color = conf.UseColor(int(os.Stdout.Fd()))

	if len(hexfile) != 0 {
		err = emu.LoadFile(hexfile)
		if err != nil {
			log.Fatal(err)
		}
	}

	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		err = emu.Assemble(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	if len(output) != 0 {
		err = writeHex(output, emu.Program)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	emu.Reset()

	err = repl(emu, conf)
	if err != nil {
		log.Fatal(err)
	}
}

// writeHex saves the program as an Intel HEX image.
func writeHex(path string, prog *cpu.Program) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	err = ihex.Write(ouf, prog)
	if cerr := ouf.Close(); err == nil {
		err = cerr
	}

	return
}

// greet writes the banner and the listing around the program counter.
func greet(out io.Writer, emu *emulator.Emulator) (err error) {
	_, err = translate.Fprintln(out, "The simplest ATtiny13 emulator. Type h for help.")
	if err != nil {
		return
	}

	return emu.WriteListing(out)
}

// repl reads commands until quit or end of input.
func repl(emu *emulator.Emulator, conf *config.Config) (err error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "# ",
		InterruptPrompt: "\n",
		HistoryFile:     conf.HistoryPath(),
	})
	if err != nil {
		return
	}
	defer rl.Close()

	out := rl.Stdout()
	con := &console.Console{Emu: emu, Out: out}

	err = greet(out, emu)
	if err != nil {
		return
	}

	for {
		err = emu.WriteCurrent(out)
		if err != nil {
			return err
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := con.Exec(line)
		if err != nil {
			_, err = fmt.Fprintln(out, err)
			if err != nil {
				return err
			}
		}
		if quit {
			return nil
		}
	}
}

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/nibble4/nibble4/cpu"
	"github.com/nibble4/nibble4/interp"
)

func main() {
	var compile string
	var disassemble string
	var script string
	var output string
	var maxCycles int
	var save bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".n4 assembly file to run")
	flag.StringVar(&disassemble, "d", "", "binary file to disassemble")
	flag.StringVar(&script, "x", "", "interpreter script, '-' for stdin")
	flag.StringVar(&output, "o", "-", "binary output for -s")
	flag.IntVar(&maxCycles, "m", 100, "cycle budget")
	flag.BoolVar(&save, "s", false, "assemble only, save the binary, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	// Disassemble a binary.
	if len(disassemble) != 0 {
		bin, err := os.ReadFile(disassemble)
		if err != nil {
			log.Fatalf("%v: %v", disassemble, err)
		}
		fmt.Print(cpu.Disassemble(bin))
		return
	}

	// Assemble and run (or save) a program.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		prog, err := asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		bin := prog.Binary()

		if save {
			if output == "-" {
				_, err = os.Stdout.Write(bin)
			} else {
				err = os.WriteFile(output, bin, 0o644)
			}
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
			return
		}

		machine := cpu.NewCpu()
		machine.Verbose = verbose
		machine.LoadProgram(bin)
		machine.Run(maxCycles)

		fmt.Print(machine.String())
		fmt.Printf(" memory:")
		for _, value := range machine.Memory.Dump() {
			fmt.Printf(" %X", value)
		}
		fmt.Println()
		return
	}

	// Interpret a script.
	if len(script) != 0 {
		in := interp.NewInterpreter()
		in.Verbose = verbose

		if script != "-" {
			inf, err := os.Open(script)
			if err != nil {
				log.Fatalf("%v: %v", script, err)
			}
			defer inf.Close()

			err = in.Run(inf)
			if err != nil {
				log.Fatalf("%v: %v", script, err)
			}
			return
		}

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			err := in.Run(os.Stdin)
			if err != nil {
				log.Fatalf("stdin: %v", err)
			}
			return
		}

		// Interactive: one statement per line, errors do not end
		// the session.
		scanner := bufio.NewScanner(os.Stdin)
		fmt.Print("> ")
		for scanner.Scan() {
			line := scanner.Text()
			if len(line) != 0 {
				err := in.ExecuteLine(line)
				if err != nil {
					fmt.Printf("error: %v\n", err)
				}
			}
			fmt.Print("> ")
		}
		fmt.Println()
		return
	}

	flag.Usage()
}

// Copyright 2025, Abish Jha

package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/abishjha/vc3600/asm"
	"github.com/abishjha/vc3600/emulator"
	"github.com/abishjha/vc3600/io"
)

var (
	input    string
	output   string
	save     bool
	verbose  bool
	defines  []string
	exitCode int
)

// rootCmd assembles a source file and runs it
var rootCmd = &cobra.Command{
	Use:   "vc3600 sourceFile",
	Short: "VC-3600 assembler and emulator",
	Long: `vc3600 translates a VC-3600 assembly source file into machine words,
printing the symbol table and the translation listing, and then runs the
translated program on the VC-3600 emulator.

Emulation is skipped when the translation recorded any errors.
`,

	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prog, ok := assemble(args[0], os.Stdout)
		if !ok {
			fmt.Println("Errors were encountered during compilation...")
			fmt.Println("Exiting emulation")
			exitCode = 1
			return
		}

		if save {
			return
		}

		if !run(prog) {
			exitCode = 1
		}
	},
}

// dumpCmd pretty prints the assembled program
var dumpCmd = &cobra.Command{
	Use:   "dump sourceFile",
	Short: "Dump the assembled program words",

	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prog, ok := assemble(args[0], nil)
		pp.Println(prog)
		if !ok {
			exitCode = 1
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringArrayVarP(&defines, "define", "D", nil, "Predefine NAME=VALUE for $(...) expressions")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")

	rootCmd.Flags().StringVarP(&input, "input", "i", "-", "Console input")
	rootCmd.Flags().StringVarP(&output, "output", "o", "-", "Console output")
	rootCmd.Flags().BoolVarP(&save, "assemble", "s", false, "Assemble only, do not execute")

	rootCmd.AddCommand(dumpCmd)
}

// assemble translates a source file, writing the listing if requested.
func assemble(path string, listing *os.File) (prog *asm.Program, ok bool) {
	src, err := io.OpenFile(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	defer src.Close()

	as := &asm.Assembler{Verbose: verbose}
	if listing != nil {
		as.Listing = listing
	}

	for _, define := range defines {
		name, value, found := strings.Cut(define, "=")
		if !found {
			value = "1"
		}
		err = as.PredefineString(name, value)
		if err != nil {
			log.Fatalf("-D %v: %v", define, err)
		}
	}

	prog, err = as.Assemble(src)
	if src.Err != nil {
		log.Fatalf("%v: %v", path, src.Err)
	}
	if err != nil {
		if verbose {
			log.Printf("%v: %v", path, err)
		}
		return
	}

	ok = true
	return
}

// run loads and executes an assembled program.
func run(prog *asm.Program) (ok bool) {
	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	if input == "-" {
		emu.Console.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Console.Input = inf
	}

	if output == "-" {
		emu.Console.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Console.Output = ouf
	}

	errs := &io.Log{}
	ok = emu.LoadProgram(prog, errs)

	err := emu.Run()
	if err != nil {
		if verbose {
			log.Print(err)
		}
		errs.Record(emulator.ErrRunFailed.Error())
		ok = false
	}

	if !errs.IsEmpty() {
		errs.Flush(os.Stdout)
	}

	return
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}

	os.Exit(exitCode)
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/FitrahHaque/Huffman-Engine/engine"
	"github.com/fatih/color"
)

var Commands = [...]string{"compress", "decompress", "benchmark", "help"}

func main() {
	application := os.Args[0]
	flag.CommandLine = flag.NewFlagSet(application, flag.ExitOnError)
	compressCmd := flag.Bool(Commands[0], false, "Compress File")
	decompressCmd := flag.Bool(Commands[1], false, "Decompress File")
	benchmarkCmd := flag.Bool(Commands[2], false, "Benchmark File")
	helpCmd := flag.Bool(Commands[3], false, "Help")

	if len(os.Args) == 1 {
		fmt.Println("Please provide commands")
		os.Exit(1)
	}
	flag.CommandLine.Parse(findIntersection(
		[]string{
			"--compress",
			"--decompress",
			"--benchmark",
			"--help",
		},
		os.Args[1:2],
	))
	commandsSelected := countTrue([]bool{*compressCmd, *decompressCmd, *benchmarkCmd})
	var subArgs []string
	if commandsSelected == 0 {
		if *helpCmd {
			fmt.Fprintf(os.Stderr, "Usage of %s:\n", application)
			fmt.Fprintf(os.Stderr, "Valid commands include:\n\t%s\n", strings.Join(Commands[:], ", "))
			fmt.Fprintf(os.Stderr, "Flag:\n")
			flag.PrintDefaults()
			return
		}
		fmt.Println("No command is selected. Compression by default")
		cmdTrue := true
		compressCmd = &cmdTrue
		subArgs = os.Args[1:]
	} else {
		subArgs = os.Args[2:]
	}

	var command string
	switch {
	case *compressCmd:
		command = Commands[0]
	case *decompressCmd:
		command = Commands[1]
	default:
		command = Commands[2]
	}

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s --%s [OPTIONS] <file(s)>\n", application, command)
		fmt.Fprintf(os.Stderr, "Flag:\n")
		fs.PrintDefaults()
	}
	algorithm := fs.String("algorithm", "huffman", fmt.Sprintf("Which algorithm to use, choices include: \n\t%s", strings.Join(engine.Engines[:], ", ")))
	outputFileExtension := fs.String("outfileext", "rsn", "File extension used for the compressed file")
	deleteAfter := fs.Bool("delete", false, "Delete input file(s) after success")
	fs.Parse(subArgs)

	if fs.NArg() == 0 {
		fmt.Printf("No file provided for %s\n", command)
		os.Exit(1)
	}
	var files []string
	for _, arg := range fs.Args() {
		files = append(files, strings.Split(arg, ",")...)
	}
	trimSpace(files)
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			fmt.Printf("Could not open the provided file %s\n", f)
			os.Exit(1)
		}
	}

	var err error
	switch command {
	case Commands[0]:
		err = engine.CompressFiles(*algorithm, files, *outputFileExtension)
	case Commands[1]:
		err = engine.DecompressFiles(*algorithm, files, *outputFileExtension)
	default:
		err = engine.BenchmarkFiles(*algorithm, files)
	}
	if err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
	if *deleteAfter && command != Commands[2] {
		deleteFiles(files)
	}
}

func countTrue(commands []bool) int {
	count := 0
	for _, c := range commands {
		if c {
			count++
		}
	}
	return count
}

func findIntersection(commandList, argList []string) []string {
	set := make(map[string]struct{}, len(commandList))
	for _, c := range commandList {
		set[c] = struct{}{}
	}
	var out []string
	for _, arg := range argList {
		if _, ok := set[arg]; ok {
			out = append(out, arg)
		}
	}
	return out
}

func trimSpace(s []string) {
	for i := range s {
		s[i] = strings.TrimSpace(s[i])
	}
}

func deleteFiles(files []string) {
	for _, file := range files {
		if err := os.Remove(file); err != nil {
			color.Red("could not delete %s: %v", file, err)
		}
	}
}

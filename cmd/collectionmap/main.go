package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/suparena/docstore"
	"github.com/suparena/docstore/processor"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	inputFlag   = flag.String("input", "", "Collection map YAML file (default $DOCSTORE_COLLECTION_MAP)")
	outputFlag  = flag.String("output", "", "Generated Go file (default: stdout)")
	packageFlag = flag.String("package", "models", "Package name for the generated file")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := docstore.GetVersionInfo()
		fmt.Printf("DocStore collectionmap version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	// Run the generator
	if err := processor.Run(processor.Options{
		Input:   *inputFlag,
		Output:  *outputFlag,
		Package: *packageFlag,
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Options controls a generator run.
type Options struct {
	// Input is the collection map YAML file. Falls back to the
	// DOCSTORE_COLLECTION_MAP environment variable.
	Input string

	// Output is the generated Go file. Empty writes to stdout.
	Output string

	// Package is the package name of the generated file.
	Package string
}

// collectionMap is the YAML input schema: entity type name to collection name.
//
//	collections:
//	  User: users
//	  Order: orders
type collectionMap struct {
	Collections map[string]string `yaml:"collections"`
}

// Run executes the generator with the given options.
func Run(opts Options) error {
	// A .env file may carry the defaults; absence is fine.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	if opts.Input == "" {
		opts.Input = os.Getenv("DOCSTORE_COLLECTION_MAP")
	}
	if opts.Input == "" {
		return fmt.Errorf("no collection map given: set -input or DOCSTORE_COLLECTION_MAP")
	}
	if opts.Package == "" {
		opts.Package = "models"
	}

	src, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("failed to read collection map: %w", err)
	}

	out, err := Generate(src, opts.Package)
	if err != nil {
		return err
	}

	if opts.Output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(opts.Output, out, 0o644)
}

// Generate renders registration code for every entry in the YAML
// collection map. Entries are emitted in sorted order so regeneration
// is deterministic; the result is gofmt-formatted.
func Generate(src []byte, pkg string) ([]byte, error) {
	var cm collectionMap
	if err := yaml.Unmarshal(src, &cm); err != nil {
		return nil, fmt.Errorf("failed to parse collection map: %w", err)
	}
	if len(cm.Collections) == 0 {
		return nil, fmt.Errorf("collection map declares no collections")
	}

	types := make([]string, 0, len(cm.Collections))
	for t := range cm.Collections {
		types = append(types, t)
	}
	sort.Strings(types)

	var buf bytes.Buffer
	buf.WriteString("// Code generated by collectionmap. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("import \"github.com/suparena/docstore/registry\"\n\n")
	buf.WriteString("func init() {\n")
	for _, t := range types {
		fmt.Fprintf(&buf, "\tregistry.RegisterCollection[%s](registry.CollectionConfig{Name: %q})\n", t, cm.Collections[t])
	}
	buf.WriteString("}\n")

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not format: %w", err)
	}
	return out, nil
}

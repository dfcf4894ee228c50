// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

// pulsegen emits the typed, non-generic kernel exports checked in as
// z_typed.go. The generic kernels carry the arithmetic; what remains per
// element type is a one-line wrapper, and this table keeps the full
// type x operation grid from drifting as operations are added.
//
// Run via go:generate from the target package directory:
//
//	//go:generate go run ../../../cmd/pulsegen -output z_typed.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

// elemTypes is the type grid of the original kernel catalogue.
var elemTypes = []struct {
	Name string // exported suffix
	Go   string // Go element type
}{
	{"Int8", "int8"},
	{"Int16", "int16"},
	{"Int32", "int32"},
	{"Float32", "float32"},
}

// ops describes the generic kernels that get typed exports. Kind selects
// the argument shape.
var ops = []struct {
	Name string
	Kind string // "binary" or "copy"
}{
	{"AddStride", "binary"},
	{"SubStride", "binary"},
	{"CopyStride", "copy"},
}

const fileTemplate = `// Code generated by pulsegen. DO NOT EDIT.

package {{.Package}}
{{range .Funcs}}
// {{.Op}}{{.Type}} is the {{.Go}} specialization of {{.Op}}.
{{if eq .Kind "binary"}}func {{.Op}}{{.Type}}(a, b, dst []{{.Go}}, m, n, strideA, strideB, strideDst int) {
	{{.Op}}(a, b, dst, m, n, strideA, strideB, strideDst)
}
{{else}}func {{.Op}}{{.Type}}(src, dst []{{.Go}}, m, n, strideSrc, strideDst int) {
	{{.Op}}(src, dst, m, n, strideSrc, strideDst)
}
{{end}}{{end}}`

type funcSpec struct {
	Op   string
	Kind string
	Type string
	Go   string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("pulsegen: ")

	output := flag.String("output", "z_typed.go", "output file name")
	pkg := flag.String("package", "matstride", "target package name")
	flag.Parse()

	var funcs []funcSpec
	for _, op := range ops {
		for _, t := range elemTypes {
			funcs = append(funcs, funcSpec{Op: op.Name, Kind: op.Kind, Type: t.Name, Go: t.Go})
		}
	}

	tmpl := template.Must(template.New("typed").Parse(fileTemplate))
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Package string
		Funcs   []funcSpec
	}{Package: *pkg, Funcs: funcs})
	if err != nil {
		log.Fatal(err)
	}

	// imports.Process also gofmt-formats the result.
	formatted, err := imports.Process(*output, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("formatting %s: %v", *output, err)
	}

	if err := os.WriteFile(*output, formatted, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("pulsegen: wrote %s (%d functions)\n", *output, len(funcs))
}

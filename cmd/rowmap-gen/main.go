// rowmap-gen generates column bindings for struct types.
//
// Struct types carrying a //rowmap:table comment get a package level
// table variable built with rowmap.MustNewTable, so that no reflection
// is needed at run time. It is intended for go:generate:
//
//	//go:generate rowmap-gen
package main

import (
	"bytes"
	"go/format"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jjeffery/kv"
	"github.com/jjeffery/rowmap/private/codegen"
	"github.com/spf13/pflag"
)

var command struct {
	filename string
	output   string
	verbose  bool
}

func main() {
	log.SetFlags(0)
	command.filename = os.Getenv("GOFILE")
	pflag.StringVarP(&command.filename, "file", "f", command.filename, "source file")
	pflag.StringVarP(&command.output, "output", "o", "", "output file, - for stdout (default <file>_rowmap.go)")
	pflag.BoolVarP(&command.verbose, "verbose", "v", false, "log the tables generated")
	pflag.Parse()
	if len(pflag.Args()) > 0 {
		log.Fatalln("unrecognized args:", strings.Join(pflag.Args(), " "))
	}
	if command.filename == "" {
		log.Fatal("no file specified (-f or $GOFILE)")
	}
	if command.output == "" {
		command.output = codegen.DefaultOutput(command.filename)
	}

	model, err := codegen.Parse(command.filename)
	if err != nil {
		log.Fatalln(err)
	}
	if len(model.Tables) == 0 {
		log.Fatalln("no types found", kv.List{"file", command.filename, "directive", codegen.Directive}.String())
	}
	model.CommandLine = strings.Join(os.Args, " ")

	var buf bytes.Buffer
	if err := codegen.DefaultTemplate.Execute(&buf, model); err != nil {
		log.Fatalln("cannot execute template:", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalln("cannot format generated output:", err)
	}

	var output io.Writer

	if command.output == "-" {
		output = os.Stdout
	} else {
		outfile, err := os.Create(command.output)
		if err != nil {
			log.Fatalln(err)
		}
		defer outfile.Close()
		output = outfile
	}

	if _, err := output.Write(formatted); err != nil {
		log.Fatalln(err)
	}

	if command.verbose {
		for _, tbl := range model.Tables {
			log.Println("generated", kv.List{
				"type", tbl.TypeName,
				"var", tbl.VarName,
				"fields", len(tbl.Fields),
				"output", command.output,
			}.String())
		}
	}
}

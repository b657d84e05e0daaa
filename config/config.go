// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config parses the marcstream CLI's flags into an Options value
// and runs the conversion the flags describe.
package config

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/solidcoredata/marcstream/bibframe"
	"github.com/solidcoredata/marcstream/iso2709"
	"github.com/solidcoredata/marcstream/rdf"
	"github.com/solidcoredata/marcstream/recovery"
)

// Options holds the parsed CLI configuration, following the teacher's
// single-flag config.Run shape but widened to the fields marcstream's
// pipeline and converter need.
type Options struct {
	Input  string
	Output string

	RecoveryMode string
	WorkerCount  int
	ChunkSize    int

	ToBibframe bool
	Format     string
	BaseURI    string
}

var (
	input  = flag.String("in", "", "input ISO 2709 file, or \"-\" for stdin")
	output = flag.String("out", "-", "output file, or \"-\" for stdout")

	recoveryMode = flag.String("recovery", "strict", "recovery policy: strict, lenient, or permissive")
	workerCount  = flag.Int("workers", 1, "parser worker pool size")
	chunkSize    = flag.Int("chunk", 1<<16, "producer read chunk size in bytes")

	toBibframe = flag.Bool("bibframe", false, "convert each record to a BIBFRAME graph instead of re-emitting ISO 2709")
	format     = flag.String("format", "jsonld", "BIBFRAME output format: ntriples, turtle, jsonld, or rdfxml")
	baseURI    = flag.String("base-uri", "", "URI prefix for minted BIBFRAME entities; blank nodes when empty")
)

// Parse reads Options from the flags registered at package init, per
// flag.Parse's usual "call once in main" convention.
func Parse() Options {
	return Options{
		Input:        *input,
		Output:       *output,
		RecoveryMode: *recoveryMode,
		WorkerCount:  *workerCount,
		ChunkSize:    *chunkSize,
		ToBibframe:   *toBibframe,
		Format:       *format,
		BaseURI:      *baseURI,
	}
}

func (o Options) recoveryPolicy() (recovery.Policy, error) {
	switch o.RecoveryMode {
	case "strict":
		return recovery.New(recovery.Strict), nil
	case "lenient":
		return recovery.New(recovery.Lenient), nil
	case "permissive":
		return recovery.New(recovery.Permissive), nil
	default:
		return nil, fmt.Errorf("unknown recovery mode %q", o.RecoveryMode)
	}
}

func (o Options) outputFormat() (rdf.Format, error) {
	switch o.Format {
	case "ntriples":
		return rdf.NTriples, nil
	case "turtle":
		return rdf.Turtle, nil
	case "jsonld":
		return rdf.JSONLD, nil
	case "rdfxml":
		return rdf.RDFXML, nil
	default:
		return 0, fmt.Errorf("unknown output format %q", o.Format)
	}
}

// Run drives one pipeline over Options' configured input, writing either
// re-encoded ISO 2709 or converted BIBFRAME graphs to Options' output.
// It returns when the input is exhausted, the context is canceled, or a
// fatal error occurs, following the teacher's config.Run(ctx) error shape
// so it composes directly with internal/start.RunAll.
func Run(ctx context.Context) error {
	o := Parse()
	if o.Input == "" {
		return errors.New("missing -in")
	}

	in, closeIn, err := openInput(o.Input)
	if err != nil {
		return err
	}
	defer closeIn()

	outFile, closeOut, err := openOutput(o.Output)
	if err != nil {
		return err
	}
	defer closeOut()
	out := bufio.NewWriter(outFile)
	defer out.Flush()

	policy, err := o.recoveryPolicy()
	if err != nil {
		return err
	}

	p := iso2709.New(ctx, in,
		iso2709.WithWorkerCount(o.WorkerCount),
		iso2709.WithChunkSize(o.ChunkSize),
		iso2709.WithPipelineRecoveryPolicy(policy),
	)
	defer p.Close()

	if o.ToBibframe {
		return o.runBibframe(p, out)
	}
	return o.runISO2709(p, out)
}

func (o Options) runISO2709(p *iso2709.Pipeline, out *bufio.Writer) error {
	w := iso2709.NewWriter(out)
	for {
		item, ok := p.Next()
		if !ok {
			break
		}
		if item.Err != nil {
			slog.Default().Warn("skipping unreadable record", "sequence", item.Seq, "error", item.Err)
			continue
		}
		if err := w.WriteRecord(item.Record); err != nil {
			return err
		}
	}
	return nil
}

func (o Options) runBibframe(p *iso2709.Pipeline, out *bufio.Writer) error {
	outputFormat, err := o.outputFormat()
	if err != nil {
		return err
	}
	cfg := bibframe.DefaultConfig()
	cfg.BaseURI = o.BaseURI
	cfg.OutputFormat = outputFormat

	for {
		item, ok := p.Next()
		if !ok {
			break
		}
		if item.Err != nil {
			slog.Default().Warn("skipping unreadable record", "sequence", item.Seq, "error", item.Err)
			continue
		}
		g := bibframe.ConvertToBIBFRAME(item.Record, cfg)
		text, err := rdf.Write(g, cfg.OutputFormat)
		if err != nil {
			return fmt.Errorf("encoding record %d: %w", item.Seq, err)
		}
		if _, err := out.WriteString(text); err != nil {
			return err
		}
		if err := out.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

func openInput(name string) (*os.File, func() error, error) {
	if name == "-" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func openOutput(name string) (*os.File, func() error, error) {
	if name == "-" || name == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

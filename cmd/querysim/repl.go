package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zakazai/querysim/internal/export"
	"github.com/zakazai/querysim/internal/lexer"
	"github.com/zakazai/querysim/internal/session"
)

const replHelp = `Commands:
  \datasets          list datasets
  \use <name>        select a dataset
  \samples           sample queries for the selected dataset
  \history           recent queries
  \clear             clear history
  \save <name>       save the last query
  \saved             list saved queries
  \stats             session statistics
  \export <format>   write the last result as csv, json, parquet or xlsx
  exit               quit
Anything else runs as a query; several may be separated by ';'.`

type repl struct {
	sess        *session.Session
	reader      *bufio.Reader
	out         io.Writer
	interactive bool
	assumeYes   bool
	exportDir   string
	lastQuery   string
}

// runREPL reads queries line by line until EOF or exit. Prompts and
// confirmations are only offered when input is interactive.
func runREPL(sess *session.Session, in io.Reader, out io.Writer, interactive bool) error {
	r := &repl{
		sess:        sess,
		reader:      bufio.NewReader(in),
		out:         out,
		interactive: interactive,
		assumeYes:   assumeYes,
		exportDir:   cfg.ExportDir,
	}
	if r.exportDir == "" {
		r.exportDir = "."
	}
	return r.loop()
}

func (r *repl) loop() error {
	if r.interactive {
		fmt.Fprintln(r.out, "querysim - simulated SQL runner")
		fmt.Fprintln(r.out, `Type 'exit' to quit, '\help' for commands`)
	}

	for {
		if r.interactive {
			fmt.Fprint(r.out, "> ")
		}

		input, err := r.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("error reading input: %w", err)
		}
		eof := err == io.EOF

		line := strings.TrimSpace(input)
		if line != "" {
			if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
				fmt.Fprintln(r.out, "Goodbye!")
				return nil
			}
			r.handle(line)
		}

		if eof {
			if r.interactive {
				fmt.Fprintln(r.out, "Goodbye!")
			}
			return nil
		}
	}
}

func (r *repl) handle(line string) {
	if strings.HasPrefix(line, `\`) {
		r.command(line)
		return
	}
	for _, stmt := range lexer.Split(line) {
		r.runQuery(stmt)
	}
}

func (r *repl) command(line string) {
	fields := strings.Fields(line)
	arg := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))

	var err error
	switch fields[0] {
	case `\help`:
		fmt.Fprintln(r.out, replHelp)
	case `\datasets`:
		err = renderDatasets(r.out, r.sess.Datasets(), r.sess.Selected().Name)
	case `\use`:
		if _, err = r.sess.SelectDataset(arg); err == nil {
			fmt.Fprintf(r.out, "Using dataset '%s'\n", arg)
		}
	case `\samples`:
		for i, q := range r.sess.SampleQueries() {
			fmt.Fprintf(r.out, "%d. %s\n", i+1, q)
		}
	case `\history`:
		err = renderHistory(r.out, r.sess.History())
	case `\clear`:
		r.sess.ClearHistory()
		fmt.Fprintln(r.out, "History cleared")
	case `\save`:
		if r.lastQuery == "" {
			err = session.ErrEmptyQuery
			break
		}
		var saved session.SavedQuery
		if saved, err = r.sess.SaveQuery(arg, r.lastQuery); err == nil {
			fmt.Fprintf(r.out, "Query saved as \"%s\"\n", saved.Name)
		}
	case `\saved`:
		for _, q := range r.sess.SavedQueries() {
			fmt.Fprintf(r.out, "%s: %s\n", q.Name, q.Query)
		}
	case `\stats`:
		renderStats(r.out, r.sess.Stats())
	case `\export`:
		var format export.Format
		if format, err = export.ParseFormat(arg); err != nil {
			break
		}
		var path string
		if path, err = r.sess.ExportFile(r.exportDir, format); err == nil {
			fmt.Fprintf(r.out, "Exported to %s\n", path)
		}
	default:
		err = fmt.Errorf("unknown command %s", fields[0])
	}

	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
	}
}

func (r *repl) runQuery(query string) {
	r.lastQuery = query

	confirm := session.Confirmation{}
	if r.assumeYes {
		confirm = session.Confirmation{Confirmed: true, Text: session.ConfirmDumpText}
	}

	res, err := r.sess.Run(query, confirm)
	if errors.Is(err, session.ErrConfirmationRequired) && r.interactive {
		if confirm, ok := r.askConfirmation(session.Classify(query)); ok {
			res, err = r.sess.Run(query, confirm)
		} else {
			fmt.Fprintln(r.out, "Cancelled")
			return
		}
	}
	if err != nil {
		fmt.Fprintf(r.out, "Error executing query: %v\n", err)
		return
	}

	if err := renderResult(r.out, res); err != nil {
		fmt.Fprintf(r.out, "Error rendering result: %v\n", err)
	}
}

func (r *repl) askConfirmation(kind session.ConfirmationKind) (session.Confirmation, bool) {
	if kind == session.KindDump {
		fmt.Fprintf(r.out, "This dumps table data. Type %s to continue: ", session.ConfirmDumpText)
	} else {
		fmt.Fprintf(r.out, "This is a %s query. Continue? [y/N]: ", kind)
	}

	answer, _ := r.reader.ReadString('\n')
	answer = strings.TrimSpace(answer)

	if kind == session.KindDump {
		return session.Confirmation{Text: answer}, answer == session.ConfirmDumpText
	}
	ok := strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
	return session.Confirmation{Confirmed: ok}, ok
}

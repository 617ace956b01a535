// gauge-report evaluates a pipe segment described in a JSON file and
// writes the result as a TXT, CSV, JSON or PDF report, or as a filled
// engineering memorandum when a template is supplied.
//
// The input file holds {"meta": {...}, "evaluation": {"pipe": {...},
// "inspection": {...}}, "memo_values": {...}} and may contain //-comment
// lines.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	governance "Gauge/internal/calc/governance"
	memo "Gauge/internal/calc/memo"
	report "Gauge/internal/calc/report"
)

type inputFile struct {
	Meta       report.Meta       `json:"meta"`
	Evaluation governance.Input  `json:"evaluation"`
	MemoValues map[string]string `json:"memo_values,omitempty"`
}

func main() {
	inPath := flag.String("input", "", "JSON file describing the pipe and inspection")
	format := flag.String("format", "txt", "report format: txt, csv, json or pdf")
	outPath := flag.String("out", "", "output file (default evaluation.<format>)")
	template := flag.String("template", "", "memorandum template to fill instead of a report")
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}
	var in inputFile
	if err := json.Unmarshal([]byte(memo.StripComments(string(raw))), &in); err != nil {
		log.Fatalf("parsing input: %v", err)
	}

	res, err := governance.Evaluate(in.Evaluation)
	if err != nil {
		log.Fatalf("evaluation failed: %v", err)
	}
	fmt.Printf("%s (%s): %s\n", res.Flag, res.Status, res.Message)

	if *template != "" {
		if err := writeMemo(*template, *outPath, in, res); err != nil {
			log.Fatalf("writing memo: %v", err)
		}
		return
	}

	path := *outPath
	if path == "" {
		path = "evaluation." + *format
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()

	switch *format {
	case "txt":
		err = report.WriteText(f, in.Meta, res)
	case "csv":
		err = report.WriteCSV(f, res)
	case "json":
		err = report.WriteJSON(f, in.Meta, res)
	case "pdf":
		err = report.WritePDF(f, in.Meta, res)
	default:
		log.Fatalf("unknown format %q", *format)
	}
	if err != nil {
		log.Fatalf("writing report: %v", err)
	}
	fmt.Println("wrote", path)
}

func writeMemo(templatePath, outPath string, in inputFile, res governance.Result) error {
	tmpl, err := os.ReadFile(templatePath)
	if err != nil {
		return err
	}

	values := make(map[string]string)
	for k, v := range res.Flat() {
		if v == nil {
			continue
		}
		values[k] = fmt.Sprintf("%v", v)
	}
	for k, v := range in.MemoValues {
		values[k] = v
	}

	if outPath == "" {
		outPath = "memorandum.txt"
	}
	if err := os.WriteFile(outPath, []byte(memo.Fill(string(tmpl), values)), 0o644); err != nil {
		return err
	}
	fmt.Println("wrote", outPath)
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-readability/readability"
)

var (
	outputFormat string
	outputFile   string
	timeout      time.Duration
	concurrency  int
	strict       bool
	timing       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "readability",
		Short: "readability - heuristic web-article content extraction",
		Long:  "readability extracts a page's main article content, stripping navigation, ad, and comment chrome.",
	}

	extractCmd := &cobra.Command{
		Use:   "extract [url...]",
		Short: "Extract article content from one or more URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runExtract,
	}
	extractCmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json|html|markdown|text)")
	extractCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	extractCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout per URL")
	extractCmd.Flags().IntVar(&concurrency, "concurrency", 10, "Maximum concurrent requests")
	extractCmd.Flags().BoolVar(&strict, "strict", false, "Fail on HTML parser diagnostics instead of tolerating them")
	extractCmd.Flags().BoolVar(&timing, "timing", false, "Print timing information to stderr")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("readability v0.1.0")
		},
	}

	rootCmd.AddCommand(extractCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type extractResult struct {
	URL       string
	Result    *readability.Result
	ParseTime time.Duration
	Error     error
}

func runExtract(cmd *cobra.Command, args []string) error {
	client := readability.New(
		readability.WithTimeout(timeout),
		readability.WithStrict(strict),
	)

	results := batchExtract(client, args)

	var ok []extractResult
	for _, r := range results {
		if r.Error != nil {
			if timing {
				fmt.Fprintf(os.Stderr, "error extracting %s after %v: %v\n", r.URL, r.ParseTime, r.Error)
			}
			continue
		}
		ok = append(ok, r)
		if timing {
			fmt.Fprintf(os.Stderr, "extracted %s in %v\n", r.URL, r.ParseTime)
		}
	}

	if len(ok) == 0 {
		return fmt.Errorf("no URLs were successfully extracted")
	}

	return writeOutput(ok, len(args) == 1)
}

func batchExtract(client *readability.Client, urls []string) []extractResult {
	results := make([]extractResult, len(urls))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, u := range urls {
		wg.Add(1)
		sem <- struct{}{}
		go func(index int, target string) {
			defer wg.Done()
			defer func() { <-sem }()

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			start := time.Now()
			result, err := client.Parse(ctx, target)
			results[index] = extractResult{
				URL:       target,
				Result:    result,
				ParseTime: time.Since(start),
				Error:     err,
			}
		}(i, u)
	}

	wg.Wait()
	return results
}

func formatResult(r *readability.Result) (string, error) {
	switch outputFormat {
	case "json":
		b, err := json.MarshalIndent(r, "", "  ")
		return string(b), err
	case "html":
		return r.Content, nil
	case "markdown":
		return r.FormatMarkdown(), nil
	case "text":
		return r.Text, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", outputFormat)
	}
}

func writeOutput(results []extractResult, singleURL bool) error {
	var output string

	if singleURL {
		formatted, err := formatResult(results[0].Result)
		if err != nil {
			return err
		}
		output = formatted
	} else {
		var all []map[string]any
		for _, r := range results {
			formatted, err := formatResult(r.Result)
			if err != nil {
				return err
			}
			all = append(all, map[string]any{
				"url":       r.URL,
				"parseTime": r.ParseTime.String(),
				"result":    formatted,
			})
		}
		b, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return err
		}
		output = string(b)
	}

	if outputFile != "" {
		return os.WriteFile(outputFile, []byte(output), 0o644)
	}
	fmt.Println(output)
	return nil
}

// Command loganalyzer prints statistics about a log file: lines per level,
// HTTP status codes, the busiest client IPs, and the latest errors and
// warnings.
//
// Usage:
//
//	loganalyzer [flags] <log_file>
//	loganalyzer [flags] -            # read standard input
//	loganalyzer [flags] -exec "journalctl -u nginx --no-pager"
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/opslog/loganalyzer"
)

const usage = `Usage: loganalyzer [flags] <log_file>

Example: loganalyzer /var/log/nginx/access.log

Flags:
`

// glogFlags are the flags glog registers on the default flag set.
var glogFlags = []string{
	"v",
	"vmodule",
	"logtostderr",
	"alsologtostderr",
	"stderrthreshold",
	"log_dir",
	"log_backtrace_at",
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("loganalyzer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	format := fs.String("format", "text", "output format: text or json")
	query := fs.String("jq", "", "jq query to run against the JSON report (implies -format json)")
	execCmd := fs.String("exec", "", "analyze the output of this command instead of a file")
	topIPs := fs.Int("top", loganalyzer.DefaultTopIPs, "number of IP addresses to list (at least 1)")
	recent := fs.Int("recent", loganalyzer.DefaultRecent, "number of recent errors and warnings to list (at least 1)")
	for _, name := range glogFlags {
		if f := flag.Lookup(name); f != nil {
			fs.Var(f.Value, f.Name, f.Usage)
		}
	}
	fs.Set("logtostderr", "true")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	// glog prefixes every line with a warning until the default set is parsed.
	if !flag.Parsed() {
		flag.CommandLine.Parse(nil)
	}
	defer glog.Flush()

	if *topIPs < 1 || *recent < 1 {
		fmt.Fprintln(stderr, "loganalyzer: -top and -recent must be at least 1")
		fs.Usage()
		return 1
	}

	if *query != "" {
		*format = "json"
	}
	if *format != "text" && *format != "json" {
		fmt.Fprintf(stderr, "loganalyzer: unknown format %q\n", *format)
		fs.Usage()
		return 1
	}

	var src *loganalyzer.Source
	switch {
	case *execCmd != "":
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "loganalyzer: -exec and a log file cannot be used together")
			fs.Usage()
			return 1
		}
		src = loganalyzer.Exec(*execCmd)
	case fs.NArg() < 1:
		fs.Usage()
		return 1
	case fs.Arg(0) == "-":
		src = loganalyzer.Stdin()
	default:
		src = loganalyzer.File(fs.Arg(0))
	}

	glog.V(1).Infof("analyzing %s", src.Name())
	start := time.Now()
	stats, err := src.Analyze()
	if err != nil {
		fmt.Fprintf(stderr, "loganalyzer: %v\n", err)
		return 1
	}
	glog.V(1).Infof("analyzed %d lines from %s in %v", stats.TotalLines, src.Name(), time.Since(start))

	sum := stats.Summarize(loganalyzer.Options{
		Source: src.Name(),
		TopIPs: *topIPs,
		Recent: *recent,
	})
	if *format == "json" {
		err = sum.WriteJSON(stdout, *query)
	} else {
		err = sum.WriteText(stdout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "loganalyzer: %v\n", err)
		return 1
	}
	return 0
}

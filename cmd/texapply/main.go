// Command texapply dry-runs texture application from the command line: it
// scans a root directory for JSON material descriptors and texture files,
// matches the given material names, and prints what would be wired where.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/yuandere/texapply"
)

func main() {
	root := flag.String("root", "", "root directory to scan for descriptors and textures")
	config := flag.String("config", "", "optional YAML slot configuration file")
	strategy := flag.String("strategy", "", `texture lookup strategy: "index" or "dir" (default from config, else "index")`)
	strip := flag.String("strip", "", "comma-separated prefixes stripped from texture names (e.g. T_)")
	verbose := flag.Bool("v", false, "print every issue, not just the summary")
	flag.Usage = usage
	flag.Parse()

	materials := flag.Args()
	if len(materials) == 0 {
		usage()
		os.Exit(2)
	}

	opt, scanRoot, err := buildOptions(*config, *strategy, *strip)
	if err != nil {
		fmt.Fprintf(os.Stderr, "texapply: %v\n", err)
		os.Exit(1)
	}
	if *root != "" {
		scanRoot = *root
	}
	if scanRoot == "" {
		fmt.Fprintln(os.Stderr, "texapply: no root directory (use -root or the config file)")
		os.Exit(2)
	}

	graph := texapply.NewMemoryGraph()
	rep, err := texapply.Apply(scanRoot, materials, graph, opt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "texapply: %v\n", err)
		os.Exit(1)
	}

	for _, l := range graph.Links() {
		extra := ""
		if l.Link.NormalMap {
			extra = " (via normal map)"
		}
		if l.Link.AlphaInput != "" {
			extra = fmt.Sprintf(" (+alpha -> %s)", l.Link.AlphaInput)
		}
		fmt.Printf("%s: %s -> %s [%s]%s\n", l.Material, l.Link.Path, l.Link.Input, l.Link.ColorSpace, extra)
	}

	if *verbose {
		for _, issue := range rep.Issues {
			fmt.Fprintf(os.Stderr, "%s: %s (%s)\n", issue.Level, issue.Message, issue.Path)
		}
	}

	fmt.Println(rep.Summary())
	if rep.Outcome() == texapply.OutcomeNoMatches {
		os.Exit(1)
	}
}

// buildOptions assembles apply options from the config file and flag overrides.
func buildOptions(config, strategy, strip string) (*texapply.ApplyOptions, string, error) {
	opt := &texapply.ApplyOptions{}
	scanRoot := ""

	if config != "" {
		cfg, err := texapply.LoadConfig(config)
		if err != nil {
			return nil, "", err
		}
		opt, err = cfg.Options()
		if err != nil {
			return nil, "", err
		}
		scanRoot = cfg.Root
	}

	switch strategy {
	case "":
	case "index":
		opt.Lookup = texapply.IndexLookup{}
	case "dir":
		opt.Lookup = texapply.DirProbe{}
	default:
		return nil, "", fmt.Errorf("unknown lookup strategy %q", strategy)
	}

	if strip != "" {
		for _, p := range strings.Split(strip, ",") {
			if p = strings.TrimSpace(p); p != "" {
				opt.StripPrefixes = append(opt.StripPrefixes, p)
			}
		}
	}

	return opt, scanRoot, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: texapply [flags] MATERIAL [MATERIAL...]

Matches material names against JSON descriptor files under the root
directory, resolves their texture references, and prints the resulting
wiring without touching any host application.

flags:
`)
	flag.PrintDefaults()
}

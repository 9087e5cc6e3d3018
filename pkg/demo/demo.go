// Package demo implements the demonstration subprogram of consdemo, which
// prints a labeled trace of list operations.
package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/elves/cons/pkg/errutil"
	"github.com/elves/cons/pkg/logutil"
	"github.com/elves/cons/pkg/prog"
	"github.com/elves/cons/pkg/sys"
)

var logger = logutil.GetLogger("[demo] ")

// Program is the demonstration subprogram.
type Program struct {
	sections string
	color    string
	config   string
	json     *bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.StringVar(&p.sections, "sections", "",
		"comma-separated labels of the sections to show; all by default")
	fs.StringVar(&p.color, "color", "",
		"when to use bold section headers: auto, always or never")
	fs.StringVar(&p.config, "config", "",
		"a YAML file to load default settings from")
	p.json = fs.JSON()
}

type record struct {
	Section string   `json:"section"`
	Lines   []string `json:"lines"`
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not allowed")
	}

	cfg := &Config{}
	if p.config != "" {
		var err error
		cfg, err = LoadConfig(p.config)
		if err != nil {
			return err
		}
		logger.Printf("loaded config from %s: %+v", p.config, *cfg)
	}

	selected, err := selectSections(p.sections, cfg.Sections)
	if err != nil {
		return err
	}
	color, err := useColor(p.color, cfg.Color, fds[1])
	if err != nil {
		return err
	}
	asJSON := *p.json || cfg.JSON

	var errs []error
	for _, s := range selected {
		t := &trace{lines: []string{}}
		s.run(t)
		logger.Printf("section %q: %d lines, %d errors", s.label, len(t.lines), len(t.errs))
		for _, err := range t.errs {
			errs = append(errs, fmt.Errorf("%s: %w", s.label, err))
		}
		var err error
		if asJSON {
			err = writeJSON(fds[1], record{s.label, t.lines})
		} else {
			err = writeText(fds[1], s.label, t.lines, color)
		}
		if err != nil {
			// Stop at the first failed write.
			errs = append(errs, fmt.Errorf("write output: %w", err))
			break
		}
	}
	return errutil.Multi(errs...)
}

func selectSections(flag string, fromConfig []string) ([]section, error) {
	var labels []string
	if flag != "" {
		for _, label := range strings.Split(flag, ",") {
			if label = strings.TrimSpace(label); label != "" {
				labels = append(labels, label)
			}
		}
	} else {
		labels = fromConfig
	}
	if len(labels) == 0 {
		return sections, nil
	}
	selected := make([]section, len(labels))
	for i, label := range labels {
		s, ok := findSection(label)
		if !ok {
			return nil, prog.BadUsage(fmt.Sprintf("unknown section: %q", label))
		}
		selected[i] = s
	}
	return selected, nil
}

func useColor(flag, fromConfig string, out *os.File) (bool, error) {
	mode := flag
	if mode == "" {
		mode = fromConfig
	}
	switch mode {
	case "", "auto":
		return sys.IsATTY(out) && os.Getenv("NO_COLOR") == "", nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, prog.BadUsage(fmt.Sprintf("invalid color mode: %q", mode))
	}
}

func writeText(w io.Writer, label string, lines []string, color bool) error {
	var sb strings.Builder
	if color {
		fmt.Fprintf(&sb, "\n\033[1m>%s\033[m\n", label)
	} else {
		fmt.Fprintf(&sb, "\n>%s\n", label)
	}
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeJSON(w io.Writer, r record) error {
	b, err := json.Marshal(r)
	if err != nil {
		// Marshaling a struct of strings cannot fail.
		panic(err)
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

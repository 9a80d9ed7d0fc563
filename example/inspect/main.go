package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"bytestring"
)

// init routes logrus output to stdout for easier log capture.
func init() {
	logrus.SetOutput(os.Stdout)
}

func main() {
	// Render a file or the argument list for Debug and Display inspection.
	file := flag.String("file", "", "file to render; arguments are rendered when empty")
	quote := flag.Bool("quote", false, "render the quoted Debug form instead of Display")
	width := flag.Int("width", 0, "minimum Display width in visible characters")
	align := flag.String("align", "none", "alignment: none|left|right|center")
	fill := flag.String("fill", " ", "fill character for padding")
	flag.Parse()

	data, err := loadInput(*file, flag.Args())
	if err != nil {
		fmt.Printf("input error: %v\n", err)
		os.Exit(1)
	}

	v := bytestring.New(data)
	logrus.WithFields(logrus.Fields{
		"bytes": v.Len(),
		"utf8":  v.IsUTF8(),
		"hash":  fmt.Sprintf("%016x", v.Hash()),
	}).Info("rendering input")

	if *quote {
		if err := v.WriteDebug(os.Stdout); err != nil {
			logrus.Errorf("debug render failed: %v", err)
			os.Exit(1)
		}
		fmt.Println()
		return
	}

	opts, err := parseOptions(*align, *width, *fill)
	if err != nil {
		fmt.Printf("option error: %v\n", err)
		os.Exit(1)
	}
	if err := v.WriteDisplay(os.Stdout, opts); err != nil {
		logrus.Errorf("display render failed: %v", err)
		os.Exit(1)
	}
	fmt.Println()
}

func loadInput(file string, args []string) ([]byte, error) {
	if file != "" {
		return os.ReadFile(file)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no file and no arguments given")
	}
	return []byte(strings.Join(args, " ")), nil
}

func parseOptions(align string, width int, fill string) (bytestring.Options, error) {
	opts := bytestring.DefaultOptions
	opts.Width = width

	switch align {
	case "none", "":
		opts.Align = bytestring.AlignNone
	case "left":
		opts.Align = bytestring.AlignLeft
	case "right":
		opts.Align = bytestring.AlignRight
	case "center":
		opts.Align = bytestring.AlignCenter
	default:
		return opts, fmt.Errorf("invalid alignment %q", align)
	}

	runes := []rune(fill)
	if len(runes) != 1 {
		return opts, fmt.Errorf("fill must be a single character, got %q", fill)
	}
	opts.Fill = runes[0]
	return opts, nil
}

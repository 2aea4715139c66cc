// Command sais builds, checks, stores and searches suffix arrays.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/viniciusth/sais"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log with the development logger",
		EnvVars: []string{"SAIS_VERBOSE"},
	}
	maxInputFlag = &cli.StringFlag{
		Name:    "max-input",
		Usage:   "refuse inputs larger than this size",
		Value:   "1GB",
		EnvVars: []string{"SAIS_MAX_INPUT"},
	}
	codecFlag = &cli.StringFlag{
		Name:    "codec",
		Usage:   "array file compression: none, zstd or xz",
		Value:   sais.CodecZstd.String(),
		EnvVars: []string{"SAIS_CODEC"},
	}
)

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "sais",
		Usage:     "linear time suffix arrays",
		Writer:    out,
		Flags:     []cli.Flag{verboseFlag, maxInputFlag},
		ErrWriter: os.Stderr,
		Commands: []*cli.Command{
			{
				Name:      "build",
				Usage:     "build the suffix array of a file",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "check", Aliases: []string{"c"}, Usage: "verify the array against a naive comparison"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write the array to this file"},
					codecFlag,
				},
				Action: buildAction,
			},
			{
				Name:      "search",
				Usage:     "index the lines of a file and search for patterns",
				ArgsUsage: "FILE PATTERN...",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "case-sensitive", Usage: "do not fold case"},
					&cli.IntFlag{Name: "k", Value: 0, Usage: "only list up to k matching lines per pattern"},
				},
				Action: searchAction,
			},
			{
				Name:      "dump",
				Usage:     "print a stored array",
				ArgsUsage: "ARRAYFILE",
				Action:    dumpAction,
			},
		},
	}
}

func newLogger(c *cli.Context) (*zap.Logger, error) {
	if c.Bool(verboseFlag.Name) {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// readInput reads the file named by the first argument, refusing files
// above --max-input.
func readInput(c *cli.Context) ([]byte, error) {
	name := c.Args().First()
	if name == "" {
		return nil, cli.Exit("missing FILE argument", 2)
	}
	limit, err := datasize.ParseString(c.String(maxInputFlag.Name))
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", maxInputFlag.Name, err)
	}
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if uint64(fi.Size()) > limit.Bytes() {
		return nil, fmt.Errorf("%s is %s, above the %s limit", name, datasize.ByteSize(fi.Size()).HR(), limit.HR())
	}
	return os.ReadFile(name)
}

func buildAction(c *cli.Context) error {
	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	defer logger.Sync()

	codec, err := sais.ParseCodec(c.String(codecFlag.Name))
	if err != nil {
		return err
	}
	text, err := readInput(c)
	if err != nil {
		return err
	}

	start := time.Now()
	sa, err := sais.BuildSuffixArray(text)
	if err != nil {
		return err
	}
	logger.Info("built suffix array",
		zap.String("file", c.Args().First()),
		zap.Int("length", len(sa)),
		zap.Duration("elapsed", time.Since(start)))

	if c.Bool("check") {
		start = time.Now()
		seq, _ := sais.EncodeBytes(text)
		if err := sais.Verify(seq, sa); err != nil {
			logger.Error("check failed", zap.Error(err))
			return err
		}
		logger.Info("check passed", zap.Duration("elapsed", time.Since(start)))
	}

	output := c.String("output")
	if output == "" {
		return nil
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := sais.WriteArray(f, sa, codec); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("wrote array", zap.String("output", output), zap.Stringer("codec", codec))
	return nil
}

func searchAction(c *cli.Context) error {
	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if c.NArg() < 2 {
		return cli.Exit("usage: sais search FILE PATTERN...", 2)
	}
	text, err := readInput(c)
	if err != nil {
		return err
	}
	var lines []string
	for _, line := range strings.Split(string(text), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	b := sais.NewIndexBuilder(lines)
	if c.Bool("case-sensitive") {
		b = b.CaseSensitive()
	}
	start := time.Now()
	x, err := b.Build()
	if err != nil {
		return err
	}
	logger.Info("built index",
		zap.Int("lines", x.Documents()),
		zap.Duration("elapsed", time.Since(start)))

	w := bufio.NewWriter(c.App.Writer)
	defer w.Flush()
	for _, pattern := range c.Args().Slice()[1:] {
		if k := c.Int("k"); k > 0 {
			fmt.Fprintf(w, "%q lines: %v\n", pattern, x.FindKMatches(pattern, k))
			continue
		}
		matches := x.Locate(pattern)
		if len(matches) == 0 {
			fmt.Fprintf(w, "%q not found\n", pattern)
			continue
		}
		fmt.Fprintf(w, "%q found at (line, offset):", pattern)
		for _, m := range matches {
			fmt.Fprintf(w, " (%d, %d)", m.Document, m.Offset)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func dumpAction(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return cli.Exit("missing ARRAYFILE argument", 2)
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	sa, err := sais.ReadArray(bufio.NewReader(f))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(c.App.Writer)
	defer w.Flush()
	for _, p := range sa {
		fmt.Fprintln(w, p)
	}
	return nil
}

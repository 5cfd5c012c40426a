package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffman-text"
	"github.com/chronos-tachyon/huffman-text/internal/codebook"
)

var log = logging.MustGetLogger("huffman-text")

const progName = "huffman-text"
const codesEnvVar = "HUFFMAN_TEXT_CODES"
const demoMessage = "Explore the universe!"

const usageMessage = `Usage: huffman-text [OPTIONS] INPUT OUTPUT
       huffman-text --decompress [OPTIONS] INPUT OUTPUT
       huffman-text --demo [MESSAGE]

Compresses the UTF-8 text in INPUT into a string of '0' and '1' digits in
OUTPUT, and saves the code table needed to reverse it.  With --decompress,
reads the digits in INPUT and writes the original text to OUTPUT.  Options
may appear before or after INPUT and OUTPUT.

Options:
  --decompress, -x
	Decompress INPUT into OUTPUT using the saved code table.
  --codes PATH, -c PATH
	Read or write the code table at PATH.  Defaults to $HUFFMAN_TEXT_CODES,
	or to "huffman_codes.json" if that is not set.
  --demo
	Compress and decompress MESSAGE (default "Explore the universe!") and
	print every step.
  --debug, -v
	Log everything.
  --log-level LEVEL
	Log at LEVEL: CRITICAL, ERROR, WARNING, NOTICE, INFO, or DEBUG.
  --help, -h
	Print this message.
`

type usageError struct {
	detail string
}

func (err *usageError) Error() string {
	return err.detail
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) error {
	return &usageError{fmt.Sprintf(detailFmt, detailArgs...)}
}

type options struct {
	decompress bool
	demo       bool
	codesPath  string
	logLevel   logging.Level
	args       []string
}

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func parseArgs(args []string, getenv func(string) string) (*options, error) {
	ourFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	var opts options
	var debugLogging bool
	var levelName string
	ourFlags.BoolVar(&opts.decompress, "decompress", false, "")
	ourFlags.BoolVar(&opts.decompress, "x", false, "")
	ourFlags.StringVar(&opts.codesPath, "codes", "", "")
	ourFlags.StringVar(&opts.codesPath, "c", "", "")
	ourFlags.BoolVar(&opts.demo, "demo", false, "")
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "v", false, "")
	ourFlags.StringVar(&levelName, "log-level", "", "")

	// Options may follow the positional arguments, as in "IN OUT -x".
	var positional []string
	for {
		if err := ourFlags.Parse(args); err == flag.ErrHelp {
			return nil, err
		} else if err != nil {
			return nil, usageErrorf("%s", err.Error())
		}
		rest := ourFlags.Args()
		consumed := args[:len(args)-len(rest)]
		if len(consumed) != 0 && consumed[len(consumed)-1] == "--" {
			positional = append(positional, rest...)
			break
		}
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}

	opts.logLevel = logging.INFO
	if debugLogging {
		opts.logLevel = logging.DEBUG
	}
	if levelName != "" {
		level, err := logging.LogLevel(levelName)
		if err != nil {
			return nil, usageErrorf("bad log level \"%s\"", levelName)
		}
		opts.logLevel = level
	}

	if opts.codesPath == "" {
		opts.codesPath = getenv(codesEnvVar)
	}
	if opts.codesPath == "" {
		opts.codesPath = codebook.DefaultFileName
	}

	opts.args = positional
	switch {
	case opts.demo && opts.decompress:
		return nil, usageErrorf("--demo and --decompress are mutually exclusive")
	case opts.demo && len(opts.args) > 1:
		return nil, usageErrorf("too many arguments for --demo; expected at most one MESSAGE")
	case !opts.demo && len(opts.args) < 2:
		return nil, usageErrorf("not enough arguments; expected INPUT OUTPUT")
	case !opts.demo && len(opts.args) > 2:
		return nil, usageErrorf("too many arguments at %d (\"%s\")", 2, opts.args[2])
	}
	return &opts, nil
}

func run(opts *options, stdout io.Writer) error {
	switch {
	case opts.demo:
		message := demoMessage
		if len(opts.args) == 1 {
			message = opts.args[0]
		}
		return runDemo(stdout, message)
	case opts.decompress:
		return decompressFile(opts.args[0], opts.args[1], opts.codesPath)
	default:
		return compressFile(opts.args[0], opts.args[1], opts.codesPath)
	}
}

func compressFile(inputPath, outputPath, codesPath string) error {
	raw, err := ioutil.ReadFile(inputPath)
	if err != nil {
		return err
	}
	if !utf8.Valid(raw) {
		return fmt.Errorf("%s: input is not valid UTF-8", inputPath)
	}
	message := string(raw)

	e, table := huffman.NewEncoder(message)
	if len(table) == 0 {
		log.Noticef("%s is empty; nothing to compress", inputPath)
	}
	log.Debugf("%v", e)

	compressed, err := e.EncodeString(message)
	if err != nil {
		return err
	}

	if err := ioutil.WriteFile(outputPath, []byte(compressed), 0666); err != nil {
		return err
	}
	if err := codebook.Save(codesPath, e.Codes().Invert()); err != nil {
		return err
	}

	if total := table.Total(); total != 0 {
		log.Infof("compressed %d symbols (%d distinct) into %d digits, %.3f digits per symbol",
			total, len(table), len(compressed), float64(len(compressed))/float64(total))
	}
	log.Infof("wrote %s; code table in %s", outputPath, codesPath)
	return nil
}

func decompressFile(inputPath, outputPath, codesPath string) error {
	d, err := codebook.Load(codesPath)
	if err != nil {
		return err
	}

	raw, err := ioutil.ReadFile(inputPath)
	if err != nil {
		return err
	}
	compressed := strings.TrimSuffix(string(raw), "\n")

	message, err := d.DecodeString(compressed)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	if err := ioutil.WriteFile(outputPath, []byte(message), 0666); err != nil {
		return err
	}
	log.Infof("decompressed %d digits into %d symbols in %s", len(compressed), utf8.RuneCountInString(message), outputPath)
	return nil
}

func runDemo(w io.Writer, message string) error {
	fmt.Fprintf(w, "Message: %s\n", message)

	maps := huffman.CodesFor(message)
	compressed, err := huffman.Compress(message, maps.SymbolToCode)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Compression: %s\n", compressed)

	decompressed, err := huffman.Decompress(compressed, maps.CodeToSymbol)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Decompression: %s\n", decompressed)
	return err
}

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-24s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

func main() {
	startLogging()

	opts, err := parseArgs(os.Args[1:], os.Getenv)
	var usageErr *usageError
	switch {
	case err == flag.ErrHelp:
		io.WriteString(os.Stdout, usageMessage)
		os.Exit(0)
	case errors.As(err, &usageErr):
		fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, usageErr.detail, usageMessage)
		os.Exit(64)
	case err != nil:
		exitError(err)
	}

	leveledLogBackend.SetLevel(opts.logLevel, "")

	if err := run(opts, os.Stdout); err != nil {
		exitError(err)
	}
}

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/esimov/needlework"
	"github.com/esimov/needlework/formats"
	"github.com/esimov/needlework/internal/config"
	"github.com/esimov/needlework/internal/logging"
	"github.com/esimov/needlework/utils"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const HelpBanner = `
┌┐┌┌─┐┌─┐┌┬┐┬  ┌─┐┬ ┬┌─┐┬─┐┬┌─
│││├┤ ├┤  │││  ├┤ ││││ │├┬┘├┴┐
┘└┘└─┘└─┘─┴┘┴─┘└─┘└┴┘└─┘┴└─┴ ┴

Embroidery pattern converter.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source       = flag.String("in", pipeName, "Source file, URL or - for stdin")
	destination  = flag.String("out", pipeName, "Destination file or - for stdout")
	fromFormat   = flag.String("from", "", "Source format (pec, jef, u01), detected when empty")
	toFormat     = flag.String("to", "", "Destination format (pec, jef, u01), taken from -out when empty")
	scale        = flag.Float64("scale", 1, "Scale factor")
	rotate       = flag.Float64("rotate", 0, "Rotation in degrees")
	center       = flag.Bool("center", false, "Move the design center to the origin")
	maxStitch    = flag.Float64("max-stitch", 0, "Maximum stitch length in tenths of a millimeter")
	maxJump      = flag.Float64("max-jump", 0, "Maximum jump length in tenths of a millimeter")
	round        = flag.Bool("round", false, "Round coordinates to integers")
	explicitTrim = flag.Bool("trim", false, "Trim before every color change")
	longStitch   = flag.String("long-stitch", "", "Long stitch policy (none, jump_needle, sew_to)")
	sequin       = flag.String("sequin", "", "Sequin policy (utilize, jump, stitch, remove)")
	configPath   = flag.String("config", config.DefaultPath, "Configuration file")
	logLevel     = flag.String("log", "", "Log level (debug, info, warn, error)")
	stats        = flag.Bool("stats", false, "Print the statistics of the converted design")
)

// spinner used to instantiate and call the progress indicator.
var spinner *utils.Spinner

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
	overrideConfig(cfg)
	if cfg.LogLevel != "" {
		if !logging.ValidLevel(cfg.LogLevel) {
			log.Fatal(utils.DecorateText(fmt.Sprintf("unknown log level %q", cfg.LogLevel), utils.ErrorMessage))
		}
		logging.SetLevel(cfg.LogLevel)
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ NEEDLEWORK", utils.StatusMessage),
		utils.DecorateText("is converting the pattern...", utils.DefaultMessage))
	spinner = utils.NewSpinner(os.Stderr, spinnerText, time.Millisecond*200, true)

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	now := time.Now()
	res, err := run(cfg)
	printStatus(*destination, err)
	if *stats {
		printStats(res)
	}
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// overrideConfig lets the explicitly set flags take precedence over the configuration file.
func overrideConfig(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max-stitch":
			cfg.MaxStitch = maxStitch
		case "max-jump":
			cfg.MaxJump = maxJump
		case "round":
			cfg.Round = round
		case "trim":
			cfg.ExplicitTrim = explicitTrim
		case "long-stitch":
			cfg.LongStitch = *longStitch
		case "sequin":
			cfg.Sequin = *sequin
		case "log":
			cfg.LogLevel = *logLevel
		}
	})
}

// run reads the source pattern, converts it and writes it to the destination.
func run(cfg *config.Config) (*needlework.Pattern, error) {
	from, to, err := resolveFormats(*fromFormat, *toFormat, *destination)
	if err != nil {
		return nil, err
	}

	src, name, cleanup, err := openSource(*source)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	spinner.Start()
	defer func() {
		spinner.StopMsg = fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ NEEDLEWORK", utils.StatusMessage),
			utils.DecorateText("is converting the pattern... ✔", utils.DefaultMessage))
		spinner.Stop()
	}()

	p, from, err := formats.ReadFrom(src, name, from)
	if err != nil {
		return nil, err
	}
	logging.Debug("converting %v to %v", from, to)

	t, err := buildTranscoder(cfg, to, p)
	if err != nil {
		return nil, err
	}
	out := t.Transcode(p)

	dst, err := openDestination(*destination)
	if err != nil {
		return nil, err
	}
	// the geometry is already applied, only the format limits are enforced again
	if err := formats.WriteTo(dst, *destination, out, to, needlework.NewTranscoder(t.Settings)); err != nil {
		dst.Close()
		return nil, err
	}
	return out, dst.Close()
}

// resolveFormats parses the format flags. The destination format falls back to the output extension.
func resolveFormats(from, to, out string) (formats.Format, formats.Format, error) {
	src, dst := formats.Unknown, formats.Unknown
	var err error
	if from != "" {
		if src, err = formats.Parse(from); err != nil {
			return src, dst, err
		}
	}
	if to != "" {
		dst, err = formats.Parse(to)
		return src, dst, err
	}
	if dst = formats.FromExtension(out); dst == formats.Unknown {
		return src, dst, errors.New("the destination format must be given with -to")
	}
	return src, dst, nil
}

// buildTranscoder combines the destination defaults, the configuration and the geometry flags.
func buildTranscoder(cfg *config.Config, f formats.Format, p *needlework.Pattern) (*needlework.Transcoder, error) {
	s, err := formats.DefaultSettings(f)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(&s); err != nil {
		return nil, err
	}
	t := needlework.NewTranscoder(s)

	if *center {
		b := p.Bounds()
		t.Matrix.PostTranslate(-(b.MinX+b.MaxX)/2, -(b.MinY+b.MaxY)/2)
	}
	if *scale != 1 {
		if *scale <= 0 {
			return nil, errors.Errorf("invalid scale factor %v", *scale)
		}
		t.Matrix.PostScale(*scale, *scale, 0, 0)
	}
	if *rotate != 0 {
		t.Matrix.PostRotate(*rotate, 0, 0)
	}
	return t, nil
}

// openSource resolves the source to a reader and the name used for format detection.
func openSource(in string) (io.Reader, string, func(), error) {
	// Check if the source path is a local file or URL.
	if utils.IsValidUrl(in) {
		f, err := utils.DownloadFile(in)
		if err != nil {
			return nil, "", nil, err
		}
		return f, f.Name(), func() {
			f.Close()
			os.Remove(f.Name())
		}, nil
	}
	if in == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, "", nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return os.Stdin, in, func() {}, nil
	}
	f, err := os.Open(in)
	if err != nil {
		return nil, "", nil, errors.Wrap(err, "unable to open the source file")
	}
	return f, in, func() { f.Close() }, nil
}

func openDestination(out string) (io.WriteCloser, error) {
	if out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdout")
		}
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create the destination file")
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// printStatus displays the relevant information about the conversion.
func printStatus(fname string, err error) {
	if err != nil {
		fmt.Fprint(os.Stderr,
			utils.DecorateText("\nError converting the pattern:", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err), utils.DefaultMessage),
		)
		os.Exit(1)
	}
	if fname != pipeName {
		fmt.Fprintf(os.Stderr, "\nThe converted pattern has been saved as: %s %s\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
}

func printStats(p *needlework.Pattern) {
	if p == nil {
		return
	}
	s := p.Statistics()
	fmt.Fprintf(os.Stderr, "\nSize: %s x %s\n", utils.FormatLength(s.Bounds.Width()), utils.FormatLength(s.Bounds.Height()))
	fmt.Fprintf(os.Stderr, "Stitches: %d, jumps: %d, trims: %d, color changes: %d, threads: %d\n",
		s.Stitches, s.Jumps, s.Trims, s.ColorChanges, s.Threads)
	fmt.Fprintf(os.Stderr, "Stitch length: total %s, max %s, average %s\n",
		utils.FormatLength(s.TotalLength), utils.FormatLength(s.MaxLength), utils.FormatLength(s.AvgLength))
}

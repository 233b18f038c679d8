package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/unknown321/gbasave/report"
	"github.com/unknown321/gbasave/save"
	"github.com/unknown321/gbasave/saveloader"
	"github.com/unknown321/gbasave/saveslot"
)

type config struct {
	slot   string
	strict bool
	json   bool
	raw    bool
	out    string
}

// decode loads filename, prints a summary to w and optionally writes the
// decrypted unpacked buffer.
func decode(filename string, cfg config, w io.Writer) error {
	slot, err := saveslot.Parse(cfg.slot)
	if err != nil {
		return err
	}

	saveData, name, err := saveloader.Load(filename)
	if err != nil {
		return fmt.Errorf("open file %s: %w", filename, err)
	}

	s, err := save.LoadWithOptions(saveData, slot, save.Options{Strict: cfg.strict})
	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	slog.Info("decoded", "filename", name, "version", s.Version.String(), "slot", s.Slot.String())

	if cfg.json {
		out, err := report.JSON(name, s)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		if _, err = fmt.Fprintln(w, string(out)); err != nil {
			return err
		}
	} else {
		out, err := report.Text(name, s)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		if _, err = fmt.Fprint(w, out); err != nil {
			return err
		}
	}

	if !cfg.raw {
		return nil
	}

	out := cfg.out
	if out == "" {
		out = strings.TrimSuffix(filename, ".gz") + "_decoded"
	}

	if err = os.WriteFile(out, s.Data, 0644); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}

	slog.Info("saved", "output file", out)
	return nil
}

func main() {
	cfg := config{}
	var verbose bool
	flag.CommandLine.SetOutput(os.Stdout)
	flag.StringVar(&cfg.slot, "slot", "main", "save slot to decode: main or backup")
	flag.BoolVar(&cfg.strict, "strict", false, "reject saves with duplicate section ids")
	flag.BoolVar(&cfg.json, "json", false, "print report as json")
	flag.BoolVar(&cfg.raw, "raw", false, "write decrypted unpacked data")
	flag.StringVar(&cfg.out, "out", "", "output file for -raw, default FILE_decoded")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	if len(os.Args) < 2 {
		fmt.Println("gbasave: GBA Pokemon save decoder")
		fmt.Println()
		fmt.Printf("Usage of %s:\n", os.Args[0])
		fmt.Printf("\t%s [OPTION] FILE\n", os.Args[0])
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("FILE may be a raw .sav/.srm/.fla image or a zip, 7z, rar, gz or tar.gz archive.")
		os.Exit(1)
	}

	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if len(flag.Args()) < 1 {
		slog.Error("please provide filename")
		os.Exit(1)
	}

	filename := flag.Args()[0]
	if err := decode(filename, cfg, os.Stdout); err != nil {
		slog.Error("decode", "error", err.Error(), "filename", filename)
		os.Exit(1)
	}
}

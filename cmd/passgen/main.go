package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/screen"
)

// Flags holds the parsed CLI flags.
type Flags struct {
	Length      string
	Classes     model.CharacterClasses
	Count       int
	Source      string
	Interactive bool
}

// ParseFlags registers and parses command-line flags on fs so tests can call
// it without touching the global flag state.
func ParseFlags(fs *flag.FlagSet, args []string) (Flags, error) {
	f := Flags{Classes: model.DefaultClasses()}

	fs.StringVar(&f.Length, "length", "8", "Password length (4-16)")
	fs.StringVar(&f.Length, "l", "8", "Password length (shorthand)")

	fs.BoolVar(&f.Classes.Lowercase, "lower", true, "Include lowercase letters (a-z)")
	fs.BoolVar(&f.Classes.Uppercase, "upper", false, "Include uppercase letters (A-Z)")
	fs.BoolVar(&f.Classes.Uppercase, "u", false, "Include uppercase (shorthand)")
	fs.BoolVar(&f.Classes.Numbers, "numbers", false, "Include digits (0-9)")
	fs.BoolVar(&f.Classes.Numbers, "n", false, "Include digits (shorthand)")
	fs.BoolVar(&f.Classes.Symbols, "symbols", false, "Include symbols (!@#$%^&*()_+)")
	fs.BoolVar(&f.Classes.Symbols, "s", false, "Include symbols (shorthand)")

	fs.IntVar(&f.Count, "count", 1, "Number of passwords to generate")
	fs.IntVar(&f.Count, "c", 1, "Number of passwords (shorthand)")

	fs.StringVar(&f.Source, "source", envOr("RANDOM_SOURCE", "math"), "Random source: math or crypto")
	fs.BoolVar(&f.Interactive, "i", false, "Interactive screen")

	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}
	return f, nil
}

// Run generates Count passwords from the flag settings and writes one per line.
func Run(ctx context.Context, f Flags, gen *generator.Generator, w io.Writer) error {
	if f.Count < 1 {
		f.Count = 1
	}

	s := screen.New(gen)
	s.SetClasses(f.Classes)

	for i := 0; i < f.Count; i++ {
		password, err := s.Submit(ctx, f.Length)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, password)
	}
	return nil
}

// RunInteractive drives the generator screen over r and w until the user
// quits or input ends.
func RunInteractive(ctx context.Context, gen *generator.Generator, r io.Reader, w io.Writer) error {
	in := bufio.NewScanner(r)
	s := screen.New(gen)

	fmt.Fprintln(w, "=== Password Generator ===")

	for {
		length, ok := promptLength(in, w, s)
		if !ok {
			return nil
		}
		if !promptClasses(in, w, s) {
			return nil
		}

		for {
			if _, err := s.Submit(ctx, length); err != nil {
				var vErr *generator.ValidationError
				if !errors.As(err, &vErr) {
					return err
				}
				fmt.Fprintf(w, "  ! %s\n", vErr.Message)
				if !promptClasses(in, w, s) {
					return nil
				}
				continue
			}

			fmt.Fprintln(w)
			fmt.Fprintln(w, "Result:")
			fmt.Fprintln(w, "Select to copy")
			fmt.Fprintln(w, s.Password())
			fmt.Fprintln(w)

			fmt.Fprint(w, "[g]enerate again, [r]eset, [q]uit: ")
			if !in.Scan() {
				return nil
			}
			switch strings.ToLower(strings.TrimSpace(in.Text())) {
			case "g", "generate", "":
				continue
			case "r", "reset":
				if err := s.HandleReset(ctx); err != nil {
					return err
				}
			default:
				return nil
			}
			break
		}
	}
}

// promptLength asks until the length field validates. The inline error is
// shown after each rejected attempt.
func promptLength(in *bufio.Scanner, w io.Writer, s *screen.Screen) (string, bool) {
	form := s.Form()
	for {
		fmt.Fprint(w, "Password length (Ex. 8): ")
		if !in.Scan() {
			return "", false
		}
		form.SetValue(in.Text())
		form.Touch()
		if form.Valid() {
			return form.Value(), true
		}
		fmt.Fprintf(w, "  ! %s\n", form.Error())
	}
}

func promptClasses(in *bufio.Scanner, w io.Writer, s *screen.Screen) bool {
	c := s.Classes()
	for _, p := range []struct {
		label string
		value *bool
	}{
		{"Include Lowercase", &c.Lowercase},
		{"Include Uppercase", &c.Uppercase},
		{"Include Numbers", &c.Numbers},
		{"Include Symbols", &c.Symbols},
	} {
		hint := "[y/N]"
		if *p.value {
			hint = "[Y/n]"
		}
		fmt.Fprintf(w, "%s? %s: ", p.label, hint)
		if !in.Scan() {
			return false
		}
		*p.value = parseYesNo(in.Text(), *p.value)
	}
	s.SetClasses(c)
	return true
}

// parseYesNo returns true for "y"/"yes", false for "n"/"no" and fallback otherwise.
func parseYesNo(s string, fallback bool) bool {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return fallback
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	f, err := ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	source, err := generator.SourceByName(f.Source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	gen := generator.New(source)
	ctx := context.Background()

	// No arguments opens the interactive screen.
	if f.Interactive || len(os.Args) < 2 {
		err = RunInteractive(ctx, gen, os.Stdin, os.Stdout)
	} else {
		err = Run(ctx, f, gen, os.Stdout)
	}
	if err != nil {
		var vErr *generator.ValidationError
		if errors.As(err, &vErr) {
			fmt.Fprintf(os.Stderr, "error: %s\n", vErr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

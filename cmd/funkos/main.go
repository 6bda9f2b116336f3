package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/funvibe/funkos/internal/infer"
	"github.com/funvibe/funkos/internal/runtime"
	"github.com/funvibe/funkos/internal/space"
)

const usage = `funkos - parallel dispatch type inference toolkit

Usage:
  funkos config [path]         print the effective runtime configuration
  funkos sig <descriptor>...   compact type descriptors into a signature
  funkos norm <annotation>...  normalize user annotations to descriptors

A descriptor is one of: int, double, float, bool, TeamMember, Acc:double,
numpy:<kind>, View<rank>D:<dtype>. A view descriptor may carry a layout as
View2D:double/LayoutRight.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "config":
		err = runConfig(os.Args[2:])
	case "sig":
		err = runSig(os.Args[2:])
	case "norm":
		err = runNorm(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", colorize("error: "+err.Error(), "31"))
		os.Exit(1)
	}
}

func runConfig(args []string) error {
	if len(args) > 0 {
		cfg, err := runtime.LoadConfig(args[0])
		if err != nil {
			return err
		}
		if err := cfg.Apply(); err != nil {
			return err
		}
	}
	out, err := yaml.Marshal(runtime.Snapshot())
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

func runSig(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("sig: no descriptors given")
	}

	var typeMap infer.TypeMap
	var layoutMap infer.LayoutMap
	for i, arg := range args {
		name := fmt.Sprintf("p%d", i)
		descriptor := arg
		if slash := strings.Index(arg, "/"); slash >= 0 {
			descriptor = arg[:slash]
			layout, ok := space.ParseLayout(arg[slash+1:])
			if !ok {
				return fmt.Errorf("sig: unknown layout %q", arg[slash+1:])
			}
			layoutMap.Set(name, layout)
		}
		typeMap.Set(name, descriptor)
	}

	fmt.Println(colorize(infer.TypesSignature(&typeMap, &layoutMap), "32"))
	return nil
}

func runNorm(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("norm: no annotations given")
	}
	for _, annotation := range args {
		descriptor, err := infer.NormalizeAnnotation(annotation)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", annotation, colorize(descriptor, "32"))
	}
	return nil
}

// colorize wraps s in an ANSI color code when stdout is a terminal.
func colorize(s, code string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Command tcad inspects and exports sewing-pattern project files.
//
// Usage:
//
//	tcad [-config file] [-v] <command> [flags] [args]
//
// Commands:
//
//	formats                       list export formats
//	new -name N -o file           create a project with one empty piece
//	validate project              report pattern warnings per piece
//	bounds [-paper P] project     print the combined extent and PDF tiling
//	export [-format F] [-paper P] [-o file] project
//	mesh [-o file] project        write the preview mesh as JSON
//	hit -x X -y Y project         name the topmost piece containing a point
//	recover [-dir D] -o file      save the crash recovery data as a project
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/gg"

	"github.com/eggfriedrice24/tcad"
	"github.com/eggfriedrice24/tcad/export"
	"github.com/eggfriedrice24/tcad/geom"
	"github.com/eggfriedrice24/tcad/internal/config"
	"github.com/eggfriedrice24/tcad/layout"
	"github.com/eggfriedrice24/tcad/mesh"
	"github.com/eggfriedrice24/tcad/pattern"
	"github.com/eggfriedrice24/tcad/store"
)

var (
	errUsage    = errors.New("usage error")
	errWarnings = errors.New("pattern has warnings")
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "tcad:", err)
		}
		os.Exit(1)
	}
}

type styles struct {
	title lipgloss.Style
	dim   lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true),
		dim:   r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}),
		ok:    r.NewStyle().Foreground(lipgloss.Color("#22C55E")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
	}
}

type app struct {
	cfg    config.Config
	stdout io.Writer
	stderr io.Writer
	st     styles
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tcad", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", config.FileName, "config file")
	verbose := fs.Bool("v", false, "log debug output to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: tcad [-config file] [-v] <formats|new|validate|bounds|export|mesh|hit|recover> [flags] [args]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	level := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	tcad.SetLogger(logger)
	gg.SetLogger(logger)
	defer func() {
		tcad.SetLogger(nil)
		gg.SetLogger(nil)
	}()

	a := &app{cfg: cfg, stdout: stdout, stderr: stderr, st: newStyles(stdout)}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}
	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "formats":
		return a.formats()
	case "new":
		return a.newProject(rest)
	case "validate":
		return a.validate(rest)
	case "bounds":
		return a.bounds(rest)
	case "export":
		return a.export(rest)
	case "mesh":
		return a.mesh(rest)
	case "hit":
		return a.hit(rest)
	case "recover":
		return a.restore(rest)
	default:
		fmt.Fprintf(stderr, "tcad: unknown command %q\n", cmd)
		fs.Usage()
		return errUsage
	}
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("tcad "+name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// project parses fs and loads the single project file argument.
func (a *app) project(fs *flag.FlagSet, args []string) (string, []pattern.Piece, error) {
	if err := fs.Parse(args); err != nil {
		return "", nil, err
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(a.stderr, "usage: %s [flags] project\n", fs.Name())
		fs.PrintDefaults()
		return "", nil, errUsage
	}
	path := fs.Arg(0)
	pieces, err := store.New().LoadProject(path)
	if err != nil {
		return "", nil, err
	}
	return path, pieces, nil
}

func (a *app) formats() error {
	for _, f := range export.Formats() {
		fmt.Fprintln(a.stdout, f)
	}
	return nil
}

func (a *app) newProject(args []string) error {
	fs := a.flags("new")
	name := fs.String("name", "Untitled", "name of the first piece")
	out := fs.String("o", "", "project file to create")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		fmt.Fprintln(a.stderr, "usage: tcad new -name N -o file")
		return errUsage
	}
	s := store.New()
	id, err := s.Create(pattern.NewPiece(*name))
	if err != nil {
		return err
	}
	if err := s.SaveProject(*out); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%s %s %s\n", a.st.ok.Render("created"), *out, a.st.dim.Render(id))
	return nil
}

func (a *app) validate(args []string) error {
	_, pieces, err := a.project(a.flags("validate"), args)
	if err != nil {
		return err
	}
	warned := false
	for i := range pieces {
		p := &pieces[i]
		warnings := pattern.Validate(p)
		if len(warnings) == 0 {
			fmt.Fprintf(a.stdout, "%s %s\n", a.st.ok.Render("ok"), p.Name)
			continue
		}
		warned = true
		fmt.Fprintf(a.stdout, "%s %s\n", a.st.warn.Render("warn"), p.Name)
		for _, w := range warnings {
			fmt.Fprintf(a.stdout, "  %s\n", w)
		}
	}
	if warned {
		return errWarnings
	}
	return nil
}

func (a *app) bounds(args []string) error {
	fs := a.flags("bounds")
	paper := fs.String("paper", a.cfg.Paper, "paper size used for tiling (A4, Letter)")
	_, pieces, err := a.project(fs, args)
	if err != nil {
		return err
	}
	box, err := layout.Bounds(pieces)
	if err != nil {
		return err
	}
	if box.IsEmpty() {
		fmt.Fprintln(a.stdout, a.st.dim.Render("empty pattern"))
		return nil
	}
	f := geom.FormatFloat
	fmt.Fprintf(a.stdout, "%s %s,%s %s,%s\n", a.st.title.Render("bounds"),
		f(box.X0), f(box.Y0), f(box.X1), f(box.Y1))
	fmt.Fprintf(a.stdout, "%s %s x %s mm\n", a.st.title.Render("size"), f(box.Width()), f(box.Height()))

	p := export.PaperSize(*paper)
	m := export.PDFPageMargin
	grid := layout.NewGrid(box.Inflate(layout.PDFMargin), p.Width-2*m, p.Height-2*m)
	fmt.Fprintf(a.stdout, "%s %d x %d %s pages\n", a.st.title.Render("tiles"), grid.Cols, grid.Rows, p.Name)
	return nil
}

func (a *app) export(args []string) error {
	fs := a.flags("export")
	format := fs.String("format", "svg", "output format: "+strings.Join(export.Formats(), ", "))
	paper := fs.String("paper", a.cfg.Paper, "PDF paper size (A4, Letter)")
	out := fs.String("o", "", "output file (default: project name with the format's extension)")
	path, pieces, err := a.project(fs, args)
	if err != nil {
		return err
	}
	if !export.IsRegistered(*format) {
		return fmt.Errorf("unknown format %q", *format)
	}
	dst := *out
	if dst == "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		dst = filepath.Join(a.cfg.OutputDir, base+"."+*format)
	}
	opts := append(a.cfg.ExportOptions(), export.WithPaper(*paper))
	if err := export.Save(*format, dst, pieces, opts...); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%s %s\n", a.st.ok.Render("wrote"), dst)
	return nil
}

func (a *app) mesh(args []string) error {
	fs := a.flags("mesh")
	out := fs.String("o", "", "output file (default: stdout)")
	_, pieces, err := a.project(fs, args)
	if err != nil {
		return err
	}
	buf, err := mesh.Generate(pieces)
	if err != nil {
		return err
	}
	if *out == "" {
		return json.NewEncoder(a.stdout).Encode(&buf)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(f).Encode(&buf); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%s %s %s\n", a.st.ok.Render("wrote"), *out,
		a.st.dim.Render(fmt.Sprintf("(%d vertices, %d triangles)", buf.VertexCount(), len(buf.Indices)/3)))
	return nil
}

func (a *app) hit(args []string) error {
	fs := a.flags("hit")
	x := fs.Float64("x", 0, "world x coordinate in mm")
	y := fs.Float64("y", 0, "world y coordinate in mm")
	_, pieces, err := a.project(fs, args)
	if err != nil {
		return err
	}
	i, err := layout.PieceAt(pieces, geom.Pt(*x, *y))
	if err != nil {
		return err
	}
	if i < 0 {
		fmt.Fprintln(a.stdout, a.st.dim.Render("none"))
		return nil
	}
	fmt.Fprintf(a.stdout, "%s %s\n", pieces[i].Name, a.st.dim.Render(pieces[i].ID))
	return nil
}

func (a *app) restore(args []string) error {
	fs := a.flags("recover")
	dir := fs.String("dir", a.cfg.RecoveryDir, "recovery directory")
	out := fs.String("o", "", "project file to write the recovered pieces to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dir == "" || *out == "" {
		fmt.Fprintln(a.stderr, "usage: tcad recover [-dir D] -o file")
		return errUsage
	}
	s := store.New()
	pieces, err := s.RestoreRecovery(*dir)
	if err != nil {
		return err
	}
	if err := s.SaveProject(*out); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%s %d pieces to %s\n", a.st.ok.Render("recovered"), len(pieces), *out)
	return nil
}

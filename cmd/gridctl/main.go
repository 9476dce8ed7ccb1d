// Command gridctl draws, transforms, compares and stores occupancy grids.
//
// Grids are read in the text form produced by the grid package: one line
// per row, cells separated by spaces, using the configured glyphs.
//
//	gridctl demo
//	gridctl transform -op r -file board.txt
//	gridctl compare -op sub -file a.txt -other b.txt
//	gridctl -db grids.db save -label start -file board.txt
//	gridctl -db grids.db list
//	gridctl -db grids.db export -out board.json -format json <id>
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/banshee-data/occupancy/internal/config"
	"github.com/banshee-data/occupancy/internal/fsutil"
	"github.com/banshee-data/occupancy/internal/grid"
	"github.com/banshee-data/occupancy/internal/monitoring"
	"github.com/banshee-data/occupancy/internal/store"
	"github.com/banshee-data/occupancy/internal/timeutil"
	"github.com/banshee-data/occupancy/internal/version"
)

// errUsage marks command-line mistakes; main exits with status 2 for these.
var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Fatalf("gridctl: %v", err)
	}
}

// app carries the state shared by every subcommand.
type app struct {
	cfg    *config.Config
	glyphs grid.Glyphs
	dbPath string
	fs     fsutil.FileSystem
	stdin  io.Reader
	out    io.Writer
}

func run(args []string, stdin io.Reader, out io.Writer) error {
	return runWithFS(args, fsutil.OSFileSystem{}, stdin, out)
}

func runWithFS(args []string, fsys fsutil.FileSystem, stdin io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("gridctl", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", "", "path to JSON config (defaults built in)")
	dbPath := fs.String("db", "", "path to sqlite snapshot DB (overrides config db_path)")
	verbose := fs.Bool("v", false, "enable diagnostic logging")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	cfg := config.EmptyConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *verbose || cfg.GetLogDiag() {
		monitoring.SetLogWriters(monitoring.LogWriters{Ops: os.Stderr, Diag: os.Stderr})
	}

	a := &app{
		cfg:    cfg,
		glyphs: cfg.Glyphs(),
		dbPath: cfg.GetDBPath(),
		fs:     fsys,
		stdin:  stdin,
		out:    out,
	}
	if *dbPath != "" {
		a.dbPath = *dbPath
	}
	monitoring.Diagf("config=%q db=%q glyphs=%+v", *configPath, a.dbPath, a.glyphs)

	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("%w: gridctl [-config path] [-db path] [-v] demo|transform|compare|save|list|show|rm|export|version", errUsage)
	}
	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "demo":
		return a.demo()
	case "transform":
		return a.transform(cmdArgs)
	case "compare":
		return a.compare(cmdArgs)
	case "save":
		return a.save(cmdArgs)
	case "list":
		return a.list()
	case "show":
		return a.show(cmdArgs)
	case "rm":
		return a.remove(cmdArgs)
	case "export":
		return a.export(cmdArgs)
	case "version":
		fmt.Fprintln(a.out, version.String())
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// demo prints the 3x3 sample board with its vertical reflection and its
// clockwise rotation.
func (a *app) demo() error {
	g := grid.MustNew(3,
		grid.C(0, 1), grid.C(0, 2),
		grid.C(1, 0), grid.C(1, 1),
		grid.C(2, 0), grid.C(2, 2),
	)
	fmt.Fprintf(a.out, "\nInstance:\n%s\n", g.Render(a.glyphs))
	fmt.Fprintf(a.out, "\nVertical Reflection:\n%s\n", g.ReflectedVertical().Render(a.glyphs))
	fmt.Fprintf(a.out, "\nRotation 90 degrees Clockwise:\n%s\n", g.RotatedClockwise90().Render(a.glyphs))
	return nil
}

func (a *app) transform(args []string) error {
	fs := flag.NewFlagSet("transform", flag.ContinueOnError)
	fs.SetOutput(a.out)
	op := fs.String("op", "", "v (flip top-bottom), h (flip left-right), r (rotate clockwise), t (transpose), x (symmetric difference with -other)")
	file := fs.String("file", "-", "grid file, - for stdin")
	other := fs.String("other", "", "second grid file for -op x")
	turns := fs.Int("n", 1, "number of times to apply v, h, r or t")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	g, err := a.readGrid(*file)
	if err != nil {
		return err
	}

	var out *grid.Grid
	switch *op {
	case "v", "h", "r", "t":
		step := map[string]func(*grid.Grid) *grid.Grid{
			"v": (*grid.Grid).ReflectedVertical,
			"h": (*grid.Grid).ReflectedHorizontal,
			"r": (*grid.Grid).RotatedClockwise90,
			"t": (*grid.Grid).Transposed,
		}[*op]
		out = g
		for i := 0; i < *turns; i++ {
			out = step(out)
		}
	case "x":
		if *other == "" {
			return fmt.Errorf("%w: -op x needs -other", errUsage)
		}
		if *other == "-" && *file == "-" {
			return fmt.Errorf("%w: -file and -other cannot both read stdin", errUsage)
		}
		h, err := a.readGrid(*other)
		if err != nil {
			return err
		}
		if out, err = g.SymmetricDifference(h); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: -op must be one of v, h, r, t, x; got %q", errUsage, *op)
	}
	fmt.Fprintln(a.out, out.Render(a.glyphs))
	return nil
}

func (a *app) compare(args []string) error {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	fs.SetOutput(a.out)
	op := fs.String("op", "eq", "eq, sub (file is subset of other) or sup (file is superset of other)")
	file := fs.String("file", "-", "grid file, - for stdin")
	other := fs.String("other", "", "grid file to compare against")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *other == "" {
		return fmt.Errorf("%w: compare needs -other", errUsage)
	}
	if *other == "-" && *file == "-" {
		return fmt.Errorf("%w: -file and -other cannot both read stdin", errUsage)
	}

	g, err := a.readGrid(*file)
	if err != nil {
		return err
	}
	h, err := a.readGrid(*other)
	if err != nil {
		return err
	}

	var ok bool
	switch *op {
	case "eq":
		ok, err = g.Equals(h)
	case "sub":
		ok, err = g.IsSubsetOf(h)
	case "sup":
		ok, err = g.IsSupersetOf(h)
	default:
		return fmt.Errorf("%w: -op must be one of eq, sub, sup; got %q", errUsage, *op)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, ok)
	return nil
}

func (a *app) save(args []string) error {
	fs := flag.NewFlagSet("save", flag.ContinueOnError)
	fs.SetOutput(a.out)
	label := fs.String("label", "", "snapshot label")
	file := fs.String("file", "-", "grid file, - for stdin")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	g, err := a.readGrid(*file)
	if err != nil {
		return err
	}
	return a.withStore(func(s *store.SnapshotStore) error {
		snap, err := s.Insert(*label, g)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, snap.ID)
		return nil
	})
}

func (a *app) list() error {
	return a.withStore(func(s *store.SnapshotStore) error {
		snaps, err := s.List(a.cfg.GetListLimit())
		if err != nil {
			return err
		}
		for _, snap := range snaps {
			taken, err := timeutil.InZone(snap.Taken(), a.cfg.GetTimezone())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s\t%s\tn=%d\toccupied=%d\t%s\n",
				snap.ID, taken.Format(time.RFC3339), snap.Size, snap.Occupied, snap.Label)
		}
		return nil
	})
}

func (a *app) show(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: show <snapshot-id>", errUsage)
	}
	return a.withStore(func(s *store.SnapshotStore) error {
		snap, err := s.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s %#v\n%s\n", snap.Label, snap.Grid, snap.Grid.Render(a.glyphs))
		return nil
	})
}

func (a *app) remove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: rm <snapshot-id>", errUsage)
	}
	return a.withStore(func(s *store.SnapshotStore) error {
		return s.Delete(args[0])
	})
}

func (a *app) export(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(a.out)
	dest := fs.String("out", "", "destination file")
	format := fs.String("format", "text", "text or json")
	force := fs.Bool("force", false, "overwrite an existing destination")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *dest == "" || fs.NArg() != 1 {
		return fmt.Errorf("%w: export -out path [-format text|json] [-force] <snapshot-id>", errUsage)
	}
	if *format != "text" && *format != "json" {
		return fmt.Errorf("%w: -format must be text or json; got %q", errUsage, *format)
	}
	if !*force && a.fs.Exists(*dest) {
		return fmt.Errorf("export: %s already exists (use -force to overwrite)", *dest)
	}

	return a.withStore(func(s *store.SnapshotStore) error {
		snap, err := s.Get(fs.Arg(0))
		if err != nil {
			return err
		}
		var data []byte
		if *format == "json" {
			if data, err = json.Marshal(snap.Grid); err != nil {
				return fmt.Errorf("export %s: %w", snap.ID, err)
			}
		} else {
			data = []byte(snap.Grid.Render(a.glyphs))
		}
		data = append(data, '\n')
		if err := a.fs.WriteFile(*dest, data, 0644); err != nil {
			return fmt.Errorf("export %s: %w", snap.ID, err)
		}
		monitoring.Opsf("exported snapshot %s to %s (%s)", snap.ID, *dest, *format)
		return nil
	})
}

func (a *app) withStore(fn func(*store.SnapshotStore) error) error {
	db, err := store.Open(a.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(store.NewSnapshotStore(db.DB))
}

func (a *app) readGrid(path string) (*grid.Grid, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = a.fs.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read grid %s: %w", path, err)
	}
	g, err := grid.Parse(strings.TrimSpace(string(data)), a.glyphs)
	if err != nil {
		return nil, fmt.Errorf("read grid %s: %w", path, err)
	}
	monitoring.Diagf("read %s: %#v", path, g)
	return g, nil
}

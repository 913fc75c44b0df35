// Command calc runs vector operations and applied problems from the command
// line and manages saved calculation history.
//
//	calc ops -v 1,2,3 -v 4,5,6 [-set v1.x=5] [-drop v2]
//	calc solve -problem cable [-v ...] [-user id]
//	calc history -user id [-delete id]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"vector3d-calc/internal/calc"
	"vector3d-calc/internal/config"
	"vector3d-calc/internal/history"
	"vector3d-calc/internal/solver"
	"vector3d-calc/internal/vecinput"
	"vector3d-calc/internal/vecmath"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: calc ops|solve|history [flags]")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	var err error
	switch os.Args[1] {
	case "ops":
		err = runOps(os.Args[2:])
	case "solve":
		err = runSolve(os.Args[2:])
	case "history":
		err = runHistory(os.Args[2:])
	default:
		usage()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// storeFlags are shared by the subcommands that touch history.
type storeFlags struct {
	config, driver, path, dsn *string
}

func addStoreFlags(fs *flag.FlagSet) storeFlags {
	return storeFlags{
		config: fs.String("config", "", "Path to config.json file"),
		driver: fs.String("history", "", "History backend: memory, file or postgres (default: config, else file)"),
		path:   fs.String("history-file", "", "History file for the file backend"),
		dsn:    fs.String("dsn", "", "Postgres DSN (default: $DATABASE_URL)"),
	}
}

func (sf storeFlags) open(ctx context.Context) (history.Store, config.Config, error) {
	cfg, err := config.LoadOptional(*sf.config)
	if err != nil {
		return nil, cfg, err
	}
	cfg.Resolve(config.Flags{
		HistoryDriver:        *sf.driver,
		HistoryPath:          *sf.path,
		DatabaseURL:          *sf.dsn,
		DefaultHistoryDriver: history.DriverFile,
	})
	store, err := history.Open(ctx, history.Options{
		Driver: cfg.HistoryDriver,
		Path:   cfg.HistoryPath,
		DSN:    cfg.DatabaseURL,
	})
	return store, cfg, err
}

func runOps(args []string) error {
	fs := flag.NewFlagSet("ops", flag.ExitOnError)
	var vectors vecinput.List
	var sets, drops multi
	fs.Var(&vectors, "v", "Vector x,y,z (repeatable)")
	fs.Var(&sets, "set", "Set one component, e.g. v1.x=5 (repeatable)")
	fs.Var(&drops, "drop", "Remove a vector by name, e.g. v2 (repeatable)")
	fs.Parse(args)

	if len(vectors) == 0 {
		vectors = vecinput.List{{3, 4, 0}, {1, 2, 2}}
	}
	list, err := applyEdits(vecinput.FromVecs(vectors), sets, drops)
	if err != nil {
		return err
	}
	printReport(os.Stdout, calc.Operations(list))
	return nil
}

func runSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	problem := fs.String("problem", "cable", "Problem: cable, structure, field or robot")
	user := fs.String("user", "", "Save the calculation to this user's history")
	var vectors vecinput.List
	fs.Var(&vectors, "v", "Input vector x,y,z (repeatable; give all of them or none for the defaults)")
	sf := addStoreFlags(fs)
	fs.Parse(args)

	ctx := context.Background()
	c := calc.New(nil, nil)
	if *user != "" {
		store, _, err := sf.open(ctx)
		if err != nil {
			return err
		}
		defer store.Close()
		c = calc.New(store, calc.StaticUser(*user))
	}
	return solve(ctx, c, *problem, vectors)
}

// solve runs one problem. vs replaces the default inputs and must match
// their count exactly.
func solve(ctx context.Context, c *calc.Calculator, problem string, vs []vecmath.Vec3) error {
	switch problem {
	case "cable", "cable-tension":
		in := solver.CableInput{Cables: solver.DefaultCables}
		if err := solver.Assign(in.Cables[:], vs, "cables"); err != nil {
			return err
		}
		printCable(os.Stdout, in, c.CableTension(ctx, in))
	case "structure":
		in := solver.TorqueInput{Vectors: solver.DefaultStructure}
		if err := solver.Assign(in.Vectors[:], vs, "vectors"); err != nil {
			return err
		}
		printTorque(os.Stdout, in, c.StructuralTorque(ctx, in))
	case "field":
		f := []vecmath.Vec3{solver.DefaultField}
		if err := solver.Assign(f, vs, "field"); err != nil {
			return err
		}
		in := solver.FieldInput{Field: f[0]}
		printField(os.Stdout, in, c.FieldAnalysis(ctx, in))
	case "robot":
		in := solver.TrajectoryInput{Moves: solver.DefaultMoves}
		if err := solver.Assign(in.Moves[:], vs, "moves"); err != nil {
			return err
		}
		printTrajectory(os.Stdout, in, c.RobotTrajectory(ctx, in))
	default:
		return fmt.Errorf("unknown problem %q", problem)
	}
	return nil
}

func runHistory(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	user := fs.String("user", "", "User whose history to show (required)")
	limit := fs.Int("limit", 0, "Show at most N records (default: config history_limit)")
	del := fs.String("delete", "", "Delete the record with this id")
	sf := addStoreFlags(fs)
	fs.Parse(args)

	if *user == "" {
		return fmt.Errorf("-user is required")
	}
	ctx := context.Background()
	store, cfg, err := sf.open(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if *del != "" {
		if err := store.Delete(ctx, *user, *del); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", *del)
		return nil
	}

	n := cfg.HistoryLimit
	if *limit > 0 {
		n = *limit
	}
	recs, err := store.List(ctx, *user, n)
	if err != nil {
		return err
	}
	printHistory(os.Stdout, recs)
	return nil
}

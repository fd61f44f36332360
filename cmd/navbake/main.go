// navbake is the diagnostic CLI for the navmesh preprocessing pipeline:
// it validates geometry and prints the pre-build report without invoking
// the voxel builder, and inspects baked result containers. The builder
// itself is linked by embedding applications through worker.New.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/splatwalk/navbake/geometry"
	"github.com/splatwalk/navbake/logger"
	"github.com/splatwalk/navbake/mesh"
	"github.com/splatwalk/navbake/navgen"
	"github.com/splatwalk/navbake/navio"
)

var CLI struct {
	Verbose bool   `short:"v" help:"Enable verbose logging"`
	LogFile string `help:"Optional rotated log file"`

	Plan struct {
		Mesh   string `arg:"" help:"Input .obj triangle mesh"`
		Params string `short:"p" help:"YAML build parameter preset applied over the defaults"`
	} `cmd:"" help:"Validate geometry and print the pre-build report"`

	Inspect struct {
		Container string `arg:"" help:"Baked .navb result container"`
		DebugObj  string `help:"Write the debug visualization mesh as Wavefront OBJ"`
		NavMesh   string `help:"Export the navmesh binary verbatim"`
	} `cmd:"" help:"Print the report stored in a baked container"`
}

func main() {
	ctx := kong.Parse(&CLI)

	level := "info"
	if CLI.Verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Config{Level: level, File: CLI.LogFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	switch ctx.Command() {
	case "plan <mesh>":
		err = runPlan(log)
	case "inspect <container>":
		err = runInspect(log)
	default:
		err = fmt.Errorf("unknown command %q", ctx.Command())
	}
	if err != nil {
		log.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func runPlan(log *zap.Logger) error {
	params := navgen.DefaultParams()
	if CLI.Plan.Params != "" {
		var err error
		if params, err = navgen.LoadParams(CLI.Plan.Params); err != nil {
			return err
		}
	}

	geom, err := mesh.LoadOBJ(CLI.Plan.Mesh)
	if err != nil {
		return err
	}
	log.Debug("mesh loaded",
		zap.Int("verts", geom.VertCount()),
		zap.Int("tris", geom.TriCount()),
	)

	bb, err := geometry.Validate(geom.Positions)
	if err != nil {
		return err
	}
	plan, err := navgen.PlanGrid(bb, params)
	if err != nil {
		return err
	}

	avgUpDot := geometry.AvgUpDot(geom.Positions, geom.Indices)
	report := navgen.NewReport(bb, plan, avgUpDot, avgUpDot < navgen.InvertedUpDotThreshold)
	steep := geometry.SteepFraction(geom.Positions, geom.Indices, params.WalkableSlopeAngle)

	fmt.Println(report)
	fmt.Printf("sampled triangles steeper than %.0f deg: %.0f%%\n", params.WalkableSlopeAngle, steep*100)
	return nil
}

func runInspect(log *zap.Logger) error {
	c, err := navio.Load(CLI.Inspect.Container)
	if err != nil {
		return err
	}
	fmt.Println(c.Report)
	fmt.Printf("navmesh: %d bytes, debug mesh: %d verts %d tris\n",
		len(c.NavMeshData), len(c.DebugPositions)/3, len(c.DebugIndices)/3)

	if CLI.Inspect.DebugObj != "" {
		f, err := os.Create(CLI.Inspect.DebugObj)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := navio.WriteDebugOBJ(f, c.DebugPositions, c.DebugIndices); err != nil {
			return err
		}
		log.Info("debug mesh written", zap.String("path", CLI.Inspect.DebugObj))
	}
	if CLI.Inspect.NavMesh != "" {
		if err := navio.ExportNavMesh(CLI.Inspect.NavMesh, c.NavMeshData); err != nil {
			return err
		}
		log.Info("navmesh exported", zap.String("path", CLI.Inspect.NavMesh))
	}
	return nil
}

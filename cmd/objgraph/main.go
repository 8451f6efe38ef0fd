// Command-line driver that labels a raw voxel dump and prints its neighbor graph.

package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/janelia-flyem/objgraph/config"
	"github.com/janelia-flyem/objgraph/dvid"
	"github.com/janelia-flyem/objgraph/kernel"
	"github.com/janelia-flyem/objgraph/neighborgraph"
	"github.com/janelia-flyem/objgraph/voxels"
)

var (
	// Display usage if true.
	showHelp = flag.Bool("help", false, "")

	// Run in verbose mode if true.
	runVerbose = flag.Bool("verbose", false, "")

	// Path to TOML configuration.  Defaults are used if unset.
	configFile = flag.String("config", "", "")

	// Bits per voxel in the raw file.
	width = flag.Int("width", 8, "")
)

const helpMessage = `
objgraph finds the connected objects in a binary voxel volume and the neighbor
graph between them.

Usage: objgraph [options] <raw file> <nx> <ny> <nz>

  The raw file is a headerless, little-endian, x-fastest array of nx*ny*nz voxels.

      -config     =string   TOML configuration file.
      -width      =number   Bits per voxel: 8, 16, 32, or 64.
      -verbose    (flag)    Run in verbose mode.
  -h, -help       (flag)    Show help message
`

var usage = func() {
	fmt.Print(helpMessage)
}

func main() {
	flag.BoolVar(showHelp, "h", false, "Show help message")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if *showHelp || len(args) != 4 || strings.ToLower(args[0]) == "help" {
		flag.Usage()
		os.Exit(0)
	}
	if *runVerbose {
		dvid.SetLogMode(dvid.DebugMode)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	cfg.Logging.SetLogger()
	defer dvid.Shutdown()

	if err := run(cfg, args); err != nil {
		dvid.Errorf("%v\n", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func loadConfig(filename string) (*config.Config, error) {
	if filename == "" {
		c := config.Default()
		return &c, nil
	}
	return config.Load(filename)
}

func parseExtent(args []string) (voxels.Extent, error) {
	var dims [3]int
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return voxels.Extent{}, fmt.Errorf("bad dimension %q: %v", s, err)
		}
		dims[i] = v
	}
	return voxels.NewExtent(dims[0], dims[1], dims[2])
}

// readVolume wraps the raw bytes in a grid of the requested width.
func readVolume(filename string, ext voxels.Extent, bits int, values voxels.BinaryValues) (*voxels.BinaryVolume, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	bytesPerVoxel := bits / 8
	if bits%8 != 0 || bytesPerVoxel < 1 || bytesPerVoxel > 8 || bytesPerVoxel&(bytesPerVoxel-1) != 0 {
		return nil, fmt.Errorf("unsupported voxel width %d bits", bits)
	}
	if len(data) != ext.NumVoxels()*bytesPerVoxel {
		return nil, fmt.Errorf("file %q has %d bytes, expected %d for %s volume of %d-bit voxels",
			filename, len(data), ext.NumVoxels()*bytesPerVoxel, ext, bits)
	}
	var buf voxels.Buffer
	switch bits {
	case 8:
		buf, _ = voxels.NewGridFromData(ext, data)
	case 16:
		words := make([]uint16, ext.NumVoxels())
		for i := range words {
			words[i] = binary.LittleEndian.Uint16(data[i*2:])
		}
		buf, _ = voxels.NewGridFromData(ext, words)
	case 32:
		words := make([]uint32, ext.NumVoxels())
		for i := range words {
			words[i] = binary.LittleEndian.Uint32(data[i*4:])
		}
		buf, _ = voxels.NewGridFromData(ext, words)
	case 64:
		words := make([]uint64, ext.NumVoxels())
		for i := range words {
			words[i] = binary.LittleEndian.Uint64(data[i*8:])
		}
		buf, _ = voxels.NewGridFromData(ext, words)
	}
	return voxels.NewBinaryVolume(buf, values), nil
}

func run(cfg *config.Config, args []string) error {
	ext, err := parseExtent(args[1:])
	if err != nil {
		return err
	}
	vol, err := readVolume(args[0], ext, *width, cfg.BinaryValues())
	if err != nil {
		return err
	}
	dvid.Infof("Read %s volume with %s voxels on\n", ext, humanize.Comma(int64(vol.CountOn())))

	timedLog := dvid.NewTimeLog()
	objects, err := cfg.Labeler().Label(vol)
	if err != nil {
		return err
	}
	builder, err := cfg.Builder()
	if err != nil {
		return err
	}
	g, err := builder.Build(objects, ext, cfg.Graph.PreventIntersection, cfg.Graph.Use3D)
	if err != nil {
		return err
	}
	timedLog.Infof("Labeled %s objects with %s neighbor edges", humanize.Comma(int64(g.NumVertices())), humanize.Comma(int64(g.NumEdges())))
	printSummary(g, kernel.New(builder.Kind, cfg.Graph.Use3D, kernel.OutsideOff))
	return nil
}

// surfaceVoxels counts the voxels of obj with at least one neighbor outside it.
func surfaceVoxels(obj *voxels.ObjectMask, k kernel.Kernel) int {
	return kernel.Outline(obj.Volume(), k).CountOn()
}

func printSummary(g *neighborgraph.Graph[*voxels.ObjectMask], k kernel.Kernel) {
	fmt.Printf("%s objects\n", humanize.Comma(int64(g.NumVertices())))
	for i := 0; i < g.NumVertices(); i++ {
		obj := g.Vertex(i)
		fmt.Printf("  object %d: box %s, %s voxels, %s on surface\n", i, obj.Box(),
			humanize.Comma(int64(obj.NumVoxels())), humanize.Comma(int64(surfaceVoxels(obj, k))))
	}
	fmt.Printf("%s edges\n", humanize.Comma(int64(g.NumEdges())))
	for _, e := range g.Edges() {
		fmt.Printf("  %d -- %d: weight %d\n", e.From, e.To, e.Weight)
	}
}

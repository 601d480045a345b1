package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/spectators"
	"github.com/phil-mansfield/spectators/io"
	"github.com/phil-mansfield/spectators/math/rand"
)

const generatorName = "spectators"

var log = spectators.NamedLogger("spectators_cmd")

type FileGroup struct {
	log, prof *os.File
}

func (fg *FileGroup) Close() {
	if fg.prof != nil {
		pprof.StopCPUProfile()
		if err := fg.prof.Close(); err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.log != nil {
		if err := fg.log.Close(); err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		generate, exampleConfig, plot string
		seed                          int64
	)
	vars := map[string]*string{
		"Generate":      &generate,
		"ExampleConfig": &exampleConfig,
		"Plot":          &plot,
	}

	flag.StringVar(
		&generate, "Generate", "",
		"Configuration file for [Generate] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are "+exampleNames()+".",
	)
	flag.StringVar(
		&plot, "Plot", "",
		"Directory diagnostic plots are written to. An optional "+
			"configuration file can be given as an argument.",
	)
	flag.Int64Var(
		&seed, "Seed", -1,
		"Overrides the configuration file's random seed if non-negative.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Generate":
		con := readConfig(generate)
		if !con.ValidEvents() {
			log.Fatal("Invalid/non-existent 'Events' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		}
		if seed >= 0 {
			con.Seed = seed
		}
		generateMain(con)

	case "ExampleConfig":
		text, ok := io.ExampleFiles[exampleConfig]
		if !ok {
			log.Fatalf(
				"Unrecognized 'ExampleConfig' argument. Only recognized "+
					"arguments are %s.", exampleNames(),
			)
		}
		fmt.Println(text)

	case "Plot":
		con := &io.DefaultSpectatorsWrapper().Spectators
		if args := flag.Args(); len(args) > 1 {
			log.Fatal("Plot mode takes at most one configuration file.")
		} else if len(args) == 1 {
			con = readConfig(args[0])
		}
		if seed >= 0 {
			con.Seed = seed
		}
		plotMain(con, plot)

	default:
		panic("Impossible")
	}
}

func exampleNames() string {
	names := []string{}
	for name := range io.ExampleFiles {
		names = append(names, "'"+name+"'")
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		sort.Strings(setNames)
		return "", fmt.Errorf(
			"The following flags were set: %s, but spectators only "+
				"accepts one mode flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func readConfig(fname string) *io.SpectatorsConfig {
	wrap := io.DefaultSpectatorsWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		log.Fatal(err.Error())
	}
	return &wrap.Spectators
}

func setupIO(con *io.SpectatorsConfig) *FileGroup {
	fg := &FileGroup{}
	var err error

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
		spectators.Logger().SetOutput(fg.log)
	}

	if con.Debug {
		spectators.Logger().SetLevel(logrus.DebugLevel)
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		if err = pprof.StartCPUProfile(fg.prof); err != nil {
			log.Fatal(err.Error())
		}
	}

	return fg
}

// newRandom returns a generator seeded from the configuration, or from the
// clock if the seed is negative.
func newRandom(con *io.SpectatorsConfig) *rand.Generator {
	gt, err := con.RandomSource()
	if err != nil {
		log.Fatal(err.Error())
	}
	if !con.ValidSeed() {
		gen := rand.NewTimeSeed(gt)
		log.Printf("Using random seed %d.", gen.Seed())
		return gen
	}
	return rand.NewGenerator(gt, uint64(con.Seed))
}

// newGenerator builds and initializes a generator from a configuration file.
func newGenerator(con *io.SpectatorsConfig) *spectators.Generator {
	cfg, err := con.GeneratorConfig()
	if err != nil {
		log.Fatal(err.Error())
	}

	g := spectators.New(cfg, newRandom(con))
	if !g.Init() {
		log.Fatal("Could not initialize the generator.")
	}
	return g
}

func generateMain(con *io.SpectatorsConfig) {
	fg := setupIO(con)
	defer fg.Close()

	log.Println("Running Generate main.")
	g := newGenerator(con)

	wr, err := io.CreateEventWriter(con.Output)
	if err != nil {
		log.Fatal(err.Error())
	}

	buf := []spectators.HostParticle{}
	step := con.Events / 10
	if step == 0 {
		step = 1
	}

	for i := 0; i < con.Events; i++ {
		g.GenerateEvent()
		n := g.ImportParticles(&buf, "")

		hd := spectators.EventHeader{
			Event: i, Particles: n, Generator: generatorName,
		}
		g.UpdateHeader(&hd)

		ev := &io.Event{
			Header: hd, ImpactParameter: g.ImpactParameter(), Particles: buf,
		}
		if err := wr.Write(ev); err != nil {
			log.Fatal(err.Error())
		}

		if (i+1)%step == 0 || i+1 == con.Events {
			log.Printf("Generated %d/%d events.", i+1, con.Events)
		}
	}

	if err := wr.Close(); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote %d events to %s.", wr.Events(), con.Output)
}

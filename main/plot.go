package main

import (
	"fmt"
	"path"
	"sort"

	plt "github.com/phil-mansfield/pyplot"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/phil-mansfield/spectators"
	"github.com/phil-mansfield/spectators/io"
	"github.com/phil-mansfield/spectators/param"
	"github.com/phil-mansfield/spectators/pdg"
)

const (
	plotPoints = 200
	plotEvents = 10000
)

func plotMain(con *io.SpectatorsConfig, dir string) {
	fg := setupIO(con)
	defer fg.Close()

	log.Println("Running Plot main.")
	g := newGenerator(con)
	cfg := g.Config()

	plotMultiplicity(param.NewModel(cfg.Calibration), dir)
	plotHistogram(g, dir)
	plotFermi(g, dir)

	plt.Execute()
}

// plotMultiplicity plots the mean number of spectators against the impact
// parameter with its one sigma band.
func plotMultiplicity(m *param.Model, dir string) {
	fname := path.Join(dir, "multiplicity.png")

	bs := make([]float64, plotPoints)
	floats.Span(bs, 0, m.BMax())
	means := make([]float64, plotPoints)
	lows := make([]float64, plotPoints)
	highs := make([]float64, plotPoints)
	density := make([]float64, plotPoints)
	for i, b := range bs {
		means[i] = m.MeanMultiplicity(b)
		lows[i] = means[i] - m.MultiplicityWidth(b)
		highs[i] = means[i] + m.MultiplicityWidth(b)
		density[i] = m.ImpactDensity(b)
	}
	floats.Scale(floats.Max(means)/floats.Max(density), density)

	plt.Figure()
	plt.Plot(bs, means, "k", plt.LW(2))
	plt.Plot(bs, lows, plt.C("b"))
	plt.Plot(bs, highs, plt.C("b"))
	plt.Plot(bs, density, plt.C("r"), plt.LW(1))

	plt.Title("Spectators per event (red: scaled impact parameter density)")
	plt.XLabel(`$b$ [fm]`, plt.FontSize(16))
	plt.YLabel(`$\langle N \rangle$`, plt.FontSize(16))
	plt.YLim(0, 1.1*floats.Max(highs))
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)
	log.Printf("Plotted %s.", fname)
}

// plotHistogram plots the distribution of spectator counts over many events.
func plotHistogram(g *spectators.Generator, dir string) {
	fname := path.Join(dir, "histogram.png")

	ns := make([]float64, plotEvents)
	for i := range ns {
		g.GenerateEvent()
		ns[i] = float64(len(g.Particles()))
	}
	sort.Float64s(ns)

	top := int(ns[len(ns)-1]) + 1
	dividers := make([]float64, top+2)
	floats.Span(dividers, -0.5, float64(top)+0.5)
	counts := stat.Histogram(nil, dividers, ns, nil)

	centers := make([]float64, len(counts))
	for i := range centers {
		centers[i] = float64(i)
	}
	floats.Scale(1/float64(plotEvents), counts)

	plt.Figure()
	plt.Plot(centers, counts, "k", plt.LW(2))
	plt.Title(fmt.Sprintf("%d events of %ss", plotEvents,
		pdg.Name(g.Config().Particle)))
	plt.XLabel(`$N$`, plt.FontSize(16))
	plt.YLabel(`$P(N)$`, plt.FontSize(16))
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)
	log.Printf("Plotted %s.", fname)
}

// plotFermi plots the cumulative Fermi momentum tables of both species.
func plotFermi(g *spectators.Generator, dir string) {
	fname := path.Join(dir, "fermi.png")

	ps := g.FermiMomenta()
	tn, tp := g.FermiTable(pdg.Neutron), g.FermiTable(pdg.Proton)

	plt.Figure()
	plt.Plot(ps[:], tn[:], "k", plt.LW(2))
	plt.Plot(ps[:], tp[:], plt.C("r"), plt.LW(2))
	plt.Title("Fermi momentum CDF (black: neutrons, red: protons)")
	plt.XLabel(`$p$ [GeV/$c$]`, plt.FontSize(16))
	plt.YLabel(`$P(<p)$`, plt.FontSize(16))
	plt.YLim(0, 1.05)
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)
	log.Printf("Plotted %s.", fname)
}

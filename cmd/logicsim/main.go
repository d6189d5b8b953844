// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command logicsim builds a small demonstration netlist, runs it and logs the
// values seen on its monitored nets.
//
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	sim "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/gates"
	"github.com/db47h/logicsim/netviz"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/pkg/errors"
)

type config struct {
	until     uint64
	trace     bool
	chart     string
	memviz    string
	statsview string
}

// monitor logs every value it receives.
type monitor struct {
	name string
	log  *log.Logger
}

func (m *monitor) RecvVec4(n *sim.Network, p sim.Ptr, v sim.Vector4) {
	m.log.Printf("t=%-4d %-6s %s", n.Now(), m.name, v)
}

func (m *monitor) RecvVec8(n *sim.Network, p sim.Ptr, v sim.Vector8) {
	m.log.Printf("t=%-4d %-6s %s (%s)", n.Now(), m.name, v.Reduce(), v)
}

func (m *monitor) RecvReal(n *sim.Network, p sim.Ptr, v float64) {
	m.log.Printf("t=%-4d %-6s %g", n.Now(), m.name, v)
}

func (m *monitor) String() string { return "MONITOR" }

// clock toggles its output every half period, starting at 0.
type clock struct {
	net  sim.NetID
	half sim.Time
	v    sim.Bit4
}

func (c *clock) Run(n *sim.Network) {
	n.SendVec4(c.net, sim.Vector4Of(c.v))
	c.v = c.v.Not()
	n.ScheduleGeneric(c, c.half)
}

func (c *clock) RecvVec4(n *sim.Network, p sim.Ptr, v sim.Vector4) {}
func (c *clock) RecvReal(n *sim.Network, p sim.Ptr, v float64)     {}
func (c *clock) String() string                                    { return "CLOCK" }

// demo builds the demonstration netlist. Forward references are used on
// purpose for the bus drivers.
func demo(b *gates.Builder, l *log.Logger) error {
	strong := func(label, kind string, width int, d *sim.Delay, in ...gates.Ref) {
		b.Functor(label, kind, width, d, sim.Strong, sim.Strong, in...)
	}
	one, zero, x := gates.ConstBits("1"), gates.ConstBits("0"), gates.ConstBits("x")

	strong("or", "OR", 1, nil, one, zero)
	strong("and", "AND", 1, nil, x, one)
	strong("mux", "MUXZ", 2, nil, gates.ConstBits("10"), gates.ConstBits("01"), x)
	strong("rmux", "MUXR", 1, nil, gates.ConstReal(1.5), gates.ConstReal(-2), zero)

	clk := &clock{half: 10, v: sim.Bit0}
	id, err := b.Define("clk", clk)
	if err != nil {
		return err
	}
	clk.net = id
	b.Network().ScheduleGeneric(clk, 0)
	strong("nclk", "NOT", 1, &sim.Delay{Rise: 3, Fall: 2, Decay: 5}, gates.Label("clk"))

	// two tri-state drivers sharing a bus
	b.Resolve("bus", gates.Label("drv0"), gates.Label("drv1"))
	b.Functor("drv0", "BUFIF1", 1, nil, sim.Strong, sim.Strong, one, gates.Label("clk"))
	b.Functor("drv1", "BUFIF0", 1, nil, sim.Pull, sim.Pull, zero, gates.Label("clk"))
	b.Functor("pass", "RNMOS", 1, nil, sim.Strong, sim.Strong, gates.Label("bus"), one)

	for _, name := range []string{"or", "and", "mux", "rmux", "clk", "nclk", "bus", "pass"} {
		b.Define("mon."+name, &monitor{name: name, log: l}, gates.Label(name))
	}
	return b.Finish()
}

func launchStatsview(addr string) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(addr))
		mgr := statsview.New()
		mgr.Start()
	}()
	log.Printf("stats server available at http://%s/debug/statsview", addr)
}

func writeFile(name string, fn func(f *os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = fn(f); err != nil {
		f.Close()
		return errors.Wrap(err, name)
	}
	return f.Close()
}

func run(cfg *config) error {
	l := log.New(os.Stdout, "", 0)
	if cfg.statsview != "" {
		launchStatsview(cfg.statsview)
	}

	n := sim.NewNetwork()
	n.SetLogger(log.New(os.Stderr, "logicsim: ", 0))
	n.Trace(cfg.trace)
	b := gates.NewBuilder(n)
	if err := demo(b, l); err != nil {
		return err
	}
	log.Printf("%d nets, %d functors", n.Len(), b.Total())

	if cfg.chart != "" {
		if err := writeFile(cfg.chart, func(f *os.File) error { return netviz.Render(f, n, "logicsim") }); err != nil {
			return err
		}
	}
	if cfg.memviz != "" {
		syms := b.Labels()
		if err := writeFile(cfg.memviz, func(f *os.File) error { memviz.Map(f, &syms); return nil }); err != nil {
			return err
		}
	}

	if err := n.Run(sim.Time(cfg.until)); err != nil {
		return err
	}
	log.Printf("stopped at t=%d, %d events dispatched, %d pending", n.Now(), n.Dispatched(), n.Pending())

	if cfg.statsview != "" {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c
	}
	return nil
}

func main() {
	var cfg config
	flag.Uint64Var(&cfg.until, "until", 100, "run the simulation until `time`")
	flag.BoolVar(&cfg.trace, "trace", false, "log every dispatched event")
	flag.StringVar(&cfg.chart, "chart", "", "write the network graph as HTML to `file`")
	flag.StringVar(&cfg.memviz, "memviz", "", "write a graphviz dump of the symbol table to `file`")
	flag.StringVar(&cfg.statsview, "statsview", "", "serve runtime statistics on `addr` (e.g. localhost:18066)")
	flag.Parse()

	if err := run(&cfg); err != nil {
		log.Fatal(err)
	}
}

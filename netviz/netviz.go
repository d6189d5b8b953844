// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netviz renders the topology of a network as an interactive HTML
// graph.
//
// Each net is a node, named after its label or, for unlabeled nets, its
// functor. Each fan-out connection is a link from the driving net to the net
// of the receiving port.
//
package netviz

import (
	"io"
	"strconv"
	"strings"

	sim "github.com/db47h/logicsim"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
)

// node categories
const (
	catFunctor = iota
	catDriver
	catConst
)

var categories = []*opts.GraphCategory{
	{Name: "functor"},
	{Name: "driver"},
	{Name: "constant"},
}

// NodeName returns the name of the node for net id in the graph. Names are
// unique within a network.
//
func NodeName(n *sim.Network, id sim.NetID) string {
	net := n.Net(id)
	s := "#" + strconv.Itoa(int(id))
	if l := net.Label(); l != "" {
		return s + " " + l
	}
	if st, ok := net.Functor().(interface{ String() string }); ok {
		return s + " " + st.String()
	}
	return s
}

func category(net *sim.Net) int {
	switch net.Functor().(type) {
	case *sim.Resolver, *sim.DelayFunctor:
		return catDriver
	}
	if l := net.Label(); strings.HasPrefix(l, "C4<") || strings.HasPrefix(l, "Cr<") {
		return catConst
	}
	return catFunctor
}

// Graph builds the graph chart of n.
//
func Graph(n *sim.Network, title string) *charts.Graph {
	nodes := make([]opts.GraphNode, 0, n.Len())
	var links []opts.GraphLink
	for i := 0; i < n.Len(); i++ {
		id := sim.NetID(i)
		name := NodeName(n, id)
		nodes = append(nodes, opts.GraphNode{
			Name:     name,
			Category: category(n.Net(id)),
		})
		for _, p := range n.Net(id).Fanout() {
			links = append(links, opts.GraphLink{
				Source: name,
				Target: NodeName(n, p.Net),
			})
		}
	}

	g := charts.NewGraph()
	g.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: strconv.Itoa(len(nodes)) + " nets, " + strconv.Itoa(len(links)) + " connections",
		}),
	)
	g.AddSeries("nets", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout:     "force",
			Force:      &opts.GraphForce{Repulsion: 80},
			Roam:       true,
			Categories: categories,
		}),
	)
	return g
}

// Render writes an HTML page with the graph of n to w.
//
func Render(w io.Writer, n *sim.Network, title string) error {
	return errors.Wrap(Graph(n, title).Render(w), "render network graph")
}

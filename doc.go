/*
Package logicsim provides the runtime core of a four-state discrete event
logic simulator.

A Network is an arena of nets. Each net owns one Functor, the computation unit
that receives values on numbered input ports, and a fan-out list of the input
ports it broadcasts its output to. Values are four-state vectors (Vector4),
strength qualified vectors (Vector8) or reals.

Functors never block. They either compute and send their output right away or
defer work through the event scheduler built into the Network:

	n := logicsim.NewNetwork()
	// ... build nets, usually with gates.Builder ...
	if err := n.Run(100); err != nil {
		// a functor found a broken representation contract
	}

Events at earlier times always run first. Events at the same time run in the
order they were scheduled, and read-only sync callbacks (ScheduleSync) run
once all other events of their time step are done.

The functor library and the network construction entry point live in package
gates.
*/
package logicsim

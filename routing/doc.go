/*
Package routing finds minimum-time itineraries between stops of a frozen
catalogue.

Every stop gets two graph vertices: a wait vertex (standing at the stop) and
a ride vertex (on board, right after boarding there). The only edge out of a
wait vertex goes to its own ride vertex and costs Settings.BusWaitTime. Ride
edges go from the ride vertex of one stop to the wait vertex of any later
stop of the same bus traversal, so an itinerary always alternates
Wait, Bus, Wait, Bus...

Ride edges that stop short of the end of their traversal carry a tiny extra
weight that shrinks towards the terminus. It only separates otherwise equal
itineraries in favour of staying on the same bus and is never reported.

	r, err := routing.NewRouter(cat, routing.Settings{BusWaitTime: 6, BusVelocity: 40})
	res, ok := r.BuildRoute("Biryulyovo Zapadnoye", "Universam")
*/
package routing

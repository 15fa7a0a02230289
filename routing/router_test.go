package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
	"github.com/theoremus-urban-solutions/transit-catalogue/graph"
)

type busDef struct {
	name      string
	stops     []string
	roundtrip bool
}

type distDef struct {
	from, to string
	meters   int
}

func buildCatalogue(t *testing.T, stops []string, dists []distDef, buses []busDef) *catalogue.Catalogue {
	t.Helper()
	b := catalogue.NewBuilder(catalogue.WithStrictStops())
	for i, name := range stops {
		_, err := b.AddStop(name, geo.Coordinates{Lat: 55.6 + float64(i)*0.01, Lng: 37.2})
		require.NoError(t, err)
	}
	for _, d := range dists {
		require.NoError(t, b.SetDistance(d.from, d.to, d.meters))
	}
	for _, bus := range buses {
		require.NoError(t, b.AddBus(bus.name, bus.stops, bus.roundtrip))
	}
	return b.Build()
}

func abcCatalogue(t *testing.T) *catalogue.Catalogue {
	return buildCatalogue(t,
		[]string{"A", "B", "C"},
		[]distDef{{"A", "B", 1000}, {"B", "C", 1100}},
		[]busDef{{"1", []string{"A", "B", "C"}, false}},
	)
}

func TestNewRouter_InvalidSettings(t *testing.T) {
	cat := abcCatalogue(t)
	tests := []struct {
		name     string
		settings Settings
	}{
		{"zero velocity", Settings{BusWaitTime: 5, BusVelocity: 0}},
		{"negative velocity", Settings{BusWaitTime: 5, BusVelocity: -10}},
		{"negative wait", Settings{BusWaitTime: -1, BusVelocity: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRouter(cat, tt.settings)
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestNewRouter_GraphShape(t *testing.T) {
	cat := abcCatalogue(t)
	r, err := NewRouter(cat, Settings{BusWaitTime: 5, BusVelocity: 30})
	require.NoError(t, err)

	g := r.graph
	assert.Equal(t, 2*cat.StopCount(), g.VertexCount())
	// 3 wait edges + 3 forward pairs + 3 backward pairs
	assert.Equal(t, 9, g.EdgeCount())

	for _, stop := range cat.Stops() {
		assert.Equal(t, WaitVertex(stop.ID)+1, RideVertex(stop.ID))
	}
}

func TestNewRouter_WaitVertexInvariant(t *testing.T) {
	cat := buildCatalogue(t,
		[]string{"A", "B", "C", "D"},
		nil,
		[]busDef{
			{"ring", []string{"A", "B", "C", "A"}, true},
			{"line", []string{"B", "D", "C"}, false},
		},
	)
	r, err := NewRouter(cat, Settings{BusWaitTime: 3, BusVelocity: 40})
	require.NoError(t, err)
	g := r.graph

	for v := 0; v < g.VertexCount(); v++ {
		out := g.IncidentEdges(graph.VertexID(v))
		if v%2 == 0 {
			require.Len(t, out, 1, "wait vertex %d", v)
			e := g.Edge(out[0])
			assert.Equal(t, graph.VertexID(v+1), e.To)
			assert.Equal(t, 3.0, e.Weight)
			continue
		}
		for _, id := range out {
			e := g.Edge(id)
			assert.Equal(t, 0, int(e.To)%2, "ride edges must land on wait vertices")
			assert.NotEqual(t, stopOfVertex(e.From), stopOfVertex(e.To), "no self loops")
		}
	}
}

func TestNewRouter_RideDistanceIncludesRevisitedStop(t *testing.T) {
	cat := buildCatalogue(t,
		[]string{"A", "B", "C"},
		[]distDef{{"A", "B", 1000}, {"B", "A", 700}, {"A", "C", 2000}},
		[]busDef{{"1", []string{"A", "B", "A", "C"}, false}},
	)
	// 1000 m/min
	r, err := NewRouter(cat, Settings{BusWaitTime: 5, BusVelocity: 60})
	require.NoError(t, err)

	a, _ := cat.FindStop("A")
	c, _ := cat.FindStop("C")
	realTimes := map[int]float64{}
	for _, id := range r.graph.IncidentEdges(RideVertex(a.ID)) {
		e := r.graph.Edge(id)
		if e.To == WaitVertex(c.ID) {
			realTimes[r.edges[id].spanCount] = r.edges[id].realTime
		}
	}
	require.Len(t, realTimes, 2)
	// A->B->A->C covers the B->A hop too
	assert.InDelta(t, 3.7, realTimes[3], 1e-9)
	assert.InDelta(t, 2.0, realTimes[1], 1e-9)

	res, ok := r.BuildRoute("A", "C")
	require.True(t, ok)
	assert.InDelta(t, 7.0, res.TotalTime, 1e-9)
}

func TestBuildRoute_SameStop(t *testing.T) {
	r, err := NewRouter(abcCatalogue(t), Settings{BusWaitTime: 5, BusVelocity: 30})
	require.NoError(t, err)

	for _, name := range []string{"A", "B", "C"} {
		res, ok := r.BuildRoute(name, name)
		require.True(t, ok)
		assert.Zero(t, res.TotalTime)
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
	}
}

func TestBuildRoute_NotFound(t *testing.T) {
	cat := buildCatalogue(t,
		[]string{"A", "B", "C", "Island"},
		[]distDef{{"A", "B", 1000}, {"B", "C", 1100}},
		[]busDef{{"1", []string{"A", "B", "C"}, false}},
	)
	r, err := NewRouter(cat, Settings{BusWaitTime: 5, BusVelocity: 30})
	require.NoError(t, err)

	tests := []struct {
		name     string
		from, to string
	}{
		{"unknown source", "Ghost", "A"},
		{"unknown target", "A", "Ghost"},
		{"no service", "A", "Island"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := r.BuildRoute(tt.from, tt.to)
			assert.False(t, ok)
		})
	}
}

func TestBuildRoute_EndToEnd(t *testing.T) {
	r, err := NewRouter(abcCatalogue(t), Settings{BusWaitTime: 5, BusVelocity: 30})
	require.NoError(t, err)

	res, ok := r.BuildRoute("A", "C")
	require.True(t, ok)
	require.Len(t, res.Items, 2)

	assert.Equal(t, ItemWait, res.Items[0].Kind)
	assert.Equal(t, "A", res.Items[0].StopName)
	assert.InDelta(t, 5.0, res.Items[0].Time, 1e-9)

	assert.Equal(t, ItemBus, res.Items[1].Kind)
	assert.Equal(t, "1", res.Items[1].BusName)
	assert.Equal(t, 2, res.Items[1].SpanCount)
	assert.InDelta(t, 4.2, res.Items[1].Time, 1e-9)

	assert.InDelta(t, 9.2, res.TotalTime, 1e-9)
}

func TestBuildRoute_ReverseDirectionOfLinearBus(t *testing.T) {
	r, err := NewRouter(abcCatalogue(t), Settings{BusWaitTime: 5, BusVelocity: 30})
	require.NoError(t, err)

	res, ok := r.BuildRoute("C", "A")
	require.True(t, ok)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "C", res.Items[0].StopName)
	assert.Equal(t, 2, res.Items[1].SpanCount)
	// C->B falls back to B->C, B->A falls back to A->B
	assert.InDelta(t, 4.2, res.Items[1].Time, 1e-9)
}

func TestBuildRoute_PenaltyReportedTimeIsUnpenalized(t *testing.T) {
	r, err := NewRouter(abcCatalogue(t), Settings{BusWaitTime: 5, BusVelocity: 30})
	require.NoError(t, err)

	res, ok := r.BuildRoute("A", "B")
	require.True(t, ok)
	require.Len(t, res.Items, 2)
	assert.Equal(t, 1, res.Items[1].SpanCount)
	assert.InDelta(t, 2.0, res.Items[1].Time, 1e-12)
	assert.InDelta(t, 7.0, res.TotalTime, 1e-12)
}

func TestBuildRoute_TieBrokenTowardsStayingOnBoard(t *testing.T) {
	cat := buildCatalogue(t,
		[]string{"A", "B", "C"},
		[]distDef{{"A", "B", 1000}, {"B", "C", 1100}},
		[]busDef{
			{"1", []string{"A", "B", "C"}, false},
			{"2", []string{"B", "C"}, false},
		},
	)
	// no waiting: alighting at B and reboarding costs the same real time
	r, err := NewRouter(cat, Settings{BusWaitTime: 0, BusVelocity: 30})
	require.NoError(t, err)

	res, ok := r.BuildRoute("A", "C")
	require.True(t, ok)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "1", res.Items[1].BusName)
	assert.Equal(t, 2, res.Items[1].SpanCount)
	assert.InDelta(t, 4.2, res.TotalTime, 1e-9)
}

func TestBuildRoute_TransferWinsWhenGenuinelyFaster(t *testing.T) {
	cat := buildCatalogue(t,
		[]string{"A", "B", "C"},
		[]distDef{{"A", "B", 1000}, {"B", "C", 1100}, {"A", "C", 5000}},
		[]busDef{
			{"direct", []string{"A", "C"}, false},
			{"1", []string{"A", "B"}, false},
			{"2", []string{"B", "C"}, false},
		},
	)

	t.Run("fast buses keep the direct ride", func(t *testing.T) {
		// 1000 m/min: direct 5+5 = 10, transfer 5+1+5+1.1 = 12.1
		r, err := NewRouter(cat, Settings{BusWaitTime: 5, BusVelocity: 60})
		require.NoError(t, err)

		res, ok := r.BuildRoute("A", "C")
		require.True(t, ok)
		require.Len(t, res.Items, 2)
		assert.Equal(t, "direct", res.Items[1].BusName)
		assert.InDelta(t, 10.0, res.TotalTime, 1e-9)
	})

	t.Run("slow buses take the transfer", func(t *testing.T) {
		// 500 m/min: direct 5+10 = 15, transfer 5+2+5+2.2 = 14.2
		r, err := NewRouter(cat, Settings{BusWaitTime: 5, BusVelocity: 30})
		require.NoError(t, err)

		res, ok := r.BuildRoute("A", "C")
		require.True(t, ok)
		require.Len(t, res.Items, 4)

		expected := []Item{
			{Kind: ItemWait, StopName: "A", Time: 5},
			{Kind: ItemBus, BusName: "1", SpanCount: 1, Time: 2},
			{Kind: ItemWait, StopName: "B", Time: 5},
			{Kind: ItemBus, BusName: "2", SpanCount: 1, Time: 2.2},
		}
		for i, item := range expected {
			assert.Equal(t, item.Kind, res.Items[i].Kind)
			assert.Equal(t, item.StopName, res.Items[i].StopName)
			assert.Equal(t, item.BusName, res.Items[i].BusName)
			assert.Equal(t, item.SpanCount, res.Items[i].SpanCount)
			assert.InDelta(t, item.Time, res.Items[i].Time, 1e-9)
		}
		assert.InDelta(t, 14.2, res.TotalTime, 1e-9)
	})
}

func TestBuildRoute_RoundtripRunsOneWay(t *testing.T) {
	cat := buildCatalogue(t,
		[]string{"A", "B", "C"},
		[]distDef{{"A", "B", 1000}, {"B", "C", 1000}, {"C", "A", 1000}},
		[]busDef{{"ring", []string{"A", "B", "C", "A"}, true}},
	)
	r, err := NewRouter(cat, Settings{BusWaitTime: 2, BusVelocity: 60})
	require.NoError(t, err)
	// 3 wait edges + 6 pairs minus the A..A pair
	assert.Equal(t, 8, r.graph.EdgeCount())

	res, ok := r.BuildRoute("C", "B")
	require.True(t, ok)
	require.Len(t, res.Items, 4)
	assert.Equal(t, "C", res.Items[0].StopName)
	assert.Equal(t, 1, res.Items[1].SpanCount)
	assert.Equal(t, "A", res.Items[2].StopName)
	assert.Equal(t, 1, res.Items[3].SpanCount)
	assert.InDelta(t, 6.0, res.TotalTime, 1e-9)
}

func TestBuildRoute_Idempotent(t *testing.T) {
	r, err := NewRouter(abcCatalogue(t), Settings{BusWaitTime: 5, BusVelocity: 30})
	require.NoError(t, err)

	first, ok := r.BuildRoute("A", "C")
	require.True(t, ok)
	for i := 0; i < 3; i++ {
		again, ok := r.BuildRoute("A", "C")
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

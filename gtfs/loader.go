package gtfs

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

// NewIndexFromFile opens a local GTFS zip file and consumes the required CSVs
func NewIndexFromFile(filename string) (*Index, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	g := NewIndex()
	if err := g.consumeZip(&zr.Reader); err != nil {
		return nil, err
	}
	return g, nil
}

// NewIndexFromReader parses a zipped feed from any io.ReaderAt
func NewIndexFromReader(r io.ReaderAt, size int64) (*Index, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	g := NewIndex()
	if err := g.consumeZip(zr); err != nil {
		return nil, err
	}
	return g, nil
}

// consumed lists the files read from the archive in the order they are needed
var consumed = []string{"routes.txt", "trips.txt", "stops.txt", "stop_times.txt"}

func (g *Index) consumeZip(zr *zip.Reader) error {
	files := map[string]*zip.File{}
	for _, f := range zr.File {
		files[strings.ToLower(path.Base(f.Name))] = f
	}
	for _, name := range consumed {
		f, ok := files[name]
		if !ok {
			if name == "stops.txt" || name == "stop_times.txt" {
				return fmt.Errorf("%w: %s", ErrMissingFile, name)
			}
			continue
		}
		if err := g.consumeCSV(name, f); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func (g *Index) consumeCSV(name string, f *zip.File) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	switch name {
	case "routes.txt":
		rID := idx("route_id")
		rSN := idx("route_short_name")
		for _, row := range rec[1:] {
			if id := field(row, rID); id != "" {
				g.routeShortNames[id] = field(row, rSN)
			}
		}
	case "trips.txt":
		rID := idx("route_id")
		tID := idx("trip_id")
		for _, row := range rec[1:] {
			if id := field(row, tID); id != "" {
				g.tripToRoute[id] = field(row, rID)
			}
		}
	case "stops.txt":
		sID := idx("stop_id")
		sN := idx("stop_name")
		sLat := idx("stop_lat")
		sLon := idx("stop_lon")
		locType := idx("location_type")
		if sID < 0 || sLat < 0 || sLon < 0 {
			return fmt.Errorf("%w: stop_id, stop_lat and stop_lon are required", ErrMissingColumn)
		}
		for _, row := range rec[1:] {
			id := field(row, sID)
			if id == "" {
				continue
			}
			if lt := field(row, locType); lt != "" && lt != "0" {
				continue
			}
			lat, err := strconv.ParseFloat(field(row, sLat), 64)
			if err != nil {
				return fmt.Errorf("stop %q: bad stop_lat: %w", id, err)
			}
			lon, err := strconv.ParseFloat(field(row, sLon), 64)
			if err != nil {
				return fmt.Errorf("stop %q: bad stop_lon: %w", id, err)
			}
			if _, ok := g.stopNames[id]; !ok {
				g.stopOrder = append(g.stopOrder, id)
			}
			g.stopNames[id] = field(row, sN)
			g.stopCoord[id] = geo.Coordinates{Lat: lat, Lng: lon}
		}
	case "stop_times.txt":
		tID := idx("trip_id")
		sID := idx("stop_id")
		sq := idx("stop_sequence")
		sdt := idx("shape_dist_traveled")
		if tID < 0 || sID < 0 || sq < 0 {
			return fmt.Errorf("%w: trip_id, stop_id and stop_sequence are required", ErrMissingColumn)
		}
		type stopTime struct {
			stop string
			seq  int
			dist float64
		}
		tmp := map[string][]stopTime{}
		for _, row := range rec[1:] {
			trip := field(row, tID)
			seq, err := strconv.Atoi(field(row, sq))
			if trip == "" || err != nil {
				continue
			}
			dist := math.NaN()
			if v := field(row, sdt); v != "" {
				if d, err := strconv.ParseFloat(v, 64); err == nil {
					dist = d
				}
			}
			tmp[trip] = append(tmp[trip], stopTime{field(row, sID), seq, dist})
		}
		for trip, arr := range tmp {
			sort.Slice(arr, func(i, j int) bool { return arr[i].seq < arr[j].seq })
			seqStops := make([]string, len(arr))
			dists := make([]float64, len(arr))
			for i, v := range arr {
				seqStops[i] = v.stop
				dists[i] = v.dist
			}
			g.tripStopSeq[trip] = seqStops
			g.tripShapeDist[trip] = dists
		}
	}
	return nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

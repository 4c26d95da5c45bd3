// Package ingest reads the (faceNumber, point, normal) triples the core
// pipeline consumes from a CSV file, grounded on the original gaden
// Work::readData (which skips any line not starting with a digit).
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/marupio/gogaden/geom"
	"github.com/marupio/gogaden/internal/gogadenlog"
)

// Triple is one row of the input point cloud: a face number plus the point
// and its normal. Only Point is required by the core; FaceNumber and Normal
// are carried through for reporting.
type Triple struct {
	FaceNumber int
	Point      geom.Vector3
	Normal     geom.Vector3
}

// ReadCSV reads triples from path. Each row is
// "faceNumber,px,py,pz,nx,ny,nz"; rows whose first field does not parse as
// an integer are silently skipped, matching the original's
// isNumber(firstChar) guard.
func ReadCSV(path string, opts ...gogadenlog.Option) ([]Triple, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()
	return ReadCSVFrom(f, opts...)
}

// ReadCSVFrom reads triples from an already-open reader, for callers that
// don't have a filesystem path (e.g. tests, embedded data). Every raw record
// is traced at Debug4, matching the original's Log_Debug4("Line=[...]")
// per-line trace in Work::readData.
func ReadCSVFrom(r io.Reader, opts ...gogadenlog.Option) ([]Triple, error) {
	log := gogadenlog.New(opts...)
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var out []Triple
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: %w", err)
		}
		log.Debug4("ingest: line=%v", record)
		if len(record) == 0 {
			continue
		}
		faceNumber, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			// Non-numeric leading field: not a data row, skip it.
			continue
		}
		if len(record) < 7 {
			continue
		}
		point, err := parseVector3(record[1], record[2], record[3])
		if err != nil {
			continue
		}
		normal, err := parseVector3(record[4], record[5], record[6])
		if err != nil {
			continue
		}
		out = append(out, Triple{FaceNumber: faceNumber, Point: point, Normal: normal})
	}
	return out, nil
}

func parseVector3(xs, ys, zs string) (geom.Vector3, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Vector3{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Vector3{}, err
	}
	z, err := strconv.ParseFloat(strings.TrimSpace(zs), 64)
	if err != nil {
		return geom.Vector3{}, err
	}
	return geom.NewVector3(x, y, z), nil
}

// Points extracts just the point component of each triple, the only field
// the core pipeline requires.
func Points(triples []Triple) []geom.Vector3 {
	pts := make([]geom.Vector3, len(triples))
	for i, t := range triples {
		pts[i] = t.Point
	}
	return pts
}

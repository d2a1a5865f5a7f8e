package loader

import (
	"github.com/gostonefire/placehashmap/internal/conf"
	"github.com/gostonefire/placehashmap/place"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strconv"
	"strings"
)

// whitespace - Characters trimmed from both ends of a field
const whitespace = " \t\n\r"

// Inserter - Anything places can be loaded into, typically a *placehashmap.HashTable
type Inserter interface {
	Insert(p place.Place)
}

// Result - Outcome of a load
//   - Loaded is the number of places inserted
//   - Skipped is the number of non-empty lines that could not be parsed
type Result struct {
	Loaded  int
	Skipped int
}

// LoadPlacesFile - Opens a places file and loads every parsable line into the inserter.
// A file that can not be opened is an error, lines that can not be parsed are logged and skipped.
func LoadPlacesFile(fileName string, inserter Inserter) (result Result, err error) {
	file, err := os.Open(fileName)
	if err != nil {
		err = errors.Wrapf(err, "could not open places file %s", fileName)
		return
	}
	defer func(file *os.File) { _ = file.Close() }(file)

	result, err = LoadPlaces(file, inserter)
	if err != nil {
		err = errors.Wrapf(err, "reading places file %s", fileName)
		return
	}

	log.WithFields(log.Fields{"file": fileName, "loaded": result.Loaded, "skipped": result.Skipped}).Info("places loaded")

	return
}

// LoadPlaces - Reads fixed width place lines from r and inserts each parsed place into the inserter.
// Empty lines are ignored, unparsable lines are logged and counted as skipped.
func LoadPlaces(r io.Reader, inserter Inserter) (result Result, err error) {
	lines := NewLineReader(r)

	var lineNo int
	for {
		line, rerr := lines.Next()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			err = rerr
			return
		}

		lineNo++
		if line == "" {
			continue
		}

		p, perr := ParsePlaceLine(line)
		if perr != nil {
			log.WithField("line", lineNo).Warnf("error parsing line: %v", perr)
			result.Skipped++
			continue
		}

		inserter.Insert(p)
		result.Loaded++
	}

	return
}

// ParsePlaceLine - Parses one fixed width line into a Place. The column layout is given by the offsets and lengths
// in the conf package. All fields but the state code are trimmed.
func ParsePlaceLine(line string) (p place.Place, err error) {
	var f string

	if f, err = field(line, conf.CodeOffset, conf.CodeLength, true); err != nil {
		return
	}
	if p.Code, err = parseInt("code", f); err != nil {
		return
	}

	if p.State, err = field(line, conf.StateOffset, conf.StateLength, false); err != nil {
		return
	}

	if f, err = field(line, conf.NameOffset, conf.NameLength, true); err != nil {
		return
	}
	p.Name = f

	if f, err = field(line, conf.PopulationOffset, conf.PopulationLength, true); err != nil {
		return
	}
	if p.Population, err = parseInt("population", f); err != nil {
		return
	}

	if f, err = field(line, conf.AreaOffset, conf.AreaLength, true); err != nil {
		return
	}
	if p.Area, err = parseFloat("area", f); err != nil {
		return
	}

	if f, err = field(line, conf.LatitudeOffset, conf.LatitudeLength, true); err != nil {
		return
	}
	if p.Latitude, err = parseFloat("latitude", f); err != nil {
		return
	}

	if f, err = field(line, conf.LongitudeOffset, conf.LongitudeLength, true); err != nil {
		return
	}
	if p.Longitude, err = parseFloat("longitude", f); err != nil {
		return
	}

	if f, err = field(line, conf.RoadIntersectionOffset, conf.RoadIntersectionLength, true); err != nil {
		return
	}
	if p.RoadIntersection, err = parseInt("road intersection", f); err != nil {
		return
	}

	if f, err = field(line, conf.DistanceOffset, conf.DistanceLength, true); err != nil {
		return
	}
	if p.Distance, err = parseFloat("distance", f); err != nil {
		return
	}

	if p.Population < 0 || p.Area < 0 || p.Distance < 0 {
		err = errors.Errorf("negative population, area or distance in place %q", p.Name)
		return
	}

	return
}

// Trim - Removes spaces, tabs and line breaks from both ends of s
func Trim(s string) string {
	return strings.Trim(s, whitespace)
}

// field - Returns up to length bytes of line starting at offset, trimmed if trim is true. A field cut short by the
// end of the line is returned as is, a field starting past the end of the line is an error.
func field(line string, offset, length int, trim bool) (f string, err error) {
	if offset > len(line) {
		err = errors.Errorf("line of length %d ends before field at offset %d", len(line), offset)
		return
	}

	end := offset + length
	if end > len(line) {
		end = len(line)
	}

	f = line[offset:end]
	if trim {
		f = Trim(f)
	}

	return
}

func parseInt(name, s string) (v int, err error) {
	v, err = strconv.Atoi(s)
	if err != nil {
		err = errors.Wrapf(err, "parsing %s", name)
	}

	return
}

func parseFloat(name, s string) (v float64, err error) {
	v, err = strconv.ParseFloat(s, 64)
	if err != nil {
		err = errors.Wrapf(err, "parsing %s", name)
	}

	return
}

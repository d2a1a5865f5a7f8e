package states

import (
	"bufio"
	"github.com/gostonefire/placehashmap/internal/conf"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

// usStateCodes - US state, territory and armed forces codes used when no states file is available
var usStateCodes = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming",
	"AS": "American Samoa", "DC": "District of Columbia",
	"FM": "Federated States of Micronesia", "GU": "Guam",
	"MH": "Marshall Islands", "MP": "Northern Mariana Islands",
	"PW": "Palau", "PR": "Puerto Rico", "VI": "Virgin Islands",
	"AA": "Armed Forces Americas", "AE": "Armed Forces Europe", "AP": "Armed Forces Pacific",
}

// Table - Maps two character state codes to full state names. It is only used for display.
type Table struct {
	names map[string]string
}

// Default - Returns a table holding the built-in US state codes
func Default() *Table {
	t := &Table{names: make(map[string]string, len(usStateCodes))}
	for code, name := range usStateCodes {
		t.names[code] = name
	}

	return t
}

// Read - Reads a states table from r. Each line of at least 4 characters holds a code in its first two characters
// followed by the full name, e.g. "AK Alaska". Shorter lines are ignored and the first occurrence of a code wins.
func Read(r io.Reader) (t *Table, err error) {
	t = &Table{names: make(map[string]string)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < conf.MinStateLineLength {
			continue
		}

		code := line[:conf.StateCodeLength]
		if _, ok := t.names[code]; ok {
			continue
		}
		t.names[code] = strings.Trim(line[conf.StateCodeLength:], " \t\n\r")
	}

	err = scanner.Err()

	return
}

// Load - Reads the states file, falling back to the built-in US state codes if no file name is given or the file
// can not be opened. Only a read failure on an opened file is returned as an error.
func Load(fileName string) (t *Table, err error) {
	if fileName == "" {
		log.Info("no states file given, using built-in US state codes")
		t = Default()
		return
	}

	file, err := os.Open(fileName)
	if err != nil {
		log.WithError(err).Warnf("could not open states file %s, using built-in US state codes", fileName)
		t, err = Default(), nil
		return
	}
	defer func(file *os.File) { _ = file.Close() }(file)

	t, err = Read(file)
	if err != nil {
		err = errors.Wrapf(err, "reading states file %s", fileName)
		return
	}

	log.WithFields(log.Fields{"file": fileName, "states": t.Len()}).Info("states loaded")

	return
}

// FullName - Returns the full name of a state code, or "Unknown State"
func (T *Table) FullName(code string) string {
	if name, ok := T.names[code]; ok {
		return name
	}

	return conf.UnknownState
}

// Len - Returns the number of states in the table
func (T *Table) Len() int {
	return len(T.names)
}

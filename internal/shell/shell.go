package shell

import (
	"fmt"
	"github.com/gostonefire/placehashmap/internal/loader"
	"github.com/gostonefire/placehashmap/internal/states"
	"github.com/gostonefire/placehashmap/place"
	"github.com/pkg/errors"
	"io"
	"strings"
)

// geohashPrecision - Number of geohash characters shown in place details
const geohashPrecision int = 9

// cellLevel - S2 cell level shown in place details, level 10 cells are roughly 10 km across
const cellLevel int = 10

// Finder - The lookups the shell translates commands into, implemented by *placehashmap.HashTable
type Finder interface {
	FindByName(name string) []place.Place
	FindByNameAndState(name, state string) (place.Place, bool)
}

// Shell - Line oriented query loop over a Finder.
//   - Q quits
//   - N placename lists the states having a place with that name
//   - S placename state shows the details of one place
type Shell struct {
	finder Finder
	states *states.Table
	out    io.Writer
}

// New - Returns a pointer to a new Shell writing its answers to out
func New(finder Finder, stateTable *states.Table, out io.Writer) *Shell {
	if stateTable == nil {
		stateTable = states.Default()
	}

	return &Shell{finder: finder, states: stateTable, out: out}
}

// Run - Prints the command help and then executes commands read from in, one per line, until Q or end of input.
func (S *Shell) Run(in io.Reader) (err error) {
	S.printf("\nInteractive Query System (Enter Q to quit)\n")
	S.printf("Commands:\n")
	S.printf("  N placename - Find all states with this place name\n")
	S.printf("  S placename state - Get detailed info for specific place\n")
	S.printf("  Q - Quit\n")

	lines := loader.NewLineReader(in)
	for {
		S.printf("\n> ")
		line, rerr := lines.Next()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			err = errors.Wrap(rerr, "reading commands")
			return
		}
		if quit := S.Execute(line); quit {
			break
		}
	}

	S.printf("Goodbye!\n")

	return
}

// Execute - Executes one command line and reports whether it was a quit command
func (S *Shell) Execute(input string) (quit bool) {
	if input == "" {
		return
	}

	switch input[0] {
	case 'Q', 'q':
		quit = true
	case 'N', 'n':
		S.ListByName(loader.Trim(input[1:]))
	case 'S', 's':
		S.findByNameAndState(loader.Trim(input[1:]))
	default:
		S.printf("Unknown command. Use N, S, or Q.\n")
	}

	return
}

// ListByName - Lists the states of every place with the given name
func (S *Shell) ListByName(placeName string) {
	if placeName == "" {
		S.printf("Error: Please provide a place name after N\n")
		return
	}

	places := S.finder.FindByName(placeName)
	if len(places) == 0 {
		S.printf("No places found with name: %s\n", placeName)
		return
	}

	S.printf("Found %d places with name '%s':\n", len(places), placeName)
	for _, p := range places {
		S.printf("  %s - %s\n", p.State, S.states.FullName(p.State))
	}
}

// findByNameAndState - Shows details of the place given as "placename state", the state being the last word.
// A place name wrapped in double quotes has them removed.
func (S *Shell) findByNameAndState(rest string) {
	if rest == "" {
		S.printf("Error: Please provide place name and state after S\n")
		return
	}

	lastSpace := strings.LastIndexByte(rest, ' ')
	if lastSpace <= 0 || lastSpace == len(rest)-1 {
		S.printf("Error: Format should be 'S placename state'\n")
		return
	}

	S.ShowPlace(unquote(rest[:lastSpace]), rest[lastSpace+1:])
}

// ShowPlace - Shows details of the place with the given name and state
func (S *Shell) ShowPlace(placeName, state string) {
	p, found := S.finder.FindByNameAndState(placeName, state)
	if !found {
		S.printf("Place not found: %s, %s\n", placeName, state)
		return
	}

	S.printf("Place Information:\n")
	S.printf("  Name: %s\n", p.Name)
	S.printf("  State: %s (%s)\n", p.State, S.states.FullName(p.State))
	S.printf("  Code: %d\n", p.Code)
	S.printf("  Population: %d\n", p.Population)
	S.printf("  Area: %.6g sq units\n", p.Area)
	S.printf("  Latitude: %.6g\n", p.Latitude)
	S.printf("  Longitude: %.6g\n", p.Longitude)
	S.printf("  Road Intersection Code: %d\n", p.RoadIntersection)
	S.printf("  Distance to Intersection: %.6g units\n", p.Distance)
	S.printf("  Geohash: %s\n", p.Geohash(geohashPrecision))
	S.printf("  S2 Cell: %s\n", p.CellID(cellLevel).ToToken())
}

func (S *Shell) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(S.out, format, a...)
}

// unquote - Removes double quotes wrapping a place name
func unquote(name string) string {
	if len(name) > 0 && name[0] == '"' && name[len(name)-1] == '"' {
		if len(name) == 1 {
			return ""
		}
		return name[1 : len(name)-1]
	}

	return name
}

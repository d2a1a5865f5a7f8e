package states

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.
func Test(t *testing.T) { TestingT(t) }

type StatesSuite struct {
	dir string
}

var _ = Suite(&StatesSuite{})

func (s *StatesSuite) SetUpTest(c *C) {
	s.dir = c.MkDir()
}

func (s *StatesSuite) TestRead(c *C) {
	input := strings.Join([]string{
		"AK Alaska",
		"IL  Illinois  ",
		"TX",
		"ZZ Z",
		"AK Not Alaska",
	}, "\n")

	t, err := Read(strings.NewReader(input))
	c.Assert(err, IsNil)
	c.Assert(t.Len(), Equals, 3)
	c.Assert(t.FullName("AK"), Equals, "Alaska")
	c.Assert(t.FullName("IL"), Equals, "Illinois")
	c.Assert(t.FullName("ZZ"), Equals, "Z")
	c.Assert(t.FullName("TX"), Equals, "Unknown State")
}

func (s *StatesSuite) TestFullNameIsCaseSensitive(c *C) {
	t, err := Read(strings.NewReader("MA Massachusetts\n"))
	c.Assert(err, IsNil)
	c.Assert(t.FullName("ma"), Equals, "Unknown State")
}

func (s *StatesSuite) TestDefault(c *C) {
	t := Default()
	c.Assert(t.FullName("TX"), Equals, "Texas")
	c.Assert(t.FullName("PR"), Equals, "Puerto Rico")
	c.Assert(t.Len(), Equals, len(usStateCodes))
}

func (s *StatesSuite) TestLoadFile(c *C) {
	fileName := filepath.Join(s.dir, "states.txt")
	c.Assert(os.WriteFile(fileName, []byte("IL Illinois\nMA Massachusetts\n"), 0644), IsNil)

	t, err := Load(fileName)
	c.Assert(err, IsNil)
	c.Assert(t.Len(), Equals, 2)
	c.Assert(t.FullName("TX"), Equals, "Unknown State")
}

func (s *StatesSuite) TestLoadMissingFileFallsBack(c *C) {
	t, err := Load(filepath.Join(s.dir, "missing.txt"))
	c.Assert(err, IsNil)
	c.Assert(t.FullName("TX"), Equals, "Texas")
}

func (s *StatesSuite) TestLoadWithoutFileName(c *C) {
	t, err := Load("")
	c.Assert(err, IsNil)
	c.Assert(t.Len(), Equals, len(usStateCodes))
}

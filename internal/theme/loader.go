package theme

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	lberrors "github.com/linebox-dev/linebox/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a theme file from disk, validates it, and returns the
// resulting theme. Fields absent from the file inherit the stock
// defaults, so a theme file only has to override what it changes.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, lberrors.NewParseError(path, 0, err)
	}

	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, lberrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

package beaconclient

import (
	"os"
	"path/filepath"
	"strings"
)

// homeCityFile is the fixed name the trip planner's home city is stored
// under inside the state directory.
const homeCityFile = "home_city"

// HomeCityStore persists the user's home city for trip planning: a
// single string, read at startup and overwritten whenever the user edits
// it.
type HomeCityStore struct {
	path string
}

// NewHomeCityStore keeps the home city in the given directory, creating
// it if needed.
func NewHomeCityStore(dir string) (*HomeCityStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &HomeCityStore{path: filepath.Join(dir, homeCityFile)}, nil
}

// Load returns the stored home city, or "" when none has been saved.
func (s *HomeCityStore) Load() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Save overwrites the stored home city. Blank input is ignored so an
// accidental clear does not lose the saved value.
func (s *HomeCityStore) Save(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil
	}
	return os.WriteFile(s.path, []byte(city+"\n"), 0o644)
}

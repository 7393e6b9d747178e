package saves

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Scan lists dir and parses every save folder in it. Entries that are not
// directories or have empty or non-ascii names are skipped, and entries
// whose names fail to parse are dropped one by one; a bad folder name never
// blocks its siblings. Only the listing itself can fail.
func Scan(dir string) ([]SaveInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w: %s", ErrReadDirectory, dir), err)
	}

	records := make([]SaveInfo, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name == "" || !isASCII(name) {
			continue
		}

		record, err := Parse(name)
		if err != nil {
			log.Debug().Err(err).Str("folder", name).Msg("dropping unparseable save folder")
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

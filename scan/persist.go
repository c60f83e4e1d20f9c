package scan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oraclekit/ergoscan/nodeclient"
)

// ScanIDsFilename is the document holding the name to scan id mapping.
const ScanIDsFilename = "scanIDs.json"

// SaveScanIDs writes the name to id mapping of the given scans to
// scanIDs.json under dir, pretty printed, overwriting any prior document
// in full. Every entry is validated first: a scan still carrying the
// null id fails the whole write with ErrFailedToRegister, so a broken
// handle is never persisted.
func SaveScanIDs(dir string, scans []*Scan) error {
	ids := make(map[string]ScanID, len(scans))
	for _, s := range scans {
		if s.ID == nodeclient.NullScanID {
			return ErrFailedToRegister
		}
		ids[s.Name] = s.ID
	}

	data, err := json.MarshalIndent(ids, "", "    ")
	if err != nil {
		return err
	}

	path := filepath.Join(dir, ScanIDsFilename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// LoadScanIDs reads a previously saved scanIDs.json back into a name to
// id mapping.
func LoadScanIDs(dir string) (map[string]ScanID, error) {
	path := filepath.Join(dir, ScanIDsFilename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var ids map[string]ScanID
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return ids, nil
}

package output

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ManifestName is the manifest file written into the output directory.
const ManifestName = "manifest.yaml"

// WriteManifest records the run summary as YAML at path so a chart set
// stays traceable to the reports that produced it.
func WriteManifest(path string, summary Summary) error {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

package toolbox

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestManifestMarshalsToYAML(t *testing.T) {
	manifest := fixtureToolbox().Manifest()

	out, err := yaml.Marshal(manifest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := string(out)
	for _, op := range Operations() {
		if !strings.Contains(text, "name: "+op.Name()) {
			t.Fatalf("manifest YAML missing %q:\n%s", op.Name(), text)
		}
	}

	var decoded Manifest
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("manifest YAML does not round-trip: %v", err)
	}
	if len(decoded.Tools) != int(operationCount) {
		t.Fatalf("unexpected tool count after round-trip: %d", len(decoded.Tools))
	}
}

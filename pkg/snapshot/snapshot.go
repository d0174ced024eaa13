package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// Redacted replaces the value of every redacted key
const Redacted = "<redacted>"

var callCount = make(map[string]int)
var callLock sync.Mutex

// Validate compares obj as indented JSON with testdata/<test name>-<n>.json
// n counts the calls made by the test. Values under any of the redact keys are replaced with
// Redacted at every depth, which keeps timestamps and ids out of the golden file. If the file
// does not exist yet it is written from obj.
func Validate(t *testing.T, obj interface{}, redact ...string) {
	t.Helper()

	filename := nextFilename(t.Name())
	actual, err := marshal(obj, redact)
	if err != nil {
		t.Fatal(err)
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			create(t, filename, actual)
			return
		}

		t.Fatal(err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(actual), "\n")) {
		t.Logf("snapshot %s", filename)
	}
}

func nextFilename(testName string) string {
	callLock.Lock()
	defer callLock.Unlock()

	name := strings.ReplaceAll(testName, "/", "_")
	call := callCount[name]
	callCount[name] = call + 1

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))
}

func marshal(obj interface{}, redact []string) ([]byte, error) {
	if len(redact) == 0 {
		return json.MarshalIndent(obj, "", "  ")
	}

	b, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}

	var generic interface{}
	if err := json.Unmarshal(b, &generic); err != nil {
		return nil, err
	}

	return json.MarshalIndent(redactKeys(generic, redact), "", "  ")
}

func redactKeys(v interface{}, keys []string) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, child := range val {
			if contains(keys, k) && child != nil {
				val[k] = Redacted
				continue
			}

			val[k] = redactKeys(child, keys)
		}
	case []interface{}:
		for i, child := range val {
			val[i] = redactKeys(child, keys)
		}
	}

	return v
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}

	return false
}

func create(t *testing.T, filename string, data []byte) {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filename, append(data, '\n'), 0644); err != nil {
		t.Fatal(err)
	}
}

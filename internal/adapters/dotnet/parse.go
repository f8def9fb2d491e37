package dotnet

import (
	"encoding/json"
	"strings"

	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/zerr"
)

// propertiesDocument is the shape msbuild prints when several properties are requested.
type propertiesDocument struct {
	Properties map[string]string `json:"Properties"`
}

// ParseProperties converts the output of `msbuild -getProperty` into a map.
// A single property is printed as its raw value. Several are printed as a JSON document.
// Every requested property is present in the result, missing ones as "".
func ParseProperties(properties []string, stdout string) (map[string]string, error) {
	values := make(map[string]string, len(properties))

	switch len(properties) {
	case 0:
		return values, nil
	case 1:
		values[properties[0]] = strings.TrimSpace(stdout)
		return values, nil
	}

	var doc propertiesDocument
	if err := json.Unmarshal([]byte(strings.TrimSpace(stdout)), &doc); err != nil {
		wrapped := zerr.With(zerr.Wrap(domain.ErrEvaluationParseFailed, "unexpected msbuild output"), "detail", err.Error())
		return nil, zerr.With(wrapped, "stdout", tail(stdout, maxOutputLines))
	}

	for _, p := range properties {
		values[p] = strings.TrimSpace(doc.Properties[p])
	}
	return values, nil
}

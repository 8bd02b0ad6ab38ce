package adapters

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/invopop/jsonschema"
	"github.com/rs/zerolog/log"
	"github.com/snapcore/snapd/osutil"
	"github.com/xeipuuv/gojsonschema"

	"snap-seed-sync/internal/ports"
	"snap-seed-sync/internal/types"
)

var osReadFile = os.ReadFile
var gojsonschemaValidate = gojsonschema.Validate

// ModelFileAdapter loads and saves model assertion JSON files.
type ModelFileAdapter struct{}

func NewModelFileAdapter() ModelFileAdapter {
	return ModelFileAdapter{}
}

// LoadModel returns nil without error when the file does not exist.
func (a ModelFileAdapter) LoadModel(path string) (*types.ModelAssertion, error) {
	if !osutil.FileExists(path) {
		log.Info().Str("path", path).Msg("model assertion not found")
		return nil, nil
	}
	data, err := osReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read model assertion " + path).
			WithCause(err)
	}
	if err := validateModelAssertion(data); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid model assertion " + path).
			WithCause(err)
	}
	var model types.ModelAssertion
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse model assertion " + path).
			WithCause(err)
	}
	log.Debug().Str("path", path).Int("snaps", len(model.Snaps)).Msg("model assertion loaded")
	return &model, nil
}

// SaveModel writes the model with a four space indent and a trailing
// newline. A nil model is ignored.
func (a ModelFileAdapter) SaveModel(path string, model *types.ModelAssertion) error {
	if model == nil {
		return nil
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(model); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode model assertion").
			WithCause(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create model directory").
			WithCause(err)
	}
	if err := osutil.AtomicWriteFile(path, buf.Bytes(), 0o644, 0); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write model assertion " + path).
			WithCause(err)
	}
	log.Debug().Str("path", path).Msg("model assertion saved")
	return nil
}

// validateModelAssertion checks the raw document against a schema reflected
// from types.ModelAssertion. Unknown keys are allowed.
func validateModelAssertion(data []byte) error {
	reflector := jsonschema.Reflector{AllowAdditionalProperties: true, DoNotReference: true, Anonymous: true}
	schema := reflector.Reflect(&types.ModelAssertion{})

	result, err := gojsonschemaValidate(gojsonschema.NewGoLoader(schema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema validation returned an error").
			WithCause(err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, resultErr := range result.Errors() {
			problems = append(problems, resultErr.String())
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema validation failed").
			WithCause(errors.New(strings.Join(problems, "; ")))
	}
	return nil
}

var _ ports.ModelStorePort = ModelFileAdapter{}

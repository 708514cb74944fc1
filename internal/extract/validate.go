package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ytget/yt-mp3/internal/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// reasonByField maps JobRequest fields to the reason reported for them
var reasonByField = map[string]ValidationReason{
	"URL":       ReasonMissingURL,
	"OutputDir": ReasonMissingOutputDir,
	"Quality":   ReasonInvalidQuality,
}

// Validate trims the text fields of req and checks that a job can start.
// A zero quality is replaced by the default. The URL is checked before the
// output directory, so a request missing both reports missing_url.
func Validate(req model.JobRequest) (model.JobRequest, error) {
	req.URL = strings.TrimSpace(req.URL)
	req.OutputDir = strings.TrimSpace(req.OutputDir)
	req.Filename = strings.TrimSpace(req.Filename)
	if req.Quality == 0 {
		req.Quality = model.DefaultQuality
	}

	err := validate.Struct(req)
	if err == nil {
		return req, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return req, fmt.Errorf("failed to validate job request: %w", err)
	}

	// Errors come back in field declaration order
	for _, fe := range fieldErrs {
		if reason, ok := reasonByField[fe.StructField()]; ok {
			return req, &ValidationError{Reason: reason}
		}
	}
	return req, fmt.Errorf("failed to validate job request: %w", err)
}

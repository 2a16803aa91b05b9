package cfnapi

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// Describe renders err for the terminal. Service errors become "code: message";
// anything else keeps its own text.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() != "" {
		return fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}

	return err.Error()
}

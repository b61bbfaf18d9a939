package util

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/connectmate/connectmate_api/internal/model"
	"github.com/connectmate/connectmate_api/util/tracing"
	"github.com/connectmate/connectmate_api/util/values"
	"github.com/pkg/errors"
)

// StatusCode returns the status code represented
// by the specified status. Note that this function
// returns a status code of 200 by default
func StatusCode(status string) int {
	switch status {
	case values.Error, values.SystemErr:
		return http.StatusInternalServerError
	case values.Created:
		return http.StatusCreated
	case values.BadRequestBody:
		return http.StatusBadRequest
	case values.Unprocessable:
		return http.StatusUnprocessableEntity
	case values.NotAllowed:
		return http.StatusForbidden
	case values.Conflict:
		return http.StatusConflict
	case values.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusOK
	}
}

// DecodeJSONBody ...
func DecodeJSONBody(tc *tracing.Context, body io.ReadCloser, target interface{}) error {
	if body == nil {
		return fmt.Errorf("missing request body for request: %v", tc)
	}
	defer func() {
		_ = body.Close()
	}()

	if err := json.NewDecoder(body).Decode(target); err != nil {
		return errors.Wrapf(err, "Error parsing json body for request: %v", tc)
	}

	return nil
}

// ParseCoordinate parses a latitude/longitude pair from query parameters.
func ParseCoordinate(lat, lng string) (model.Coordinate, error) {
	if lat == "" || lng == "" {
		return model.Coordinate{}, errors.Wrap(model.ErrValidation, "lat and lng are required")
	}

	la, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return model.Coordinate{}, errors.Wrapf(model.ErrValidation, "invalid lat %q", lat)
	}
	ln, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return model.Coordinate{}, errors.Wrapf(model.ErrValidation, "invalid lng %q", lng)
	}

	coord := model.Coordinate{Lat: la, Lng: ln}
	if err := ValidateStruct(coord); err != nil {
		return model.Coordinate{}, errors.Wrap(model.ErrValidation, ValidationMessage(err))
	}
	return coord, nil
}

// ParseID parses a positive integer path parameter.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(model.ErrValidation, "invalid id %q", raw)
	}
	return id, nil
}

// Package phone normalises user supplied phone numbers to E.164.
package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/foodygo/identity-server/internal/model"
)

const DefaultRegion = "VN"

// Normalizer parses numbers written without a country code against a default region.
type Normalizer struct {
	region string
}

func NewNormalizer(region string) *Normalizer {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = DefaultRegion
	}
	return &Normalizer{region: region}
}

// Normalize returns raw formatted as E.164. Unparseable or invalid numbers
// yield model.ErrInvalidArgument.
func (n *Normalizer) Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: phone: cannot be blank", model.ErrInvalidArgument)
	}

	num, err := phonenumbers.Parse(raw, n.region)
	if err != nil {
		return "", fmt.Errorf("%w: phone: %s", model.ErrInvalidArgument, err.Error())
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: phone: not a valid number", model.ErrInvalidArgument)
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// Region returns the default region in use.
func (n *Normalizer) Region() string {
	return n.region
}

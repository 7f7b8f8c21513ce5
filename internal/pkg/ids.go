package pkg

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

func NewULID() ulid.ULID {
	entropy := ulid.DefaultEntropy()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
}

func ParseULID(s string) (ulid.ULID, error) {
	if s == "" {
		return ulid.ULID{}, errors.New("ULID string cannot be empty")
	}

	parsed, err := ulid.Parse(s)
	if err != nil {
		return ulid.ULID{}, errors.New("invalid ULID format")
	}

	return parsed, nil
}

// ParseULIDPtr maps "" and nil to a nil id, for optional references.
func ParseULIDPtr(s *string) (*ulid.ULID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	parsed, err := ParseULID(*s)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func IsEmptyULID(id ulid.ULID) bool {
	return id == ulid.ULID{}
}

// ParseOwnerID parses the subject claim issued by the identity provider.
func ParseOwnerID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.UUID{}, errors.New("owner id cannot be empty")
	}
	return uuid.Parse(s)
}

func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

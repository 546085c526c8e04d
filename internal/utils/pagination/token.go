package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/evokeessence/evoke_backend/internal/apperrors"
)

const timeFormat = time.RFC3339Nano

// EncodeCursor creates a base64 encoded keyset cursor from a row's creation time and id.
// Pages ordered by (created_at DESC, id DESC) resume strictly after this pair.
func EncodeCursor(createdAt time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", createdAt.UTC().Format(timeFormat), id)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a cursor produced by EncodeCursor.
func DecodeCursor(token string) (time.Time, string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: invalid pagination token format (base64 decode)", apperrors.ErrValidation)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("%w: invalid pagination token format (split)", apperrors.ErrValidation)
	}

	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: invalid pagination token format (created_at parse)", apperrors.ErrValidation)
	}
	return createdAt, parts[1], nil
}

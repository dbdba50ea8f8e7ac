package ledger

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ledger/pkg/domain"
	"ledger/pkg/storage"
)

// EncodeCursor turns a storage cursor into an opaque pagination token.
// The token encodes the expense date and ID of the last row on the page,
// which together form the sort key of the listing.
func EncodeCursor(cursor storage.ExpenseCursor) string {
	raw := cursor.Date.Format(domain.DateLayout) + "/" + uuid.UUID(cursor.ID).String()

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a pagination token produced by EncodeCursor.
func DecodeCursor(token string) (storage.ExpenseCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return storage.ExpenseCursor{}, fmt.Errorf("could not decode cursor: %w", err)
	}

	datePart, idPart, ok := strings.Cut(string(raw), "/")
	if !ok {
		return storage.ExpenseCursor{}, fmt.Errorf("malformed cursor %q", raw)
	}

	date, err := time.Parse(domain.DateLayout, datePart)
	if err != nil {
		return storage.ExpenseCursor{}, fmt.Errorf("could not parse cursor date: %w", err)
	}

	id, err := uuid.Parse(idPart)
	if err != nil {
		return storage.ExpenseCursor{}, fmt.Errorf("could not parse cursor ID: %w", err)
	}

	return storage.ExpenseCursor{Date: date, ID: domain.ExpenseID(id)}, nil
}

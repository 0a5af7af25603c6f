package interfaces

import (
	"context"

	"maintup/internal/domain/entities"
)

// IDocumentRepository owns the durable copy of the four-collection document.
// Every mutation goes through a full Load/Save cycle; there are no partial
// updates and no cross-collection transactions. The document is raw so
// records persist exactly as callers sent them.
type IDocumentRepository interface {
	Load(ctx context.Context) (entities.RawDocument, error)
	Save(ctx context.Context, doc entities.RawDocument) error
}

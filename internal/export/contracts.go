package export

import (
	"context"

	"github.com/Idelcio/calibration-extractor/internal/entity"
)

// Sink receives the final instrument list. Persistence collaborators (SQL
// generation, database import) implement this on their side; the core only
// hands over plain records.
type Sink interface {
	Save(ctx context.Context, instruments []entity.InstrumentRecord) error
}

package ports

import "context"

// SchemaRunner invokes schema-creation procedures on the hosted service.
type SchemaRunner interface {
	// CreateTable calls the named remote procedure. Returns
	// domain.ErrAlreadyExists when the object is already in place.
	CreateTable(ctx context.Context, procedure string) error
}

// TableProber runs exact-count probes against named relations. Used for
// connectivity and table-existence checks during verification.
type TableProber interface {
	CountRows(ctx context.Context, table string) (int64, error)
}

// StorageBrowser enumerates file buckets on the hosted storage service.
type StorageBrowser interface {
	ListBuckets(ctx context.Context) ([]string, error)
}

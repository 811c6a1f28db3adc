package cloudwriter

// Writer buffers bytes locally and uploads them as a single object when
// closed. Cloud object stores have no append, so Close is the actual write.
type Writer interface {
	Write(data []byte) (int, error)
	Close() error
}

// Factory creates writers bound to one bucket and object path.
type Factory interface {
	NewWriter(bucket, objectPath string) (Writer, error)
}
